package life

// History remembers the fingerprints of the most recent generations.
type History struct {
	size  int
	marks []string
}

// NewHistory keeps up to size fingerprints. Sizes below 1 are raised to 1.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{size: size, marks: make([]string, 0, size)}
}

// Period reports how many generations ago b was last seen, or 0 when b does
// not match anything remembered. A still life reports 1 and a blinker 2.
func (h *History) Period(b *Board) int {
	fp := b.Fingerprint()
	for i := len(h.marks) - 1; i >= 0; i-- {
		if h.marks[i] == fp {
			return len(h.marks) - i
		}
	}
	return 0
}

// Push records b, dropping the oldest entry when full.
func (h *History) Push(b *Board) {
	if len(h.marks) == h.size {
		copy(h.marks, h.marks[1:])
		h.marks = h.marks[:h.size-1]
	}
	h.marks = append(h.marks, b.Fingerprint())
}

// Reset forgets every remembered generation.
func (h *History) Reset() { h.marks = h.marks[:0] }

// Len returns the number of remembered generations.
func (h *History) Len() int { return len(h.marks) }
