package life

// Pattern is a set of live offsets relative to an origin.
type Pattern []Point

var (
	// Block is the 2x2 still life.
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	// Blinker is the horizontal period-2 oscillator.
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	// Glider moves one cell down and right every four generations.
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
)

// At translates the pattern so its origin sits at p.
func (pt Pattern) At(p Point) []Point {
	out := make([]Point, len(pt))
	for i, off := range pt {
		out[i] = p.Add(off)
	}
	return out
}

var patterns = map[string]Pattern{
	"block":   Block,
	"blinker": Blinker,
	"glider":  Glider,
}

// PatternNamed looks up one of the built-in patterns by lowercase name.
func PatternNamed(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Centered places the pattern near the middle of a span x span board.
func (pt Pattern) Centered(span int) []Point {
	return pt.At(Point{X: span/2 - 1, Y: span/2 - 1})
}
