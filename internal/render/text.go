package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"lifeboard/pkg/life"
)

const (
	blockGlyph = "██"
	emptyGlyph = "  "

	ansiClear = "\x1b[H\x1b[2J"
)

// Text writes boards to a terminal, two columns per cell.
type Text struct {
	w     io.Writer
	clear bool
}

// NewText returns a text renderer. With clear set, each frame starts by homing
// the cursor and clearing the screen.
func NewText(w io.Writer, clear bool) *Text {
	return &Text{w: w, clear: clear}
}

// Render writes b, one board row per line.
func (t *Text) Render(b *life.Board) error {
	bw := bufio.NewWriter(t.w)
	if t.clear {
		bw.WriteString(ansiClear)
	}
	span := b.Span()
	i := 0
	b.Each(func(c life.Cell) {
		if c.Alive() {
			bw.WriteString(blockGlyph)
		} else {
			bw.WriteString(emptyGlyph)
		}
		i++
		if i%span == 0 {
			bw.WriteByte('\n')
		}
	})
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write frame")
	}
	return nil
}
