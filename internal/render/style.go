package render

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
	"lifeboard/pkg/life"
)

// Style holds the cell geometry and palette used to paint a board.
type Style struct {
	CellLength  int
	StrokeWidth int
	Alive       color.RGBA
	Dead        color.RGBA
	Stroke      color.RGBA
}

// DefaultStyle returns 16px cells separated by 2px light grey lines, blue when
// alive and grey when dead.
func DefaultStyle() Style {
	return Style{
		CellLength:  16,
		StrokeWidth: 2,
		Alive:       color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Dead:        color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Stroke:      color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 255},
	}
}

// Validate rejects geometry that leaves no room for a cell or no separator
// between cells.
func (s Style) Validate() error {
	if s.StrokeWidth < 1 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "stroke width %d", s.StrokeWidth)
	}
	if s.CellLength <= s.StrokeWidth {
		return errors.Wrapf(core.ErrInvalidConfiguration, "cell length %d must exceed stroke width %d", s.CellLength, s.StrokeWidth)
	}
	return nil
}

// inset is the stroke share on the leading edge of a cell, at least one pixel.
func (s Style) inset() int {
	return max(s.StrokeWidth/2, 1)
}

// CellRect returns the pixel rectangle filled for the cell at p.
func (s Style) CellRect(p life.Point) image.Rectangle {
	x := s.CellLength*p.X + s.inset()
	y := s.CellLength*p.Y + s.inset()
	side := s.CellLength - s.StrokeWidth
	return image.Rect(x, y, x+side, y+side)
}

// Surface returns the pixel size of a board with the given span.
func (s Style) Surface(span int) image.Rectangle {
	return image.Rect(0, 0, span*s.CellLength, span*s.CellLength)
}
