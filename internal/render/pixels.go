package render

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"lifeboard/pkg/life"
)

// Painter converts boards of a fixed span into RGBA pixel buffers.
type Painter struct {
	style  Style
	span   int
	bounds image.Rectangle
}

// NewPainter validates the style and prepares a painter for span x span boards.
func NewPainter(style Style, span int) (*Painter, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if span <= 0 {
		return nil, errors.Wrapf(life.ErrInvalidSpan, "painter span %d", span)
	}
	return &Painter{style: style, span: span, bounds: style.Surface(span)}, nil
}

// Bounds returns the pixel rectangle covered by a painted board.
func (p *Painter) Bounds() image.Rectangle { return p.bounds }

// Style returns the painter style.
func (p *Painter) Style() Style { return p.style }

// NewFrame allocates a buffer large enough for Paint.
func (p *Painter) NewFrame() []byte {
	return make([]byte, 4*p.bounds.Dx()*p.bounds.Dy())
}

// Paint draws b into buf: separator lines first, then one rect per cell in the
// alive or dead color.
func (p *Painter) Paint(buf []byte, b *life.Board) error {
	if b.Span() != p.span {
		return errors.Errorf("board span %d does not match painter span %d", b.Span(), p.span)
	}
	if want := 4 * p.bounds.Dx() * p.bounds.Dy(); len(buf) != want {
		return errors.Errorf("frame buffer has %d bytes, want %d", len(buf), want)
	}
	fillRect(buf, p.bounds.Dx(), p.bounds, p.style.Stroke)
	b.Each(func(c life.Cell) {
		col := p.style.Dead
		if c.Alive() {
			col = p.style.Alive
		}
		fillRect(buf, p.bounds.Dx(), p.style.CellRect(c.Point()).Intersect(p.bounds), col)
	})
	return nil
}

// Image paints b into a new RGBA image.
func (p *Painter) Image(b *life.Board) (*image.RGBA, error) {
	img := image.NewRGBA(p.bounds)
	if err := p.Paint(img.Pix, b); err != nil {
		return nil, err
	}
	return img, nil
}

// fillRect writes col into every pixel of r in a buffer with the given row width.
func fillRect(buf []byte, width int, r image.Rectangle, col color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * width * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			base := row + x*4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
