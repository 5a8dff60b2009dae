package render

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
	"lifeboard/pkg/life"
)

func TestCellRect(t *testing.T) {
	s := DefaultStyle()
	got := s.CellRect(life.Point{X: 2, Y: 3})
	want := image.Rect(33, 49, 47, 63)
	if got != want {
		t.Fatalf("CellRect = %v, expected %v", got, want)
	}
	s.StrokeWidth = 1
	if r := s.CellRect(life.Point{}); r.Min != image.Pt(1, 1) || r.Dx() != 15 {
		t.Fatalf("thin stroke rect = %v", r)
	}
}

func TestPaintColors(t *testing.T) {
	b, _ := life.Seed(3, life.Point{X: 1, Y: 0})
	p, err := NewPainter(DefaultStyle(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Bounds() != image.Rect(0, 0, 48, 48) {
		t.Fatalf("bounds = %v", p.Bounds())
	}
	img, err := p.Image(b)
	if err != nil {
		t.Fatal(err)
	}
	s := p.Style()
	cases := []struct {
		x, y int
		want color.RGBA
		what string
	}{
		{24, 8, s.Alive, "live cell center"},
		{8, 8, s.Dead, "dead cell center"},
		{40, 40, s.Dead, "far dead cell"},
		{16, 8, s.Stroke, "vertical separator"},
		{8, 15, s.Stroke, "horizontal separator"},
		{0, 0, s.Stroke, "outer border"},
	}
	for _, tc := range cases {
		if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("%s at (%d,%d) = %v, expected %v", tc.what, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPaintRejectsMismatch(t *testing.T) {
	p, _ := NewPainter(DefaultStyle(), 4)
	small, _ := life.NewBoard(3)
	if err := p.Paint(p.NewFrame(), small); err == nil {
		t.Fatalf("expected span mismatch error")
	}
	right, _ := life.NewBoard(4)
	if err := p.Paint(make([]byte, 10), right); err == nil {
		t.Fatalf("expected buffer size error")
	}
}

func TestStyleValidate(t *testing.T) {
	bad := DefaultStyle()
	bad.CellLength = 2
	if _, err := NewPainter(bad, 4); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("err = %v", err)
	}
	bad = DefaultStyle()
	bad.StrokeWidth = -1
	if err := bad.Validate(); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("negative stroke err = %v", err)
	}
	if _, err := NewPainter(DefaultStyle(), 0); !errors.Is(err, life.ErrInvalidSpan) {
		t.Fatalf("zero span err = %v", err)
	}
}

func TestTextRender(t *testing.T) {
	b, _ := life.Seed(2, life.Point{X: 0, Y: 0}, life.Point{X: 1, Y: 1})
	var buf bytes.Buffer
	if err := NewText(&buf, false).Render(b); err != nil {
		t.Fatal(err)
	}
	want := blockGlyph + emptyGlyph + "\n" + emptyGlyph + blockGlyph + "\n"
	if buf.String() != want {
		t.Fatalf("text frame = %q, expected %q", buf.String(), want)
	}

	buf.Reset()
	NewText(&buf, true).Render(b)
	if !strings.HasPrefix(buf.String(), ansiClear) {
		t.Fatalf("clearing renderer did not emit the clear sequence")
	}
}

func TestStrokeMustSeparateCells(t *testing.T) {
	s := DefaultStyle()
	s.StrokeWidth = 0
	if _, err := NewPainter(s, 3); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("zero stroke err = %v", err)
	}

	s.StrokeWidth = 1
	p, err := NewPainter(s, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := life.Seed(3, life.Point{X: 0, Y: 0})
	img, err := p.Image(b)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{15, 5, s.Alive},
		{16, 5, s.Stroke},
		{17, 5, s.Dead},
		{0, 5, s.Stroke},
		{5, 16, s.Stroke},
		{5, 17, s.Dead},
	}
	for _, tc := range cases {
		if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}
