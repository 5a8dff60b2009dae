package life

import (
	"strings"

	"github.com/pkg/errors"

	"lifeboard/pkg/core"
)

// DefaultDensity is the probability that a cell starts alive on a random board.
const DefaultDensity = 0.3

const (
	aliveRune = '#'
	deadRune  = '.'
)

// NewBoardFunc builds a board whose cells are alive wherever fn returns true.
func NewBoardFunc(span int, fn func(Point) bool) (*Board, error) {
	if span <= 0 {
		return nil, errors.Wrapf(ErrInvalidSpan, "span %d", span)
	}
	b := blank(span)
	if fn == nil {
		return b, nil
	}
	for y, row := range b.cells {
		for x := range row {
			if fn(Point{X: x, Y: y}) {
				row[x].Live()
			}
		}
	}
	return b, nil
}

// NewBoard returns a board with every cell dead.
func NewBoard(span int) (*Board, error) {
	return NewBoardFunc(span, nil)
}

// Seed returns a board where exactly the given points are alive.
func Seed(span int, live ...Point) (*Board, error) {
	b, err := NewBoard(span)
	if err != nil {
		return nil, err
	}
	for _, p := range live {
		if !b.Contains(p) {
			return nil, errors.Wrapf(ErrOutOfRange, "seed %v on span %d", p, span)
		}
		b.cells[p.Y][p.X].Live()
	}
	return b, nil
}

// Random fills a board where each cell is independently alive with the given
// probability.
func Random(span int, density float64, rng *core.RNG) (*Board, error) {
	if rng == nil {
		return nil, errors.New("random board needs an rng")
	}
	return NewBoardFunc(span, func(Point) bool { return rng.Chance(density) })
}

// Parse reads the String form of a board: one line per row, '#' or 'O' for
// alive and '.' for dead. Blank lines are ignored and every row must be as
// long as the number of rows.
func Parse(s string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	span := len(rows)
	b, err := NewBoard(span)
	if err != nil {
		return nil, err
	}
	for y, line := range rows {
		if len(line) != span {
			return nil, errors.Errorf("row %d has %d cells, want %d", y, len(line), span)
		}
		for x, r := range line {
			switch r {
			case aliveRune, 'O':
				b.cells[y][x].Live()
			case deadRune:
			default:
				return nil, errors.Errorf("row %d col %d: unexpected %q", y, x, r)
			}
		}
	}
	return b, nil
}
