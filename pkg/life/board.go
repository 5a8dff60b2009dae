package life

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DefaultSpan is the side length used when no span is configured.
const DefaultSpan = 60

// neighborhood lists the eight Moore offsets, row by row.
var neighborhood = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a square toroidal grid holding one generation. Cells are stored
// row-major as cells[y][x]. A Board returned by this package is never mutated
// afterwards; every step produces a new Board.
type Board struct {
	span  int
	cells [][]Cell
}

// blank allocates a board with every cell dead.
func blank(span int) *Board {
	cells := make([][]Cell, span)
	for y := range cells {
		row := make([]Cell, span)
		for x := range row {
			row[x] = Cell{pos: Point{X: x, Y: y}}
		}
		cells[y] = row
	}
	return &Board{span: span, cells: cells}
}

// Span returns the side length of the board.
func (b *Board) Span() int { return b.span }

// Contains reports whether p addresses a cell on the board without wrapping.
func (b *Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.span && p.Y >= 0 && p.Y < b.span
}

// CellAt returns the cell at p. Coordinates are not wrapped.
func (b *Board) CellAt(p Point) (Cell, error) {
	if !b.Contains(p) {
		return Cell{}, errors.Wrapf(ErrOutOfRange, "cell %v on span %d", p, b.span)
	}
	return b.cells[p.Y][p.X], nil
}

// wrap applies toroidal wrapping to a single coordinate.
func (b *Board) wrap(v int) int {
	return (v%b.span + b.span) % b.span
}

func (b *Board) neighbors(x, y int) int {
	n := 0
	for _, d := range neighborhood {
		if b.cells[b.wrap(y+d.Y)][b.wrap(x+d.X)].alive {
			n++
		}
	}
	return n
}

// CountLiveNeighbors counts the live cells in the Moore neighborhood of p,
// wrapping across the board edges. The center itself must be on the board.
func (b *Board) CountLiveNeighbors(p Point) (int, error) {
	if !b.Contains(p) {
		return 0, errors.Wrapf(ErrOutOfRange, "neighbors of %v on span %d", p, b.span)
	}
	return b.neighbors(p.X, p.Y), nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.span)
	for y, row := range b.cells {
		cp := make([]Cell, len(row))
		for x, c := range row {
			cp[x] = c.Clone()
		}
		cells[y] = cp
	}
	return &Board{span: b.span, cells: cells}
}

// NextGeneration returns the board that follows b. Neighbor counts are read
// from b only and results are written to the returned board only.
func (b *Board) NextGeneration() *Board {
	next := b.Clone()
	for y, row := range b.cells {
		for x, c := range row {
			cell := &next.cells[y][x]
			if Next(c.alive, b.neighbors(x, y)) {
				cell.Live()
			} else {
				cell.Die()
			}
		}
	}
	return next
}

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(Cell)) {
	for _, row := range b.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	b.Each(func(c Cell) {
		if c.alive {
			n++
		}
	})
	return n
}

// Equal reports whether both boards have the same span and alive flags.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.span != o.span {
		return false
	}
	for y, row := range b.cells {
		for x, c := range row {
			if o.cells[y][x].alive != c.alive {
				return false
			}
		}
	}
	return true
}

// Fingerprint returns a hex digest of the alive bitmap, suitable for cycle
// detection across generations.
func (b *Board) Fingerprint() string {
	h := md5.New()
	row := make([]byte, b.span)
	for _, cells := range b.cells {
		for x, c := range cells {
			row[x] = 0
			if c.alive {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the board one row per line, '#' for alive and '.' for dead.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.span * (b.span + 1))
	for _, row := range b.cells {
		for _, c := range row {
			if c.alive {
				sb.WriteByte(aliveRune)
			} else {
				sb.WriteByte(deadRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
