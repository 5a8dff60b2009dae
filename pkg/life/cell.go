package life

import "fmt"

// Point is a board coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String formats the point as (x,y).
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Add returns the point offset by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Cell is a single board position with an alive flag.
type Cell struct {
	pos   Point
	alive bool
}

// Point returns the cell position.
func (c Cell) Point() Point { return c.pos }

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c.alive }

// Clone returns an independent copy of the cell.
func (c Cell) Clone() Cell { return Cell{pos: c.pos, alive: c.alive} }

// Live marks the cell alive.
func (c *Cell) Live() { c.alive = true }

// Die marks the cell dead.
func (c *Cell) Die() { c.alive = false }
