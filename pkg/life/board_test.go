package life

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"lifeboard/pkg/core"
)

func mustSeed(t testing.TB, span int, live ...Point) *Board {
	t.Helper()
	b, err := Seed(span, live...)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return b
}

func expectAlive(t *testing.T, b *Board, live []Point) {
	t.Helper()
	want := make(map[Point]bool, len(live))
	for _, p := range live {
		want[p] = true
	}
	b.Each(func(c Cell) {
		if c.Alive() != want[c.Point()] {
			t.Fatalf("cell %v alive=%v, expected %v\n%s", c.Point(), c.Alive(), want[c.Point()], b)
		}
	})
}

func TestNeighborsWrapAcrossCorners(t *testing.T) {
	b := mustSeed(t, 10, Point{0, 0})
	n, err := b.CountLiveNeighbors(Point{9, 9})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("(9,9) has %d live neighbors, expected 1", n)
	}
	for _, p := range []Point{{9, 0}, {0, 9}, {1, 9}, {9, 1}} {
		if n, _ := b.CountLiveNeighbors(p); n != 1 {
			t.Fatalf("%v has %d live neighbors, expected 1", p, n)
		}
	}
	if n, _ := b.CountLiveNeighbors(Point{5, 5}); n != 0 {
		t.Fatalf("interior cell sees %d live neighbors, expected 0", n)
	}
}

func TestNeighborsBounded(t *testing.T) {
	full, err := NewBoardFunc(5, func(Point) bool { return true })
	if err != nil {
		t.Fatal(err)
	}
	empty, _ := NewBoard(5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if n, _ := full.CountLiveNeighbors(Point{x, y}); n != 8 {
				t.Fatalf("full board (%d,%d) = %d neighbors", x, y, n)
			}
			if n, _ := empty.CountLiveNeighbors(Point{x, y}); n != 0 {
				t.Fatalf("empty board (%d,%d) = %d neighbors", x, y, n)
			}
		}
	}
}

func TestOutOfRange(t *testing.T) {
	b, _ := NewBoard(10)
	for _, p := range []Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {10, 10}} {
		if _, err := b.CellAt(p); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("CellAt(%v) err = %v, expected ErrOutOfRange", p, err)
		}
		if _, err := b.CountLiveNeighbors(p); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("CountLiveNeighbors(%v) err = %v, expected ErrOutOfRange", p, err)
		}
	}
	c, err := b.CellAt(Point{9, 9})
	if err != nil {
		t.Fatalf("CellAt(9,9): %v", err)
	}
	if c.Point() != (Point{9, 9}) {
		t.Fatalf("cell reports position %v", c.Point())
	}
	if _, err := Seed(4, Point{4, 0}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("seeding off the board err = %v", err)
	}
}

func TestInvalidSpan(t *testing.T) {
	for _, span := range []int{0, -3} {
		if _, err := NewBoard(span); !errors.Is(err, ErrInvalidSpan) {
			t.Fatalf("NewBoard(%d) err = %v", span, err)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := mustSeed(t, 6, Point{1, 1})
	c := b.Clone()
	if !c.Equal(b) {
		t.Fatalf("clone differs from source")
	}
	c.cells[0][0].Live()
	c.cells[1][1].Die()
	if b.cells[0][0].Alive() || !b.cells[1][1].Alive() {
		t.Fatalf("mutating the clone changed the source:\n%s", b)
	}
	if c.cells[2][3].Point() != (Point{3, 2}) {
		t.Fatalf("clone cell position = %v", c.cells[2][3].Point())
	}
}

func TestNextGenerationIsPure(t *testing.T) {
	b, err := Random(20, DefaultDensity, core.NewRNG(99))
	if err != nil {
		t.Fatal(err)
	}
	before := b.String()
	first := b.NextGeneration()
	second := b.NextGeneration()
	if !first.Equal(second) {
		t.Fatalf("two generations from the same board differ")
	}
	if b.String() != before {
		t.Fatalf("NextGeneration mutated its receiver")
	}
	if first == b {
		t.Fatalf("NextGeneration returned its receiver")
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	b, _ := NewBoard(12)
	next := b.NextGeneration()
	if next.Population() != 0 {
		t.Fatalf("empty board produced %d live cells", next.Population())
	}
}

func TestBlockStillLife(t *testing.T) {
	live := Block.At(Point{5, 5})
	b := mustSeed(t, 10, live...)
	for _, p := range live {
		if n, _ := b.CountLiveNeighbors(p); n != 3 {
			t.Fatalf("block cell %v has %d neighbors, expected 3", p, n)
		}
	}
	expectAlive(t, b.NextGeneration(), live)
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := Blinker.At(Point{4, 5})
	b := mustSeed(t, 10, horizontal...)

	b = b.NextGeneration()
	expectAlive(t, b, []Point{{5, 4}, {5, 5}, {5, 6}})

	b = b.NextGeneration()
	expectAlive(t, b, horizontal)
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	b := mustSeed(t, 8, Glider.At(Point{4, 4})...)
	for i := 0; i < 12; i++ {
		b = b.NextGeneration()
	}
	// Glider.At(7,7) reduced modulo 8.
	expectAlive(t, b, []Point{{0, 7}, {1, 0}, {7, 1}, {0, 1}, {1, 1}})
	if b.Population() != len(Glider) {
		t.Fatalf("glider population = %d", b.Population())
	}
}

func TestRandomIsReproducible(t *testing.T) {
	a, _ := Random(DefaultSpan, DefaultDensity, core.NewRNG(42))
	b, _ := Random(DefaultSpan, DefaultDensity, core.NewRNG(42))
	if !a.Equal(b) || a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("equal seeds produced different boards")
	}
	total := DefaultSpan * DefaultSpan
	pop := a.Population()
	if pop < total/5 || pop > total*2/5 {
		t.Fatalf("population %d is far from density %.1f of %d", pop, DefaultDensity, total)
	}
	if _, err := Random(10, 0.5, nil); err == nil {
		t.Fatalf("expected an error without an rng")
	}
}

func TestParseRoundTrip(t *testing.T) {
	src := `
		.#..
		..#.
		###.
		....
	`
	b, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Span() != 4 || b.Population() != 5 {
		t.Fatalf("span=%d population=%d", b.Span(), b.Population())
	}
	again, err := Parse(b.String())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !again.Equal(b) {
		t.Fatalf("round trip changed the board:\n%s\n%s", b, again)
	}
	if _, err := Parse("#.\n#"); err == nil {
		t.Fatalf("expected ragged input to fail")
	}
	if _, err := Parse("#x\n.."); err == nil {
		t.Fatalf("expected unknown rune to fail")
	}
}

func TestCellLifecycle(t *testing.T) {
	c := Cell{pos: Point{2, 3}}
	d := c.Clone()
	d.Live()
	if c.Alive() || !d.Alive() {
		t.Fatalf("clone shares state with its source")
	}
	d.Die()
	if d.Alive() {
		t.Fatalf("Die left the cell alive")
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Next(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("live with %d neighbors -> %v", n, got)
		}
		if got, want := Next(false, n), n == 3; got != want {
			t.Fatalf("dead with %d neighbors -> %v", n, got)
		}
	}
}

func BenchmarkNextGeneration(b *testing.B) {
	for _, span := range []int{16, DefaultSpan, 256} {
		board, _ := Random(span, DefaultDensity, core.NewRNG(1))
		b.Run(fmt.Sprintf("%dx%d", span, span), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				board = board.NextGeneration()
			}
		})
	}
}
