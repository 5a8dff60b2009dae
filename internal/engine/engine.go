// Package engine drives a life board forward at a fixed tick rate and hands
// each finished frame to a renderer. The host calls Tick at its own cadence,
// typically once per display refresh.
package engine

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
	"lifeboard/pkg/life"
)

// State is the lifecycle position of an Engine.
type State int

const (
	// Idle engines have not been started.
	Idle State = iota
	// Running engines advance the board on Tick.
	Running
	// Stopped engines ignore Tick until started again.
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Renderer draws a complete board. It is called once per Tick.
type Renderer interface {
	Render(b *life.Board) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(b *life.Board) error

// Render calls f(b).
func (f RendererFunc) Render(b *life.Board) error { return f(b) }

// Engine owns the current board and the tick tracker. It is not safe for
// concurrent use.
type Engine struct {
	board    *life.Board
	tracker  *core.Tracker
	renderer Renderer

	state      State
	generation int
	lastRender time.Duration
}

// New returns an idle engine. The renderer may be nil.
func New(board *life.Board, tracker *core.Tracker, r Renderer) (*Engine, error) {
	if board == nil {
		return nil, errors.Wrap(core.ErrInvalidConfiguration, "engine needs a board")
	}
	if tracker == nil {
		return nil, errors.Wrap(core.ErrInvalidConfiguration, "engine needs a tracker")
	}
	return &Engine{board: board, tracker: tracker, renderer: r}, nil
}

// Start begins advancing the board from now. Time that passed before Start is
// not caught up.
func (e *Engine) Start(now time.Duration) {
	e.tracker.Anchor(now)
	e.state = Running
}

// Stop makes later Ticks no-ops until Start is called again.
func (e *Engine) Stop() {
	if e.state == Running {
		e.state = Stopped
	}
}

// Tick advances every generation due at now, then renders the resulting board
// once. It returns the number of generations applied.
func (e *Engine) Tick(now time.Duration) (int, error) {
	if e.state != Running {
		return 0, nil
	}
	due := e.tracker.TicksDue(now)
	for i := 0; i < due; i++ {
		e.tracker.Advance()
		e.advance()
	}
	if e.renderer != nil {
		if err := e.renderer.Render(e.board); err != nil {
			return due, errors.Wrapf(err, "render generation %d", e.generation)
		}
	}
	e.lastRender = now
	return due, nil
}

// Step advances exactly one generation without consulting the tracker.
func (e *Engine) Step() { e.advance() }

// advance swaps in the next generation only after it is fully built.
func (e *Engine) advance() {
	next := e.board.NextGeneration()
	e.board = next
	e.generation++
}

// Reset replaces the board and zeroes the generation counter.
func (e *Engine) Reset(b *life.Board) error {
	if b == nil {
		return errors.Wrap(core.ErrInvalidConfiguration, "reset with nil board")
	}
	e.board = b
	e.generation = 0
	return nil
}

// SetTickLength changes the simulation interval.
func (e *Engine) SetTickLength(d time.Duration) bool { return e.tracker.SetTickLength(d) }

// Board returns the current generation.
func (e *Engine) Board() *life.Board { return e.board }

// Generation returns how many generations have been applied since the last reset.
func (e *Engine) Generation() int { return e.generation }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// TickLength returns the simulation interval.
func (e *Engine) TickLength() time.Duration { return e.tracker.TickLength() }

// Parameters reports the engine readouts for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	b := e.board
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{
			{Key: "span", Label: "Span", Value: strconv.Itoa(b.Span())},
			{Key: "population", Label: "Population", Value: strconv.Itoa(b.Population())},
		}},
		{Name: "Engine", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: strconv.Itoa(e.generation)},
			{Key: "tick", Label: "Tick", Value: e.tracker.TickLength().String()},
			{Key: "state", Label: "State", Value: e.state.String()},
			{Key: "frame", Label: "Last frame", Value: e.lastRender.Round(time.Millisecond).String()},
		}},
	}}
}
