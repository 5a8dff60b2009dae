package core

import (
	"time"

	"github.com/pkg/errors"
)

// DefaultTickLength is the simulation interval used when none is configured.
const DefaultTickLength = 100 * time.Millisecond

// ErrInvalidConfiguration reports a construction-time value that would leave
// the simulation degenerate.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Tracker decides how many fixed-length simulation ticks a frame owes. Times
// are host timestamps measured from an arbitrary epoch, such as the time since
// the window opened.
type Tracker struct {
	lastTick   time.Duration
	tickLength time.Duration
}

// NewTracker returns a Tracker whose last simulated tick happened at lastTick.
func NewTracker(tickLength, lastTick time.Duration) (*Tracker, error) {
	if tickLength <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "tick length %v", tickLength)
	}
	return &Tracker{lastTick: lastTick, tickLength: tickLength}, nil
}

// TicksDue returns floor((now - lastTick) / tickLength), or 0 when now is
// before the last tick. It does not change the tracker.
func (t *Tracker) TicksDue(now time.Duration) int {
	if now < t.lastTick {
		return 0
	}
	return int((now - t.lastTick) / t.tickLength)
}

// Advance records one simulated tick.
func (t *Tracker) Advance() { t.lastTick += t.tickLength }

// Anchor moves the last tick to now, dropping any backlog.
func (t *Tracker) Anchor(now time.Duration) { t.lastTick = now }

// LastTick returns the time of the last simulated tick.
func (t *Tracker) LastTick() time.Duration { return t.lastTick }

// TickLength returns the simulation interval.
func (t *Tracker) TickLength() time.Duration { return t.tickLength }

// SetTickLength changes the interval. Non-positive values are rejected.
func (t *Tracker) SetTickLength(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	t.tickLength = d
	return true
}
