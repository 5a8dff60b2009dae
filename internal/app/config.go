package app

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
	rng "lifeboard/pkg/core"
	"lifeboard/internal/engine"
	"lifeboard/internal/render"
	"lifeboard/pkg/life"
)

const (
	minTickLength = 10 * time.Millisecond
	maxTickLength = 5 * time.Second
)

// Config represents the command-line parameters for the application.
type Config struct {
	File        string
	Span        int
	TickLength  time.Duration
	Density     float64
	Seed        int64
	CellLength  int
	StrokeWidth int
	HUD         bool
	Pattern     string
	BoardFile   string

	// initial is the board read from BoardFile.
	initial *life.Board
}

// fileConfig mirrors Config for JSON files. Absent keys keep their current value.
type fileConfig struct {
	Span        *int     `json:"span"`
	TickMS      *int     `json:"tick_ms"`
	Density     *float64 `json:"density"`
	Seed        *int64   `json:"seed"`
	CellLength  *int     `json:"cell"`
	StrokeWidth *int     `json:"stroke"`
	HUD         *bool    `json:"hud"`
	Pattern     *string  `json:"pattern"`
	BoardFile   *string  `json:"board"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	style := render.DefaultStyle()
	return &Config{
		Span:        life.DefaultSpan,
		TickLength:  core.DefaultTickLength,
		Density:     life.DefaultDensity,
		CellLength:  style.CellLength,
		StrokeWidth: style.StrokeWidth,
		HUD:         true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file; explicit flags win")
	fs.IntVar(&c.Span, "span", c.Span, "board side length in cells")
	fs.DurationVar(&c.TickLength, "tick", c.TickLength, "simulation tick length")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 picks one from the clock)")
	fs.IntVar(&c.CellLength, "cell", c.CellLength, "cell size in pixels including the separator")
	fs.IntVar(&c.StrokeWidth, "stroke", c.StrokeWidth, "separator line width in pixels")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter overlay")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a centered block, blinker or glider instead of a random fill")
	fs.StringVar(&c.BoardFile, "board", c.BoardFile, "start from a board file ('#' alive, '.' dead); its size sets -span")
}

// Resolve loads the config file named by -config, if any, then re-applies
// flags that were set explicitly so they take precedence over the file. A
// board file named by -board is read last.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.File != "" {
		if err := c.overlayFile(fs); err != nil {
			return err
		}
	}
	if c.BoardFile != "" {
		if err := c.LoadBoard(c.BoardFile); err != nil {
			return err
		}
	}
	return c.Validate()
}

func (c *Config) overlayFile(fs *flag.FlagSet) error {
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	for name, v := range explicit {
		if err := fs.Set(name, v); err != nil {
			return errors.Wrapf(err, "[Resolve] reapply -%s", name)
		}
	}
	return nil
}

// LoadBoard reads a starting board and adopts its span.
func (c *Config) LoadBoard(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadBoard] failed to read file: %s", path)
	}
	b, err := life.Parse(string(data))
	if err != nil {
		return errors.Wrapf(err, "[LoadBoard] failed to parse board: %s", path)
	}
	c.BoardFile = path
	c.Span = b.Span()
	c.initial = b
	return nil
}

// LoadFile overlays values from a JSON file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", path)
	}
	if fc.Span != nil {
		c.Span = *fc.Span
	}
	if fc.TickMS != nil {
		c.TickLength = time.Duration(*fc.TickMS) * time.Millisecond
	}
	if fc.Density != nil {
		c.Density = *fc.Density
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.CellLength != nil {
		c.CellLength = *fc.CellLength
	}
	if fc.StrokeWidth != nil {
		c.StrokeWidth = *fc.StrokeWidth
	}
	if fc.HUD != nil {
		c.HUD = *fc.HUD
	}
	if fc.Pattern != nil {
		c.Pattern = *fc.Pattern
	}
	if fc.BoardFile != nil {
		c.BoardFile = *fc.BoardFile
	}
	return nil
}

// Validate fails fast on values that would produce a degenerate board.
func (c *Config) Validate() error {
	if c.Span <= 0 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "span %d", c.Span)
	}
	if c.TickLength <= 0 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "tick length %v", c.TickLength)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "density %v outside [0,1]", c.Density)
	}
	if c.Pattern != "" {
		if _, ok := life.PatternNamed(c.Pattern); !ok {
			return errors.Wrapf(core.ErrInvalidConfiguration, "unknown pattern %q", c.Pattern)
		}
	}
	return c.Style().Validate()
}

// Style returns the render style with the configured geometry.
func (c *Config) Style() render.Style {
	s := render.DefaultStyle()
	s.CellLength = c.CellLength
	s.StrokeWidth = c.StrokeWidth
	return s
}

// ResolveSeed replaces a zero seed with one derived from the clock and
// returns the seed in use.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
		log.Printf("seed %d", c.Seed)
	}
	return c.Seed
}

// NewBoard builds the starting board: the loaded board file, else the
// configured pattern, else a random fill from seed.
func (c *Config) NewBoard(seed int64) (*life.Board, error) {
	if c.initial != nil {
		return c.initial, nil
	}
	if p, ok := life.PatternNamed(c.Pattern); ok {
		return life.Seed(c.Span, p.Centered(c.Span)...)
	}
	return life.Random(c.Span, c.Density, rng.NewRNG(seed))
}

// NewEngine builds an idle engine over a fresh random board.
func (c *Config) NewEngine(r engine.Renderer) (*engine.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	board, err := c.NewBoard(c.ResolveSeed())
	if err != nil {
		return nil, err
	}
	tracker, err := core.NewTracker(c.TickLength, 0)
	if err != nil {
		return nil, err
	}
	return engine.New(board, tracker, r)
}

// ScaleTick halves the tick length when faster is set and doubles it
// otherwise, clamped to a usable range.
func ScaleTick(d time.Duration, faster bool) time.Duration {
	if faster {
		d /= 2
	} else {
		d *= 2
	}
	return min(max(d, minTickLength), maxTickLength)
}
