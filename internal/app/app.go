//go:build ebiten

package app

import (
	"log"
	"time"

	"lifeboard/internal/engine"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
	"lifeboard/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface. Ebiten plays the
// host scheduler: every Update hands the engine the time since the window
// opened.
type Game struct {
	cfg     *Config
	eng     *engine.Engine
	painter *render.Painter
	frame   []byte
	img     *ebiten.Image
	hud     *ui.HUD

	start  time.Time
	paused bool
}

// New constructs a Game from a validated configuration.
func New(cfg *Config) (*Game, error) {
	painter, err := render.NewPainter(cfg.Style(), cfg.Span)
	if err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, painter: painter, frame: painter.NewFrame()}
	b := painter.Bounds()
	g.img = ebiten.NewImage(b.Dx(), b.Dy())

	g.eng, err = cfg.NewEngine(g)
	if err != nil {
		return nil, err
	}
	g.hud = ui.NewHUD(g.eng, cfg.HUD)
	g.start = time.Now()
	// The first Tick renders, so nothing touches the image before RunGame.
	g.eng.Start(0)
	return g, nil
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) {
	b := g.painter.Bounds()
	return b.Dx(), b.Dy()
}

// Render paints a finished board into the offscreen image drawn by Draw.
func (g *Game) Render(b *life.Board) error {
	if err := g.painter.Paint(g.frame, b); err != nil {
		return err
	}
	g.img.WritePixels(g.frame)
	return nil
}

func (g *Game) now() time.Duration { return time.Since(g.start) }

// reset installs a fresh random board built from seed.
func (g *Game) reset(seed int64) error {
	g.cfg.Seed = seed
	b, err := g.cfg.NewBoard(seed)
	if err != nil {
		return err
	}
	if err := g.eng.Reset(b); err != nil {
		return err
	}
	log.Printf("reset with seed %d", seed)
	return g.Render(b)
}

// Update handles input and advances the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if g.paused {
			g.eng.Stop()
		} else {
			g.eng.Start(g.now())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused {
		g.eng.Step()
		if err := g.Render(g.eng.Board()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.eng.SetTickLength(ScaleTick(g.eng.TickLength(), true))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.eng.SetTickLength(ScaleTick(g.eng.TickLength(), false))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	if _, err := g.eng.Tick(g.now()); err != nil {
		return err
	}
	g.hud.Update()
	return nil
}

// Draw blits the last rendered board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
