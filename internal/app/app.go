//go:build ebiten

package app

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"wildfire/internal/core"
	"wildfire/internal/render"
	"wildfire/internal/sims/wildfire"
	"wildfire/internal/ui"
)

// Game adapts a wildfire run to the ebiten.Game interface.
type Game struct {
	ctx      context.Context
	sim      core.Sim
	world    *wildfire.World
	ctrl     *wildfire.Controller
	reporter wildfire.Reporter
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	step     *core.FixedStep
	opts     Options

	paused   bool
	tickOnce bool
	seed     int64
	err      error
}

// New constructs a Game for w. Every cycle is also handed to r, which may be
// nil. The window closes once ctx is done.
func New(ctx context.Context, w *wildfire.World, r wildfire.Reporter, opts Options) *Game {
	opts = opts.normalized()
	size := w.Size()
	g := &Game{
		ctx:      ctx,
		sim:      w,
		world:    w,
		reporter: r,
		painter:  render.NewGridPainter(size.W, size.H, wildfire.Palette()),
		hud:      ui.NewHUD(w, opts.HUDWidth),
		overlay:  ui.NewOverlay(w, size.W, opts.Scale),
		step:     core.NewFixedStep(opts.TPS),
		opts:     opts,
		seed:     w.Config().Seed,
	}
	g.ctrl = wildfire.NewController(w, opts.Budget, r)
	g.err = g.ctrl.Begin()
	return g
}

// Reset restarts the run with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	resetReporter(g.reporter)
	g.world.Reset(seed)
	g.ctrl = wildfire.NewController(g.world, g.opts.Budget, g.reporter)
	g.err = g.ctrl.Begin()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation at the
// configured cycle rate.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if closing(g.ctx) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.ctrl.Status())

	due := g.step.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		if err := g.ctrl.Tick(); err != nil {
			g.err = err
			return err
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.opts.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.opts.Scale, g.opts.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.opts.Scale + g.opts.HUDWidth, s.H * g.opts.Scale
}

// Run opens a window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, w *wildfire.World, r wildfire.Reporter, opts Options) error {
	game := New(ctx, w, r, opts)
	opts = game.opts
	size := w.Size()

	ebiten.SetWindowTitle("wildfire")
	ebiten.SetWindowSize(size.W*opts.Scale+opts.HUDWidth, size.H*opts.Scale)
	logrus.Infof("opening %dx%d window at %d cycles/s", size.W, size.H, opts.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
