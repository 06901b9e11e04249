package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/input"
	"github.com/vovakirdan/space-shooter/internal/loop"
)

// SurfaceSize returns the drawable size for a viewport width in logical pixels.
func SurfaceSize(viewportW int, sc config.SurfaceConfig) (width, height int) {
	return max(0, min(sc.MaxWidth, viewportW-sc.Margin)), sc.Height
}

// Game is the mountable shooter component. It wires the key tracker, the
// world, the renderer, and the frame driver together and reports session
// state to whoever hosts it.
//
// All methods must be called from the host's single event goroutine.
type Game struct {
	tracker  *input.Tracker
	world    *World
	renderer *Renderer
	driver   *loop.Driver

	surface  core.Surface
	minW     float64 // Narrowest surface every entity fits on
	minH     float64
	unlisten func()

	session  core.SessionState
	onChange func(core.SessionState)
}

// NewGame creates an unmounted game without a surface.
// Frames are requested from sched.
func NewGame(cfg config.ShooterConfig, rc core.RuntimeConfig, sched loop.Scheduler) (*Game, error) {
	palette, err := cfg.Palette.Colors()
	if err != nil {
		return nil, fmt.Errorf("shooter: %w", err)
	}

	g := &Game{
		world:    NewWorld(cfg, rc.Seed),
		renderer: NewRenderer(cfg, palette, rc.Seed+1),
		minW:     max(cfg.Player.Width, cfg.Enemy.Width),
		minH:     max(cfg.Player.BottomOffset, cfg.Player.Height),
	}
	g.tracker = input.NewTracker(input.WithFire(input.KeySpace, g.world.Fire))
	g.driver = loop.NewDriver(sched, frame{g})
	return g, nil
}

// Attach sets the surface drawn on. It takes effect on the next Start.
func (g *Game) Attach(s core.Surface) {
	g.surface = s
}

// Mount subscribes the game to key events. Mounting again moves the
// subscription to d.
func (g *Game) Mount(d *input.Dispatcher) {
	g.Unmount()
	g.unlisten = d.Listen(g.tracker.Handle)
}

// Unmount drops the key subscription and cancels any pending frame.
// Safe to call when not mounted.
func (g *Game) Unmount() {
	if g.unlisten != nil {
		g.unlisten()
		g.unlisten = nil
	}
	g.driver.Stop()
	if g.session.Started && g.driver.Phase() == loop.PhaseIdle {
		g.setSession(core.SessionState{Score: g.session.Score})
	}
}

// Start begins a new session, or restarts the current one.
// Returns false, leaving everything untouched, when no surface is attached
// or the surface is too small to hold the ship and an enemy.
func (g *Game) Start() bool {
	return g.driver.Start()
}

// Session returns the UI-facing session state.
func (g *Game) Session() core.SessionState {
	return g.session
}

// OnChange registers fn to be called whenever the session state changes.
func (g *Game) OnChange(fn func(core.SessionState)) {
	g.onChange = fn
}

// Phase returns the frame driver's state.
func (g *Game) Phase() loop.Phase {
	return g.driver.Phase()
}

// World exposes the simulation for read-only inspection.
func (g *Game) World() *World {
	return g.world
}

// Tracker returns the key state the simulation polls.
func (g *Game) Tracker() *input.Tracker {
	return g.tracker
}

func (g *Game) setSession(s core.SessionState) {
	if s == g.session {
		return
	}
	g.session = s
	if g.onChange != nil {
		g.onChange(s)
	}
}

// frame adapts Game to the driver.
type frame struct {
	g *Game
}

func (f frame) Ready() bool {
	s := f.g.surface
	return s != nil &&
		float64(s.Width()) >= f.g.minW &&
		float64(s.Height()) >= f.g.minH
}

func (f frame) Reset() {
	f.g.world.Reset(f.g.surface.Width(), f.g.surface.Height())
	f.g.setSession(core.SessionState{Started: true})
}

// Step simulates, then draws the resulting state.
func (f frame) Step(now float64) bool {
	g := f.g
	res := g.world.Step(now, g.tracker)
	g.renderer.Draw(g.surface, g.world)
	g.setSession(core.SessionState{
		Started: !res.Over,
		Over:    res.Over,
		Score:   g.world.Score(),
	})
	return res.Over
}
