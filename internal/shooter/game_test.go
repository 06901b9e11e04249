package shooter

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/input"
	"github.com/vovakirdan/space-shooter/internal/loop"
)

func newTestGame(t *testing.T) (*Game, *loop.ManualScheduler) {
	t.Helper()
	sched := loop.NewManualScheduler()
	g, err := NewGame(config.DefaultShooterConfig(), core.RuntimeConfig{Seed: 7}, sched)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, sched
}

func TestSurfaceSize(t *testing.T) {
	sc := config.DefaultShooterConfig().Surface
	tests := []struct {
		viewport int
		wantW    int
	}{
		{1920, 800},
		{840, 800},
		{600, 560},
		{20, 0},
	}
	for _, tt := range tests {
		w, h := SurfaceSize(tt.viewport, sc)
		if w != tt.wantW || h != 600 {
			t.Errorf("SurfaceSize(%d) = %dx%d, expected %dx600", tt.viewport, w, h, tt.wantW)
		}
	}
}

func TestGameStartWithoutSurface(t *testing.T) {
	g, sched := newTestGame(t)

	if g.Start() {
		t.Error("Start without a surface should fail")
	}
	if !g.Session().Idle() {
		t.Errorf("session = %+v, expected idle", g.Session())
	}
	if sched.Pending() != 0 {
		t.Error("no frame should be scheduled")
	}

	g.Attach(core.NewScreen(80, 24, 0, 600))
	if g.Start() {
		t.Error("Start with a zero-width surface should fail")
	}
}

func TestGameStartNeedsRoomForEntities(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		expect bool
	}{
		{"narrower than the ship", 20, 600, false},
		{"exactly one ship wide", 40, 600, true},
		{"shorter than the ship offset", 800, 60, false},
		{"default surface", 800, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, sched := newTestGame(t)
			g.Attach(core.NewScreen(8, 24, tt.w, tt.h))
			if got := g.Start(); got != tt.expect {
				t.Fatalf("Start() = %v, expected %v", got, tt.expect)
			}
			if !tt.expect && (sched.Pending() != 0 || !g.Session().Idle()) {
				t.Error("a refused start should leave the game idle")
			}
		})
	}
}

func TestGameRestartSpawnsNewEnemies(t *testing.T) {
	g, sched := newTestGame(t)
	g.Attach(core.NewScreen(80, 24, 800, 600))

	spawnX := func() float64 {
		t.Helper()
		if !g.Start() {
			t.Fatal("Start should succeed")
		}
		sched.Advance(1001)
		enemies := g.World().Enemies()
		if len(enemies) != 1 {
			t.Fatalf("enemies = %d after one second, expected 1", len(enemies))
		}
		return enemies[0].X
	}

	first := spawnX()
	second := spawnX()
	if first == second {
		t.Errorf("restart spawned the same first enemy at x = %v", first)
	}
}

func TestGameCollisionEndsSession(t *testing.T) {
	g, sched := newTestGame(t)
	g.Attach(core.NewScreen(80, 24, 800, 600))
	if !g.Start() {
		t.Fatal("Start should succeed with a surface")
	}

	p := g.World().Player()
	g.world.enemies = append(g.world.enemies, testEnemy(p.X, p.Y-3, 3, 1))

	sched.Advance(16)

	s := g.Session()
	if !s.Over || s.Started {
		t.Errorf("session = %+v, expected over", s)
	}
	if g.Phase() != loop.PhaseEnded {
		t.Errorf("phase = %v, expected ended", g.Phase())
	}
	if sched.Pending() != 0 {
		t.Errorf("pending frames = %d, expected 0", sched.Pending())
	}

	for i := 0; i < 5; i++ {
		g.world.Step(float64(i)*1000, noKeys)
	}
	if g.World().Score() != 0 {
		t.Errorf("score changed after game over: %d", g.World().Score())
	}
}

func TestGameRestartIsIdempotent(t *testing.T) {
	fresh, _ := newTestGame(t)
	fresh.Attach(core.NewScreen(80, 24, 800, 600))
	fresh.Start()

	g, sched := newTestGame(t)
	d := input.NewDispatcher()
	g.Mount(d)
	g.Attach(core.NewScreen(80, 24, 800, 600))
	g.Start()

	d.Dispatch(input.KeyDown, input.KeyArrowLeft)
	for now := 16.0; now < 3000; now += 16 {
		if int(now)%160 == 0 {
			d.Dispatch(input.KeyDown, input.KeySpace)
		}
		sched.Advance(now)
	}
	d.Dispatch(input.KeyUp, input.KeyArrowLeft)

	if !g.Start() {
		t.Fatal("restart should succeed")
	}

	w, fw := g.World(), fresh.World()
	if len(w.Bullets()) != len(fw.Bullets()) || len(w.Enemies()) != len(fw.Enemies()) {
		t.Errorf("restart left %d bullets, %d enemies", len(w.Bullets()), len(w.Enemies()))
	}
	if w.Player() != fw.Player() {
		t.Errorf("player = %+v, expected %+v", w.Player(), fw.Player())
	}
	if w.Score() != 0 || w.Spawned() != 0 {
		t.Errorf("score %d spawned %d after restart, expected 0", w.Score(), w.Spawned())
	}
	if g.Session() != (core.SessionState{Started: true}) {
		t.Errorf("session = %+v, expected started", g.Session())
	}
	if sched.Pending() != 1 {
		t.Errorf("pending frames = %d, expected 1", sched.Pending())
	}
}

func TestGameMountUnmount(t *testing.T) {
	g, sched := newTestGame(t)
	d := input.NewDispatcher()
	g.Attach(core.NewScreen(80, 24, 800, 600))

	g.Mount(d)
	g.Mount(d) // remount keeps a single subscription
	if d.Len() != 1 {
		t.Fatalf("listeners = %d, expected 1", d.Len())
	}

	g.Start()
	if !d.Dispatch(input.KeyDown, input.KeySpace) {
		t.Error("space should be consumed while mounted")
	}
	if len(g.World().Bullets()) != 1 {
		t.Errorf("bullets = %d, expected 1", len(g.World().Bullets()))
	}

	g.Unmount()
	if d.Len() != 0 {
		t.Errorf("listeners = %d after unmount, expected 0", d.Len())
	}
	if sched.Pending() != 0 {
		t.Error("unmount should cancel the pending frame")
	}
	if g.Session().Started {
		t.Error("unmount should end the running session")
	}
	if d.Dispatch(input.KeyDown, input.KeySpace) {
		t.Error("space should not be consumed after unmount")
	}
	if len(g.World().Bullets()) != 1 {
		t.Error("unmounted game should not react to keys")
	}

	g.Unmount() // idempotent
}

func TestGameOnChange(t *testing.T) {
	g, sched := newTestGame(t)
	g.Attach(core.NewScreen(80, 24, 800, 600))

	var states []core.SessionState
	g.OnChange(func(s core.SessionState) {
		states = append(states, s)
	})

	g.Start()
	g.world.enemies = append(g.world.enemies, testEnemy(380, 300, 0, 1))
	g.world.bullets = append(g.world.bullets, Bullet{
		GameObject: GameObject{X: 398, Y: 310, Width: 4, Height: 15, Speed: 8},
		Active:     true,
	})
	sched.Advance(16)
	sched.Advance(32) // nothing changes

	want := []core.SessionState{
		{Started: true},
		{Started: true, Score: 10},
	}
	if len(states) != len(want) {
		t.Fatalf("notifications = %+v, expected %+v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("notification %d = %+v, expected %+v", i, states[i], want[i])
		}
	}
}

func TestGameDrawsEveryFrame(t *testing.T) {
	g, sched := newTestGame(t)
	screen := core.NewScreen(80, 24, 800, 600)
	g.Attach(screen)
	g.Start()

	sched.Advance(16)

	// Score text is drawn at logical (20, 40), which is cell (2, 1).
	if got := []rune(screen.Row(1)); string(got[2:10]) != "Score: 0" {
		t.Errorf("row 1 = %q, expected the score at column 2", string(got))
	}
	bg := config.DefaultShooterConfig().Palette.Background
	if c := screen.Cell(79, 23); c.BG.Hex() != bg {
		t.Errorf("corner background = %s, expected %s", c.BG.Hex(), bg)
	}
}
