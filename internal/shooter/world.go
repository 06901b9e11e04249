package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/input"
)

// Movement bindings. Either key of a pair moves the ship.
var (
	LeftKeys  = []input.Key{input.KeyArrowLeft, input.KeyA}
	RightKeys = []input.Key{input.KeyArrowRight, input.KeyD}
	UpKeys    = []input.Key{input.KeyArrowUp, input.KeyW}
	DownKeys  = []input.Key{input.KeyArrowDown, input.KeyS}
)

// Controls is the held-key state polled once per frame.
// *input.Tracker implements it.
type Controls interface {
	AnyPressed(keys ...input.Key) bool
}

// StepResult summarizes one frame.
type StepResult struct {
	Spawned bool // An enemy entered this frame
	Kills   int  // Enemies destroyed this frame
	Over    bool // The player was hit; the session has ended
}

// World owns every entity of a session and advances them frame by frame.
type World struct {
	cfg config.ShooterConfig
	rng *rand.Rand

	width, height float64
	started       bool

	player  Player
	bullets []Bullet
	enemies []Enemy
	bursts  []core.Point // Centers of enemies destroyed during the last frame

	lastSpawn float64
	spawned   int
	score     int
	over      bool
	frames    uint64
}

// NewWorld creates an empty world. Enemy placement and speed come from a
// random source seeded with seed, so equal seeds and inputs replay equally.
// The source keeps running across resets: each session continues the
// sequence instead of replaying it.
func NewWorld(cfg config.ShooterConfig, seed int64) *World {
	return &World{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Reset starts a fresh session on a surface of the given size: the ship is
// centered horizontally near the bottom, collections are empty, and the
// spawn timer and score are zero.
func (w *World) Reset(width, height int) {
	w.width = float64(width)
	w.height = float64(height)

	pc := w.cfg.Player
	w.player = Player{GameObject{
		X:      w.width/2 - pc.Width/2,
		Y:      w.height - pc.BottomOffset,
		Width:  pc.Width,
		Height: pc.Height,
		Speed:  pc.Speed,
	}}

	w.bullets = w.bullets[:0]
	w.enemies = w.enemies[:0]
	w.bursts = w.bursts[:0]
	w.lastSpawn = 0
	w.spawned = 0
	w.score = 0
	w.over = false
	w.frames = 0
	w.started = true
}

// Fire spawns a bullet at the ship's muzzle. Ignored outside a running session.
func (w *World) Fire() {
	if !w.started || w.over {
		return
	}

	bc := w.cfg.Bullet
	p := w.player
	w.bullets = append(w.bullets, Bullet{
		GameObject: GameObject{
			X:      p.X + p.Width/2 - bc.Width/2,
			Y:      p.Y,
			Width:  bc.Width,
			Height: bc.Height,
			Speed:  bc.Speed,
		},
		Active: true,
	})
}

// Step advances the world by one frame at timestamp now (milliseconds).
// Once the player has been hit, Step does nothing.
func (w *World) Step(now float64, keys Controls) StepResult {
	var res StepResult
	if !w.started || w.over {
		res.Over = w.over
		return res
	}

	w.frames++
	w.bursts = w.bursts[:0]

	w.movePlayer(keys)
	w.advanceBullets()

	if now-w.lastSpawn > w.cfg.Enemy.SpawnIntervalMs {
		w.spawnEnemy()
		w.lastSpawn = now
		res.Spawned = true
	}

	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Active {
			continue
		}

		e.Y += e.Speed
		if e.Y > w.height {
			e.Active = false
			continue
		}

		if core.Overlaps(w.player, e) {
			e.Active = false
			w.over = true
			res.Over = true
			return res
		}

		res.Kills += w.hitEnemy(e)
	}

	w.bullets = compactBullets(w.bullets)
	w.enemies = compactEnemies(w.enemies)
	return res
}

// movePlayer applies held directions in order left, right, up, down,
// clamping after each. Diagonals are additive.
func (w *World) movePlayer(keys Controls) {
	p := &w.player
	maxX := w.width - p.Width
	maxY := w.height - p.Height

	if keys.AnyPressed(LeftKeys...) {
		p.X = core.Clamp(p.X-p.Speed, 0, maxX)
	}
	if keys.AnyPressed(RightKeys...) {
		p.X = core.Clamp(p.X+p.Speed, 0, maxX)
	}
	if keys.AnyPressed(UpKeys...) {
		p.Y = core.Clamp(p.Y-p.Speed, 0, maxY)
	}
	if keys.AnyPressed(DownKeys...) {
		p.Y = core.Clamp(p.Y+p.Speed, 0, maxY)
	}
}

// advanceBullets moves bullets up and retires those fully above the top edge.
func (w *World) advanceBullets() {
	for i := range w.bullets {
		b := &w.bullets[i]
		if !b.Active {
			continue
		}
		b.Y -= b.Speed
		if b.Y < -b.Height {
			b.Active = false
		}
	}
}

// spawnEnemy adds one enemy just above the top edge at a random column.
func (w *World) spawnEnemy() {
	ec := w.cfg.Enemy
	x := w.rng.Float64() * (w.width - ec.Width)
	speed := ec.MinSpeed + w.rng.Float64()*(ec.MaxSpeed-ec.MinSpeed)

	w.enemies = append(w.enemies, Enemy{
		GameObject: GameObject{
			X:      x,
			Y:      -ec.Height,
			Width:  ec.Width,
			Height: ec.Height,
			Speed:  speed,
		},
		Active: true,
		HP:     ec.HP,
	})
	w.spawned++
}

// hitEnemy tests e against every live bullet. Each hit consumes the bullet
// and one HP. Returns 1 if the enemy was destroyed.
func (w *World) hitEnemy(e *Enemy) int {
	for j := range w.bullets {
		b := &w.bullets[j]
		if !b.Active || !e.Active {
			continue
		}
		if !core.Overlaps(b, e) {
			continue
		}

		b.Active = false
		e.HP--
		if e.HP <= 0 {
			e.Active = false
			w.score += w.cfg.Scoring.PerKill
			w.bursts = append(w.bursts, e.Center())
			return 1
		}
	}
	return 0
}

func compactBullets(bullets []Bullet) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	return kept
}

func compactEnemies(enemies []Enemy) []Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if e.Active {
			kept = append(kept, e)
		}
	}
	return kept
}

// Size returns the surface size the session was reset with.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Player returns a copy of the ship.
func (w *World) Player() Player {
	return w.player
}

// Bullets returns the live bullets. The slice is owned by the world and
// only valid until the next Step or Fire.
func (w *World) Bullets() []Bullet {
	return w.bullets
}

// Enemies returns the live enemies, with the same ownership as Bullets.
func (w *World) Enemies() []Enemy {
	return w.enemies
}

// Bursts returns the centers of enemies destroyed during the last frame.
func (w *World) Bursts() []core.Point {
	return w.bursts
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Over reports whether the player has been hit.
func (w *World) Over() bool {
	return w.over
}

// Spawned returns the number of enemies spawned this session.
func (w *World) Spawned() int {
	return w.spawned
}

// Frames returns the number of frames stepped this session.
func (w *World) Frames() uint64 {
	return w.frames
}
