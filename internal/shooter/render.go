package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Renderer draws a World onto a Surface. It never mutates the world.
// The starfield is regenerated every frame from the renderer's own random
// source, so it has no effect on the simulation.
type Renderer struct {
	fx      config.EffectsConfig
	hud     config.HUDConfig
	notch   float64
	palette config.Palette
	stars   *rand.Rand
}

// NewRenderer creates a renderer. starSeed only affects the starfield.
func NewRenderer(cfg config.ShooterConfig, palette config.Palette, starSeed int64) *Renderer {
	return &Renderer{
		fx:      cfg.Effects,
		hud:     cfg.HUD,
		notch:   cfg.Player.NotchDepth,
		palette: palette,
		stars:   rand.New(rand.NewSource(starSeed)),
	}
}

// Draw paints one frame: background, stars, ship, bullets, enemies, bursts
// and the score, in that order.
func (r *Renderer) Draw(dst core.Surface, w *World) {
	width := float64(dst.Width())
	height := float64(dst.Height())

	dst.SetGlow(0, core.Color{})
	dst.FillRect(core.NewRect(0, 0, width, height), r.palette.Background)

	for i := 0; i < r.fx.Stars; i++ {
		x := r.stars.Float64() * width
		y := r.stars.Float64() * height
		alpha := r.stars.Float64() * r.fx.StarMaxAlpha
		dst.FillRect(core.NewRect(x, y, r.fx.StarSize, r.fx.StarSize), r.palette.Star.WithAlpha(alpha))
	}

	if !w.started {
		r.drawScore(dst, w.Score())
		return
	}

	dst.SetGlow(r.fx.PlayerGlow, r.palette.Player)
	dst.FillPolygon(r.shipOutline(w.player), r.palette.Player)

	dst.SetGlow(r.fx.BulletGlow, r.palette.Bullet)
	for _, b := range w.bullets {
		if b.Active {
			dst.FillRect(b.Bounds(), r.palette.Bullet)
		}
	}

	dst.SetGlow(r.fx.EnemyGlow, r.palette.Enemy)
	for _, e := range w.enemies {
		if e.Active {
			dst.FillRect(e.Bounds(), r.palette.Enemy)
		}
	}

	dst.SetGlow(r.fx.BurstGlow, r.palette.Burst)
	for _, c := range w.bursts {
		dst.FillCircle(c.X, c.Y, r.fx.BurstRadius, r.palette.Burst)
	}

	dst.SetGlow(0, core.Color{})
	r.drawScore(dst, w.Score())
}

// shipOutline is an arrowhead pointing up with a notch in its tail.
func (r *Renderer) shipOutline(p Player) []core.Point {
	return []core.Point{
		{X: p.X + p.Width/2, Y: p.Y},
		{X: p.X, Y: p.Y + p.Height},
		{X: p.X + p.Width/2, Y: p.Y + p.Height - r.notch},
		{X: p.X + p.Width, Y: p.Y + p.Height},
	}
}

func (r *Renderer) drawScore(dst core.Surface, score int) {
	dst.FillText(r.hud.ScoreX, r.hud.ScoreY, fmt.Sprintf("%s: %d", r.hud.ScoreLabel, score), r.palette.Text)
}
