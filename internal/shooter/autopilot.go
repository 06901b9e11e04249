package shooter

import (
	"math"

	"github.com/vovakirdan/space-shooter/internal/input"
)

// Autopilot plays the game headlessly through the same key events a
// player would produce: it lines the ship up under the lowest enemy that
// is still above it, sidesteps enemies about to land on it, and fires
// while lined up.
type Autopilot struct {
	FireEvery int     // Frames between shots while lined up
	Tolerance float64 // Horizontal slack when lining up, in logical pixels
	DodgeGap  float64 // Vertical distance at which an enemy overhead triggers a sidestep

	frame int
	held  map[input.Key]bool
}

// NewAutopilot returns an autopilot with playable defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		FireEvery: 8,
		Tolerance: 4,
		DodgeGap:  90,
		held:      make(map[input.Key]bool),
	}
}

// Drive inspects w and dispatches the key events for the coming frame.
func (a *Autopilot) Drive(w *World, d *input.Dispatcher) {
	a.frame++
	if w.Over() {
		a.releaseAll(d)
		return
	}

	p := w.Player()
	pc := p.Center()
	left, right := false, false

	if threat, ok := a.threat(w, p); ok {
		// Step away from the threat's center, toward open space.
		width, _ := w.Size()
		goLeft := threat.Center().X > pc.X
		if goLeft && p.X-p.Speed < 0 {
			goLeft = false
		}
		if !goLeft && p.X+p.Width+p.Speed > width {
			goLeft = true
		}
		left, right = goLeft, !goLeft
	} else if target, ok := a.target(w, p); ok {
		dx := target.Center().X - pc.X
		left = dx < -a.Tolerance
		right = dx > a.Tolerance
		if !left && !right && a.FireEvery > 0 && a.frame%a.FireEvery == 0 {
			d.Dispatch(input.KeyDown, input.KeySpace)
			d.Dispatch(input.KeyUp, input.KeySpace)
		}
	}

	a.set(d, input.KeyArrowLeft, left)
	a.set(d, input.KeyArrowRight, right)
}

// target picks the lowest enemy still above the ship.
func (a *Autopilot) target(w *World, p Player) (Enemy, bool) {
	var best Enemy
	found := false
	bestY := math.Inf(-1)
	for _, e := range w.Enemies() {
		if !e.Active || e.Y+e.Height > p.Y {
			continue
		}
		if e.Y > bestY {
			best, bestY, found = e, e.Y, true
		}
	}
	return best, found
}

// threat returns an enemy that overlaps the ship's columns and is close above it.
func (a *Autopilot) threat(w *World, p Player) (Enemy, bool) {
	for _, e := range w.Enemies() {
		if !e.Active {
			continue
		}
		columns := e.X < p.X+p.Width && e.X+e.Width > p.X
		gap := p.Y - (e.Y + e.Height)
		if columns && gap >= -p.Height && gap < a.DodgeGap {
			return e, true
		}
	}
	return Enemy{}, false
}

func (a *Autopilot) set(d *input.Dispatcher, k input.Key, down bool) {
	if a.held[k] == down {
		return
	}
	a.held[k] = down
	if down {
		d.Dispatch(input.KeyDown, k)
	} else {
		d.Dispatch(input.KeyUp, k)
	}
}

func (a *Autopilot) releaseAll(d *input.Dispatcher) {
	for k, down := range a.held {
		if down {
			a.set(d, k, false)
		}
	}
}
