// Package shooter implements the space shooter: a player ship at the bottom of
// the surface fires upward at enemies falling from the top.
package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// GameObject is the shape shared by every simulated entity.
// Width and Height are positive and never change after creation.
type GameObject struct {
	X, Y          float64 // Top-left corner in logical pixels
	Width, Height float64
	Speed         float64 // Logical pixels per frame
}

// Bounds returns the collision box.
func (o GameObject) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Center returns the center of the collision box.
func (o GameObject) Center() core.Point {
	return o.Bounds().Center()
}

// Player is the ship steered by the movement keys.
type Player struct {
	GameObject
}

// Bullet is a player projectile moving up.
type Bullet struct {
	GameObject
	Active bool
}

// Enemy falls from above the surface. It is destroyed once HP reaches zero.
type Enemy struct {
	GameObject
	Active bool
	HP     int
}
