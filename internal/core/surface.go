package core

// Surface is a 2D drawable rectangle measured in logical pixels.
// The renderer draws onto it every frame; implementations decide how logical
// pixels map onto the physical display.
type Surface interface {
	// Width and Height return the surface size in logical pixels.
	Width() int
	Height() int

	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)

	// FillPolygon fills a closed path through the given points.
	FillPolygon(pts []Point, c Color)

	// FillCircle fills a full circular arc.
	FillCircle(cx, cy, radius float64, c Color)

	// FillText draws text with its baseline-left corner at (x, y).
	FillText(x, y float64, text string, c Color)

	// SetGlow sets the blur applied to subsequent fills. Zero disables it.
	SetGlow(blur float64, c Color)
}
