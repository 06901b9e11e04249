package core

import (
	"math"
	"slices"
	"strings"
)

// Glyphs used when a shape is smaller than one cell.
const (
	DotOpaque      = '•'
	DotTranslucent = '·'
	DotPolygon     = '▲'
	DotCircle      = '*'
)

// Cell is one terminal character cell.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Bold bool
}

var blankCell = Cell{Rune: ' '}

// Screen is a terminal cell buffer that implements Surface.
// Shapes are given in logical pixels and scaled onto the cell grid: a cell is
// covered when its center lies inside the shape. Shapes too small to cover any
// cell center are drawn as a single glyph at their center.
type Screen struct {
	cols     int
	rows     int
	logicalW int
	logicalH int
	cells    []Cell
	glow     float64
}

// NewScreen creates a cols x rows buffer that represents a logicalW x logicalH surface.
func NewScreen(cols, rows, logicalW, logicalH int) *Screen {
	s := &Screen{
		cols:     max(cols, 0),
		rows:     max(rows, 0),
		logicalW: logicalW,
		logicalH: logicalH,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([]Cell, s.cols*s.rows)
}

// Width returns the logical width in pixels.
func (s *Screen) Width() int {
	return s.logicalW
}

// Height returns the logical height in pixels.
func (s *Screen) Height() int {
	return s.logicalH
}

// Cols returns the grid width in cells.
func (s *Screen) Cols() int {
	return s.cols
}

// Rows returns the grid height in cells.
func (s *Screen) Rows() int {
	return s.rows
}

// SetLogicalSize changes the logical surface the grid represents.
func (s *Screen) SetLogicalSize(w, h int) {
	s.logicalW = w
	s.logicalH = h
}

// Resize changes the grid dimensions, preserving content where possible.
func (s *Screen) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == s.cols && rows == s.rows {
		return
	}

	oldCells := s.cells
	oldCols, oldRows := s.cols, s.rows

	s.cols = cols
	s.rows = rows
	s.allocate()
	s.Clear()

	copyW := min(oldCols, cols)
	copyH := min(oldRows, rows)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y*cols:y*cols+copyW], oldCells[y*oldCols:y*oldCols+copyW])
	}
}

// Clear resets every cell to a blank with default colors.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
	s.glow = 0
}

// Clone returns an independent copy of the screen.
func (s *Screen) Clone() *Screen {
	c := *s
	c.cells = slices.Clone(s.cells)
	return &c
}

// Cell returns the cell at (col, row). Out-of-bounds returns a blank cell.
func (s *Screen) Cell(col, row int) Cell {
	if !s.inBounds(col, row) {
		return blankCell
	}
	return s.cells[row*s.cols+col]
}

// SetCell replaces the cell at (col, row). Out-of-bounds writes are ignored.
func (s *Screen) SetCell(col, row int, c Cell) {
	if !s.inBounds(col, row) {
		return
	}
	s.cells[row*s.cols+col] = c
}

func (s *Screen) inBounds(col, row int) bool {
	return col >= 0 && col < s.cols && row >= 0 && row < s.rows
}

// scale returns cells per logical pixel along each axis.
func (s *Screen) scale() (sx, sy float64, ok bool) {
	if s.logicalW <= 0 || s.logicalH <= 0 || s.cols == 0 || s.rows == 0 {
		return 0, 0, false
	}
	return float64(s.cols) / float64(s.logicalW), float64(s.rows) / float64(s.logicalH), true
}

// span returns the cell range [a, b) whose centers fall inside [lo, hi).
func span(lo, hi, scale float64) (int, int) {
	a := int(math.Ceil(lo*scale - 0.5))
	b := int(math.Ceil(hi*scale - 0.5))
	return a, b
}

// cellCenter returns the logical position of the center of a cell.
func (s *Screen) cellCenter(col, row int, sx, sy float64) Point {
	return Point{X: (float64(col) + 0.5) / sx, Y: (float64(row) + 0.5) / sy}
}

// paint covers a whole cell with color.
func (s *Screen) paint(col, row int, c Color) {
	if !s.inBounds(col, row) {
		return
	}
	cell := &s.cells[row*s.cols+col]
	cell.BG = c.Over(cell.BG)
	cell.Rune = ' '
	cell.FG = Color{}
	cell.Bold = s.glow > 0
}

// dot draws a sub-cell shape as a glyph at logical point p.
func (s *Screen) dot(p Point, c Color, r rune, sx, sy float64) {
	if p.X < 0 || p.Y < 0 || p.X >= float64(s.logicalW) || p.Y >= float64(s.logicalH) {
		return
	}
	col, row := floorInt(p.X*sx), floorInt(p.Y*sy)
	if !s.inBounds(col, row) {
		return
	}
	cell := &s.cells[row*s.cols+col]
	if c.A < 255 && r == DotOpaque {
		r = DotTranslucent
	}
	cell.Rune = r
	cell.FG = c.Over(cell.BG)
	cell.Bold = s.glow > 0
}

// FillRect fills the cells covered by r.
func (s *Screen) FillRect(r Rect, c Color) {
	sx, sy, ok := s.scale()
	if !ok || r.W <= 0 || r.H <= 0 {
		return
	}
	c0, c1 := span(r.X, r.Right(), sx)
	r0, r1 := span(r.Y, r.Bottom(), sy)
	if c0 >= c1 || r0 >= r1 {
		s.dot(r.Center(), c, DotOpaque, sx, sy)
		return
	}
	c0, c1 = max(c0, 0), min(c1, s.cols)
	r0, r1 = max(r0, 0), min(r1, s.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.paint(col, row, c)
		}
	}
}

// FillPolygon fills the cells whose centers lie inside the polygon (even-odd rule).
func (s *Screen) FillPolygon(pts []Point, c Color) {
	sx, sy, ok := s.scale()
	if !ok || len(pts) < 3 {
		return
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	var cx, cy float64
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		cx += p.X
		cy += p.Y
	}

	c0, c1 := span(minX, maxX, sx)
	r0, r1 := span(minY, maxY, sy)
	painted := false
	for row := max(r0, 0); row < min(r1, s.rows); row++ {
		for col := max(c0, 0); col < min(c1, s.cols); col++ {
			if pointInPolygon(s.cellCenter(col, row, sx, sy), pts) {
				s.paint(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		n := float64(len(pts))
		s.dot(Point{X: cx / n, Y: cy / n}, c, DotPolygon, sx, sy)
	}
}

// pointInPolygon is the even-odd ray casting test.
func pointInPolygon(p Point, pts []Point) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// FillCircle fills the cells whose centers lie within radius of (cx, cy).
func (s *Screen) FillCircle(cx, cy, radius float64, c Color) {
	sx, sy, ok := s.scale()
	if !ok || radius <= 0 {
		return
	}
	c0, c1 := span(cx-radius, cx+radius, sx)
	r0, r1 := span(cy-radius, cy+radius, sy)
	painted := false
	for row := max(r0, 0); row < min(r1, s.rows); row++ {
		for col := max(c0, 0); col < min(c1, s.cols); col++ {
			p := s.cellCenter(col, row, sx, sy)
			dx, dy := p.X-cx, p.Y-cy
			if dx*dx+dy*dy < radius*radius {
				s.paint(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		s.dot(Point{X: cx, Y: cy}, c, DotCircle, sx, sy)
	}
}

// FillText writes text starting at the cell containing (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) FillText(x, y float64, text string, c Color) {
	sx, sy, ok := s.scale()
	if !ok {
		return
	}
	col, row := floorInt(x*sx), floorInt(y*sy)
	i := 0
	for _, r := range text {
		if s.inBounds(col+i, row) {
			cell := &s.cells[row*s.cols+col+i]
			cell.Rune = r
			cell.FG = c.Over(cell.BG)
			cell.Bold = true
		}
		i++
	}
}

// SetGlow sets the glow for subsequent fills. Glowing cells render bold.
func (s *Screen) SetGlow(blur float64, _ Color) {
	s.glow = blur
}

// DrawText writes a string horizontally starting at cell (col, row).
func (s *Screen) DrawText(col, row int, text string, fg Color) {
	i := 0
	for _, r := range text {
		if s.inBounds(col+i, row) {
			cell := &s.cells[row*s.cols+col+i]
			cell.Rune = r
			cell.FG = fg
		}
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(row int, text string, fg Color) {
	col := (s.cols - len([]rune(text))) / 2
	s.DrawText(col, row, text, fg)
}

// FillCells paints a block of cells with a background color, clearing runes.
func (s *Screen) FillCells(col, row, w, h int, bg Color) {
	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			if s.inBounds(x, y) {
				s.cells[y*s.cols+x] = Cell{Rune: ' ', BG: bg}
			}
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(col, row, w, h int, fg Color) {
	right, bottom := col+w-1, row+h-1
	set := func(x, y int, r rune) {
		if s.inBounds(x, y) {
			cell := &s.cells[y*s.cols+x]
			cell.Rune = r
			cell.FG = fg
		}
	}

	// Corners
	set(col, row, '┌')
	set(right, row, '┐')
	set(col, bottom, '└')
	set(right, bottom, '┘')

	// Horizontal edges
	for x := col + 1; x < right; x++ {
		set(x, row, '─')
		set(x, bottom, '─')
	}

	// Vertical edges
	for y := row + 1; y < bottom; y++ {
		set(col, y, '│')
		set(right, y, '│')
	}
}

// String converts the screen buffer to plain runes, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows + s.rows)

	for y := 0; y < s.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.cols : (y+1)*s.cols] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
