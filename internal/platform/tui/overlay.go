package tui

import (
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Shade strength behind each overlay.
const (
	startShade    = 0.5
	gameOverShade = 0.8
)

type overlayLine struct {
	text  string
	color core.Color
}

// drawStartOverlay shows the start prompt over a dimmed field.
func drawStartOverlay(s *core.Screen, th Theme) {
	shade(s, th.OverlayShade, startShade)
	drawPanel(s, th, []overlayLine{
		{"SPACE SHOOTER", th.OverlayTitle},
		{"", th.OverlayText},
		{"Press Enter to start", th.OverlayText},
		{"WASD/arrows move, space fires", core.ColorGray},
	})
}

// drawGameOverOverlay shows the final score and the restart prompt.
func drawGameOverOverlay(s *core.Screen, th Theme, score int) {
	shade(s, th.OverlayShade, gameOverShade)
	drawPanel(s, th, []overlayLine{
		{"Game Over!", th.GameOverTitle},
		{fmt.Sprintf("Final score: %d", score), th.OverlayText},
		{"", th.OverlayText},
		{"Press Enter or R to play again", th.OverlayText},
	})
}

// shade blends c over every cell.
func shade(s *core.Screen, c core.Color, alpha float64) {
	veil := c.WithAlpha(alpha)
	for row := range s.Rows() {
		for col := range s.Cols() {
			cell := s.Cell(col, row)
			cell.BG = veil.Over(cell.BG)
			if !cell.FG.IsZero() {
				cell.FG = veil.Over(cell.FG)
			}
			s.SetCell(col, row, cell)
		}
	}
}

// drawPanel draws a bordered box centered on the screen with one line of
// text per row.
func drawPanel(s *core.Screen, th Theme, lines []overlayLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	width += 6
	height := len(lines) + 4

	col := (s.Cols() - width) / 2
	row := (s.Rows() - height) / 2

	s.FillCells(col, row, width, height, th.OverlayPanel)
	s.DrawBox(col, row, width, height, th.OverlayBorder)
	for i, l := range lines {
		s.DrawTextCentered(row+2+i, l.text, l.color)
	}
}
