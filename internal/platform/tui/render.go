package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// cellStyle is the part of a cell that affects styling.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
// A nil renderer uses the default one.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Cols()*s.Rows()*2 + s.Rows())

	styles := make(map[cellStyle]lipgloss.Style)
	styleFor := func(cs cellStyle) lipgloss.Style {
		if st, ok := styles[cs]; ok {
			return st
		}
		st := r.NewStyle().Bold(cs.bold)
		if !cs.fg.IsZero() {
			st = st.Foreground(lipgloss.Color(cs.fg.Hex()))
		}
		if !cs.bg.IsZero() {
			st = st.Background(lipgloss.Color(cs.bg.Hex()))
		}
		styles[cs] = st
		return st
	}

	for y := range s.Rows() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Cols() {
			cell := s.Cell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG, bold: cell.Bold}

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Cols() {
				cell = s.Cell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG, bold: cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
