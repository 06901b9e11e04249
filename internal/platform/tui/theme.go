package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Theme defines the visual style of the shell around the play field.
type Theme struct {
	// Chrome
	Title  lipgloss.Style
	Status lipgloss.Style
	Field  lipgloss.Style // Border around the play field
	Help   lipgloss.Style

	// Overlays (drawn into the play field)
	OverlayShade  core.Color // Dims the field behind an overlay
	OverlayPanel  core.Color
	OverlayBorder core.Color
	OverlayTitle  core.Color
	OverlayText   core.Color
	GameOverTitle core.Color
}

// NewTheme returns the default theme with styles bound to r,
// so SSH sessions get styles matching their own terminal.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Title:  r.NewStyle().Foreground(lipgloss.Color("#a78bfa")).Bold(true),
		Status: r.NewStyle().Foreground(lipgloss.Color("245")),
		Field: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8b5cf6")),
		Help: r.NewStyle().Foreground(lipgloss.Color("241")),

		OverlayShade:  core.RGB(0, 0, 0),
		OverlayPanel:  core.RGB(17, 24, 39),
		OverlayBorder: core.MustHex("#8b5cf6"),
		OverlayTitle:  core.MustHex("#a78bfa"),
		OverlayText:   core.ColorWhite,
		GameOverTitle: core.ColorRed,
	}
}

// fieldChrome is the number of columns and rows the Field border takes.
func (t Theme) fieldChrome() (cols, rows int) {
	return t.Field.GetHorizontalFrameSize(), t.Field.GetVerticalFrameSize()
}
