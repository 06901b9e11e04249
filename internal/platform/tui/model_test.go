package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/input"
)

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// testClock is a settable time source.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newTestModel(t *testing.T) (Model, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	m, err := NewModel(Options{
		Config:   config.DefaultShooterConfig(),
		Runtime:  core.RuntimeConfig{ViewportW: 1200, TickRate: 60, Seed: 1},
		Renderer: asciiRenderer(),
		Now:      clock.Now,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelResizeSizesField(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	// 1200 logical pixels caps the surface at 800, i.e. 80 columns.
	if m.screen.Cols() != 80 || m.screen.Rows() != 36 {
		t.Errorf("field = %dx%d cells, expected 80x36", m.screen.Cols(), m.screen.Rows())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Cols() != 56 || m.screen.Rows() != 16 {
		t.Errorf("field = %dx%d cells, expected 56x16", m.screen.Cols(), m.screen.Rows())
	}
}

func TestModelStartPrompt(t *testing.T) {
	m, _ := newTestModel(t)
	if got := m.View(); got != "Terminal too small" {
		t.Errorf("View before sizing = %q", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	if !strings.Contains(view, "SPACE SHOOTER") || !strings.Contains(view, "Press Enter to start") {
		t.Errorf("idle view should show the start prompt:\n%s", view)
	}
	if !m.Session().Idle() {
		t.Errorf("session = %+v, expected idle", m.Session())
	}
}

func TestModelStartAndPlay(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Session().Started {
		t.Fatal("enter should start a session")
	}
	if cmd == nil {
		t.Fatal("starting should request a frame")
	}
	if m.screen.Width() != 800 || m.screen.Height() != 600 {
		t.Errorf("surface = %dx%d, expected 800x600", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, runeKey('a'))
	if !m.game.Tracker().Pressed(input.KeyA) {
		t.Error("a should be held after a press")
	}

	m, _ = update(t, m, FrameMsg(clock.Advance(100*time.Millisecond)))
	if x := m.game.World().Player().X; x != 375 {
		t.Errorf("player x = %v after one frame of holding a, expected 375", x)
	}
	if !m.game.Tracker().Pressed(input.KeyA) {
		t.Error("a should still be held inside the initial window")
	}

	m, _ = update(t, m, FrameMsg(clock.Advance(300*time.Millisecond)))
	if m.game.Tracker().Pressed(input.KeyA) {
		t.Error("a should be released once its hold expires")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if n := len(m.game.World().Bullets()); n != 1 {
		t.Errorf("bullets = %d after space, expected 1", n)
	}

	view := m.View()
	if strings.Contains(view, "Press Enter to start") {
		t.Error("running view should not show the start prompt")
	}
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("running view should show the in-field score:\n%s", view)
	}
}

func TestModelStartKeyIgnoredWhileRunning(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, FrameMsg(clock.Advance(16*time.Millisecond)))

	frames := m.game.World().Frames()
	m, _ = update(t, m, runeKey('r'))
	if m.game.World().Frames() != frames {
		t.Error("r should not restart a running session")
	}
}

func TestModelGameKeysSkipShellBindings(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Space is claimed by the game, so a shell binding on it never fires.
	m.keymap.Quit = key.NewBinding(key.WithKeys("q", " "))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.quitting {
		t.Error("space should fire, not quit")
	}
	if n := len(m.game.World().Bullets()); n != 1 {
		t.Errorf("bullets = %d after space, expected 1", n)
	}

	// Movement keys are not claimed and still reach the shell.
	m.keymap.Quit = key.NewBinding(key.WithKeys("a"))
	m, cmd := update(t, m, runeKey('a'))
	if !m.quitting || cmd == nil {
		t.Error("an unclaimed game key should reach the shell bindings")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return the quit command")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
	if m.keys.Len() != 0 {
		t.Error("quitting should unmount the game")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(20, 4, 200, 40)
	s.FillRect(core.NewRect(0, 0, 200, 40), core.MustHex("#0a0a1a"))
	s.DrawText(2, 1, "hello", core.ColorWhite)

	if got, want := RenderScreen(s, asciiRenderer()), s.String(); got != want {
		t.Errorf("ascii render = %q, expected %q", got, want)
	}
}

func TestRenderScreenColors(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	s := core.NewScreen(4, 1, 40, 10)
	s.FillRect(core.NewRect(0, 0, 40, 10), core.MustHex("#0a0a1a"))

	out := RenderScreen(s, r)
	if !strings.Contains(out, "48;2;") {
		t.Errorf("truecolor render should set a background: %q", out)
	}
	if strings.Count(out, "48;2;") != 1 {
		t.Errorf("a uniform row should be a single styled run: %q", out)
	}
}

func TestOverlays(t *testing.T) {
	th := NewTheme(asciiRenderer())
	s := core.NewScreen(80, 30, 800, 600)

	drawGameOverOverlay(s, th, 120)
	text := s.String()
	for _, want := range []string{"Game Over!", "Final score: 120", "Press Enter or R to play again"} {
		if !strings.Contains(text, want) {
			t.Errorf("game over overlay missing %q:\n%s", want, text)
		}
	}
}
