package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/input"
	"github.com/vovakirdan/space-shooter/internal/shooter"
)

const (
	title      = "Space Shooter"
	headerRows = 1 // Title line
	footerRows = 1 // Help line
)

// Options configures a Model.
type Options struct {
	Config   config.ShooterConfig
	Runtime  core.RuntimeConfig
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Logger   *log.Logger        // nil disables logging
	Now      func() time.Time   // nil uses time.Now
}

// Model is the Bubble Tea model hosting one shooter game.
// It owns the mounted game, the frame scheduler, and the key dispatcher.
type Model struct {
	cfg      config.ShooterConfig
	game     *shooter.Game
	sched    *frameScheduler
	screen   *core.Screen
	keys     *input.Dispatcher
	holds    *keyHolds
	keymap   KeyMap
	help     help.Model
	theme    Theme
	renderer *lipgloss.Renderer
	now      func() time.Time

	width, height int
	quitting      bool
}

// NewModel creates a model with a mounted game waiting to be started.
func NewModel(opts Options) (Model, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rc := opts.Runtime
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = now().UnixNano()
	}

	sched := newFrameScheduler(rc.TickRate, now())
	game, err := shooter.NewGame(opts.Config, rc, sched)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	w, h := shooter.SurfaceSize(rc.ViewportW, opts.Config.Surface)
	screen := core.NewScreen(0, 0, w, h)
	game.Attach(screen)

	keys := input.NewDispatcher()
	game.Mount(keys)

	if opts.Logger != nil {
		logger := opts.Logger
		game.OnChange(func(s core.SessionState) {
			switch {
			case s.Over:
				logger.Info("game over", "score", s.Score)
			case s.Started && s.Score == 0:
				logger.Debug("session started")
			}
		})
	}

	theme := NewTheme(opts.Renderer)
	h2 := help.New()
	h2.Styles.ShortKey = theme.Help
	h2.Styles.ShortDesc = theme.Help
	h2.Styles.ShortSeparator = theme.Help

	return Model{
		cfg:      opts.Config,
		game:     game,
		sched:    sched,
		screen:   screen,
		keys:     keys,
		holds:    newKeyHolds(opts.Config.Input),
		keymap:   DefaultKeyMap(),
		help:     h2,
		theme:    theme,
		renderer: opts.Renderer,
		now:      now,
	}, nil
}

// Init does nothing: frames are only requested once a session starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are dispatched first;
// a key the game claims never reaches the shell bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k, ok := GameKey(msg); ok {
		m.holds.Press(k, m.now())
		if m.keys.Dispatch(input.KeyDown, k) {
			return m, m.sched.Next()
		}
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		m.game.Unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Start) && !m.game.Session().Started:
		m.start()
	}
	return m, m.sched.Next()
}

// start sizes the surface for the current viewport and starts a session.
func (m Model) start() {
	for _, k := range m.holds.ReleaseAll() {
		m.keys.Dispatch(input.KeyUp, k)
	}

	w, h := shooter.SurfaceSize(m.viewportW(), m.cfg.Surface)
	m.screen.SetLogicalSize(w, h)
	m.game.Start()
}

// handleResize resizes the cell grid. The logical surface keeps its size
// until the next start.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	cols, rows := m.fieldSize()
	m.screen.Resize(cols, rows)
	return m, nil
}

// handleFrame releases expired keys, then runs the pending frame.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.holds.Expire(m.now()) {
		m.keys.Dispatch(input.KeyUp, k)
	}
	m.sched.Fire(t)
	return m, m.sched.Next()
}

// viewportW returns the terminal width in logical pixels.
func (m Model) viewportW() int {
	return m.width * m.cfg.Surface.ColumnPixels
}

// fieldSize returns the cell grid of the play field for the current window.
func (m Model) fieldSize() (cols, rows int) {
	chromeCols, chromeRows := m.theme.fieldChrome()
	w, _ := shooter.SurfaceSize(m.viewportW(), m.cfg.Surface)
	cols = min(w/m.cfg.Surface.ColumnPixels, m.width-chromeCols)
	rows = m.height - chromeRows - headerRows - footerRows
	return max(cols, 0), max(rows, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen.Cols() == 0 || m.screen.Rows() == 0 {
		return "Terminal too small"
	}

	// Overlays go on a copy so the last frame stays intact underneath.
	session := m.game.Session()
	view := m.screen
	switch {
	case session.Over:
		view = m.screen.Clone()
		drawGameOverOverlay(view, m.theme, session.Score)
	case !session.Started:
		view = m.screen.Clone()
		drawStartOverlay(view, m.theme)
	}

	header := m.theme.Title.Render(title) + "  " +
		m.theme.Status.Render(fmt.Sprintf("score %d", session.Score))
	field := m.theme.Field.Render(RenderScreen(view, m.renderer))
	return lipgloss.JoinVertical(lipgloss.Left, header, field, m.help.View(m.keymap))
}

// Session returns the hosted game's session state.
func (m Model) Session() core.SessionState {
	return m.game.Session()
}

// Run starts the Bubble Tea program with a new model and returns the
// session state it ended with.
func Run(opts Options) (core.SessionState, error) {
	model, err := NewModel(opts)
	if err != nil {
		return core.SessionState{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.SessionState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Session(), nil
	}
	return core.SessionState{}, nil
}
