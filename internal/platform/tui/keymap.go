package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/input"
)

// KeyMap defines the key bindings of the shell.
type KeyMap struct {
	Move  key.Binding
	Fire  key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Fire, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Fire},
		{k.Start, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "up", "down", "a", "d", "w", "s"),
			key.WithHelp("wasd/arrows", "move"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// gameKeys maps Bubble Tea key names to game keys.
var gameKeys = map[string]input.Key{
	"left":  input.KeyArrowLeft,
	"right": input.KeyArrowRight,
	"up":    input.KeyArrowUp,
	"down":  input.KeyArrowDown,
	"a":     input.KeyA,
	"d":     input.KeyD,
	"w":     input.KeyW,
	"s":     input.KeyS,
	" ":     input.KeySpace,
}

// GameKey translates a key message to the game key it stands for.
func GameKey(msg tea.KeyMsg) (input.Key, bool) {
	k, ok := gameKeys[msg.String()]
	return k, ok
}

// keyHolds synthesizes key releases. Terminals report presses (and
// auto-repeats) only, so a key is held until no repeat arrives within its
// hold window. The first window is longer to cover the auto-repeat delay.
type keyHolds struct {
	initial time.Duration
	repeat  time.Duration
	until   map[input.Key]time.Time
}

func newKeyHolds(cfg config.InputConfig) *keyHolds {
	return &keyHolds{
		initial: time.Duration(cfg.InitialHoldMs) * time.Millisecond,
		repeat:  time.Duration(cfg.RepeatHoldMs) * time.Millisecond,
		until:   make(map[input.Key]time.Time),
	}
}

// Press extends the hold of k. Returns true when k was not held before.
func (h *keyHolds) Press(k input.Key, now time.Time) bool {
	_, held := h.until[k]
	if held {
		h.until[k] = now.Add(h.repeat)
	} else {
		h.until[k] = now.Add(h.initial)
	}
	return !held
}

// Expire forgets and returns the keys whose hold ended at or before now.
func (h *keyHolds) Expire(now time.Time) []input.Key {
	var released []input.Key
	for k, until := range h.until {
		if !now.Before(until) {
			released = append(released, k)
			delete(h.until, k)
		}
	}
	slices.Sort(released)
	return released
}

// ReleaseAll forgets and returns every held key.
func (h *keyHolds) ReleaseAll() []input.Key {
	released := make([]input.Key, 0, len(h.until))
	for k := range h.until {
		released = append(released, k)
	}
	clear(h.until)
	slices.Sort(released)
	return released
}
