package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/input"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Key
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, input.KeyArrowLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, input.KeyArrowRight, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, input.KeyArrowUp, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, input.KeyArrowDown, true},
		{"a", runeKey('a'), input.KeyA, true},
		{"d", runeKey('d'), input.KeyD, true},
		{"w", runeKey('w'), input.KeyW, true},
		{"s", runeKey('s'), input.KeyS, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, input.KeySpace, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "", false},
		{"x", runeKey('x'), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GameKey(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("GameKey(%q) = (%q, %v), expected (%q, %v)", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeyHoldsFirstPressAndRepeat(t *testing.T) {
	h := newKeyHolds(config.InputConfig{InitialHoldMs: 250, RepeatHoldMs: 100})
	t0 := time.Unix(0, 0)

	if !h.Press(input.KeyA, t0) {
		t.Error("first press should start a hold")
	}
	if released := h.Expire(t0.Add(249 * time.Millisecond)); len(released) != 0 {
		t.Errorf("released %v inside the initial window", released)
	}

	// Auto-repeat extends the hold by the shorter window.
	if h.Press(input.KeyA, t0.Add(240*time.Millisecond)) {
		t.Error("repeat should not report a new hold")
	}
	if released := h.Expire(t0.Add(330 * time.Millisecond)); len(released) != 0 {
		t.Errorf("released %v inside the repeat window", released)
	}
	released := h.Expire(t0.Add(340 * time.Millisecond))
	if len(released) != 1 || released[0] != input.KeyA {
		t.Errorf("Expire = %v, expected [a]", released)
	}
	if left := h.ReleaseAll(); len(left) != 0 {
		t.Errorf("expired key still held: %v", left)
	}
}

func TestKeyHoldsReleaseAll(t *testing.T) {
	h := newKeyHolds(config.DefaultShooterConfig().Input)
	now := time.Unix(100, 0)
	h.Press(input.KeyW, now)
	h.Press(input.KeyArrowLeft, now)

	released := h.ReleaseAll()
	if len(released) != 2 || released[0] != input.KeyArrowLeft || released[1] != input.KeyW {
		t.Errorf("ReleaseAll = %v, expected sorted [ArrowLeft w]", released)
	}
	if len(h.ReleaseAll()) != 0 {
		t.Error("second ReleaseAll should release nothing")
	}
}

func TestFrameScheduler(t *testing.T) {
	epoch := time.Unix(1000, 0)
	s := newFrameScheduler(60, epoch)

	if s.interval != time.Second/60 {
		t.Errorf("interval = %v, expected %v", s.interval, time.Second/60)
	}
	if s.Next() != nil {
		t.Error("no tick should be armed without a pending frame")
	}

	var got []float64
	s.ScheduleNextFrame(func(now float64) { got = append(got, now) })
	if s.Next() == nil {
		t.Fatal("a pending frame should arm a tick")
	}
	if s.Next() != nil {
		t.Error("only one tick may be in flight")
	}

	if ran := s.Fire(epoch.Add(1500 * time.Millisecond)); ran != 1 {
		t.Errorf("Fire ran %d callbacks, expected 1", ran)
	}
	if len(got) != 1 || got[0] != 1500 {
		t.Errorf("timestamps = %v, expected [1500]", got)
	}
	if s.Next() != nil {
		t.Error("nothing pending after the frame ran")
	}

	h := s.ScheduleNextFrame(func(now float64) { got = append(got, now) })
	s.Cancel(h)
	if s.Next() != nil {
		t.Error("cancelled frame should not arm a tick")
	}
}
