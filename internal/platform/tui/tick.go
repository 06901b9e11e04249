// Package tui hosts the space shooter in a terminal through Bubble Tea.
// It handles the refresh signal, key mapping, overlays, and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/loop"
)

// FrameMsg is the refresh signal: it runs the frame callbacks pending at that time.
type FrameMsg time.Time

// tickCmd returns a Bubble Tea command that sends one FrameMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// frameScheduler implements loop.Scheduler on top of tea.Tick.
// At most one tick is in flight; it is only armed while a callback waits.
type frameScheduler struct {
	queue    *loop.ManualScheduler
	interval time.Duration
	epoch    time.Time
	armed    bool
}

func newFrameScheduler(tickRate int, epoch time.Time) *frameScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &frameScheduler{
		queue:    loop.NewManualScheduler(),
		interval: time.Second / time.Duration(tickRate),
		epoch:    epoch,
	}
}

func (s *frameScheduler) ScheduleNextFrame(fn loop.FrameFunc) loop.Handle {
	return s.queue.ScheduleNextFrame(fn)
}

func (s *frameScheduler) Cancel(h loop.Handle) {
	s.queue.Cancel(h)
}

// Next returns the command that delivers the next refresh, or nil when
// nothing is waiting or a tick is already in flight.
func (s *frameScheduler) Next() tea.Cmd {
	if s.armed || s.queue.Pending() == 0 {
		return nil
	}
	s.armed = true
	return tickCmd(s.interval)
}

// Fire runs the pending callbacks with the milliseconds elapsed since the epoch.
func (s *frameScheduler) Fire(t time.Time) int {
	s.armed = false
	return s.queue.Advance(s.timestamp(t))
}

func (s *frameScheduler) timestamp(t time.Time) float64 {
	return float64(t.Sub(s.epoch)) / float64(time.Millisecond)
}
