// Package loop drives a per-frame callback against a refresh signal.
// The signal itself is abstracted behind Scheduler so the game can run under
// Bubble Tea ticks, over SSH, or under synthetic timestamps in tests.
package loop

import "slices"

// FrameFunc is invoked once per frame with a monotonically increasing
// timestamp in milliseconds.
type FrameFunc func(now float64)

// Handle identifies a scheduled frame callback. The zero Handle is never issued.
type Handle uint64

// Scheduler requests frame callbacks from the host's refresh signal.
type Scheduler interface {
	// ScheduleNextFrame runs fn on the next refresh.
	ScheduleNextFrame(fn FrameFunc) Handle

	// Cancel drops a pending callback. Unknown or already-run handles are ignored.
	Cancel(h Handle)
}

// ManualScheduler queues callbacks until Advance is called with a timestamp.
// It is the scheduler for tests and headless runs.
type ManualScheduler struct {
	next    Handle
	pending map[Handle]FrameFunc
}

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		pending: make(map[Handle]FrameFunc),
	}
}

// ScheduleNextFrame queues fn for the next Advance.
func (s *ManualScheduler) ScheduleNextFrame(fn FrameFunc) Handle {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

// Cancel removes a queued callback.
func (s *ManualScheduler) Cancel(h Handle) {
	delete(s.pending, h)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Advance runs every callback queued before the call, in scheduling order.
// Callbacks scheduled while advancing wait for the next Advance.
// Returns the number of callbacks run.
func (s *ManualScheduler) Advance(now float64) int {
	if len(s.pending) == 0 {
		return 0
	}

	handles := make([]Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	ran := 0
	for _, h := range handles {
		fn, ok := s.pending[h]
		if !ok {
			continue // cancelled by an earlier callback in this frame
		}
		delete(s.pending, h)
		fn(now)
		ran++
	}
	return ran
}
