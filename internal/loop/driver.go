package loop

// Phase is the driver's lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // No frame scheduled
	PhaseRunning              // A frame is scheduled against the refresh signal
	PhaseEnded                // The session ended; nothing is scheduled
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Frame is the work the driver runs every refresh.
type Frame interface {
	// Ready reports whether a session can begin (e.g. a drawable surface exists).
	Ready() bool

	// Reset prepares a fresh session.
	Reset()

	// Step advances one frame and returns true when the session has ended.
	Step(now float64) (ended bool)
}

// Driver runs a Frame once per refresh until the frame reports the end.
//
// Idle -> Running on Start, Running -> Ended when a step ends the session,
// and Start from any phase restarts from a clean session.
type Driver struct {
	sched   Scheduler
	frame   Frame
	phase   Phase
	handle  Handle
	pending bool
	frames  uint64
}

// NewDriver creates an idle driver.
func NewDriver(sched Scheduler, frame Frame) *Driver {
	return &Driver{
		sched: sched,
		frame: frame,
	}
}

// Phase returns the current lifecycle state.
func (d *Driver) Phase() Phase {
	return d.phase
}

// Frames returns the number of frames run in the current session.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Start resets the session and begins scheduling frames.
// It is a no-op returning false when the frame is not ready.
// Calling it while running restarts the session.
func (d *Driver) Start() bool {
	if !d.frame.Ready() {
		return false
	}

	d.cancel()
	d.phase = PhaseIdle
	d.frame.Reset()
	d.frames = 0
	d.phase = PhaseRunning
	d.schedule()
	return true
}

// Stop cancels any pending frame. A running session returns to idle;
// an ended session stays ended so its result remains visible.
func (d *Driver) Stop() {
	d.cancel()
	if d.phase == PhaseRunning {
		d.phase = PhaseIdle
	}
}

// tick is the scheduled callback.
func (d *Driver) tick(now float64) {
	d.pending = false
	if d.phase != PhaseRunning {
		return
	}

	d.frames++
	if d.frame.Step(now) {
		d.phase = PhaseEnded
		d.cancel()
		return
	}
	d.schedule()
}

func (d *Driver) schedule() {
	d.handle = d.sched.ScheduleNextFrame(d.tick)
	d.pending = true
}

// cancel drops the pending frame. Safe to call when nothing is pending.
func (d *Driver) cancel() {
	if !d.pending {
		return
	}
	d.sched.Cancel(d.handle)
	d.pending = false
}
