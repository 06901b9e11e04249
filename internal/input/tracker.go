package input

// Tracker maps keys to their pressed state.
// Movement is level-triggered: the simulation polls Pressed every frame.
// The fire key is edge-triggered: every key-down, auto-repeat included,
// invokes the fire callback.
type Tracker struct {
	pressed map[Key]bool
	fireKey Key
	onFire  func()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithFire binds key to fn. Key-down events for it are also marked as handled.
func WithFire(key Key, fn func()) Option {
	return func(t *Tracker) {
		t.fireKey = key
		t.onFire = fn
	}
}

// NewTracker creates a tracker with every key released.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		pressed: make(map[Key]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// KeyDown marks k as pressed.
// Returns true if k is the fire key (the host should suppress its default action).
func (t *Tracker) KeyDown(k Key) bool {
	t.pressed[k] = true
	if t.onFire != nil && k == t.fireKey {
		t.onFire()
		return true
	}
	return false
}

// KeyUp marks k as released.
func (t *Tracker) KeyUp(k Key) {
	t.pressed[k] = false
}

// Pressed reports whether k is held. Unknown keys are not pressed.
func (t *Tracker) Pressed(k Key) bool {
	return t.pressed[k]
}

// AnyPressed reports whether at least one of keys is held.
func (t *Tracker) AnyPressed(keys ...Key) bool {
	for _, k := range keys {
		if t.pressed[k] {
			return true
		}
	}
	return false
}

// Handle is a Listener that feeds dispatched events into the tracker.
func (t *Tracker) Handle(ev *Event) {
	switch ev.Type {
	case KeyDown:
		if t.KeyDown(ev.Key) {
			ev.PreventDefault()
		}
	case KeyUp:
		t.KeyUp(ev.Key)
	}
}
