// Package input tracks keyboard state for the game.
// Key identifiers follow the DOM KeyboardEvent.key names so bindings read the
// same regardless of which host delivers the events.
package input

// Key identifies a physical key.
type Key string

// Keys the game binds.
const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyA          Key = "a"
	KeyD          Key = "d"
	KeyW          Key = "w"
	KeyS          Key = "s"
	KeySpace      Key = " "
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k == KeySpace {
		return "Space"
	}
	return string(k)
}

// EventType distinguishes presses from releases.
type EventType int

const (
	KeyDown EventType = iota
	KeyUp
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	default:
		return "unknown"
	}
}

// Event is a single keyboard event delivered to listeners.
type Event struct {
	Type      EventType
	Key       Key
	prevented bool
}

// PreventDefault tells the host not to apply its own handling for this event.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether any listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}
