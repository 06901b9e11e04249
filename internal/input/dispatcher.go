package input

// Listener receives keyboard events.
type Listener func(ev *Event)

// Dispatcher is the process-wide keyboard event source a component mounts onto.
// It is not safe for concurrent use; the host delivers events from its single
// update loop.
type Dispatcher struct {
	nextID    int
	listeners []registration
}

type registration struct {
	id int
	fn Listener
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Listen registers fn and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (d *Dispatcher) Listen(fn Listener) (remove func()) {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, registration{id: id, fn: fn})

	return func() {
		for i, r := range d.listeners {
			if r.id == id {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Dispatch delivers an event to every listener in registration order.
// Returns true if a listener prevented the default action.
func (d *Dispatcher) Dispatch(t EventType, k Key) (prevented bool) {
	ev := &Event{Type: t, Key: k}
	// Snapshot so listeners may unsubscribe while handling.
	snapshot := make([]registration, len(d.listeners))
	copy(snapshot, d.listeners)
	for _, r := range snapshot {
		r.fn(ev)
	}
	return ev.DefaultPrevented()
}
