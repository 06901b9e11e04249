package input

import "testing"

func TestTrackerPressRelease(t *testing.T) {
	tr := NewTracker()

	if tr.Pressed(KeyArrowLeft) {
		t.Error("absent keys should not be pressed")
	}

	tr.KeyDown(KeyArrowLeft)
	if !tr.Pressed(KeyArrowLeft) {
		t.Error("key should be pressed after KeyDown")
	}
	if !tr.AnyPressed(KeyA, KeyArrowLeft) {
		t.Error("AnyPressed should see either binding")
	}

	tr.KeyUp(KeyArrowLeft)
	if tr.Pressed(KeyArrowLeft) {
		t.Error("key should be released after KeyUp")
	}
	if tr.AnyPressed(KeyA, KeyArrowLeft) {
		t.Error("AnyPressed should be false when all keys are released")
	}
}

func TestTrackerFireIsEdgeTriggered(t *testing.T) {
	shots := 0
	tr := NewTracker(WithFire(KeySpace, func() { shots++ }))

	// Auto-repeat delivers several key-down events without a release
	for i := 0; i < 3; i++ {
		if !tr.KeyDown(KeySpace) {
			t.Error("fire key-down should report handled")
		}
	}
	if shots != 3 {
		t.Errorf("shots = %d, expected 3 (one per key-down)", shots)
	}

	tr.KeyUp(KeySpace)
	if shots != 3 {
		t.Errorf("key-up should not fire, shots = %d", shots)
	}

	if tr.KeyDown(KeyW) {
		t.Error("movement keys should not report handled")
	}
}

func TestDispatcherDeliversAndPrevents(t *testing.T) {
	shots := 0
	tr := NewTracker(WithFire(KeySpace, func() { shots++ }))
	d := NewDispatcher()
	remove := d.Listen(tr.Handle)

	if d.Dispatch(KeyDown, KeyArrowUp) {
		t.Error("movement key should not prevent default")
	}
	if !tr.Pressed(KeyArrowUp) {
		t.Error("dispatched key-down should reach the tracker")
	}
	if !d.Dispatch(KeyDown, KeySpace) {
		t.Error("space should prevent default while mounted")
	}
	if shots != 1 {
		t.Errorf("shots = %d, expected 1", shots)
	}

	d.Dispatch(KeyUp, KeyArrowUp)
	if tr.Pressed(KeyArrowUp) {
		t.Error("dispatched key-up should reach the tracker")
	}

	remove()
	if d.Len() != 0 {
		t.Errorf("Len() = %d after remove, expected 0", d.Len())
	}
	if d.Dispatch(KeyDown, KeySpace) {
		t.Error("space should not be prevented after unmount")
	}
	if shots != 1 {
		t.Error("removed listener should not receive events")
	}
	remove() // idempotent
}

func TestDispatcherRemoveDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	var remove func()
	remove = d.Listen(func(*Event) {
		calls++
		remove()
	})
	d.Listen(func(*Event) { calls++ })

	d.Dispatch(KeyDown, KeyA)
	if calls != 2 {
		t.Errorf("calls = %d, expected both listeners to run", calls)
	}
	d.Dispatch(KeyDown, KeyA)
	if calls != 3 {
		t.Errorf("calls = %d, expected only the remaining listener", calls)
	}
}
