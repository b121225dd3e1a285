package protocol

// Key is a game key, independent of the physical key bound to it
type Key int

const (
	KeyNone Key = iota
	KeyLeftUp
	KeyLeftDown
	KeyRightUp
	KeyRightDown
	KeyCheat
	KeyInertia
	KeyGravity
)

// EventKind classifies an input event
type EventKind int

const (
	EventPress     EventKind = iota // Key went down
	EventRelease                    // Key went up
	EventAdvance                    // Any key or pointer release
	EventTerminate                  // Quit immediately
)

// Event is one discrete input event delivered to the simulation.
// Key is only meaningful for EventPress and EventRelease.
type Event struct {
	Kind EventKind
	Key  Key
}

func Press(k Key) Event   { return Event{Kind: EventPress, Key: k} }
func Release(k Key) Event { return Event{Kind: EventRelease, Key: k} }

var (
	Advance   = Event{Kind: EventAdvance}
	Terminate = Event{Kind: EventTerminate}
)

// IsMovement reports whether the key steers a paddle
func (k Key) IsMovement() bool {
	return k >= KeyLeftUp && k <= KeyRightDown
}

// Opposite returns the other movement key of the same paddle
func (k Key) Opposite() Key {
	switch k {
	case KeyLeftUp:
		return KeyLeftDown
	case KeyLeftDown:
		return KeyLeftUp
	case KeyRightUp:
		return KeyRightDown
	case KeyRightDown:
		return KeyRightUp
	}
	return KeyNone
}

// HasTerminate reports whether a batch contains a terminate signal
func HasTerminate(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventTerminate {
			return true
		}
	}
	return false
}

// HasAdvance reports whether a batch contains a screen-advance signal
func HasAdvance(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventAdvance {
			return true
		}
	}
	return false
}
