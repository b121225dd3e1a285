package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/cometpong/internal/protocol"
)

// HoldTimeout is how long a movement key counts as held after its last
// press or repeat. Terminals never report key releases.
const HoldTimeout = 150 * time.Millisecond

var movementKeys = [...]protocol.Key{
	protocol.KeyLeftUp,
	protocol.KeyLeftDown,
	protocol.KeyRightUp,
	protocol.KeyRightDown,
}

// KeyToGameKey converts a key event to a game key.
// W/S steer the left paddle, the arrows steer the right one.
func KeyToGameKey(key tcell.Key, r rune) protocol.Key {
	switch key {
	case tcell.KeyUp:
		return protocol.KeyRightUp
	case tcell.KeyDown:
		return protocol.KeyRightDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return protocol.KeyLeftUp
		case 's', 'S':
			return protocol.KeyLeftDown
		case 'c', 'C':
			return protocol.KeyCheat
		case 'i', 'I':
			return protocol.KeyInertia
		case 'g', 'G':
			return protocol.KeyGravity
		}
	}
	return protocol.KeyNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// KeyTracker turns terminal events into game events, synthesizing the
// release edge of movement keys from the absence of key repeats
type KeyTracker struct {
	held    map[protocol.Key]time.Time
	buttons tcell.ButtonMask
}

func NewKeyTracker() *KeyTracker {
	return &KeyTracker{held: make(map[protocol.Key]time.Time)}
}

// Translate converts one terminal event received at now
func (kt *KeyTracker) Translate(ev tcell.Event, now time.Time) []protocol.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.translateKey(ev, now)
	case *tcell.EventMouse:
		return kt.translateMouse(ev)
	}
	return nil
}

func (kt *KeyTracker) translateKey(ev *tcell.EventKey, now time.Time) []protocol.Event {
	if IsQuitKey(ev.Key(), ev.Rune()) {
		return []protocol.Event{protocol.Terminate}
	}

	var events []protocol.Event
	key := KeyToGameKey(ev.Key(), ev.Rune())
	switch {
	case key.IsMovement():
		if _, ok := kt.held[key]; !ok {
			events = append(events, protocol.Press(key))
		}
		// The new key takes over the paddle, so the old one must not release it
		delete(kt.held, key.Opposite())
		kt.held[key] = now
	case key != protocol.KeyNone:
		events = append(events, protocol.Press(key))
	}

	return append(events, protocol.Advance)
}

func (kt *KeyTracker) translateMouse(ev *tcell.EventMouse) []protocol.Event {
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	released := kt.buttons != tcell.ButtonNone && buttons == tcell.ButtonNone
	kt.buttons = buttons

	if released {
		return []protocol.Event{protocol.Advance}
	}
	return nil
}

// Expire releases movement keys that have not repeated within HoldTimeout
func (kt *KeyTracker) Expire(now time.Time) []protocol.Event {
	var events []protocol.Event
	for _, key := range movementKeys {
		seen, ok := kt.held[key]
		if ok && now.Sub(seen) >= HoldTimeout {
			delete(kt.held, key)
			events = append(events, protocol.Release(key))
		}
	}
	return events
}

// Held reports whether a movement key currently counts as held
func (kt *KeyTracker) Held(key protocol.Key) bool {
	_, ok := kt.held[key]
	return ok
}
