package softwillow

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Event is a discrete input command consumed by the frame loop.
type Event uint8

const (
	EventNone                Event = iota // nothing pending
	EventQuit                             // window closed
	EventEscape                           // escape key: stop the loop
	EventToggleFilled                     // key 1
	EventToggleWireframe                  // key 2
	EventToggleCulling                    // key 3
	EventToggleVertexMarkers              // key 4
	EventToggleTextured                   // key 5
	EventToggleGrid                       // key 6
)

var eventNames = [...]string{
	EventNone:                "none",
	EventQuit:                "quit",
	EventEscape:              "escape",
	EventToggleFilled:        "toggle-filled",
	EventToggleWireframe:     "toggle-wireframe",
	EventToggleCulling:       "toggle-culling",
	EventToggleVertexMarkers: "toggle-vertex-markers",
	EventToggleTextured:      "toggle-textured",
	EventToggleGrid:          "toggle-grid",
}

// String returns the script name of e.
func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// ParseEvent returns the event with the given script name.
func ParseEvent(name string) (Event, error) {
	for i, n := range eventNames {
		if n == name {
			return Event(i), nil
		}
	}
	return EventNone, fmt.Errorf("unknown event %q", name)
}

// InputSource delivers input events. Poll must not block: it returns
// EventNone when nothing is pending.
type InputSource interface {
	Poll() Event
}

// ScriptedInput is an InputSource that replays a fixed queue of events, one
// per Poll.
type ScriptedInput struct {
	queue []Event
}

// NewScriptedInput returns a source that yields events in order.
func NewScriptedInput(events ...Event) *ScriptedInput {
	return &ScriptedInput{queue: append([]Event(nil), events...)}
}

// Push appends events to the queue.
func (s *ScriptedInput) Push(events ...Event) {
	s.queue = append(s.queue, events...)
}

// Pending returns the number of queued events.
func (s *ScriptedInput) Pending() int {
	return len(s.queue)
}

// Poll implements InputSource.
func (s *ScriptedInput) Poll() Event {
	if len(s.queue) == 0 {
		return EventNone
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev
}

// KeyboardInput reads Ebitengine keyboard state. Keys pressed during the
// same tick are queued and delivered one per Poll. It must only be polled
// from the Ebitengine Update callback.
type KeyboardInput struct {
	keys    []ebiten.Key
	pending []Event
}

// NewKeyboardInput returns an Ebitengine-backed input source.
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll implements InputSource.
func (k *KeyboardInput) Poll() Event {
	if ebiten.IsWindowBeingClosed() {
		return EventQuit
	}

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		if ev := KeyEvent(key); ev != EventNone {
			k.pending = append(k.pending, ev)
		}
	}

	if len(k.pending) == 0 {
		return EventNone
	}
	ev := k.pending[0]
	k.pending = k.pending[1:]
	return ev
}

// KeyEvent maps a key to its event. Unmapped keys return EventNone.
func KeyEvent(key ebiten.Key) Event {
	switch key {
	case ebiten.KeyEscape:
		return EventEscape
	case ebiten.Key1, ebiten.KeyNumpad1:
		return EventToggleFilled
	case ebiten.Key2, ebiten.KeyNumpad2:
		return EventToggleWireframe
	case ebiten.Key3, ebiten.KeyNumpad3:
		return EventToggleCulling
	case ebiten.Key4, ebiten.KeyNumpad4:
		return EventToggleVertexMarkers
	case ebiten.Key5, ebiten.KeyNumpad5:
		return EventToggleTextured
	case ebiten.Key6, ebiten.KeyNumpad6:
		return EventToggleGrid
	default:
		return EventNone
	}
}
