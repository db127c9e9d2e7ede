package event

import "time"

// EventType identifies a host input event
type EventType int

const (
	EventNone EventType = iota
	EventPointerMove
	EventClick
	EventResize
)

var (
	typeToName = map[EventType]string{
		EventNone:        "None",
		EventPointerMove: "PointerMove",
		EventClick:       "Click",
		EventResize:      "Resize",
	}
	nameToType = map[string]EventType{
		"PointerMove": EventPointerMove,
		"Click":       EventClick,
		"Resize":      EventResize,
	}
)

// String returns the registered event name
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// TypeByName resolves a registered event name
func TypeByName(name string) (EventType, bool) {
	t, ok := nameToType[name]
	return t, ok
}

// Button identifies the pointer button of a click
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// String returns human-readable button name
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonMiddle:
		return "Middle"
	case ButtonSecondary:
		return "Secondary"
	default:
		return "None"
	}
}

// Event is a single host input event
// Pointer fields are used by PointerMove and Click, Width/Height by Resize
type Event struct {
	Type      EventType
	X, Y      float64
	Button    Button
	Width     int
	Height    int
	Timestamp time.Time

	stopped bool
}

// StopPropagation prevents delivery to handlers registered after the current one
// Ignored when called from a passive handler
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether a non-passive handler stopped propagation
func (e *Event) Stopped() bool {
	return e.stopped
}

// NewPointerMove builds a pointer-move event
func NewPointerMove(x, y float64, ts time.Time) *Event {
	return &Event{Type: EventPointerMove, X: x, Y: y, Timestamp: ts}
}

// NewClick builds a click event
func NewClick(x, y float64, button Button, ts time.Time) *Event {
	return &Event{Type: EventClick, X: x, Y: y, Button: button, Timestamp: ts}
}

// NewResize builds a container resize event
func NewResize(width, height int, ts time.Time) *Event {
	return &Event{Type: EventResize, Width: width, Height: height, Timestamp: ts}
}
