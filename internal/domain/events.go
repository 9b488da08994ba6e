package domain

// EventType represents the kind of input event
type EventType string

// Event types
const (
	EventMouseDown EventType = "MouseDown"
	EventMouseUp   EventType = "MouseUp"
	EventMouseMove EventType = "MouseMove"
	EventKeyDown   EventType = "KeyDown"
	EventKeyUp     EventType = "KeyUp"
)

// Event is the interface for all input events delivered to tools.
// The set of implementations is closed; tools type-switch over it.
type Event interface {
	Type() EventType
	isEvent()
}

// MouseState is the pointer payload of button events
type MouseState struct {
	Position  ViewportPosition
	MouseKeys MouseKeys
}

// MouseDownEvent is emitted when a pointer button is pressed
type MouseDownEvent struct {
	MouseState
}

func (e MouseDownEvent) Type() EventType { return EventMouseDown }
func (MouseDownEvent) isEvent()          {}

// MouseUpEvent is emitted when a pointer button is released
type MouseUpEvent struct {
	MouseState
}

func (e MouseUpEvent) Type() EventType { return EventMouseUp }
func (MouseUpEvent) isEvent()          {}

// MouseMoveEvent is emitted when the pointer moves
type MouseMoveEvent struct {
	Position ViewportPosition
}

func (e MouseMoveEvent) Type() EventType { return EventMouseMove }
func (MouseMoveEvent) isEvent()          {}

// KeyDownEvent is emitted when a key is pressed
type KeyDownEvent struct {
	Key Key
}

func (e KeyDownEvent) Type() EventType { return EventKeyDown }
func (KeyDownEvent) isEvent()          {}

// KeyUpEvent is emitted when a key is released
type KeyUpEvent struct {
	Key Key
}

func (e KeyUpEvent) Type() EventType { return EventKeyUp }
func (KeyUpEvent) isEvent()          {}
