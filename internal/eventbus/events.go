package eventbus

import (
	"vectorpad/internal/domain"
)

// EventType represents the type of editor notification
type EventType string

// Event types
const (
	EventOperationsApplied EventType = "OperationsApplied"
	EventResponse          EventType = "Response"
	EventToolChanged       EventType = "ToolChanged"
	EventColorChanged      EventType = "ColorChanged"
	EventLayerSelected     EventType = "LayerSelected"
	EventHistoryChanged    EventType = "HistoryChanged"
	EventError             EventType = "Error"
)

// Event is the interface for all editor notifications
type Event interface {
	Type() EventType
}

// OperationsAppliedEvent is emitted after a dispatch whose operations were applied
type OperationsAppliedEvent struct {
	Operations []domain.Operation
	LayerCount int
}

func (e OperationsAppliedEvent) Type() EventType { return EventOperationsApplied }

// ResponseEvent carries a tool response to the UI
type ResponseEvent struct {
	Response domain.Response
}

func (e ResponseEvent) Type() EventType { return EventResponse }

// ToolChangedEvent is emitted when the active tool changes
type ToolChangedEvent struct {
	Tool string
}

func (e ToolChangedEvent) Type() EventType { return EventToolChanged }

// ColorChangedEvent is emitted when the shared tool colours change
type ColorChangedEvent struct {
	Primary   domain.Color
	Secondary domain.Color
}

func (e ColorChangedEvent) Type() EventType { return EventColorChanged }

// LayerSelectedEvent is emitted when the selected layer changes
type LayerSelectedEvent struct {
	Path domain.LayerPath
}

func (e LayerSelectedEvent) Type() EventType { return EventLayerSelected }

// HistoryChangedEvent is emitted after undo or redo
type HistoryChangedEvent struct {
	Undo       bool // false for redo
	LayerCount int
}

func (e HistoryChangedEvent) Type() EventType { return EventHistoryChanged }

// ErrorEvent is emitted when applying operations fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
