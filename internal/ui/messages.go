package ui

import (
	"vectorpad/internal/eventbus"
)

// EventMsg wraps an editor notification for the UI
type EventMsg struct {
	Event eventbus.Event
}
