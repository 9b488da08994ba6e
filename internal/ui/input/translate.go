package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"vectorpad/internal/domain"
)

// TranslateMouse converts a terminal mouse message into an input event.
// Wheel messages have no counterpart and report false.
//
// Many terminals do not say which button was released, so a release
// usually carries an empty button set.
func TranslateMouse(msg tea.MouseMsg) (domain.Event, bool) {
	if tea.MouseEvent(msg).IsWheel() {
		return nil, false
	}

	state := domain.MouseState{
		Position:  domain.ViewportPosition{X: msg.X, Y: msg.Y},
		MouseKeys: mouseKeys(msg.Button),
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return domain.MouseDownEvent{MouseState: state}, true
	case tea.MouseActionRelease:
		return domain.MouseUpEvent{MouseState: state}, true
	case tea.MouseActionMotion:
		return domain.MouseMoveEvent{Position: state.Position}, true
	}
	return nil, false
}

func mouseKeys(b tea.MouseButton) domain.MouseKeys {
	switch b {
	case tea.MouseButtonLeft:
		return domain.MouseLeft
	case tea.MouseButtonRight:
		return domain.MouseRight
	case tea.MouseButtonMiddle:
		return domain.MouseMiddle
	default:
		return 0
	}
}

// TranslateKey converts a key press into a key-down event. Keys outside
// the editor's key vocabulary report false. Terminals do not deliver key
// releases, so no key-up events are produced here.
func TranslateKey(msg tea.KeyMsg) (domain.Event, bool) {
	key := domain.ParseKey(msg.String())
	if key == domain.KeyUnknown {
		return nil, false
	}
	return domain.KeyDownEvent{Key: key}, true
}
