package tools

import (
	"vectorpad/internal/domain"
)

type fakeDocument struct {
	layers []domain.LayerID
}

func (d fakeDocument) ListLayers() []domain.LayerID {
	return d.layers
}

var (
	emptyDoc = fakeDocument{}
	abcDoc   = fakeDocument{layers: []domain.LayerID{10, 20, 30}}
	redTools = DocumentToolData{PrimaryColor: domain.Red, SecondaryColor: domain.White}
)

func pos(x, y int) domain.ViewportPosition {
	return domain.ViewportPosition{X: x, Y: y}
}

func mouseDown(x, y int, keys domain.MouseKeys) domain.MouseDownEvent {
	return domain.MouseDownEvent{MouseState: domain.MouseState{Position: pos(x, y), MouseKeys: keys}}
}

func mouseUp(x, y int, keys domain.MouseKeys) domain.MouseUpEvent {
	return domain.MouseUpEvent{MouseState: domain.MouseState{Position: pos(x, y), MouseKeys: keys}}
}

func mouseMove(x, y int) domain.MouseMoveEvent {
	return domain.MouseMoveEvent{Position: pos(x, y)}
}

func keyDown(k domain.Key) domain.KeyDownEvent {
	return domain.KeyDownEvent{Key: k}
}

func keyUp(k domain.Key) domain.KeyUpEvent {
	return domain.KeyUpEvent{Key: k}
}

// readyNoops are events no ready-state drag tool reacts to
var readyNoops = []domain.Event{
	mouseDown(1, 1, domain.MouseRight),
	mouseDown(1, 1, domain.MouseMiddle),
	mouseDown(1, 1, 0),
	mouseUp(1, 1, domain.MouseLeft),
	mouseMove(2, 2),
	keyDown(domain.KeyEscape),
	keyDown(domain.KeyUnknown),
	keyUp(domain.KeyZ),
}
