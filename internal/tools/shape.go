package tools

import (
	"log"

	"vectorpad/internal/domain"
)

// Side count of every emitted shape. shapeData.sides is not consulted yet.
const shapeSides = 6

type shapeState int

const (
	shapeReady shapeState = iota
	shapeButtonDown
)

func (s shapeState) String() string {
	switch s {
	case shapeReady:
		return "ready"
	case shapeButtonDown:
		return "button-down"
	default:
		return "unknown"
	}
}

type shapeData struct {
	dragStart domain.ViewportPosition
	sides     uint8
}

// Shape draws a filled regular polygon bounded by the drag
type Shape struct {
	machine[shapeState, shapeData]
}

// NewShape creates a shape tool. sides is stored with the tool's scratch
// data but emitted shapes always use a fixed side count.
func NewShape(sides uint8) *Shape {
	s := &Shape{}
	s.data.sides = sides
	return s
}

func (s shapeState) Transition(ev domain.Event, doc Document, toolData DocumentToolData, data *shapeData, out *Output) shapeState {
	switch e := ev.(type) {
	case domain.MouseDownEvent:
		if s == shapeReady && e.MouseKeys.Contains(domain.MouseLeft) {
			data.dragStart = e.Position
			return shapeButtonDown
		}

	case domain.KeyDownEvent:
		if s == shapeReady && e.Key == domain.KeyZ {
			deleteLastLayer(doc, out)
			return shapeReady
		}

	case domain.MouseUpEvent:
		// Any released button ends the drag.
		if s == shapeButtonDown {
			start := data.dragStart
			end := e.Position
			log.Printf("shape tool: drawing shape with radius %.2f", start.Distance(end))

			// TODO: emit data.sides once the toolbar can change it
			out.Emit(domain.AddShapeOperation{
				Path:        domain.LayerPath{},
				InsertIndex: domain.AppendIndex,
				X0:          float64(start.X),
				Y0:          float64(start.Y),
				X1:          float64(end.X),
				Y1:          float64(end.Y),
				Sides:       shapeSides,
				Style:       domain.NewPathStyle(nil, domain.NewFill(toolData.PrimaryColor)),
			})
			return shapeReady
		}
	}

	return s
}
