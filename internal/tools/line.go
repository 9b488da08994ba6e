package tools

import (
	"log"

	"vectorpad/internal/domain"
)

const lineWidth = 5

type lineState int

const (
	lineReady lineState = iota
	lineButtonDown
)

func (s lineState) String() string {
	switch s {
	case lineReady:
		return "ready"
	case lineButtonDown:
		return "button-down"
	default:
		return "unknown"
	}
}

type lineData struct {
	dragStart domain.ViewportPosition
}

// Line draws a straight stroked line from press to release
type Line struct {
	machine[lineState, lineData]
}

// NewLine creates a line tool in its ready state
func NewLine() *Line {
	return &Line{}
}

func (s lineState) Transition(ev domain.Event, doc Document, toolData DocumentToolData, data *lineData, out *Output) lineState {
	switch e := ev.(type) {
	case domain.MouseDownEvent:
		if s == lineReady && e.MouseKeys.Contains(domain.MouseLeft) {
			data.dragStart = e.Position
			return lineButtonDown
		}

	case domain.KeyDownEvent:
		if s == lineReady && e.Key == domain.KeyZ {
			deleteLastLayer(doc, out)
			return lineReady
		}

	case domain.MouseUpEvent:
		// Any released button ends the drag.
		if s == lineButtonDown {
			start := data.dragStart
			end := e.Position
			log.Printf("line tool: drawing line with distance %.2f", start.Distance(end))

			out.Emit(domain.AddLineOperation{
				Path:        domain.LayerPath{},
				InsertIndex: domain.AppendIndex,
				X0:          float64(start.X),
				Y0:          float64(start.Y),
				X1:          float64(end.X),
				Y1:          float64(end.Y),
				Style:       domain.NewPathStyle(domain.NewStroke(toolData.PrimaryColor, lineWidth), nil),
			})
			return lineReady
		}
	}

	return s
}
