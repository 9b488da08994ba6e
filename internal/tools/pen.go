package tools

import (
	"log"

	"vectorpad/internal/domain"
)

type penState int

const (
	penReady penState = iota
	penDrawing
)

func (s penState) String() string {
	switch s {
	case penReady:
		return "ready"
	case penDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

type penData struct {
	points []domain.ViewportPosition
}

// add appends p unless it repeats the last recorded point
func (d *penData) add(p domain.ViewportPosition) bool {
	if n := len(d.points); n > 0 && d.points[n-1] == p {
		return false
	}
	d.points = append(d.points, p)
	return true
}

func (d *penData) snapshot() []domain.ViewportPosition {
	out := make([]domain.ViewportPosition, len(d.points))
	copy(out, d.points)
	return out
}

// Pen draws a freehand polyline. Nothing reaches the document until the
// button is released; the stroke is then committed as one line per segment.
type Pen struct {
	machine[penState, penData]
}

// NewPen creates a pen tool in its ready state
func NewPen() *Pen {
	return &Pen{}
}

func (s penState) Transition(ev domain.Event, doc Document, toolData DocumentToolData, data *penData, out *Output) penState {
	switch e := ev.(type) {
	case domain.MouseDownEvent:
		if s == penReady && e.MouseKeys.Contains(domain.MouseLeft) {
			data.points = []domain.ViewportPosition{e.Position}
			return penDrawing
		}

	case domain.KeyDownEvent:
		if s == penReady && e.Key == domain.KeyZ {
			deleteLastLayer(doc, out)
			return penReady
		}

	case domain.MouseMoveEvent:
		if s == penDrawing {
			if data.add(e.Position) {
				out.Respond(domain.PreviewPathResponse{Points: data.snapshot()})
			}
			return penDrawing
		}

	case domain.MouseUpEvent:
		if s == penDrawing {
			data.add(e.Position)
			out.Respond(domain.ClearPreviewResponse{})

			for i := 1; i < len(data.points); i++ {
				a, b := data.points[i-1], data.points[i]
				out.Emit(domain.AddLineOperation{
					Path:        domain.LayerPath{},
					InsertIndex: domain.AppendIndex,
					X0:          float64(a.X),
					Y0:          float64(a.Y),
					X1:          float64(b.X),
					Y1:          float64(b.Y),
					Style:       domain.NewPathStyle(domain.NewStroke(toolData.PrimaryColor, lineWidth), nil),
				})
			}
			log.Printf("pen tool: committed stroke with %d points", len(data.points))
			data.points = nil
			return penReady
		}
	}

	return s
}
