package views

import (
	"fmt"
	"strings"

	"vectorpad/internal/document"
	"vectorpad/internal/domain"
)

// RenderLayers renders the layer list, marking the selected layer
func RenderLayers(s *Styles, layers []document.Layer, selected domain.LayerID) string {
	if len(layers) == 0 {
		return s.LayerBox.Render(s.Dim.Render("no layers"))
	}

	lines := make([]string, 0, len(layers))
	for _, l := range layers {
		line := describeLayer(l)
		if l.ID == selected {
			line = s.SelectionBg.Render(s.Highlight.Render("> " + line))
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return s.LayerBox.Render(strings.Join(lines, "\n"))
}

func describeLayer(l document.Layer) string {
	geom := fmt.Sprintf("(%g,%g)-(%g,%g)", l.X0, l.Y0, l.X1, l.Y1)
	var paint []string
	if l.Style.Stroke != nil {
		paint = append(paint, fmt.Sprintf("stroke %s w%g", l.Style.Stroke.Color.Hex(), l.Style.Stroke.Width))
	}
	if l.Style.Fill != nil {
		paint = append(paint, "fill "+l.Style.Fill.Color.Hex())
	}

	kind := l.Kind.String()
	if l.Kind == document.LayerShape {
		kind = fmt.Sprintf("shape/%d", l.Sides)
	}
	return fmt.Sprintf("#%d %-8s %s %s", l.ID, kind, geom, strings.Join(paint, ", "))
}
