package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vectorpad/internal/document"
	"vectorpad/internal/domain"
)

func TestDescribeLayer(t *testing.T) {
	line := document.Layer{
		ID:   2,
		Kind: document.LayerLine,
		X0:   10, Y0: 10, X1: 50, Y1: 30,
		Style: domain.NewPathStyle(domain.NewStroke(domain.Red, 5), nil),
	}
	assert.Equal(t, "#2 line     (10,10)-(50,30) stroke #ff0000 w5", describeLayer(line))

	shape := document.Layer{
		ID:   3,
		Kind: document.LayerShape,
		X1:   4, Y1: 4,
		Sides: 6,
		Style: domain.NewPathStyle(nil, domain.NewFill(domain.Black)),
	}
	assert.Equal(t, "#3 shape/6  (0,0)-(4,4) fill #000000", describeLayer(shape))
}

func TestRenderLayersMarksSelection(t *testing.T) {
	s := NewStyles()
	layers := []document.Layer{
		{ID: 1, Kind: document.LayerLine},
		{ID: 2, Kind: document.LayerLine},
	}

	out := RenderLayers(s, layers, 2)
	assert.Contains(t, out, "> #2")
	assert.NotContains(t, out, "> #1")
	assert.Contains(t, RenderLayers(s, nil, 0), "no layers")
}
