package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vectorpad/internal/domain"
)

func TestShapeDrawsFilledShape(t *testing.T) {
	shape := NewShape(3)

	shape.HandleInput(mouseDown(10, 10, domain.MouseLeft), emptyDoc, redTools)
	assert.Equal(t, shapeButtonDown, shape.state)

	responses, ops := shape.HandleInput(mouseUp(50, 30, domain.MouseLeft), emptyDoc, redTools)
	assert.Empty(t, responses)
	require.Len(t, ops, 1)
	assert.Equal(t, shapeReady, shape.state)

	op, ok := ops[0].(domain.AddShapeOperation)
	require.True(t, ok, "expected AddShapeOperation, got %T", ops[0])
	assert.Empty(t, op.Path)
	assert.Equal(t, domain.AppendIndex, op.InsertIndex)
	assert.Equal(t, [4]float64{10, 10, 50, 30}, [4]float64{op.X0, op.Y0, op.X1, op.Y1})
	require.NotNil(t, op.Style.Fill)
	assert.Equal(t, domain.Red, op.Style.Fill.Color)
	assert.Nil(t, op.Style.Stroke)
}

func TestShapeReleaseOfAnyButtonEndsDrag(t *testing.T) {
	tests := []struct {
		name string
		keys domain.MouseKeys
	}{
		{"left", domain.MouseLeft},
		{"right", domain.MouseRight},
		{"middle", domain.MouseMiddle},
		{"unreported", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := NewShape(shapeSides)
			shape.HandleInput(mouseDown(0, 0, domain.MouseLeft), emptyDoc, redTools)
			_, ops := shape.HandleInput(mouseUp(5, 5, tt.keys), emptyDoc, redTools)

			require.Len(t, ops, 1)
			assert.IsType(t, domain.AddShapeOperation{}, ops[0])
			assert.Equal(t, shapeReady, shape.state)
		})
	}
}

func TestShapeIgnoresConfiguredSides(t *testing.T) {
	shape := NewShape(3)
	assert.Equal(t, uint8(3), shape.data.sides)

	shape.HandleInput(mouseDown(0, 0, domain.MouseLeft), emptyDoc, redTools)
	_, ops := shape.HandleInput(mouseUp(4, 4, domain.MouseLeft), emptyDoc, redTools)

	require.Len(t, ops, 1)
	assert.Equal(t, uint8(6), ops[0].(domain.AddShapeOperation).Sides)
	assert.Equal(t, uint8(3), shape.data.sides)
}

func TestShapeDeleteKey(t *testing.T) {
	shape := NewShape(6)

	_, ops := shape.HandleInput(keyDown(domain.KeyZ), abcDoc, redTools)
	require.Len(t, ops, 1)
	assert.Equal(t, domain.DeleteLayerOperation{Path: domain.LayerPath{30}}, ops[0])

	_, ops = shape.HandleInput(keyDown(domain.KeyZ), emptyDoc, redTools)
	assert.Empty(t, ops)
	assert.Equal(t, shapeReady, shape.state)
}

func TestShapeUnmatchedEventsAreNoops(t *testing.T) {
	cases := map[shapeState][]domain.Event{
		shapeReady: readyNoops,
		shapeButtonDown: {
			mouseDown(1, 1, domain.MouseLeft),
			mouseMove(3, 3),
			keyDown(domain.KeyZ),
			keyUp(domain.KeyZ),
		},
	}

	for state, events := range cases {
		for _, ev := range events {
			shape := NewShape(5)
			shape.state = state
			shape.data.dragStart = pos(7, 7)

			responses, ops := shape.HandleInput(ev, abcDoc, redTools)

			assert.Empty(t, responses, "%s + %T", state, ev)
			assert.Empty(t, ops, "%s + %T", state, ev)
			assert.Equal(t, state, shape.state, "%s + %T", state, ev)
			assert.Equal(t, shapeData{dragStart: pos(7, 7), sides: 5}, shape.data)
		}
	}
}
