package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vectorpad/internal/domain"
)

func TestPenCommitsOnlyOnRelease(t *testing.T) {
	pen := NewPen()

	_, ops := pen.HandleInput(mouseDown(0, 0, domain.MouseLeft), emptyDoc, redTools)
	assert.Empty(t, ops)

	responses, ops := pen.HandleInput(mouseMove(1, 0), emptyDoc, redTools)
	assert.Empty(t, ops)
	require.Len(t, responses, 1)
	assert.Equal(t, domain.PreviewPathResponse{Points: []domain.ViewportPosition{pos(0, 0), pos(1, 0)}}, responses[0])

	// repeated position adds nothing
	responses, ops = pen.HandleInput(mouseMove(1, 0), emptyDoc, redTools)
	assert.Empty(t, responses)
	assert.Empty(t, ops)

	_, ops = pen.HandleInput(mouseMove(2, 1), emptyDoc, redTools)
	assert.Empty(t, ops)
	assert.Equal(t, penDrawing, pen.state)

	responses, ops = pen.HandleInput(mouseUp(3, 3, domain.MouseLeft), emptyDoc, redTools)
	assert.Equal(t, []domain.Response{domain.ClearPreviewResponse{}}, responses)
	require.Len(t, ops, 3)
	assert.Equal(t, penReady, pen.state)
	assert.Nil(t, pen.data.points)

	want := [][4]float64{{0, 0, 1, 0}, {1, 0, 2, 1}, {2, 1, 3, 3}}
	for i, op := range ops {
		line, ok := op.(domain.AddLineOperation)
		require.True(t, ok)
		assert.Equal(t, want[i], [4]float64{line.X0, line.Y0, line.X1, line.Y1})
		assert.Equal(t, domain.AppendIndex, line.InsertIndex)
		require.NotNil(t, line.Style.Stroke)
		assert.Equal(t, domain.Red, line.Style.Stroke.Color)
		assert.Nil(t, line.Style.Fill)
	}
}

func TestPenClickWithoutMovementEmitsNothing(t *testing.T) {
	pen := NewPen()

	pen.HandleInput(mouseDown(4, 4, domain.MouseLeft), emptyDoc, redTools)
	responses, ops := pen.HandleInput(mouseUp(4, 4, domain.MouseLeft), emptyDoc, redTools)

	assert.Equal(t, []domain.Response{domain.ClearPreviewResponse{}}, responses)
	assert.Empty(t, ops)
	assert.Equal(t, penReady, pen.state)
}

func TestPenPreviewDoesNotAliasScratch(t *testing.T) {
	pen := NewPen()

	pen.HandleInput(mouseDown(0, 0, domain.MouseLeft), emptyDoc, redTools)
	responses, _ := pen.HandleInput(mouseMove(1, 1), emptyDoc, redTools)
	preview := responses[0].(domain.PreviewPathResponse)
	preview.Points[0] = pos(50, 50)

	assert.Equal(t, pos(0, 0), pen.data.points[0])
}

func TestPenUnmatchedEventsAreNoops(t *testing.T) {
	pen := NewPen()
	for _, ev := range readyNoops {
		responses, ops := pen.HandleInput(ev, abcDoc, redTools)
		assert.Empty(t, responses, "%T", ev)
		assert.Empty(t, ops, "%T", ev)
		assert.Equal(t, penReady, pen.state)
	}

	pen.HandleInput(mouseDown(0, 0, domain.MouseLeft), abcDoc, redTools)
	for _, ev := range []domain.Event{mouseDown(1, 1, domain.MouseLeft), keyDown(domain.KeyZ), keyUp(domain.KeyZ)} {
		responses, ops := pen.HandleInput(ev, abcDoc, redTools)
		assert.Empty(t, responses, "%T", ev)
		assert.Empty(t, ops, "%T", ev)
		assert.Equal(t, penDrawing, pen.state)
		assert.Equal(t, []domain.ViewportPosition{pos(0, 0)}, pen.data.points)
	}
}

func TestPenDeleteKey(t *testing.T) {
	pen := NewPen()

	_, ops := pen.HandleInput(keyDown(domain.KeyZ), abcDoc, redTools)
	assert.Equal(t, []domain.Operation{domain.DeleteLayerOperation{Path: domain.LayerPath{30}}}, ops)

	_, ops = pen.HandleInput(keyDown(domain.KeyZ), emptyDoc, redTools)
	assert.Empty(t, ops)
}
