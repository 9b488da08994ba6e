package document

import (
	"errors"
	"fmt"

	"vectorpad/internal/domain"
)

var (
	// ErrInvalidPath is returned when an operation addresses a path the
	// document cannot hold
	ErrInvalidPath = errors.New("invalid layer path")
	// ErrLayerNotFound is returned when a delete names a missing layer
	ErrLayerNotFound = errors.New("layer not found")
	// ErrUnsupportedOperation is returned for operation types the engine does not know
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

type historyKind int

const (
	historyInsert historyKind = iota
	historyRemove
)

// historyEntry records an applied change so it can be reverted
type historyEntry struct {
	kind  historyKind
	layer Layer
	index int
}

// historyGroup is the set of changes made by one Apply call
type historyGroup []historyEntry

// Engine applies operations to a document and keeps undo/redo history
type Engine struct {
	doc       *Document
	undoStack []historyGroup
	redoStack []historyGroup
}

// NewEngine creates an engine for doc
func NewEngine(doc *Document) *Engine {
	return &Engine{doc: doc}
}

// Document returns the document the engine mutates
func (e *Engine) Document() *Document {
	return e.doc
}

// Apply applies ops in order as a single undo step. If any operation
// fails, the ones before it are rolled back and the document is unchanged.
func (e *Engine) Apply(ops ...domain.Operation) error {
	group := make(historyGroup, 0, len(ops))
	for i, op := range ops {
		if op == nil {
			e.revertGroup(group)
			return fmt.Errorf("operation %d: %w", i, ErrUnsupportedOperation)
		}
		entry, err := e.apply(op)
		if err != nil {
			e.revertGroup(group)
			return fmt.Errorf("operation %d (%s): %w", i, op.Type(), err)
		}
		group = append(group, entry)
	}

	if len(group) == 0 {
		return nil
	}
	e.undoStack = append(e.undoStack, group)
	e.redoStack = nil
	return nil
}

func (e *Engine) apply(op domain.Operation) (historyEntry, error) {
	switch o := op.(type) {
	case domain.AddLineOperation:
		if !o.Path.IsRoot() {
			return historyEntry{}, ErrInvalidPath
		}
		layer, index := e.doc.insert(Layer{
			Kind:  LayerLine,
			X0:    o.X0,
			Y0:    o.Y0,
			X1:    o.X1,
			Y1:    o.Y1,
			Style: o.Style,
		}, o.InsertIndex)
		return historyEntry{kind: historyInsert, layer: layer, index: index}, nil

	case domain.AddShapeOperation:
		if !o.Path.IsRoot() {
			return historyEntry{}, ErrInvalidPath
		}
		layer, index := e.doc.insert(Layer{
			Kind:  LayerShape,
			X0:    o.X0,
			Y0:    o.Y0,
			X1:    o.X1,
			Y1:    o.Y1,
			Sides: o.Sides,
			Style: o.Style,
		}, o.InsertIndex)
		return historyEntry{kind: historyInsert, layer: layer, index: index}, nil

	case domain.DeleteLayerOperation:
		if len(o.Path) != 1 {
			return historyEntry{}, ErrInvalidPath
		}
		layer, index, ok := e.doc.remove(o.Path[0])
		if !ok {
			return historyEntry{}, fmt.Errorf("%w: %d", ErrLayerNotFound, o.Path[0])
		}
		return historyEntry{kind: historyRemove, layer: layer, index: index}, nil
	}

	return historyEntry{}, ErrUnsupportedOperation
}

// Undo reverts the most recent Apply. It returns false if there is none.
func (e *Engine) Undo() bool {
	if len(e.undoStack) == 0 {
		return false
	}

	last := len(e.undoStack) - 1
	group := e.undoStack[last]
	e.undoStack = e.undoStack[:last]

	e.revertGroup(group)
	e.redoStack = append(e.redoStack, group)
	return true
}

// Redo reapplies the most recently undone Apply. It returns false if there is none.
func (e *Engine) Redo() bool {
	if len(e.redoStack) == 0 {
		return false
	}

	last := len(e.redoStack) - 1
	group := e.redoStack[last]
	e.redoStack = e.redoStack[:last]

	for _, entry := range group {
		e.replay(entry)
	}
	e.undoStack = append(e.undoStack, group)
	return true
}

// CanUndo reports whether Undo would do anything
func (e *Engine) CanUndo() bool {
	return len(e.undoStack) > 0
}

// CanRedo reports whether Redo would do anything
func (e *Engine) CanRedo() bool {
	return len(e.redoStack) > 0
}

// revertGroup undoes entries newest first
func (e *Engine) revertGroup(group historyGroup) {
	for i := len(group) - 1; i >= 0; i-- {
		e.revert(group[i])
	}
}

func (e *Engine) revert(entry historyEntry) {
	switch entry.kind {
	case historyInsert:
		e.doc.remove(entry.layer.ID)
	case historyRemove:
		e.doc.insert(entry.layer, entry.index)
	}
}

func (e *Engine) replay(entry historyEntry) {
	switch entry.kind {
	case historyInsert:
		e.doc.insert(entry.layer, entry.index)
	case historyRemove:
		e.doc.remove(entry.layer.ID)
	}
}
