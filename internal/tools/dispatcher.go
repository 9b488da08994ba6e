package tools

import (
	"fmt"
	"sort"
	"strings"

	"vectorpad/internal/domain"
)

// ToolKind identifies a selectable tool
type ToolKind int

const (
	ToolLine ToolKind = iota
	ToolShape
	ToolPen
	ToolPath
)

func (k ToolKind) String() string {
	switch k {
	case ToolLine:
		return "line"
	case ToolShape:
		return "shape"
	case ToolPen:
		return "pen"
	case ToolPath:
		return "path"
	default:
		return fmt.Sprintf("tool(%d)", int(k))
	}
}

// ParseToolKind returns the built-in tool with the given name
func ParseToolKind(name string) (ToolKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "line":
		return ToolLine, nil
	case "shape":
		return ToolShape, nil
	case "pen":
		return ToolPen, nil
	case "path":
		return ToolPath, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Factory builds a fresh tool instance
type Factory func() Tool

// Options configure the built-in tools
type Options struct {
	ShapeSides uint8
}

// Dispatcher routes input events to the active tool. It keeps no gesture
// state of its own: all of that lives in the tool instance.
type Dispatcher struct {
	active    ToolKind
	tool      Tool
	factories map[ToolKind]Factory
}

// NewDispatcher creates a dispatcher with the built-in tools registered and
// the line tool active
func NewDispatcher(opts Options) *Dispatcher {
	d := &Dispatcher{
		factories: make(map[ToolKind]Factory),
	}

	d.Register(ToolLine, func() Tool { return NewLine() })
	d.Register(ToolShape, func() Tool { return NewShape(opts.ShapeSides) })
	d.Register(ToolPen, func() Tool { return NewPen() })
	d.Register(ToolPath, func() Tool { return NewPath() })

	d.active = ToolLine
	d.tool = d.factories[ToolLine]()
	return d
}

// Register adds or replaces the factory for a tool kind. The active tool
// is not rebuilt until it is selected again.
func (d *Dispatcher) Register(kind ToolKind, factory Factory) {
	d.factories[kind] = factory
}

// Select makes kind the active tool. A new instance is always built, so
// any gesture in progress on the previous tool is discarded.
func (d *Dispatcher) Select(kind ToolKind) error {
	factory, ok := d.factories[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, kind)
	}
	d.active = kind
	d.tool = factory()
	return nil
}

// Reset discards the active tool's state by rebuilding it
func (d *Dispatcher) Reset() {
	d.tool = d.factories[d.active]()
}

// Active returns the kind of the active tool
func (d *Dispatcher) Active() ToolKind {
	return d.active
}

// Kinds returns the registered tool kinds in ascending order
func (d *Dispatcher) Kinds() []ToolKind {
	kinds := make([]ToolKind, 0, len(d.factories))
	for k := range d.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// HandleInput forwards ev to the active tool and returns what it produced
func (d *Dispatcher) HandleInput(ev domain.Event, doc Document, toolData DocumentToolData) ([]domain.Response, []domain.Operation) {
	return d.tool.HandleInput(ev, doc, toolData)
}
