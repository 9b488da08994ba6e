package tools

import (
	"fmt"

	"vectorpad/internal/domain"
)

// Path is the bezier path tool. It has no behaviour yet and panics on use
// so that wiring it into a host is noticed immediately.
type Path struct{}

// NewPath creates the path tool placeholder
func NewPath() *Path {
	return &Path{}
}

func (p *Path) HandleInput(ev domain.Event, doc Document, toolData DocumentToolData) ([]domain.Response, []domain.Operation) {
	panic(fmt.Errorf("path tool: %w", ErrNotImplemented))
}
