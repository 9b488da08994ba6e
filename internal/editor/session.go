package editor

import (
	"fmt"
	"log"

	"vectorpad/internal/document"
	"vectorpad/internal/domain"
	"vectorpad/internal/eventbus"
	"vectorpad/internal/tools"
)

// Options configure a new session
type Options struct {
	Tool           tools.ToolKind
	ShapeSides     uint8
	PrimaryColor   domain.Color
	SecondaryColor domain.Color
}

// Session owns the tool dispatcher, the shared tool data and the document.
// It is not safe for concurrent use: one event is fully processed before
// the next may be handled.
type Session struct {
	dispatcher *tools.Dispatcher
	toolData   tools.DocumentToolData
	engine     *document.Engine
	bus        eventbus.EventBus
}

// NewSession creates a session with an empty document. bus may be nil.
func NewSession(opts Options, bus eventbus.EventBus) (*Session, error) {
	dispatcher := tools.NewDispatcher(tools.Options{ShapeSides: opts.ShapeSides})
	if err := dispatcher.Select(opts.Tool); err != nil {
		return nil, fmt.Errorf("failed to select initial tool: %w", err)
	}

	return &Session{
		dispatcher: dispatcher,
		toolData: tools.DocumentToolData{
			PrimaryColor:   opts.PrimaryColor,
			SecondaryColor: opts.SecondaryColor,
		},
		engine: document.NewEngine(document.New()),
		bus:    bus,
	}, nil
}

// HandleEvent routes ev to the active tool and applies the operations it
// emits before returning. The tool's responses are returned and published.
func (s *Session) HandleEvent(ev domain.Event) ([]domain.Response, error) {
	responses, ops := s.dispatcher.HandleInput(ev, s.engine.Document(), s.toolData)

	if len(ops) > 0 {
		if err := s.engine.Apply(ops...); err != nil {
			log.Printf("Failed to apply operations from %s tool: %v", s.dispatcher.Active(), err)
			s.publish(eventbus.ErrorEvent{Message: "failed to apply operations", Err: err})
			return responses, err
		}
		s.publish(eventbus.OperationsAppliedEvent{
			Operations: ops,
			LayerCount: s.engine.Document().Len(),
		})
		s.pruneSelection()
	}

	for _, r := range responses {
		s.publish(eventbus.ResponseEvent{Response: r})
	}

	return responses, nil
}

// SelectTool switches the active tool, discarding any gesture in progress
func (s *Session) SelectTool(kind tools.ToolKind) error {
	if err := s.dispatcher.Select(kind); err != nil {
		return err
	}
	s.publish(eventbus.ToolChangedEvent{Tool: kind.String()})
	return nil
}

// ActiveTool returns the kind of the active tool
func (s *Session) ActiveTool() tools.ToolKind {
	return s.dispatcher.Active()
}

// Tools returns the selectable tool kinds
func (s *Session) Tools() []tools.ToolKind {
	return s.dispatcher.Kinds()
}

// SetPrimaryColor changes the colour used by subsequent gestures
func (s *Session) SetPrimaryColor(c domain.Color) {
	s.toolData.PrimaryColor = c
	s.publishColors()
}

// SetSecondaryColor changes the secondary colour
func (s *Session) SetSecondaryColor(c domain.Color) {
	s.toolData.SecondaryColor = c
	s.publishColors()
}

// SwapColors exchanges the primary and secondary colours
func (s *Session) SwapColors() {
	s.toolData.PrimaryColor, s.toolData.SecondaryColor = s.toolData.SecondaryColor, s.toolData.PrimaryColor
	s.publishColors()
}

// SelectLayer records the selected layer in the shared tool data
func (s *Session) SelectLayer(path domain.LayerPath) {
	s.toolData.SelectedLayer = path.Clone()
	s.publish(eventbus.LayerSelectedEvent{Path: path.Clone()})
}

// ToolData returns a copy of the shared tool data
func (s *Session) ToolData() tools.DocumentToolData {
	td := s.toolData
	td.SelectedLayer = td.SelectedLayer.Clone()
	return td
}

// Document returns the session's document
func (s *Session) Document() *document.Document {
	return s.engine.Document()
}

// Undo reverts the operations applied by the last handled event
func (s *Session) Undo() bool {
	if !s.engine.Undo() {
		return false
	}
	s.publish(eventbus.HistoryChangedEvent{Undo: true, LayerCount: s.engine.Document().Len()})
	s.pruneSelection()
	return true
}

// Redo reapplies the last undone event's operations
func (s *Session) Redo() bool {
	if !s.engine.Redo() {
		return false
	}
	s.publish(eventbus.HistoryChangedEvent{Undo: false, LayerCount: s.engine.Document().Len()})
	s.pruneSelection()
	return true
}

// pruneSelection clears the selected layer once it is gone from the document
func (s *Session) pruneSelection() {
	sel := s.toolData.SelectedLayer
	if len(sel) == 0 {
		return
	}
	if _, ok := s.engine.Document().Layer(sel[0]); ok {
		return
	}
	s.toolData.SelectedLayer = nil
	s.publish(eventbus.LayerSelectedEvent{})
}

func (s *Session) publishColors() {
	s.publish(eventbus.ColorChangedEvent{
		Primary:   s.toolData.PrimaryColor,
		Secondary: s.toolData.SecondaryColor,
	})
}

func (s *Session) publish(e eventbus.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
