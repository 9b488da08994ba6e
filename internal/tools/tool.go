package tools

import (
	"errors"

	"vectorpad/internal/domain"
)

var (
	// ErrNotImplemented is the panic value of tools that exist only as placeholders
	ErrNotImplemented = errors.New("tool not implemented")
	// ErrUnknownTool is returned when selecting a tool kind that has no registration
	ErrUnknownTool = errors.New("unknown tool")
)

// Document provides read-only access to the document state tools need
type Document interface {
	// ListLayers returns the layer identifiers of the document root in list order
	ListLayers() []domain.LayerID
}

// DocumentToolData is the settings shared by every tool. It is passed by
// value on each dispatch, so tools cannot change it.
type DocumentToolData struct {
	PrimaryColor   domain.Color
	SecondaryColor domain.Color
	SelectedLayer  domain.LayerPath
}

// Tool consumes input events and produces side-effect responses and
// document operations
type Tool interface {
	HandleInput(ev domain.Event, doc Document, toolData DocumentToolData) ([]domain.Response, []domain.Operation)
}

// Output collects what a single transition produces
type Output struct {
	Responses  []domain.Response
	Operations []domain.Operation
}

// Respond queues a response
func (o *Output) Respond(r domain.Response) {
	o.Responses = append(o.Responses, r)
}

// Emit queues a document operation
func (o *Output) Emit(op domain.Operation) {
	o.Operations = append(o.Operations, op)
}

// Fsm is a tool state machine. S is the state type itself and D the
// scratch data the machine keeps between events.
//
// Transition must be total: pairs it does not handle return the receiver
// unchanged and leave data and out untouched.
type Fsm[S any, D any] interface {
	Transition(ev domain.Event, doc Document, toolData DocumentToolData, data *D, out *Output) S
}

// machine adapts an Fsm to the Tool interface. The zero value starts in
// the state's zero value with zeroed scratch data.
type machine[S Fsm[S, D], D any] struct {
	state S
	data  D
}

func (m *machine[S, D]) HandleInput(ev domain.Event, doc Document, toolData DocumentToolData) ([]domain.Response, []domain.Operation) {
	var out Output
	m.state = m.state.Transition(ev, doc, toolData, &m.data, &out)
	return out.Responses, out.Operations
}

// deleteLastLayer emits a delete for the most recently listed layer, if any
func deleteLastLayer(doc Document, out *Output) {
	layers := doc.ListLayers()
	if len(layers) == 0 {
		return
	}
	out.Emit(domain.DeleteLayerOperation{Path: domain.LayerPath{layers[len(layers)-1]}})
}
