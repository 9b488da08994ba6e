package domain

// OperationType represents the kind of document mutation
type OperationType string

// Operation types
const (
	OperationAddLine     OperationType = "AddLine"
	OperationAddShape    OperationType = "AddShape"
	OperationDeleteLayer OperationType = "DeleteLayer"
)

// AppendIndex is the insert index meaning "insert at the end".
// The applying engine resolves it; tools never compute positions.
const AppendIndex = -1

// Operation is a single atomic document mutation request.
// Emitting one has no effect until the engine applies it.
type Operation interface {
	Type() OperationType
}

// AddLineOperation adds a straight line layer
type AddLineOperation struct {
	Path        LayerPath
	InsertIndex int
	X0, Y0      float64
	X1, Y1      float64
	Style       PathStyle
}

func (o AddLineOperation) Type() OperationType { return OperationAddLine }

// AddShapeOperation adds a regular polygon layer bounded by the two corners
type AddShapeOperation struct {
	Path        LayerPath
	InsertIndex int
	X0, Y0      float64
	X1, Y1      float64
	Sides       uint8
	Style       PathStyle
}

func (o AddShapeOperation) Type() OperationType { return OperationAddShape }

// DeleteLayerOperation removes the layer at Path
type DeleteLayerOperation struct {
	Path LayerPath
}

func (o DeleteLayerOperation) Type() OperationType { return OperationDeleteLayer }
