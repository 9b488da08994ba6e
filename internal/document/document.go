package document

import (
	"sync"

	"vectorpad/internal/domain"
)

// LayerKind represents the geometry stored in a layer
type LayerKind int

const (
	LayerLine LayerKind = iota
	LayerShape
)

func (k LayerKind) String() string {
	switch k {
	case LayerLine:
		return "line"
	case LayerShape:
		return "shape"
	default:
		return "unknown"
	}
}

// Layer is a single drawable element at the document root
type Layer struct {
	ID     domain.LayerID
	Kind   LayerKind
	X0, Y0 float64
	X1, Y1 float64
	Sides  uint8 // shapes only
	Style  domain.PathStyle
}

// Document is an in-memory, ordered list of root layers
type Document struct {
	mu     sync.RWMutex
	layers []*Layer
	nextID domain.LayerID
}

// New creates an empty document
func New() *Document {
	return &Document{nextID: 1}
}

// ListLayers returns the layer ids in list order
func (d *Document) ListLayers() []domain.LayerID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]domain.LayerID, len(d.layers))
	for i, l := range d.layers {
		ids[i] = l.ID
	}
	return ids
}

// Layer returns a copy of the layer with the given id
func (d *Document) Layer(id domain.LayerID) (Layer, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i := d.indexOf(id); i >= 0 {
		return *d.layers[i], true
	}
	return Layer{}, false
}

// Layers returns copies of all layers in list order
func (d *Document) Layers() []Layer {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Layer, len(d.layers))
	for i, l := range d.layers {
		out[i] = *l
	}
	return out
}

// Len returns the number of layers
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.layers)
}

// insert places layer at index, appending when index is out of range.
// A zero ID is replaced by a fresh one. Returns the index used.
func (d *Document) insert(layer Layer, index int) (Layer, int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if layer.ID == 0 {
		layer.ID = d.nextID
		d.nextID++
	} else if layer.ID >= d.nextID {
		d.nextID = layer.ID + 1
	}

	if index < 0 || index > len(d.layers) {
		index = len(d.layers)
	}
	d.layers = append(d.layers, nil)
	copy(d.layers[index+1:], d.layers[index:])
	d.layers[index] = &layer
	return layer, index
}

// remove deletes the layer with the given id and returns it with its index
func (d *Document) remove(id domain.LayerID) (Layer, int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(id)
	if i < 0 {
		return Layer{}, -1, false
	}
	layer := *d.layers[i]
	d.layers = append(d.layers[:i], d.layers[i+1:]...)
	return layer, i, true
}

func (d *Document) indexOf(id domain.LayerID) int {
	for i, l := range d.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}
