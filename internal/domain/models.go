package domain

import "fmt"

// LayerID identifies a layer within the document
type LayerID uint64

// LayerPath addresses a layer or folder from the document root.
// An empty path is the root itself.
type LayerPath []LayerID

// IsRoot reports whether the path addresses the document root
func (p LayerPath) IsRoot() bool {
	return len(p) == 0
}

// Clone returns a copy that does not share storage with p
func (p LayerPath) Clone() LayerPath {
	if p == nil {
		return nil
	}
	out := make(LayerPath, len(p))
	copy(out, p)
	return out
}

// Color is an RGBA colour with components in [0, 1]
type Color struct {
	R, G, B, A float32
}

// Common colours
var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Red   = Color{R: 1, G: 0, B: 0, A: 1}
)

// NewColorRGB creates an opaque colour
func NewColorRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex returns the colour as #rrggbb, ignoring alpha
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Stroke describes an outline
type Stroke struct {
	Color Color
	Width float32
}

// NewStroke creates a stroke
func NewStroke(color Color, width float32) *Stroke {
	return &Stroke{Color: color, Width: width}
}

// Fill describes an interior paint
type Fill struct {
	Color Color
}

// NewFill creates a fill
func NewFill(color Color) *Fill {
	return &Fill{Color: color}
}

// PathStyle is the paint applied to a path-like layer. Nil means absent.
type PathStyle struct {
	Stroke *Stroke
	Fill   *Fill
}

// NewPathStyle creates a style from an optional stroke and fill
func NewPathStyle(stroke *Stroke, fill *Fill) PathStyle {
	return PathStyle{Stroke: stroke, Fill: fill}
}
