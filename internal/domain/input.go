package domain

import (
	"math"
	"strings"
)

// ViewportPosition is a coordinate in viewport space
type ViewportPosition struct {
	X int
	Y int
}

// Distance returns the Euclidean distance between two positions
func (p ViewportPosition) Distance(other ViewportPosition) float64 {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	return math.Hypot(dx, dy)
}

// MouseKeys is the set of currently held pointer buttons
type MouseKeys uint8

const (
	MouseLeft MouseKeys = 1 << iota
	MouseRight
	MouseMiddle
)

// Contains reports whether every button in k is held
func (m MouseKeys) Contains(k MouseKeys) bool {
	return k != 0 && m&k == k
}

func (m MouseKeys) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	if m.Contains(MouseLeft) {
		names = append(names, "left")
	}
	if m.Contains(MouseRight) {
		names = append(names, "right")
	}
	if m.Contains(MouseMiddle) {
		names = append(names, "middle")
	}
	return strings.Join(names, "+")
}

// Key identifies a keyboard key
type Key int

const (
	KeyUnknown Key = iota
	KeyZ
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyShift
	KeyControl
	KeySpace
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyZ:         "z",
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyShift:     "shift",
	KeyControl:   "ctrl",
	KeySpace:     " ",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name to its identity. Unrecognised names yield KeyUnknown.
func ParseKey(name string) Key {
	switch strings.ToLower(name) {
	case "z":
		return KeyZ
	case "esc", "escape":
		return KeyEscape
	case "enter", "return":
		return KeyEnter
	case "backspace":
		return KeyBackspace
	case "delete", "del":
		return KeyDelete
	case "shift":
		return KeyShift
	case "ctrl", "control":
		return KeyControl
	case " ", "space":
		return KeySpace
	}
	return KeyUnknown
}
