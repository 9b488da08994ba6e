package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the editor command bindings. Keys not bound here are
// forwarded to the active tool.
type KeyMap struct {
	Tools     []key.Binding
	Cycle     key.Binding
	Swap      key.Binding
	PrevLayer key.Binding
	NextLayer key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Delete    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings. toolNames label the number
// keys 1..n in order.
func DefaultKeyMap(toolNames []string) KeyMap {
	km := KeyMap{
		Cycle: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next color"),
		),
		Swap: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "swap colors"),
		),
		PrevLayer: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev layer"),
		),
		NextLayer: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next layer"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "redo"),
		),
		// Delete is handled by the tools; bound here only for the help view
		Delete: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "delete last layer"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	for i, name := range toolNames {
		if i >= 9 {
			break
		}
		k := string(rune('1' + i))
		km.Tools = append(km.Tools, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, name),
		))
	}

	return km
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Delete, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Tools,
		{k.Cycle, k.Swap, k.PrevLayer, k.NextLayer},
		{k.Delete, k.Undo, k.Redo},
		{k.Help, k.Quit},
	}
}
