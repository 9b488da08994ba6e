package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vectorpad/internal/domain"
	"vectorpad/internal/editor"
	"vectorpad/internal/eventbus"
	"vectorpad/internal/ui/input"
	"vectorpad/internal/ui/views"
)

// Model is the terminal front end of an editor session. It turns terminal
// input into editor events and shows the resulting document state.
type Model struct {
	session *editor.Session
	palette []domain.Color
	keys    input.KeyMap
	help    help.Model
	styles  *views.Styles

	width    int
	height   int
	paletteI int
	selected domain.LayerID
	preview  []domain.ViewportPosition
	status   string
	err      error
}

// NewModel creates a UI model for session. palette is cycled by the
// colour key; it may be empty.
func NewModel(session *editor.Session, palette []domain.Color) *Model {
	names := make([]string, 0, len(session.Tools()))
	for _, k := range session.Tools() {
		names = append(names, k.String())
	}

	return &Model{
		session: session,
		palette: palette,
		keys:    input.DefaultKeyMap(names),
		help:    help.New(),
		styles:  views.NewStyles(),
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.pruneSelection()
		return m, cmd

	case tea.MouseMsg:
		if ev, ok := input.TranslateMouse(msg); ok {
			m.dispatch(ev)
		}

	case EventMsg:
		m.handleNotification(msg.Event)
	}

	m.pruneSelection()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case key.Matches(msg, m.keys.Cycle):
		if len(m.palette) > 0 {
			m.paletteI = (m.paletteI + 1) % len(m.palette)
			m.session.SetPrimaryColor(m.palette[m.paletteI])
		}
		return nil

	case key.Matches(msg, m.keys.Swap):
		m.session.SwapColors()
		return nil

	case key.Matches(msg, m.keys.PrevLayer):
		m.moveSelection(-1)
		return nil

	case key.Matches(msg, m.keys.NextLayer):
		m.moveSelection(1)
		return nil

	case key.Matches(msg, m.keys.Undo):
		if !m.session.Undo() {
			m.status = "nothing to undo"
		}
		return nil

	case key.Matches(msg, m.keys.Redo):
		if !m.session.Redo() {
			m.status = "nothing to redo"
		}
		return nil
	}

	kinds := m.session.Tools()
	for i, b := range m.keys.Tools {
		if key.Matches(msg, b) && i < len(kinds) {
			if err := m.session.SelectTool(kinds[i]); err != nil {
				m.err = err
			}
			m.preview = nil
			return nil
		}
	}

	if ev, ok := input.TranslateKey(msg); ok {
		m.dispatch(ev)
	}
	return nil
}

// dispatch hands ev to the session and applies the UI responses
func (m *Model) dispatch(ev domain.Event) {
	responses, err := m.session.HandleEvent(ev)
	if err != nil {
		m.err = err
	}

	for _, r := range responses {
		switch r := r.(type) {
		case domain.PreviewPathResponse:
			m.preview = r.Points
		case domain.ClearPreviewResponse:
			m.preview = nil
		}
	}
}

func (m *Model) handleNotification(e eventbus.Event) {
	switch e := e.(type) {
	case eventbus.OperationsAppliedEvent:
		m.err = nil
		m.status = fmt.Sprintf("applied %d operation(s), %d layer(s)", len(e.Operations), e.LayerCount)
	case eventbus.HistoryChangedEvent:
		verb := "redo"
		if e.Undo {
			verb = "undo"
		}
		m.status = fmt.Sprintf("%s, %d layer(s)", verb, e.LayerCount)
	case eventbus.ToolChangedEvent:
		m.status = "tool: " + e.Tool
	case eventbus.ColorChangedEvent:
		m.status = fmt.Sprintf("colours: %s / %s", e.Primary.Hex(), e.Secondary.Hex())
	case eventbus.LayerSelectedEvent:
		if len(e.Path) == 0 {
			m.selected = 0
			m.status = "selection cleared"
			return
		}
		m.selected = e.Path[0]
		m.status = fmt.Sprintf("selected layer #%d", m.selected)
	case eventbus.ErrorEvent:
		log.Printf("Editor error: %s: %v", e.Message, e.Err)
		m.err = e.Err
	}
}

// pruneSelection drops the highlighted layer once it has been deleted
func (m *Model) pruneSelection() {
	if m.selected == 0 {
		return
	}
	if _, ok := m.session.Document().Layer(m.selected); !ok {
		m.selected = 0
	}
}

func (m *Model) moveSelection(delta int) {
	ids := m.session.Document().ListLayers()
	if len(ids) == 0 {
		return
	}

	idx := -1
	for i, id := range ids {
		if id == m.selected {
			idx = i
			break
		}
	}

	switch {
	case idx < 0 && delta < 0:
		idx = len(ids) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + delta + len(ids)) % len(ids)
	}

	m.selected = ids[idx]
	m.session.SelectLayer(domain.LayerPath{m.selected})
}

// View renders the UI
func (m *Model) View() string {
	var b strings.Builder
	s := m.styles
	td := m.session.ToolData()

	b.WriteString(s.Title.Render("vectorpad"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s %s  %s %s\n",
		s.Tool.Render("tool: "+m.session.ActiveTool().String()),
		s.Swatch(td.PrimaryColor.Hex()), td.PrimaryColor.Hex(),
		s.Swatch(td.SecondaryColor.Hex()), s.Dim.Render(td.SecondaryColor.Hex()),
	))

	b.WriteString(views.RenderLayers(s, m.session.Document().Layers(), m.selected))
	b.WriteString("\n")

	if len(m.preview) > 0 {
		last := m.preview[len(m.preview)-1]
		b.WriteString(s.Preview.Render(fmt.Sprintf("drawing: %d point(s), at (%d,%d)", len(m.preview), last.X, last.Y)))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(s.StatusError.Render("error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(s.StatusSuccess.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(s.Help.Render(m.help.View(m.keys)))

	return s.Main.Render(b.String())
}
