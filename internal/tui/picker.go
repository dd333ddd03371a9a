package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dedene/casekit/internal/ui"
)

// State represents the current phase of the TUI model.
type State int

const (
	// StatePicking is the transform list with live preview.
	StatePicking State = iota
	// StateInputting collects the text to transform.
	StateInputting
	// StateDone means the TUI is finished and ready to quit.
	StateDone
)

// previewLines is the height reserved below the list.
const previewLines = 3

// PreviewFunc renders the output of transform id for text.
type PreviewFunc func(id, text string) string

// Model is the bubbletea model for the transform picker TUI.
type Model struct {
	state     State
	list      list.Model
	input     textinput.Model
	preview   PreviewFunc
	text      string
	selected  *TransformItem
	cancelled bool
	width     int
	height    int
	ready     bool
}

// NewPicker creates a picker over items. With empty text the model starts
// by asking for the text to transform.
func NewPicker(items []list.Item, text string, preview PreviewFunc) Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select a transform"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Placeholder = "Text to transform"
	ti.CharLimit = 4096
	ti.SetValue(text)

	m := Model{
		state:   StatePicking,
		list:    l,
		input:   ti,
		preview: preview,
		text:    text,
	}

	if text == "" {
		m.state = StateInputting
		m.input.Focus()
	}

	return m
}

// Init starts the cursor blinking when the model opens on text input.
func (m Model) Init() tea.Cmd {
	if m.state == StateInputting {
		return textinput.Blink
	}

	return nil
}

// Update handles messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.list.SetSize(wsm.Width, max(wsm.Height-2-previewLines, 1))
		m.input.Width = max(wsm.Width-4, 1)
		m.ready = true

		return m, nil
	}

	switch m.state {
	case StatePicking:
		return m.updatePicking(msg)
	case StateInputting:
		return m.updateInputting(msg)
	}

	return m, nil
}

// updatePicking handles messages in the transform list state.
func (m Model) updatePicking(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		filtering := m.list.FilterState() == list.Filtering

		switch keyMsg.String() {
		case "ctrl+c":
			return m.cancel()

		case "esc":
			// Only quit on esc when not actively filtering.
			if !filtering {
				return m.cancel()
			}

		case "tab":
			if !filtering {
				m.state = StateInputting
				m.input.Focus()

				return m, textinput.Blink
			}

		case "enter":
			// When actively filtering, delegate to list (confirms filter).
			if filtering {
				break
			}

			item, ok := m.list.SelectedItem().(TransformItem)
			if !ok {
				return m, nil
			}

			m.selected = &item
			m.state = StateDone

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// updateInputting handles messages in the text input state.
func (m Model) updateInputting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m.cancel()

		case "esc":
			// Back to the list when there is text to preview, else quit.
			if m.text == "" {
				return m.cancel()
			}

			m.input.SetValue(m.text)
			m.input.Blur()
			m.state = StatePicking

			return m, nil

		case "enter":
			if m.input.Value() == "" {
				return m, nil
			}

			m.text = m.input.Value()
			m.input.Blur()
			m.state = StatePicking

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.cancelled = true
	m.state = StateDone

	return m, tea.Quit
}

// View renders the current TUI state.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.state {
	case StatePicking:
		return m.list.View() + "\n" + m.viewPreview()
	case StateInputting:
		return m.viewInputting()
	}

	return ""
}

// viewPreview renders the selected transform's output on one line.
func (m Model) viewPreview() string {
	item, ok := m.list.SelectedItem().(TransformItem)
	if !ok || m.preview == nil {
		return ""
	}

	width := max(m.width-4, 10)
	out := m.preview(item.Descriptor().ID, m.text)

	var b strings.Builder

	fmt.Fprintf(&b, "  In:  %s\n", ui.Snippet(m.text, width))
	fmt.Fprintf(&b, "  Out: %s\n", ui.Snippet(out, width))
	b.WriteString("  Enter: apply | Tab: edit text | Esc: quit")

	return b.String()
}

// viewInputting renders the text input form.
func (m Model) viewInputting() string {
	var b strings.Builder

	b.WriteString("Text to transform\n\n")
	fmt.Fprintf(&b, "  %s\n", m.input.View())
	b.WriteString("\n  Enter: confirm | Esc: back | Ctrl+C: quit\n")

	return b.String()
}

// Selected returns the chosen transform, or nil if none was chosen.
func (m Model) Selected() *TransformItem { return m.selected }

// Cancelled returns true if the user cancelled the picker.
func (m Model) Cancelled() bool { return m.cancelled }

// State returns the current picker state.
func (m Model) State() State { return m.state }

// Text returns the text the picker previews with.
func (m Model) Text() string { return m.text }
