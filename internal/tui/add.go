package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AddModel asks for the title of a new task.
type AddModel struct {
	store  Store
	input  textinput.Model
	styles Styles
	keys   screenKeyMap
	width  int
	err    error
}

// NewAddModel creates the add screen with a focused input.
func NewAddModel(store Store, styles Styles) AddModel {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Focus()
	return AddModel{
		store:  store,
		input:  ti,
		styles: styles,
		keys: screenKeyMap{
			Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			Save: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		},
	}
}

// Init starts the cursor blink.
func (m AddModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m AddModel) Update(msg tea.Msg) (AddModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, back
		case key.Matches(msg, m.keys.Save):
			if _, err := m.store.Add(m.input.Value()); err != nil {
				m.err = err
				return m, nil
			}
			return m, back
		}
		m.err = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m AddModel) View() string {
	var b strings.Builder

	b.WriteString(" ")
	b.WriteString(m.styles.Brand.Render("New task"))
	b.WriteString("\n")
	b.WriteString(renderSeparator(m.width, m.styles.Separator))
	b.WriteString("\n\n ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n ")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderSeparator(m.width, m.styles.Separator))
	b.WriteString("\n ")
	b.WriteString(helpView(m.styles, m.keys.Save, m.keys.Back))
	return b.String()
}
