package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashingpumpkin/tickit/internal/todo"
	"github.com/flashingpumpkin/tickit/internal/util"
)

// InfoModel shows one task record.
type InfoModel struct {
	task   todo.Task
	store  Store
	styles Styles
	keys   screenKeyMap
	width  int
}

// NewInfoModel creates the task info screen.
func NewInfoModel(store Store, task todo.Task, styles Styles) InfoModel {
	return InfoModel{task: task, store: store, styles: styles, keys: defaultScreenKeys()}
}

// Task returns the record the screen was opened with.
func (m InfoModel) Task() todo.Task {
	return m.task
}

// Update implements tea.Model.
func (m InfoModel) Update(msg tea.Msg) (InfoModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return m, back
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m InfoModel) View() string {
	var b strings.Builder
	t := m.task

	b.WriteString(" ")
	b.WriteString(m.styles.Brand.Render(t.Title))
	b.WriteString("\n")
	b.WriteString(renderSeparator(m.width, m.styles.Separator))
	b.WriteString("\n\n")

	status := "Todo"
	if t.Checked {
		status = "Done"
	}
	if t.Running {
		status += ", running"
	}

	m.field(&b, "ID", t.ID)
	m.field(&b, "Status", status)
	m.field(&b, "Created", util.FormatTimeAgo(t.CreatedAt, m.store.Now()))
	m.field(&b, "Time spent", util.FormatSpent(t.Spent))

	b.WriteString("\n")
	b.WriteString(renderSeparator(m.width, m.styles.Separator))
	b.WriteString("\n ")
	b.WriteString(helpView(m.styles, m.keys.Back))
	return b.String()
}

func (m InfoModel) field(b *strings.Builder, label, value string) {
	b.WriteString("   ")
	b.WriteString(m.styles.Label.Render(label + ": "))
	b.WriteString(m.styles.Value.Render(value))
	b.WriteString("\n")
}
