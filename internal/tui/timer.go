package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashingpumpkin/tickit/internal/util"
)

// TimerModel shows the running timer for a task.
type TimerModel struct {
	store  Store
	title  string
	seq    int
	styles Styles
	keys   screenKeyMap
	width  int
	err    error
}

// NewTimerModel creates the timer screen. seq tags its ticks so a replaced
// screen's ticks are ignored.
func NewTimerModel(store Store, title string, seq int, styles Styles) TimerModel {
	return TimerModel{
		store:  store,
		title:  title,
		seq:    seq,
		styles: styles,
		keys:   defaultScreenKeys(),
	}
}

// Title returns the screen's title parameter.
func (m TimerModel) Title() string {
	return m.title
}

// Init starts the once-a-second refresh.
func (m TimerModel) Init() tea.Cmd {
	return m.tick()
}

func (m TimerModel) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(time.Second, func(at time.Time) tea.Msg {
		return timerTickMsg{seq: seq, At: at}
	})
}

// Update implements tea.Model.
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case timerTickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Stop):
			if err := m.store.Stop(); err != nil {
				m.err = err
				return m, nil
			}
			return m, back
		case key.Matches(msg, m.keys.Back):
			return m, back
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m TimerModel) View() string {
	var b strings.Builder

	b.WriteString(" ")
	b.WriteString(m.styles.Brand.Render("Timer"))
	b.WriteString(m.styles.Label.Render("  " + m.title))
	b.WriteString("\n")
	b.WriteString(renderSeparator(m.width, m.styles.Separator))
	b.WriteString("\n\n")

	timer := m.store.Timer()
	now := m.store.Now()
	if !timer.Active() {
		b.WriteString(" ")
		b.WriteString(m.styles.Label.Render("Timer stopped"))
		b.WriteString("\n")
	} else {
		elapsed := timer.Elapsed(now)
		b.WriteString("   ")
		b.WriteString(m.styles.Clock.Render(util.FormatClock(elapsed)))
		b.WriteString("\n\n")

		var spent time.Duration
		for _, t := range m.store.Tasks() {
			if t.ID == timer.TaskID {
				spent = t.Spent
			}
		}
		b.WriteString(" ")
		b.WriteString(m.styles.Label.Render("Total: "))
		b.WriteString(m.styles.Value.Render(util.FormatSpent(spent + elapsed)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n ")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderSeparator(m.width, m.styles.Separator))
	b.WriteString("\n ")
	b.WriteString(helpView(m.styles, m.keys.Stop, m.keys.Back))
	return b.String()
}

// helpView renders a one-line help bar for the given bindings.
func helpView(styles Styles, bindings ...key.Binding) string {
	h := help.New()
	h.Styles.ShortKey = styles.Help
	h.Styles.ShortDesc = styles.Help
	h.Styles.ShortSeparator = styles.Help
	return h.ShortHelpView(bindings)
}
