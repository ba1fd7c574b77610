package tui

import "github.com/charmbracelet/bubbles/key"

// listKeyMap holds the bindings of the task list.
type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Todo   key.Binding
	Done   key.Binding
	Toggle key.Binding
	Start  key.Binding
	Info   key.Binding
	Add    key.Binding
	Delete key.Binding
	Quit   key.Binding
}

func defaultListKeys() listKeyMap {
	return listKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Tab:    key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "todo/done")),
		Todo:   key.NewBinding(key.WithKeys("1")),
		Done:   key.NewBinding(key.WithKeys("2")),
		Toggle: key.NewBinding(key.WithKeys(" ", "c"), key.WithHelp("space", "check")),
		Start:  key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start timer")),
		Info:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Add:    key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Toggle, k.Start, k.Info, k.Add, k.Delete, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.Toggle, k.Start, k.Info},
		{k.Add, k.Delete, k.Quit},
	}
}

// doneHelp hides the start binding, which the Done tab does not offer.
type doneHelp struct{ listKeyMap }

func (k doneHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Toggle, k.Info, k.Add, k.Delete, k.Quit}
}

// promptKeyMap holds the bindings of a confirmation prompt.
type promptKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Switch  key.Binding
	Yes     key.Binding
	No      key.Binding
	Confirm key.Binding
}

func defaultPromptKeys() promptKeyMap {
	return promptKeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "select")),
		Right:   key.NewBinding(key.WithKeys("right", "l")),
		Switch:  key.NewBinding(key.WithKeys("tab", "shift+tab")),
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y/n", "quick choice")),
		No:      key.NewBinding(key.WithKeys("n", "esc", "q"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	}
}

// ShortHelp implements help.KeyMap.
func (k promptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Yes, k.Confirm, k.No}
}

// FullHelp implements help.KeyMap.
func (k promptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// screenKeyMap holds the bindings of the detail screens.
type screenKeyMap struct {
	Stop key.Binding
	Back key.Binding
	Save key.Binding
}

func defaultScreenKeys() screenKeyMap {
	return screenKeyMap{
		Stop: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop timer")),
		Back: key.NewBinding(key.WithKeys("esc", "q", "backspace"), key.WithHelp("esc", "back")),
		Save: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	}
}
