package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Decision is the outcome of a key press on a Prompt.
type Decision int

const (
	// Undecided means the prompt stays open.
	Undecided Decision = iota
	// Confirmed means the user chose Yes.
	Confirmed
	// Cancelled means the user chose No.
	Cancelled
)

const (
	choiceNo  = 0
	choiceYes = 1
)

// Prompt is a blocking two-choice confirmation. The No button is on the left
// and focused by default.
type Prompt struct {
	Title   string
	Message string
	choice  int
	keys    promptKeyMap
}

// NewPrompt returns a prompt with No focused.
func NewPrompt(title, message string) Prompt {
	return Prompt{
		Title:   title,
		Message: message,
		choice:  choiceNo,
		keys:    defaultPromptKeys(),
	}
}

// Update handles a key press and reports whether the prompt was answered.
func (p Prompt) Update(msg tea.KeyMsg) (Prompt, Decision) {
	switch {
	case key.Matches(msg, p.keys.Yes):
		p.choice = choiceYes
		return p, Confirmed
	case key.Matches(msg, p.keys.No):
		p.choice = choiceNo
		return p, Cancelled
	case key.Matches(msg, p.keys.Left):
		p.choice = choiceNo
	case key.Matches(msg, p.keys.Right):
		p.choice = choiceYes
	case key.Matches(msg, p.keys.Switch):
		p.choice = (p.choice + 1) % 2
	case key.Matches(msg, p.keys.Confirm):
		if p.yesFocused() {
			return p, Confirmed
		}
		return p, Cancelled
	}
	return p, Undecided
}

// yesFocused reports whether the Yes button has focus.
func (p Prompt) yesFocused() bool {
	return p.choice == choiceYes
}

// View renders the prompt.
func (p Prompt) View(styles Styles, width int) string {
	var b strings.Builder

	b.WriteString(" ")
	b.WriteString(styles.DialogTitle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(renderSeparator(width, styles.Separator))
	b.WriteString("\n\n ")
	b.WriteString(styles.DialogText.Render(p.Message))
	b.WriteString("\n\n ")

	no, yes := styles.ButtonInactive, styles.ButtonInactive
	if p.yesFocused() {
		yes = styles.ButtonActive
	} else {
		no = styles.ButtonActive
	}
	b.WriteString(no.Render("No"))
	b.WriteString("  ")
	b.WriteString(yes.Render("Yes"))
	b.WriteString("\n\n")

	b.WriteString(renderSeparator(width, styles.Separator))
	b.WriteString("\n ")
	h := help.New()
	h.Styles.ShortKey = styles.Help
	h.Styles.ShortDesc = styles.Help
	h.Styles.ShortSeparator = styles.Help
	b.WriteString(h.View(p.keys))

	return b.String()
}
