package tui

import "github.com/charmbracelet/lipgloss"

// Dark theme colour palette (for dark terminal backgrounds).
const (
	ColourAmber      = lipgloss.Color("214") // #FFB000 - Header, active tab, cursor
	ColourAmberDim   = lipgloss.Color("136") // #996600 - Separators, help bar
	ColourAmberLight = lipgloss.Color("222") // #FFD966 - Task titles, values
	ColourAmberFaded = lipgloss.Color("178") // #B38F00 - Labels, inactive tab
	ColourBackground = lipgloss.Color("0")   // #000000 - Terminal background
	ColourSuccess    = lipgloss.Color("82")  // #00FF00 - Checked tasks
	ColourWarning    = lipgloss.Color("208") // #FFAA00 - Running timer
	ColourError      = lipgloss.Color("196") // #FF3300 - Errors
	ColourEmpty      = lipgloss.Color("250") // light grey - empty-state message
)

// Light theme colour palette (for light terminal backgrounds).
const (
	ColourAmberDark       = lipgloss.Color("94")
	ColourAmberDarkDim    = lipgloss.Color("58")
	ColourAmberDarkFaded  = lipgloss.Color("101")
	ColourBackgroundLight = lipgloss.Color("231")
	ColourSuccessDark     = lipgloss.Color("22")
	ColourWarningDark     = lipgloss.Color("166")
	ColourErrorDark       = lipgloss.Color("160")
	ColourEmptyDark       = lipgloss.Color("245")
)

// Row glyphs.
const (
	IconUnchecked = "[ ]"
	IconChecked   = "[x]"
	IconRunning   = "▶"
	IconCursor    = ">"
	IconAdd       = "+"
	IconBrand     = "◆"
)

// Styles contains all lipgloss styles for the UI.
type Styles struct {
	// Header
	Brand       lipgloss.Style
	AddButton   lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Separator   lipgloss.Style

	// Rows
	Cursor     lipgloss.Style
	Title      lipgloss.Style
	TitleDone  lipgloss.Style
	Checkbox   lipgloss.Style
	Running    lipgloss.Style
	Spent      lipgloss.Style
	EmptyState lipgloss.Style

	// Detail screens
	Label lipgloss.Style
	Value lipgloss.Style
	Clock lipgloss.Style

	// Status
	Error lipgloss.Style

	// Prompt
	DialogTitle    lipgloss.Style
	DialogText     lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style

	// Help bar
	Help lipgloss.Style
}

// DarkStyles returns the amber theme optimised for dark terminal backgrounds.
func DarkStyles() Styles {
	return Styles{
		Brand:       lipgloss.NewStyle().Foreground(ColourAmber).Bold(true),
		AddButton:   lipgloss.NewStyle().Foreground(ColourAmber).Bold(true).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Foreground(ColourBackground).Background(ColourAmber).Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(ColourAmberFaded).Padding(0, 1),
		Separator:   lipgloss.NewStyle().Foreground(ColourAmberDim),

		Cursor:     lipgloss.NewStyle().Foreground(ColourAmber).Bold(true),
		Title:      lipgloss.NewStyle().Foreground(ColourAmberLight),
		TitleDone:  lipgloss.NewStyle().Foreground(ColourSuccess).Strikethrough(true),
		Checkbox:   lipgloss.NewStyle().Foreground(ColourAmberFaded),
		Running:    lipgloss.NewStyle().Foreground(ColourWarning).Bold(true),
		Spent:      lipgloss.NewStyle().Foreground(ColourAmberDim),
		EmptyState: lipgloss.NewStyle().Foreground(ColourEmpty).Bold(true),

		Label: lipgloss.NewStyle().Foreground(ColourAmberFaded),
		Value: lipgloss.NewStyle().Foreground(ColourAmberLight),
		Clock: lipgloss.NewStyle().Foreground(ColourAmber).Bold(true),

		Error: lipgloss.NewStyle().Foreground(ColourError),

		DialogTitle:    lipgloss.NewStyle().Foreground(ColourAmber).Bold(true),
		DialogText:     lipgloss.NewStyle().Foreground(ColourAmberLight),
		ButtonActive:   lipgloss.NewStyle().Foreground(ColourBackground).Background(ColourAmber).Bold(true).Padding(0, 2),
		ButtonInactive: lipgloss.NewStyle().Foreground(ColourAmberFaded).Padding(0, 2),

		Help: lipgloss.NewStyle().Foreground(ColourAmberDim),
	}
}

// LightStyles returns the amber theme optimised for light terminal backgrounds.
func LightStyles() Styles {
	return Styles{
		Brand:       lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),
		AddButton:   lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Foreground(ColourBackgroundLight).Background(ColourAmberDark).Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(ColourAmberDarkFaded).Padding(0, 1),
		Separator:   lipgloss.NewStyle().Foreground(ColourAmberDarkDim),

		Cursor:     lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),
		Title:      lipgloss.NewStyle().Foreground(ColourAmberDark),
		TitleDone:  lipgloss.NewStyle().Foreground(ColourSuccessDark).Strikethrough(true),
		Checkbox:   lipgloss.NewStyle().Foreground(ColourAmberDarkFaded),
		Running:    lipgloss.NewStyle().Foreground(ColourWarningDark).Bold(true),
		Spent:      lipgloss.NewStyle().Foreground(ColourAmberDarkDim),
		EmptyState: lipgloss.NewStyle().Foreground(ColourEmptyDark).Bold(true),

		Label: lipgloss.NewStyle().Foreground(ColourAmberDarkFaded),
		Value: lipgloss.NewStyle().Foreground(ColourAmberDark),
		Clock: lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),

		Error: lipgloss.NewStyle().Foreground(ColourErrorDark),

		DialogTitle:    lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),
		DialogText:     lipgloss.NewStyle().Foreground(ColourAmberDark),
		ButtonActive:   lipgloss.NewStyle().Foreground(ColourBackgroundLight).Background(ColourAmberDark).Bold(true).Padding(0, 2),
		ButtonInactive: lipgloss.NewStyle().Foreground(ColourAmberDarkFaded).Padding(0, 2),

		Help: lipgloss.NewStyle().Foreground(ColourAmberDarkDim),
	}
}

// GetStyles returns the Styles for the given theme.
// Falls back to dark theme for unknown theme values.
func GetStyles(theme Theme) Styles {
	switch theme {
	case ThemeLight:
		return LightStyles()
	default:
		return DarkStyles()
	}
}

// renderSeparator renders a horizontal rule of the given width.
func renderSeparator(width int, style lipgloss.Style) string {
	if width <= 0 {
		width = defaultWidth
	}
	return style.Render(repeatString("─", width))
}

// repeatString repeats a string n times.
func repeatString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += s
	}
	return result
}
