// Package tui is tickit's bubbletea front end: the task list with its Todo
// and Done tabs plus the timer, info and add screens.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names a palette. Values are checked by the config package.
type Theme string

const (
	ThemeAuto  Theme = "auto" // follow the terminal background
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ResolveStyles returns the styles for theme. ThemeAuto asks the terminal
// behind out for its background. With NO_COLOR set every style renders as
// plain text.
func ResolveStyles(theme Theme, out *termenv.Output) Styles {
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if theme == ThemeAuto {
		theme = ThemeLight
		if out.HasDarkBackground() {
			theme = ThemeDark
		}
	}
	return GetStyles(theme)
}
