package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestResolveStyles_ExplicitTheme(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	out := termenv.NewOutput(io.Discard)

	tests := []struct {
		theme Theme
		want  Styles
	}{
		{ThemeDark, DarkStyles()},
		{ThemeLight, LightStyles()},
	}
	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			got := ResolveStyles(tt.theme, out)
			if got.Title.GetForeground() != tt.want.Title.GetForeground() {
				t.Errorf("Title foreground = %v; want %v", got.Title.GetForeground(), tt.want.Title.GetForeground())
			}
		})
	}
}

func TestResolveStyles_NoColor(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	t.Setenv("NO_COLOR", "1")

	ResolveStyles(ThemeDark, termenv.NewOutput(io.Discard))

	if got := lipgloss.ColorProfile(); got != termenv.Ascii {
		t.Errorf("ColorProfile() = %v; want Ascii", got)
	}
}
