package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/flashingpumpkin/tickit/internal/config"
	"github.com/flashingpumpkin/tickit/internal/testhelpers"
)

// resetFlags restores the package-level flag variables after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	saved := struct {
		configFile, dataFile, theme, logFile, logLevel string
		deleteDuration                                 time.Duration
		minimal, listDone, undoDone, replaceTimer      bool
	}{configFile, dataFile, theme, logFile, logLevel, deleteDuration, minimal, listDone, undoDone, replaceTimer}

	t.Cleanup(func() {
		configFile, dataFile, theme = saved.configFile, saved.dataFile, saved.theme
		logFile, logLevel = saved.logFile, saved.logLevel
		deleteDuration = saved.deleteDuration
		minimal, listDone, undoDone, replaceTimer = saved.minimal, saved.listDone, saved.undoDone, saved.replaceTimer
	})

	// Keep the user's real config file out of the way
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetFlags(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.Theme)
	}
	if cfg.DeleteDuration != config.DefaultDeleteDuration {
		t.Errorf("DeleteDuration = %v", cfg.DeleteDuration)
	}
	if cfg.FrameRate != config.DefaultFrameRate {
		t.Errorf("FrameRate = %d", cfg.FrameRate)
	}
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	resetFlags(t)

	configFile = testhelpers.ConfigFile(t, `theme = "light"
delete_duration = "250ms"
frame_rate = 30
`)
	theme = "dark"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, flag should override file", cfg.Theme)
	}
	if cfg.DeleteDuration != 250*time.Millisecond {
		t.Errorf("DeleteDuration = %v, want 250ms from file", cfg.DeleteDuration)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want 30", cfg.FrameRate)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
		want  string
	}{
		{
			name:  "missing explicit config",
			setup: func(t *testing.T) { configFile = "/nonexistent/tickit.toml" },
			want:  "config file not found",
		},
		{
			name:  "invalid theme flag",
			setup: func(t *testing.T) { theme = "purple" },
			want:  "theme must be",
		},
		{
			name: "bad duration in file",
			setup: func(t *testing.T) {
				configFile = testhelpers.ConfigFile(t, `delete_duration = "soon"`)
			},
			want: "delete_duration",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			tt.setup(t)

			_, err := loadConfig()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("loadConfig() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestShouldUseTUI_MinimalAndCI(t *testing.T) {
	resetFlags(t)

	minimal = true
	if shouldUseTUI() {
		t.Error("--minimal should disable the TUI")
	}

	minimal = false
	t.Setenv("CI", "true")
	if shouldUseTUI() {
		t.Error("CI should disable the TUI")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	resetFlags(t)
	t.Setenv("NO_COLOR", "1")
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	_, path := testhelpers.DataDir(t)
	run := func(args ...string) string {
		t.Helper()
		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		rootCmd.SetArgs(append([]string{"--data", path}, args...))
		t.Cleanup(func() { rootCmd.SetOut(nil) })
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("tickit %v: %v", args, err)
		}
		return buf.String()
	}

	if out := run("add", "Write", "report"); !strings.Contains(out, "Added") {
		t.Errorf("add output = %q", out)
	}
	out := run("list")
	if !strings.Contains(out, "[ ] Write report") {
		t.Fatalf("list output = %q", out)
	}
	id := strings.Fields(out)[0]

	if out := run("done", id); !strings.Contains(out, "Completed") {
		t.Errorf("done output = %q", out)
	}
	if out := run("list"); strings.TrimSpace(out) != "No Tasks to be done" {
		t.Errorf("list after done = %q", out)
	}
	if out := run("list", "--done"); !strings.Contains(out, "[x] Write report") {
		t.Errorf("list --done = %q", out)
	}
	listDone = false

	if out := run("rm", id); !strings.Contains(out, "Removed") {
		t.Errorf("rm output = %q", out)
	}
	if out := run("--minimal"); strings.TrimSpace(out) != "No Tasks to be done" {
		t.Errorf("root --minimal output = %q", out)
	}
}
