package tui

import (
	"bytes"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/flashingpumpkin/tickit/internal/todo"
)

func TestProgram_ToggleAndQuit(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "dumb")

	store, err := todo.Open(todo.NewMemoryBackend(todo.Task{ID: "1", Title: "Ship it"}))
	if err != nil {
		t.Fatal(err)
	}
	changes, unsubscribe := store.Subscribe()
	defer unsubscribe()

	app := NewApp(store, AppOptions{Styles: DarkStyles(), Changes: changes})
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Ship it"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeySpace})
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("No Tasks to be done"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	out, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(3*time.Second)))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(out) == 0 {
		t.Error("expected output from the program")
	}

	task, _ := store.Get("1")
	if !task.Checked {
		t.Error("space should have checked the task")
	}
}
