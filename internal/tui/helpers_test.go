package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashingpumpkin/tickit/internal/todo"
)

// recordingStore wraps a real store and records every dispatched command.
type recordingStore struct {
	*todo.Store
	calls []string
}

func (r *recordingStore) Toggle(id string, isChecked bool) error {
	r.calls = append(r.calls, fmt.Sprintf("toggle(%s,%t)", id, isChecked))
	return r.Store.Toggle(id, isChecked)
}

func (r *recordingStore) Delete(id string) error {
	r.calls = append(r.calls, fmt.Sprintf("delete(%s)", id))
	return r.Store.Delete(id)
}

func (r *recordingStore) Start(id string) error {
	r.calls = append(r.calls, fmt.Sprintf("start(%s)", id))
	return r.Store.Start(id)
}

func (r *recordingStore) Stop() error {
	r.calls = append(r.calls, "stop()")
	return r.Store.Stop()
}

func newRecordingStore(t *testing.T, tasks ...todo.Task) *recordingStore {
	t.Helper()
	s, err := todo.Open(todo.NewMemoryBackend(tasks...))
	if err != nil {
		t.Fatalf("todo.Open() error = %v", err)
	}
	return &recordingStore{Store: s}
}

var testEpoch = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

// newTestTodo returns a sized list screen whose clock is fixed at testEpoch.
func newTestTodo(t *testing.T, tasks ...todo.Task) (TodoModel, *recordingStore) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	store := newRecordingStore(t, tasks...)
	m := NewTodoModel(store, TodoOptions{
		DeleteDuration: 400 * time.Millisecond,
		FrameInterval:  16 * time.Millisecond,
		Styles:         DarkStyles(),
	})
	m.now = func() time.Time { return testEpoch }
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, store
}

// pressKey simulates a rune key press.
func pressKey(m TodoModel, k string) (TodoModel, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// pressSpecial simulates a special key press.
func pressSpecial(m TodoModel, keyType tea.KeyType) (TodoModel, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: keyType})
}

// frameAt delivers a slide-out frame for id.
func frameAt(m TodoModel, id string, d time.Duration) (TodoModel, tea.Cmd) {
	return m.Update(deleteFrameMsg{ID: id, At: testEpoch.Add(d)})
}

// navigation runs cmd and returns the NavigateMsg it produced.
func navigation(t *testing.T, cmd tea.Cmd) NavigateMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a navigation command, got nil")
	}
	msg, ok := cmd().(NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	return msg
}

func sampleTasks() []todo.Task {
	return []todo.Task{
		{ID: "1", Title: "X"},
		{ID: "2", Title: "Write report"},
		{ID: "3", Title: "Buy milk", Checked: true},
	}
}
