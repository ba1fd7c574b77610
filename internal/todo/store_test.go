package todo

import (
	"errors"
	"testing"
	"time"

	tickerrors "github.com/flashingpumpkin/tickit/internal/errors"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T, tasks ...Task) (*Store, *MemoryBackend, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	backend := NewMemoryBackend(tasks...)
	s, err := Open(backend, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, backend, clock
}

func TestStore_Add_AppendsTask(t *testing.T) {
	s, backend, _ := newTestStore(t, Task{ID: "1", Title: "first"})

	task, err := s.Add("  second  ")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if task.Title != "second" {
		t.Errorf("Title = %q; want %q", task.Title, "second")
	}
	if task.ID == "" {
		t.Error("Add() returned task without ID")
	}

	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("len(Tasks()) = %d; want 2", len(tasks))
	}
	if tasks[1].ID != task.ID {
		t.Errorf("new task not appended at end: %v", tasks)
	}
	saved, _ := backend.Load()
	if len(saved.Tasks) != 2 || saved.Tasks[1].ID != task.ID {
		t.Errorf("backend tasks = %+v; want the new task saved", saved.Tasks)
	}
}

func TestStore_Add_RejectsEmptyTitle(t *testing.T) {
	s, backend, _ := newTestStore(t)

	_, err := s.Add("   ")
	if !errors.Is(err, tickerrors.ErrEmptyTitle) {
		t.Errorf("Add() error = %v; want ErrEmptyTitle", err)
	}
	if saved, _ := backend.Load(); len(saved.Tasks) != 0 {
		t.Errorf("backend tasks = %+v; want nothing saved", saved.Tasks)
	}
}

func TestStore_Toggle(t *testing.T) {
	s, _, _ := newTestStore(t, Task{ID: "1", Title: "a"})

	if err := s.Toggle("1", false); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	task, _ := s.Get("1")
	if !task.Checked {
		t.Error("task should be checked after Toggle(id, false)")
	}

	if err := s.Toggle("1", true); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	task, _ = s.Get("1")
	if task.Checked {
		t.Error("task should be unchecked after Toggle(id, true)")
	}
}

func TestStore_Toggle_StopsRunningTask(t *testing.T) {
	s, _, clock := newTestStore(t, Task{ID: "1", Title: "a"})

	if err := s.Start("1"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	clock.Advance(90 * time.Second)
	if err := s.Toggle("1", false); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	task, _ := s.Get("1")
	if task.Running {
		t.Error("checked task should not be running")
	}
	if task.Spent != 90*time.Second {
		t.Errorf("Spent = %v; want 90s", task.Spent)
	}
	if s.Timer().Active() {
		t.Error("timer should be idle")
	}
}

func TestStore_Toggle_UnknownID(t *testing.T) {
	s, _, _ := newTestStore(t)

	err := s.Toggle("missing", false)
	if !errors.Is(err, tickerrors.ErrTaskNotFound) {
		t.Errorf("Toggle() error = %v; want ErrTaskNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s, _, _ := newTestStore(t,
		Task{ID: "1", Title: "a"},
		Task{ID: "2", Title: "b"},
		Task{ID: "3", Title: "c"},
	)

	if err := s.Delete("2"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	tasks := s.Tasks()
	if len(tasks) != 2 || tasks[0].ID != "1" || tasks[1].ID != "3" {
		t.Errorf("Tasks() = %v; want [1 3]", tasks)
	}

	if err := s.Delete("2"); !errors.Is(err, tickerrors.ErrTaskNotFound) {
		t.Errorf("second Delete() error = %v; want ErrTaskNotFound", err)
	}
}

func TestStore_Delete_ClearsTimer(t *testing.T) {
	s, _, _ := newTestStore(t, Task{ID: "1", Title: "a"})

	_ = s.Start("1")
	if err := s.Delete("1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if s.Timer().Active() {
		t.Error("timer should be cleared when its task is deleted")
	}
}

func TestStore_StartStop(t *testing.T) {
	s, _, clock := newTestStore(t, Task{ID: "1", Title: "a", Spent: time.Minute})

	if _, ok := s.Running(); ok {
		t.Fatal("no task should be running initially")
	}

	if err := s.Start("1"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	running, ok := s.Running()
	if !ok || running.ID != "1" {
		t.Fatalf("Running() = %v, %v; want task 1", running, ok)
	}
	timer := s.Timer()
	if timer.TaskID != "1" || !timer.StartedAt.Equal(clock.Now()) {
		t.Errorf("Timer() = %+v", timer)
	}

	clock.Advance(30 * time.Second)
	if got := s.Timer().Elapsed(clock.Now()); got != 30*time.Second {
		t.Errorf("Elapsed() = %v; want 30s", got)
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	task, _ := s.Get("1")
	if task.Running {
		t.Error("task should not be running after Stop()")
	}
	if task.Spent != time.Minute+30*time.Second {
		t.Errorf("Spent = %v; want 1m30s", task.Spent)
	}
}

func TestStore_Start_DoesNotStopOtherTasks(t *testing.T) {
	s, _, _ := newTestStore(t, Task{ID: "1", Title: "a"}, Task{ID: "2", Title: "b"})

	_ = s.Start("1")
	_ = s.Start("2")

	a, _ := s.Get("1")
	b, _ := s.Get("2")
	if !a.Running || !b.Running {
		t.Errorf("both tasks should be flagged running: %v %v", a, b)
	}
	if s.Timer().TaskID != "2" {
		t.Errorf("timer task = %q; want 2", s.Timer().TaskID)
	}

	_ = s.Stop()
	for _, task := range s.Tasks() {
		if task.Running {
			t.Errorf("task %s still running after Stop()", task.ID)
		}
	}
}

func TestStore_Stop_WhenIdleIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t, Task{ID: "1", Title: "a"})

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	task, _ := s.Get("1")
	if task.Spent != 0 {
		t.Errorf("Spent = %v; want 0", task.Spent)
	}
}

func TestStore_Resolve(t *testing.T) {
	s, _, _ := newTestStore(t,
		Task{ID: "abc123", Title: "a"},
		Task{ID: "abd456", Title: "b"},
	)

	tests := []struct {
		name    string
		prefix  string
		wantID  string
		wantErr error
	}{
		{name: "exact", prefix: "abc123", wantID: "abc123"},
		{name: "unique prefix", prefix: "abd", wantID: "abd456"},
		{name: "ambiguous", prefix: "ab", wantErr: tickerrors.ErrAmbiguousID},
		{name: "missing", prefix: "zz", wantErr: tickerrors.ErrTaskNotFound},
		{name: "empty", prefix: "", wantErr: tickerrors.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := s.Resolve(tt.prefix)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v; want %v", tt.prefix, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.prefix, err)
			}
			if task.ID != tt.wantID {
				t.Errorf("Resolve(%q) = %q; want %q", tt.prefix, task.ID, tt.wantID)
			}
		})
	}
}

func TestStore_TasksReturnsCopy(t *testing.T) {
	s, _, _ := newTestStore(t, Task{ID: "1", Title: "a"})

	tasks := s.Tasks()
	tasks[0].Title = "changed"

	task, _ := s.Get("1")
	if task.Title != "a" {
		t.Errorf("store mutated through returned slice: %q", task.Title)
	}
}

type failingBackend struct{}

func (failingBackend) Load() (Snapshot, error) {
	return Snapshot{Tasks: []Task{{ID: "1"}}}, nil
}

func (failingBackend) Update(func(*Snapshot) error) (Snapshot, error) {
	return Snapshot{}, errors.New("disk full")
}

func TestStore_FailedSaveLeavesStateUnchanged(t *testing.T) {
	s, err := Open(failingBackend{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := s.Delete("1"); err == nil {
		t.Fatal("Delete() should fail when save fails")
	}
	if len(s.Tasks()) != 1 {
		t.Error("failed save should not change the in-memory state")
	}
}

func TestStore_RejectedMutationIsNotSaved(t *testing.T) {
	s, backend, _ := newTestStore(t, Task{ID: "1", Title: "a"})

	if err := s.Toggle("missing", false); !errors.Is(err, tickerrors.ErrTaskNotFound) {
		t.Fatalf("Toggle() error = %v; want ErrTaskNotFound", err)
	}
	saved, _ := backend.Load()
	if len(saved.Tasks) != 1 || saved.Tasks[0].Checked {
		t.Errorf("backend tasks = %+v; want untouched", saved.Tasks)
	}
}

func TestStore_Subscribe(t *testing.T) {
	s, _, _ := newTestStore(t, Task{ID: "1", Title: "a"})

	ch, cancel := s.Subscribe()

	_ = s.Toggle("1", false)
	_ = s.Toggle("1", true)

	select {
	case <-ch:
	default:
		t.Fatal("expected a change notification")
	}
	select {
	case <-ch:
		t.Fatal("notifications should coalesce")
	default:
	}

	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after unsubscribe")
	}
}
