package todo

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	tickerrors "github.com/flashingpumpkin/tickit/internal/errors"
)

// Backend loads store snapshots and applies updates to them.
type Backend interface {
	Load() (Snapshot, error)
	// Update applies fn to the current persisted snapshot and returns the
	// saved result. When fn fails its error is returned and nothing is saved.
	Update(fn func(*Snapshot) error) (Snapshot, error)
}

// Store is the single shared task container. All mutations are serialised
// and persisted through the backend before subscribers are notified.
type Store struct {
	mu      sync.RWMutex
	snap    Snapshot
	backend Backend
	now     func() time.Time
	logger  *log.Logger

	subMu sync.Mutex
	subs  map[int]chan struct{}
	next  int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger for store mutations.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Open loads the snapshot from backend and returns a ready store.
func Open(backend Backend, opts ...Option) (*Store, error) {
	snap, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	s := &Store{
		snap:    snap.clone(),
		backend: backend,
		now:     time.Now,
		logger:  log.New(io.Discard),
		subs:    make(map[int]chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Tasks returns an ordered copy of all tasks.
func (s *Store) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.clone().Tasks
}

// Timer returns the current timer record.
func (s *Store) Timer() Timer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Timer
}

// Now returns the store's clock reading.
func (s *Store) Now() time.Time {
	return s.now()
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: %s", tickerrors.ErrTaskNotFound, id)
	}
	return s.snap.Tasks[i], nil
}

// Resolve finds the task whose ID equals or starts with prefix.
func (s *Store) Resolve(prefix string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(prefix); i >= 0 {
		return s.snap.Tasks[i], nil
	}
	var found []Task
	for _, t := range s.snap.Tasks {
		if prefix != "" && strings.HasPrefix(t.ID, prefix) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return Task{}, fmt.Errorf("%w: %s", tickerrors.ErrTaskNotFound, prefix)
	case 1:
		return found[0], nil
	default:
		return Task{}, fmt.Errorf("%w: %s matches %d tasks", tickerrors.ErrAmbiguousID, prefix, len(found))
	}
}

// Running returns the first task flagged as running.
func (s *Store) Running() (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.snap.Tasks {
		if t.Running {
			return t, true
		}
	}
	return Task{}, false
}

// Add appends a new unchecked task.
func (s *Store) Add(title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, tickerrors.ErrEmptyTitle
	}
	task := Task{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: s.now(),
	}
	err := s.mutate("add", func(snap *Snapshot) error {
		snap.Tasks = append(snap.Tasks, task)
		return nil
	})
	if err != nil {
		return Task{}, err
	}
	return task, nil
}

// Toggle flips a task's completion state. isChecked is the state the caller
// observed; the task ends up as !isChecked. Checking a running task stops
// its timer.
func (s *Store) Toggle(id string, isChecked bool) error {
	return s.mutate("toggle", func(snap *Snapshot) error {
		i := indexIn(snap.Tasks, id)
		if i < 0 {
			return fmt.Errorf("%w: %s", tickerrors.ErrTaskNotFound, id)
		}
		if !isChecked && snap.Tasks[i].Running {
			s.stopLocked(snap)
		}
		snap.Tasks[i].Checked = !isChecked
		return nil
	})
}

// Delete removes a task. Deleting the timed task clears the timer.
func (s *Store) Delete(id string) error {
	return s.mutate("delete", func(snap *Snapshot) error {
		i := indexIn(snap.Tasks, id)
		if i < 0 {
			return fmt.Errorf("%w: %s", tickerrors.ErrTaskNotFound, id)
		}
		if snap.Timer.TaskID == id {
			snap.Timer = Timer{}
		}
		snap.Tasks = append(snap.Tasks[:i], snap.Tasks[i+1:]...)
		return nil
	})
}

// Start marks a task as running and points the timer at it. It does not stop
// other running tasks; callers wanting a single running task call Stop first.
func (s *Store) Start(id string) error {
	return s.mutate("start", func(snap *Snapshot) error {
		i := indexIn(snap.Tasks, id)
		if i < 0 {
			return fmt.Errorf("%w: %s", tickerrors.ErrTaskNotFound, id)
		}
		if snap.Tasks[i].Running && snap.Timer.TaskID == id {
			return nil
		}
		snap.Tasks[i].Running = true
		snap.Timer = Timer{TaskID: id, StartedAt: s.now()}
		return nil
	})
}

// Stop credits the elapsed time to the timed task and clears every running
// flag. It is a no-op when nothing is running.
func (s *Store) Stop() error {
	return s.mutate("stop", func(snap *Snapshot) error {
		s.stopLocked(snap)
		return nil
	})
}

func (s *Store) stopLocked(snap *Snapshot) {
	if i := indexIn(snap.Tasks, snap.Timer.TaskID); i >= 0 {
		snap.Tasks[i].Spent += snap.Timer.Elapsed(s.now())
	}
	for i := range snap.Tasks {
		snap.Tasks[i].Running = false
	}
	snap.Timer = Timer{}
}

// Subscribe returns a channel that receives a value after every successful
// mutation. Notifications coalesce when the reader falls behind. The returned
// function unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	ch := make(chan struct{}, 1)
	id := s.next
	s.next++
	s.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// mutate applies fn to the backend's current snapshot and adopts the saved
// result, picking up any changes other writers made to the backend.
func (s *Store) mutate(op string, fn func(*Snapshot) error) error {
	s.mu.Lock()
	var rejected error
	next, err := s.backend.Update(func(snap *Snapshot) error {
		rejected = fn(snap)
		return rejected
	})
	if rejected != nil {
		s.mu.Unlock()
		s.logger.Debug("store mutation rejected", "op", op, "err", rejected)
		return rejected
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("store save failed", "op", op, "err", err)
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	s.snap = next.clone()
	count := len(next.Tasks)
	s.mu.Unlock()

	s.logger.Debug("store mutated", "op", op, "tasks", count)
	s.notify()
	return nil
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Store) indexOf(id string) int {
	return indexIn(s.snap.Tasks, id)
}

func indexIn(tasks []Task, id string) int {
	if id == "" {
		return -1
	}
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
