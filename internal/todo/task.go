// Package todo provides the task store shared by the TUI and the CLI.
package todo

import (
	"time"
)

// Task is a single to-do item.
type Task struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Checked   bool          `json:"is_checked"`
	Running   bool          `json:"is_running"`
	Spent     time.Duration `json:"spent"`
	CreatedAt time.Time     `json:"created_at"`
}

// Timer records which task is being timed and since when.
// The zero value means no timer is running.
type Timer struct {
	TaskID    string    `json:"task_id,omitempty"`
	StartedAt time.Time `json:"started_at,omitempty"`
}

// Active reports whether the timer is tracking a task.
func (t Timer) Active() bool {
	return t.TaskID != ""
}

// Elapsed returns the time since the timer started, or 0 when idle.
func (t Timer) Elapsed(now time.Time) time.Duration {
	if !t.Active() || now.Before(t.StartedAt) {
		return 0
	}
	return now.Sub(t.StartedAt)
}

// Snapshot is the persisted shape of the store.
type Snapshot struct {
	Tasks []Task `json:"tasks"`
	Timer Timer  `json:"timer"`
}

// clone returns a deep copy so callers never share the backing array.
func (s Snapshot) clone() Snapshot {
	tasks := make([]Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	return Snapshot{Tasks: tasks, Timer: s.Timer}
}
