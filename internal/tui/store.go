package tui

import (
	"time"

	"github.com/flashingpumpkin/tickit/internal/todo"
)

// Store is the task container the screens read from and dispatch to.
// *todo.Store implements it.
type Store interface {
	Tasks() []todo.Task
	Timer() todo.Timer
	Now() time.Time
	Running() (todo.Task, bool)
	Add(title string) (todo.Task, error)
	Toggle(id string, isChecked bool) error
	Delete(id string) error
	Start(id string) error
	Stop() error
}

var _ Store = (*todo.Store)(nil)
