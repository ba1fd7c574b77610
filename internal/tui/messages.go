package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashingpumpkin/tickit/internal/todo"
)

// Route names a screen.
type Route int

const (
	// RouteTodo is the task list.
	RouteTodo Route = iota
	// RouteTimer tracks time spent on the running task.
	RouteTimer
	// RouteTodoInfo shows a single task record.
	RouteTodoInfo
	// RouteAdd creates a task.
	RouteAdd
)

// String returns the screen name.
func (r Route) String() string {
	switch r {
	case RouteTimer:
		return "Timer"
	case RouteTodoInfo:
		return "TodoInfo"
	case RouteAdd:
		return "Add"
	default:
		return "Todo"
	}
}

// NavigateMsg asks the app to show another screen.
type NavigateMsg struct {
	Route Route
	// Title is the Timer screen parameter.
	Title string
	// Task is the TodoInfo screen parameter.
	Task todo.Task
}

// BackMsg returns to the task list.
type BackMsg struct{}

// storeChangedMsg signals that the store was mutated.
type storeChangedMsg struct{}

// deleteFrameMsg advances the slide-out of one task.
type deleteFrameMsg struct {
	ID string
	At time.Time
}

// timerTickMsg refreshes the timer screen.
type timerTickMsg struct {
	seq int
	At  time.Time
}

// navigate returns a command that emits msg.
func navigate(msg NavigateMsg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// back returns a command that emits BackMsg.
func back() tea.Msg {
	return BackMsg{}
}

// waitForChange blocks until the store signals a change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}
