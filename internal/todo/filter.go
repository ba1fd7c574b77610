package todo

// Tab selects which tasks a list shows.
type Tab int

const (
	// TabTodo shows tasks that are not yet checked.
	TabTodo Tab = iota
	// TabDone shows checked tasks.
	TabDone
)

// String returns the tab label.
func (t Tab) String() string {
	if t == TabDone {
		return "Done"
	}
	return "Todo"
}

// TabFromIndex maps a header index to a tab: 0 is Todo, anything else is Done.
func TabFromIndex(i int) Tab {
	if i == 0 {
		return TabTodo
	}
	return TabDone
}

// Visible reports whether a task belongs on the given tab.
func Visible(tab Tab, t Task) bool {
	if tab == TabDone {
		return t.Checked
	}
	return !t.Checked
}

// Filter returns the tasks visible on tab, preserving order.
func Filter(tasks []Task, tab Tab) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if Visible(tab, t) {
			out = append(out, t)
		}
	}
	return out
}

// Empty-state messages, one per tab.
const (
	EmptyTodoMessage = "No Tasks to be done"
	EmptyDoneMessage = "No Tasks Have been Completed"
)

// EmptyMessage returns the message shown when tab has no tasks.
func EmptyMessage(tab Tab) string {
	if tab == TabDone {
		return EmptyDoneMessage
	}
	return EmptyTodoMessage
}
