package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	tickerrors "github.com/flashingpumpkin/tickit/internal/errors"
	"github.com/flashingpumpkin/tickit/internal/output"
	"github.com/flashingpumpkin/tickit/internal/todo"
)

var (
	listDone     bool
	undoDone     bool
	replaceTimer bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the Todo (or Done) tab",
	Args:    cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, store *todo.Store) error {
		tab := todo.TabTodo
		if listDone {
			tab = todo.TabDone
		}
		listTasks(output.NewFormatter(cmd.OutOrStdout()), store, tab)
		return nil
	}),
}

var addCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a task to the Todo tab",
	Args:  cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *todo.Store) error {
		return addTask(output.NewFormatter(cmd.OutOrStdout()), store, strings.Join(args, " "))
	}),
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Long: `Mark a task as completed. The id may be any unique prefix as printed
by 'tickit list'. Completing the running task stops its timer.`,
	Args: cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *todo.Store) error {
		return completeTask(output.NewFormatter(cmd.OutOrStdout()), store, args[0], !undoDone)
	}),
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *todo.Store) error {
		return removeTask(output.NewFormatter(cmd.OutOrStdout()), store, args[0])
	}),
}

var startCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start the timer on a task",
	Long: `Start the timer on a task. When another task is running the command
fails unless --replace is given, in which case the running task is
stopped first.`,
	Args: cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *todo.Store) error {
		return startTask(output.NewFormatter(cmd.OutOrStdout()), store, args[0], replaceTimer)
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, store *todo.Store) error {
		return stopTimer(output.NewFormatter(cmd.OutOrStdout()), store)
	}),
}

func init() {
	listCmd.Flags().BoolVar(&listDone, "done", false, "Show completed tasks")
	doneCmd.Flags().BoolVar(&undoDone, "undo", false, "Move the task back to the Todo tab")
	startCmd.Flags().BoolVar(&replaceTimer, "replace", false, "Stop the running task first")
}

func listTasks(f *output.Formatter, store *todo.Store, tab todo.Tab) {
	f.PrintTasks(store.Tasks(), tab, store.Timer(), store.Now())
}

func addTask(f *output.Formatter, store *todo.Store, title string) error {
	t, err := store.Add(title)
	if err != nil {
		return err
	}
	f.PrintAdded(t)
	return nil
}

// completeTask moves the task to the Done tab when checked is true, or back
// to the Todo tab otherwise. Tasks already in the requested state are left alone.
func completeTask(f *output.Formatter, store *todo.Store, prefix string, checked bool) error {
	t, err := resolveTask(store, prefix)
	if err != nil {
		return err
	}
	if t.Checked == checked {
		f.PrintWarning(fmt.Sprintf("%s is already on the %s tab", output.ShortID(t.ID), tabFor(checked)))
		return nil
	}
	if err := store.Toggle(t.ID, t.Checked); err != nil {
		return err
	}
	t.Checked = checked
	f.PrintToggled(t)
	return nil
}

func removeTask(f *output.Formatter, store *todo.Store, prefix string) error {
	t, err := resolveTask(store, prefix)
	if err != nil {
		return err
	}
	if err := store.Delete(t.ID); err != nil {
		return err
	}
	f.PrintRemoved(t)
	return nil
}

// errTimerBusy is returned by startTask when another task is running and
// replacement was not requested.
var errTimerBusy = errors.New("another task is running")

func startTask(f *output.Formatter, store *todo.Store, prefix string, replace bool) error {
	t, err := resolveTask(store, prefix)
	if err != nil {
		return err
	}
	if t.Checked {
		return fmt.Errorf("cannot start %s: task is completed", output.ShortID(t.ID))
	}
	if running, ok := store.Running(); ok {
		if running.ID == t.ID {
			f.PrintWarning(fmt.Sprintf("%s is already running", output.ShortID(t.ID)))
			return nil
		}
		if !replace {
			return fmt.Errorf("%w: %s (use --replace)", errTimerBusy, running.Title)
		}
		if err := stopTimer(f, store); err != nil {
			return err
		}
	}
	if err := store.Start(t.ID); err != nil {
		return err
	}
	f.PrintStarted(t)
	return nil
}

func stopTimer(f *output.Formatter, store *todo.Store) error {
	timer := store.Timer()
	if !timer.Active() {
		f.PrintWarning("no task is running")
		return nil
	}
	elapsed := timer.Elapsed(store.Now())
	t, err := store.Get(timer.TaskID)
	if err != nil && !errors.Is(err, tickerrors.ErrTaskNotFound) {
		return err
	}
	if err := store.Stop(); err != nil {
		return err
	}
	if t.ID != "" {
		f.PrintStopped(t, elapsed)
	}
	return nil
}

// resolveTask looks up a task by ID prefix, adding a suggestion to the error
// when the prefix looks like a typo of a title or ID.
func resolveTask(store *todo.Store, prefix string) (todo.Task, error) {
	t, err := store.Resolve(prefix)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, tickerrors.ErrTaskNotFound) {
		return todo.Task{}, err
	}
	if s, ok := todo.Suggest(store.Tasks(), prefix); ok {
		return todo.Task{}, fmt.Errorf("%w (did you mean %s %q?)", err, output.ShortID(s.ID), s.Title)
	}
	return todo.Task{}, err
}

func tabFor(checked bool) todo.Tab {
	if checked {
		return todo.TabDone
	}
	return todo.TabTodo
}
