// Package output provides formatting utilities for tickit's non-interactive commands.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/flashingpumpkin/tickit/internal/todo"
	"github.com/flashingpumpkin/tickit/internal/util"
)

// shortIDLen is the number of ID characters shown in listings.
const shortIDLen = 8

// Formatter handles formatted output for tickit.
type Formatter struct {
	noColor bool
	writer  io.Writer
}

// NewFormatter creates a new Formatter writing to w.
// It checks the NO_COLOR environment variable to determine if colour output should be disabled.
func NewFormatter(w io.Writer) *Formatter {
	noColor := os.Getenv("NO_COLOR") != ""

	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		noColor: noColor,
		writer:  w,
	}
}

// ShortID returns the prefix of id shown in listings.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// PrintTasks prints the tasks visible on tab, in store order.
func (f *Formatter) PrintTasks(tasks []todo.Task, tab todo.Tab, timer todo.Timer, now time.Time) {
	visible := todo.Filter(tasks, tab)
	if len(visible) == 0 {
		dim := color.New(color.FgHiBlack)
		_, _ = dim.Fprintln(f.writer, todo.EmptyMessage(tab))
		return
	}

	dim := color.New(color.FgHiBlack)
	white := color.New(color.FgWhite)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow, color.Bold)

	for _, t := range visible {
		icon := "[ ]"
		iconColor := white
		if t.Checked {
			icon = "[x]"
			iconColor = green
		}

		_, _ = dim.Fprintf(f.writer, "%-*s ", shortIDLen, ShortID(t.ID))
		_, _ = iconColor.Fprintf(f.writer, "%s ", icon)
		_, _ = white.Fprint(f.writer, t.Title)

		spent := t.Spent
		if timer.TaskID == t.ID {
			spent += timer.Elapsed(now)
			_, _ = yellow.Fprintf(f.writer, "  ▶ %s", util.FormatClock(timer.Elapsed(now)))
		}
		if spent > 0 {
			_, _ = dim.Fprintf(f.writer, "  (%s)", util.FormatSpent(spent))
		}
		_, _ = fmt.Fprintln(f.writer)
	}
}

// PrintAdded reports a newly created task.
func (f *Formatter) PrintAdded(t todo.Task) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintf(f.writer, "Added %s %s\n", ShortID(t.ID), t.Title)
}

// PrintToggled reports a task's new completion state.
func (f *Formatter) PrintToggled(t todo.Task) {
	if t.Checked {
		green := color.New(color.FgGreen)
		_, _ = green.Fprintf(f.writer, "Completed %s %s\n", ShortID(t.ID), t.Title)
		return
	}
	white := color.New(color.FgWhite)
	_, _ = white.Fprintf(f.writer, "Reopened %s %s\n", ShortID(t.ID), t.Title)
}

// PrintRemoved reports a deleted task.
func (f *Formatter) PrintRemoved(t todo.Task) {
	red := color.New(color.FgRed)
	_, _ = red.Fprintf(f.writer, "Removed %s %s\n", ShortID(t.ID), t.Title)
}

// PrintStarted reports that the timer now tracks t.
func (f *Formatter) PrintStarted(t todo.Task) {
	yellow := color.New(color.FgYellow, color.Bold)
	_, _ = yellow.Fprintf(f.writer, "Started %s %s\n", ShortID(t.ID), t.Title)
}

// PrintStopped reports the time credited to t when the timer stopped.
func (f *Formatter) PrintStopped(t todo.Task, elapsed time.Duration) {
	white := color.New(color.FgWhite)
	_, _ = white.Fprintf(f.writer, "Stopped %s %s after %s\n", ShortID(t.ID), t.Title, util.FormatClock(elapsed))
}

// PrintWarning prints a highlighted warning line.
func (f *Formatter) PrintWarning(msg string) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(f.writer, "Warning: %s\n", msg)
}
