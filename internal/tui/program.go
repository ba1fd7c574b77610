package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/flashingpumpkin/tickit/internal/todo"
)

// Options configures the TUI program.
type Options struct {
	Theme          Theme
	DeleteDuration time.Duration
	FrameInterval  time.Duration
	Logger         *log.Logger
}

// Program wraps the tea.Program and the store subscription.
type Program struct {
	program     *tea.Program
	unsubscribe func()
}

// New creates the TUI program over store.
func New(ctx context.Context, store *todo.Store, opts Options) *Program {
	changes, unsubscribe := store.Subscribe()
	app := NewApp(store, AppOptions{
		Styles:         ResolveStyles(opts.Theme, termenv.NewOutput(os.Stdout)),
		DeleteDuration: opts.DeleteDuration,
		FrameInterval:  opts.FrameInterval,
		Logger:         opts.Logger,
		Changes:        changes,
	})

	program := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	return &Program{
		program:     program,
		unsubscribe: unsubscribe,
	}
}

// Run starts the TUI program. This blocks until the program exits.
func (p *Program) Run() error {
	defer p.unsubscribe()
	_, err := p.program.Run()
	return err
}

// Quit sends a quit message to the program.
func (p *Program) Quit() {
	p.program.Quit()
}
