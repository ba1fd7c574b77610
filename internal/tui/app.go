package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// AppOptions configures the root model.
type AppOptions struct {
	Styles         Styles
	DeleteDuration time.Duration
	FrameInterval  time.Duration
	Logger         *log.Logger
	// Changes delivers store change notifications, typically from
	// todo.Store.Subscribe. May be nil.
	Changes <-chan struct{}
}

// App is the root model. It owns every screen and switches between them on
// NavigateMsg and BackMsg.
type App struct {
	store  Store
	opts   AppOptions
	logger *log.Logger

	route Route
	list  TodoModel
	timer TimerModel
	info  InfoModel
	add   AddModel

	timerSeq int
	size     tea.WindowSizeMsg
}

// NewApp creates the root model showing the task list.
func NewApp(store Store, opts AppOptions) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return App{
		store:  store,
		opts:   opts,
		logger: logger,
		route:  RouteTodo,
		list: NewTodoModel(store, TodoOptions{
			DeleteDuration: opts.DeleteDuration,
			FrameInterval:  opts.FrameInterval,
			Styles:         opts.Styles,
			Logger:         logger,
		}),
	}
}

// Route returns the active screen.
func (a App) Route() Route {
	return a.route
}

// List returns the task list screen.
func (a App) List() TodoModel {
	return a.list
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.list.Init(), waitForChange(a.opts.Changes))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = msg
		a.list, _ = a.list.Update(msg)
		a.timer, _ = a.timer.Update(msg)
		a.info, _ = a.info.Update(msg)
		a.add, _ = a.add.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case NavigateMsg:
		return a.navigate(msg)

	case BackMsg:
		a.logger.Debug("navigate", "from", a.route, "to", RouteTodo)
		a.route = RouteTodo
		a.list, _ = a.list.Update(storeChangedMsg{})
		return a, nil

	case storeChangedMsg:
		a.list, _ = a.list.Update(msg)
		return a, waitForChange(a.opts.Changes)

	case deleteFrameMsg:
		// Slide-outs finish even while another screen is shown.
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd

	case timerTickMsg:
		// The tick loop ends once the timer screen is left.
		if a.route != RouteTimer {
			return a, nil
		}
		var cmd tea.Cmd
		a.timer, cmd = a.timer.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.route {
	case RouteTimer:
		a.timer, cmd = a.timer.Update(msg)
	case RouteTodoInfo:
		a.info, cmd = a.info.Update(msg)
	case RouteAdd:
		a.add, cmd = a.add.Update(msg)
	default:
		a.list, cmd = a.list.Update(msg)
	}
	return a, cmd
}

// navigate builds the target screen with its params and shows it.
func (a App) navigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	a.logger.Debug("navigate", "from", a.route, "to", msg.Route)
	a.route = msg.Route

	var cmd tea.Cmd
	switch msg.Route {
	case RouteTimer:
		a.timerSeq++
		a.timer = NewTimerModel(a.store, msg.Title, a.timerSeq, a.opts.Styles)
		a.timer, _ = a.timer.Update(a.size)
		cmd = a.timer.Init()
	case RouteTodoInfo:
		a.info = NewInfoModel(a.store, msg.Task, a.opts.Styles)
		a.info, _ = a.info.Update(a.size)
	case RouteAdd:
		a.add = NewAddModel(a.store, a.opts.Styles)
		a.add, _ = a.add.Update(a.size)
		cmd = a.add.Init()
	default:
		a.route = RouteTodo
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	switch a.route {
	case RouteTimer:
		return a.timer.View()
	case RouteTodoInfo:
		return a.info.View()
	case RouteAdd:
		return a.add.View()
	default:
		return a.list.View()
	}
}
