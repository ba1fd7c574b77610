package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/flashingpumpkin/tickit/internal/anim"
	"github.com/flashingpumpkin/tickit/internal/todo"
	"github.com/flashingpumpkin/tickit/internal/util"
)

// defaultWidth is used before the first WindowSizeMsg arrives.
const defaultWidth = 80

// DeleteState is the lifecycle of a task deletion.
type DeleteState int

const (
	// DeleteIdle means no deletion was requested.
	DeleteIdle DeleteState = iota
	// DeleteConfirmPending means the delete prompt is open for the task.
	DeleteConfirmPending
	// DeleteAnimating means the row is sliding out.
	DeleteAnimating
	// DeleteDeleted means the removal was dispatched.
	DeleteDeleted
)

// promptKind tells what a confirmed prompt should do.
type promptKind int

const (
	promptDelete promptKind = iota
	promptReplaceTimer
)

// pendingPrompt pairs an open prompt with the task it is about.
type pendingPrompt struct {
	kind   promptKind
	task   todo.Task
	prompt Prompt
}

// TodoOptions configures a TodoModel.
type TodoOptions struct {
	DeleteDuration time.Duration
	FrameInterval  time.Duration
	Styles         Styles
	Logger         *log.Logger
}

// TodoModel is the task list screen: two tabs, per-row check/start/delete,
// and the slide-out animation played before a deleted task is removed.
type TodoModel struct {
	store  Store
	opts   TodoOptions
	keys   listKeyMap
	help   help.Model
	logger *log.Logger

	tab      todo.Tab
	cursor   int
	tasks    []todo.Task
	anims    *anim.Set
	deleting map[string]DeleteState
	prompt   *pendingPrompt
	err      error

	width  int
	height int
	now    func() time.Time
}

// NewTodoModel creates the task list screen on the Todo tab.
func NewTodoModel(store Store, opts TodoOptions) TodoModel {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Styles.ShortKey = opts.Styles.Help
	h.Styles.ShortDesc = opts.Styles.Help
	h.Styles.ShortSeparator = opts.Styles.Help

	m := TodoModel{
		store:    store,
		opts:     opts,
		keys:     defaultListKeys(),
		help:     h,
		logger:   logger,
		tab:      todo.TabTodo,
		anims:    anim.NewSet(),
		deleting: make(map[string]DeleteState),
		now:      time.Now,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m TodoModel) Init() tea.Cmd {
	return nil
}

// Tab returns the active tab.
func (m TodoModel) Tab() todo.Tab {
	return m.tab
}

// TodoTabState reports whether the Todo tab is active.
func (m TodoModel) TodoTabState() bool {
	return m.tab == todo.TabTodo
}

// DoneTabState reports whether the Done tab is active.
func (m TodoModel) DoneTabState() bool {
	return m.tab == todo.TabDone
}

// Visible returns the tasks shown on the active tab.
func (m TodoModel) Visible() []todo.Task {
	return todo.Filter(m.tasks, m.tab)
}

// DeleteState returns the deletion state of a task.
func (m TodoModel) DeleteState(id string) DeleteState {
	if m.prompt != nil && m.prompt.kind == promptDelete && m.prompt.task.ID == id {
		return DeleteConfirmPending
	}
	return m.deleting[id]
}

// ChangeTab switches tabs: 0 is Todo, anything else is Done.
func (m TodoModel) ChangeTab(i int) TodoModel {
	tab := todo.TabFromIndex(i)
	if tab != m.tab {
		m.tab = tab
		m.cursor = 0
	}
	return m
}

// refresh re-reads the store, resyncs the animation handles to the current
// task IDs and keeps the cursor inside the visible list.
func (m *TodoModel) refresh() {
	m.tasks = m.store.Tasks()

	ids := make([]string, len(m.tasks))
	for i, t := range m.tasks {
		ids[i] = t.ID
	}
	m.anims.Sync(ids)

	for id := range m.deleting {
		if m.anims.Get(id) == nil {
			delete(m.deleting, id)
		}
	}

	if n := len(m.Visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the task under the cursor.
func (m TodoModel) selected() (todo.Task, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return todo.Task{}, false
	}
	return visible[m.cursor], true
}

// Update implements tea.Model.
func (m TodoModel) Update(msg tea.Msg) (TodoModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case storeChangedMsg:
		m.refresh()
		return m, nil

	case deleteFrameMsg:
		return m.advanceDeletion(msg)

	case tea.KeyMsg:
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

// updateList handles key events in the task list.
func (m TodoModel) updateList(msg tea.KeyMsg) (TodoModel, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Todo):
		m = m.ChangeTab(0)

	case key.Matches(msg, m.keys.Done):
		m = m.ChangeTab(1)

	case key.Matches(msg, m.keys.Tab):
		if m.tab == todo.TabTodo {
			m = m.ChangeTab(1)
		} else {
			m = m.ChangeTab(0)
		}

	case key.Matches(msg, m.keys.Add):
		return m, navigate(NavigateMsg{Route: RouteAdd})

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.actionable(); ok {
			m.toggle(t)
		}

	case key.Matches(msg, m.keys.Info):
		if t, ok := m.selected(); ok {
			return m, navigate(NavigateMsg{Route: RouteTodoInfo, Task: t})
		}

	case key.Matches(msg, m.keys.Start):
		if m.tab != todo.TabTodo {
			return m, nil
		}
		if t, ok := m.actionable(); ok {
			return m.requestStart(t)
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.actionable(); ok {
			m.requestDelete(t)
		}
	}
	return m, nil
}

// actionable returns the selected task unless it is being deleted.
func (m TodoModel) actionable() (todo.Task, bool) {
	t, ok := m.selected()
	if !ok || m.deleting[t.ID] != DeleteIdle {
		return todo.Task{}, false
	}
	return t, true
}

func (m *TodoModel) toggle(t todo.Task) {
	if err := m.store.Toggle(t.ID, t.Checked); err != nil {
		m.fail("toggle", t, err)
		return
	}
	m.logger.Debug("task toggled", "id", t.ID, "checked", !t.Checked)
	m.refresh()
}

func (m *TodoModel) requestDelete(t todo.Task) {
	m.prompt = &pendingPrompt{
		kind:   promptDelete,
		task:   t,
		prompt: NewPrompt("Delete task", "Do you want to DELETE task to "+t.Title),
	}
}

// requestStart starts the timer for t, asking first when another task is
// already running.
func (m TodoModel) requestStart(t todo.Task) (TodoModel, tea.Cmd) {
	if _, running := m.store.Running(); running {
		m.prompt = &pendingPrompt{
			kind:   promptReplaceTimer,
			task:   t,
			prompt: NewPrompt("Another Task is Running", "Would you want to cancel it and start this one"),
		}
		return m, nil
	}
	return m.startTimer(t, false)
}

func (m TodoModel) startTimer(t todo.Task, stopFirst bool) (TodoModel, tea.Cmd) {
	if stopFirst {
		if err := m.store.Stop(); err != nil {
			m.fail("stop", t, err)
			return m, nil
		}
	}
	if err := m.store.Start(t.ID); err != nil {
		m.fail("start", t, err)
		return m, nil
	}
	m.logger.Debug("timer started", "id", t.ID, "replaced", stopFirst)
	m.refresh()
	return m, navigate(NavigateMsg{Route: RouteTimer, Title: t.Title})
}

// updatePrompt routes keys to the open prompt and acts on the answer.
func (m TodoModel) updatePrompt(msg tea.KeyMsg) (TodoModel, tea.Cmd) {
	p, decision := m.prompt.prompt.Update(msg)
	m.prompt.prompt = p

	switch decision {
	case Cancelled:
		m.prompt = nil
		return m, nil
	case Confirmed:
		pending := *m.prompt
		m.prompt = nil
		switch pending.kind {
		case promptDelete:
			return m.startDeletion(pending.task)
		case promptReplaceTimer:
			return m.startTimer(pending.task, true)
		}
	}
	return m, nil
}

// startDeletion slides the row out. The store is only touched once the
// animation completes.
func (m TodoModel) startDeletion(t todo.Task) (TodoModel, tea.Cmd) {
	h := m.anims.Get(t.ID)
	if h == nil {
		m.refresh()
		return m, nil
	}
	m.deleting[t.ID] = DeleteAnimating
	h.Start(float64(m.screenWidth()), m.opts.DeleteDuration, anim.Back(anim.DefaultOvershoot), m.now())
	m.logger.Debug("delete animation started", "id", t.ID)
	return m, m.frame(t.ID)
}

func (m TodoModel) frame(id string) tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(at time.Time) tea.Msg {
		return deleteFrameMsg{ID: id, At: at}
	})
}

func (m TodoModel) advanceDeletion(msg deleteFrameMsg) (TodoModel, tea.Cmd) {
	h := m.anims.Get(msg.ID)
	if h == nil || m.deleting[msg.ID] != DeleteAnimating {
		return m, nil
	}
	if _, done := h.Advance(msg.At); !done {
		return m, m.frame(msg.ID)
	}

	if err := m.store.Delete(msg.ID); err != nil {
		h.Reset()
		delete(m.deleting, msg.ID)
		m.fail("delete", todo.Task{ID: msg.ID}, err)
		return m, nil
	}
	m.deleting[msg.ID] = DeleteDeleted
	m.logger.Debug("task deleted", "id", msg.ID)
	m.refresh()
	return m, nil
}

func (m *TodoModel) fail(op string, t todo.Task, err error) {
	m.err = fmt.Errorf("%s failed: %w", op, err)
	m.logger.Error("task action failed", "op", op, "id", t.ID, "err", err)
	m.refresh()
}

func (m TodoModel) screenWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// View implements tea.Model.
func (m TodoModel) View() string {
	styles := m.opts.Styles
	width := m.screenWidth()

	if m.prompt != nil {
		return m.prompt.prompt.View(styles, width)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(renderSeparator(width, styles.Separator))
	b.WriteString("\n")

	visible := m.Visible()
	if len(visible) == 0 {
		b.WriteString("\n")
		b.WriteString(centre(styles.EmptyState.Render(todo.EmptyMessage(m.tab)), width))
		b.WriteString("\n")
	}
	for i, t := range visible {
		b.WriteString(m.renderRow(t, i == m.cursor))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n ")
		b.WriteString(styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderSeparator(width, styles.Separator))
	b.WriteString("\n ")
	if m.tab == todo.TabDone {
		b.WriteString(m.help.View(doneHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// renderHeader draws the add control and the two tab buttons.
func (m TodoModel) renderHeader() string {
	styles := m.opts.Styles
	todoStyle, doneStyle := styles.TabInactive, styles.TabInactive
	if m.TodoTabState() {
		todoStyle = styles.TabActive
	} else {
		doneStyle = styles.TabActive
	}
	return styles.AddButton.Render(IconAdd) + " " +
		todoStyle.Render(todo.TabTodo.String()) + " " +
		doneStyle.Render(todo.TabDone.String()) + "  " +
		styles.Brand.Render(IconBrand+" tickit")
}

// renderRow draws one task, shifted right by its slide-out progress.
func (m TodoModel) renderRow(t todo.Task, selected bool) string {
	styles := m.opts.Styles

	cursor := "  "
	if selected {
		cursor = styles.Cursor.Render(IconCursor) + " "
	}

	box := IconUnchecked
	title := styles.Title.Render(t.Title)
	if t.Checked {
		box = IconChecked
		title = styles.TitleDone.Render(t.Title)
	}

	line := cursor + styles.Checkbox.Render(box) + " " + title
	if t.Running {
		running := IconRunning
		if timer := m.store.Timer(); timer.TaskID == t.ID {
			running += " " + util.FormatClock(timer.Elapsed(m.store.Now()))
		}
		line += "  " + styles.Running.Render(running)
	}
	if t.Spent > 0 {
		line += "  " + styles.Spent.Render(util.FormatSpent(t.Spent))
	}

	width := m.screenWidth()
	offset := 0
	if h := m.anims.Get(t.ID); h != nil {
		offset = int(h.Value())
	}
	if offset >= width {
		return ""
	}
	return ansi.Truncate(strings.Repeat(" ", offset)+line, width, "")
}

// centre pads s so that it sits in the middle of width columns.
func centre(s string, width int) string {
	pad := (width - ansi.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
