// Package tasktui is the terminal client for a tasklist server.
package tasktui

import (
	"context"
	"fmt"
	"strings"
	"time"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/server"
	"github.com/amonks/tasklist/todo"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Client is the part of server.Client the TUI needs.
type Client interface {
	View(ctx context.Context, mode todo.DisplayMode, search string) (server.ViewResponse, error)
	Create(ctx context.Context, request server.CreateRequest) (todo.Todo, error)
	SetCompleted(ctx context.Context, id string, completed bool) (todo.Todo, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Options configures the TUI.
type Options struct {
	Labels todo.Labels
	Now    func() time.Time
}

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusCreate
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalDelete
)

type confirmModal struct {
	kind        modalKind
	message     string
	confirmText string
	cancelText  string
	selected    int
	todoID      string
}

type model struct {
	ctx         context.Context
	client      Client
	labels      todo.Labels
	now         func() time.Time
	width       int
	height      int
	mode        todo.DisplayMode
	focus       focusArea
	todoList    list.Model
	search      textinput.Model
	form        createForm
	view        server.ViewResponse
	loaded      bool
	modal       confirmModal
	status      string
	statusLevel statusLevel
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, client Client, opts Options) error {
	if client == nil {
		return fmt.Errorf("tasklist client is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(ctx, client, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, client Client, opts Options) model {
	labels := opts.Labels
	if labels.PriorityNames == nil {
		labels = todo.DefaultLabels()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	todoList := list.New(nil, newTodoItemDelegate(labels), 0, 0)
	todoList.SetShowTitle(false)
	todoList.SetShowStatusBar(false)
	todoList.SetFilteringEnabled(false)
	todoList.SetShowHelp(false)
	todoList.SetShowPagination(false)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = labels.SearchPlaceholder
	search.Cursor.SetMode(cursor.CursorStatic)

	return model{
		ctx:      ctx,
		client:   client,
		labels:   labels,
		now:      now,
		mode:     todo.ModeActive,
		focus:    focusList,
		todoList: todoList,
		search:   search,
		form:     newCreateForm(labels, now()),
		modal:    confirmModal{kind: modalNone},
	}
}

func (m model) Init() tea.Cmd {
	return m.loadViewCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal.kind != modalNone {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case viewLoadedMsg:
		m.handleViewLoaded(msg)
		return m, nil
	case todoCreatedMsg:
		return m.handleTodoCreated(msg)
	case todoChangedMsg:
		return m.handleTodoChanged(msg)
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading todos..."
	}
	contentHeight := m.height - 5
	if contentHeight < 1 {
		contentHeight = 1
	}

	body := m.todoList.View()
	if m.loaded && len(m.view.Todos) == 0 {
		body = valueMuted.Render(m.labels.EmptyMessage(m.mode))
	}
	pane := m.renderPane(body, m.width-2, contentHeight-2, m.focus == focusList)

	view := strings.Join([]string{
		m.renderTitle(),
		m.form.View(m.labels),
		m.search.View(),
		pane,
		m.renderStatusLine(),
	}, "\n")
	if m.modal.kind != modalNone {
		view = m.renderModalOverlay(view)
	}
	return view
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusCreate:
		return m.handleCreateKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.modal = confirmModal{kind: modalHelp}
		return m, nil
	case "tab":
		m.mode = m.mode.Toggle()
		m.todoList.Select(0)
		return m, m.loadViewCmd()
	case "/":
		m.focus = focusSearch
		m.search.Focus()
		return m, nil
	case "a", "c":
		m.focus = focusCreate
		m.form.input.Focus()
		return m, nil
	case " ", "x":
		return m, m.toggleSelectedCmd()
	case "d":
		return m.promptDelete(), nil
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "home":
		m.moveSelection(-len(m.todoList.Items()))
	case "end":
		m.moveSelection(len(m.todoList.Items()))
	}
	return m, nil
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	m.todoList.Select(0)
	return m, tea.Batch(cmd, m.loadViewCmd())
}

func (m model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.form.input.Blur()
		m.focus = focusList
		return m, nil
	case "enter":
		if !m.form.draft.CanSubmit() {
			return m, nil
		}
		return m, m.createCmd()
	case "tab":
		m.form.cyclePriority()
		return m, nil
	case "up":
		m.form.shiftDue(1, m.now())
		return m, nil
	case "down":
		m.form.shiftDue(-1, m.now())
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m model) promptDelete() model {
	item, ok := m.currentItem()
	if !ok {
		return m
	}
	m.modal = confirmModal{
		kind:        modalDelete,
		message:     fmt.Sprintf("%s: %s", m.labels.Delete, item.item.Text),
		confirmText: m.labels.Delete,
		cancelText:  "Cancel",
		selected:    1,
		todoID:      item.item.Todo.ID,
	}
	return m
}

func (m *model) moveSelection(delta int) {
	items := m.todoList.Items()
	if len(items) == 0 {
		return
	}
	next := m.todoList.Index() + delta
	if next < 0 {
		next = 0
	}
	if next >= len(items) {
		next = len(items) - 1
	}
	m.todoList.Select(next)
}

func (m *model) handleViewLoaded(msg viewLoadedMsg) {
	if msg.mode != m.mode || msg.search != m.search.Value() {
		return
	}
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Load failed: %v", msg.err), statusError)
		return
	}
	selectedID := ""
	if item, ok := m.currentItem(); ok {
		selectedID = item.item.Todo.ID
	}
	m.view = msg.response
	m.loaded = true
	items := make([]list.Item, 0, len(msg.response.Todos))
	for _, item := range msg.response.Todos {
		items = append(items, todoItem{item: item})
	}
	m.todoList.SetItems(items)
	m.selectByID(selectedID)
}

func (m model) handleTodoCreated(msg todoCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Create failed: %v", msg.err), statusError)
		return m, nil
	}
	m.form.reset(m.now())
	m.setStatus(m.labels.TodoText(msg.todo), statusInfo)
	return m, m.loadViewCmd()
}

func (m model) handleTodoChanged(msg todoChangedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Update failed: %v", msg.err), statusError)
		return m, nil
	}
	if !msg.found {
		m.setStatus(fmt.Sprintf("todo not found: %s", msg.id), statusError)
	}
	return m, m.loadViewCmd()
}

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// Results of in-flight requests still apply.
		switch msg.(type) {
		case viewLoadedMsg, todoCreatedMsg, todoChangedMsg:
			modal := m.modal
			m.modal = confirmModal{kind: modalNone}
			updated, cmd := m.Update(msg)
			next := updated.(model)
			next.modal = modal
			return next, cmd
		}
		return m, nil
	}
	if m.modal.kind == modalHelp {
		switch key.String() {
		case "?", "esc":
			m.modal = confirmModal{kind: modalNone}
			return m, nil
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "backtab":
		m.modal.selected = 1 - m.modal.selected
		return m, nil
	case "y":
		return m.resolveModal(true)
	case "n", "esc":
		return m.resolveModal(false)
	case "enter":
		return m.resolveModal(m.modal.selected == 0)
	}
	return m, nil
}

func (m model) resolveModal(confirm bool) (tea.Model, tea.Cmd) {
	modal := m.modal
	m.modal = confirmModal{kind: modalNone}
	if !confirm || modal.kind != modalDelete {
		return m, nil
	}
	return m, m.deleteCmd(modal.todoID)
}

func (m model) currentItem() (todoItem, bool) {
	item := m.todoList.SelectedItem()
	if item == nil {
		return todoItem{}, false
	}
	current, ok := item.(todoItem)
	return current, ok
}

func (m *model) selectByID(id string) {
	if id == "" {
		return
	}
	for i, item := range m.todoList.Items() {
		if current, ok := item.(todoItem); ok && current.item.Todo.ID == id {
			m.todoList.Select(i)
			return
		}
	}
}

func (m *model) resize() {
	contentHeight := m.height - 5
	if contentHeight < 1 {
		contentHeight = 1
	}
	listHeight := contentHeight - 2
	if listHeight < 1 {
		listHeight = 1
	}
	listWidth := m.width - 4
	if listWidth < 1 {
		listWidth = 1
	}
	m.todoList.SetSize(listWidth, listHeight)
	m.search.Width = listWidth
	m.form.input.Width = listWidth / 2
}

func (m model) renderTitle() string {
	title := titleStyle.Render(m.labels.Heading(m.mode))
	hint := valueMuted.Render(fmt.Sprintf("tab: %s | ? help", m.labels.ToggleLabel(m.mode)))
	spacerWidth := m.width - lipgloss.Width(title) - lipgloss.Width(hint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return titleBarStyle.Width(m.width).Render(title + strings.Repeat(" ", spacerWidth) + hint)
}

func (m model) renderPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = paneActiveStyle
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return style.Width(width).Height(height).Render(content)
}

func (m model) renderStatusLine() string {
	text := m.status
	if internalstrings.IsBlank(text) {
		return helpBarStyle.Render(truncateText(m.helpSummary(), m.width))
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(truncateText(text, m.width))
}

func (m model) helpSummary() string {
	switch m.focus {
	case focusSearch:
		return "Keys: type to search | enter/esc back"
	case focusCreate:
		return "Keys: enter add | tab priority | up/down due date | esc back"
	}
	return "Keys: up/down move | space toggle done | a add | d delete | / search | tab switch view | q quit"
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) renderModalOverlay(content string) string {
	if m.modal.kind == modalNone {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
}

func (m model) modalView() string {
	modalStyle := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	if m.modal.kind == modalHelp {
		return modalStyle.Render(m.helpContent())
	}
	options := []string{m.modal.confirmText, m.modal.cancelText}
	buttons := make([]string, 0, len(options))
	for i, option := range options {
		style := valueMuted
		if i == m.modal.selected {
			style = selectedBorder
		}
		buttons = append(buttons, style.Render("["+option+"]"))
	}
	return modalStyle.Render(strings.Join([]string{m.modal.message, "", strings.Join(buttons, " ")}, "\n"))
}

func (m model) helpContent() string {
	sections := []string{
		labelStyle.Render("List"),
		"up/down or j/k: move selection",
		"space or x: " + m.labels.Complete + " / " + m.labels.Reopen,
		"d: " + m.labels.Delete,
		"tab: " + m.labels.ToggleLabel(m.mode),
		"/: search",
		"a or c: new todo",
		"q or ctrl+c: quit",
		"",
		labelStyle.Render("New todo"),
		"enter: " + m.labels.Submit,
		"tab: cycle priority",
		"up/down: move due date",
		"esc: back to list",
		"",
		labelStyle.Render("Help"),
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}

func (m model) loadViewCmd() tea.Cmd {
	mode := m.mode
	search := m.search.Value()
	return func() tea.Msg {
		response, err := m.client.View(m.ctx, mode, search)
		return viewLoadedMsg{mode: mode, search: search, response: response, err: err}
	}
}

func (m model) createCmd() tea.Cmd {
	request := m.form.request()
	return func() tea.Msg {
		created, err := m.client.Create(m.ctx, request)
		return todoCreatedMsg{todo: created, err: err}
	}
}

func (m model) toggleSelectedCmd() tea.Cmd {
	item, ok := m.currentItem()
	if !ok {
		return nil
	}
	id := item.item.Todo.ID
	completed := !item.item.Todo.Completed
	return func() tea.Msg {
		_, found, err := m.client.SetCompleted(m.ctx, id, completed)
		return todoChangedMsg{id: id, found: found, err: err}
	}
}

func (m model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		found, err := m.client.Delete(m.ctx, id)
		return todoChangedMsg{id: id, found: found, err: err}
	}
}

type viewLoadedMsg struct {
	mode     todo.DisplayMode
	search   string
	response server.ViewResponse
	err      error
}

type todoCreatedMsg struct {
	todo todo.Todo
	err  error
}

type todoChangedMsg struct {
	id    string
	found bool
	err   error
}
