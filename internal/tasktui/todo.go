package tasktui

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/server"
	"github.com/amonks/tasklist/todo"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type todoItem struct {
	item server.ViewItem
}

func (item todoItem) FilterValue() string {
	return item.item.Todo.Text
}

type todoItemDelegate struct {
	labels        todo.Labels
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	doneStyle     lipgloss.Style
}

func newTodoItemDelegate(labels todo.Labels) todoItemDelegate {
	return todoItemDelegate{
		labels:        labels,
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		doneStyle:     valueMuted,
	}
}

func (d todoItemDelegate) Height() int                             { return 1 }
func (d todoItemDelegate) Spacing() int                            { return 0 }
func (d todoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d todoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(todoItem)
	if !ok {
		return
	}

	style := d.normalStyle
	if index == m.Index() {
		style = d.selectedStyle
	} else if item.item.Todo.Completed {
		style = d.doneStyle
	}
	text := style.Render(truncateText(item.item.Text, m.Width()-runewidth.StringWidth(item.item.Due)-2))
	due := ui.DueStyle(item.item.Label.Kind).Render(item.item.Due)
	fmt.Fprint(w, text+"  "+due)
}

// createForm edits the draft for the next todo.
type createForm struct {
	draft todo.Draft
	input textinput.Model
}

func newCreateForm(labels todo.Labels, now time.Time) createForm {
	input := textinput.New()
	input.Prompt = "+ "
	input.Placeholder = labels.TextPlaceholder
	input.Cursor.SetMode(cursor.CursorStatic)
	return createForm{draft: todo.NewDraft(now), input: input}
}

func (f *createForm) reset(now time.Time) {
	f.draft = todo.NewDraft(now)
	f.input.SetValue("")
}

func (f *createForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.draft.Text = f.input.Value()
	return cmd
}

func (f *createForm) cyclePriority() {
	priorities := todo.ValidPriorities()
	for i, priority := range priorities {
		if priority == f.draft.Priority {
			f.draft.Priority = priorities[(i+1)%len(priorities)]
			return
		}
	}
	f.draft.Priority = todo.PriorityMedium
}

// shiftDue moves the due date by days, never before today.
func (f *createForm) shiftDue(days int, now time.Time) {
	due := f.draft.Due.AddDate(0, 0, days)
	if today := todo.Today(now); due.Before(today) {
		due = today
	}
	f.draft.Due = due
}

func (f createForm) request() server.CreateRequest {
	return server.CreateRequest{
		Text:     f.draft.Text,
		Priority: string(f.draft.Priority),
		Due:      f.draft.Due.Format(todo.DateLayout),
	}
}

func (f createForm) View(labels todo.Labels) string {
	priority := labelStyle.Render("[" + labels.PriorityName(f.draft.Priority) + "]")
	due := valueMuted.Render(f.draft.Due.Format(todo.DateLayout))
	submit := valueMuted.Render("(" + labels.Submit + ")")
	if f.draft.CanSubmit() {
		submit = selectedBorder.Render("(enter " + labels.Submit + ")")
	}
	return f.input.View() + "  " + priority + "  " + due + "  " + submit
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}
