package todo

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Labels holds the user-visible strings for one language.
type Labels struct {
	Language language.Tag

	PriorityNames map[Priority]string

	DueToday    string
	DueTomorrow string
	DueOverdue  string
	DueFuture   string // format with one %s for the date

	EmptyActive    string
	EmptyCompleted string

	HeadingActive    string
	HeadingCompleted string

	ShowCompleted string
	ShowActive    string

	Complete          string
	Reopen            string
	Delete            string
	Submit            string
	TextPlaceholder   string
	SearchPlaceholder string
}

var japaneseLabels = Labels{
	Language: language.Japanese,
	PriorityNames: map[Priority]string{
		PriorityHigh:   "高",
		PriorityMedium: "中",
		PriorityLow:    "低",
	},
	DueToday:          "🟠 今日",
	DueTomorrow:       "🟡 明日",
	DueOverdue:        "❌ 期限切れ",
	DueFuture:         "🟢 %s",
	EmptyActive:       "Todoがありません。新しいTodoを追加してください。",
	EmptyCompleted:    "完了したTodoはありません。",
	HeadingActive:     "未完了のTodo",
	HeadingCompleted:  "完了したTodo",
	ShowCompleted:     "完了したTodoを表示",
	ShowActive:        "未完了のTodoを表示",
	Complete:          "完了",
	Reopen:            "再開",
	Delete:            "削除",
	Submit:            "登録",
	TextPlaceholder:   "新しいTodoを入力...",
	SearchPlaceholder: "Todoを検索...",
}

var englishLabels = Labels{
	Language: language.English,
	PriorityNames: map[Priority]string{
		PriorityHigh:   "high",
		PriorityMedium: "medium",
		PriorityLow:    "low",
	},
	DueToday:          "🟠 today",
	DueTomorrow:       "🟡 tomorrow",
	DueOverdue:        "❌ overdue",
	DueFuture:         "🟢 %s",
	EmptyActive:       "No todos. Add a new todo.",
	EmptyCompleted:    "No completed todos.",
	HeadingActive:     "Active todos",
	HeadingCompleted:  "Completed todos",
	ShowCompleted:     "Show completed todos",
	ShowActive:        "Show active todos",
	Complete:          "Done",
	Reopen:            "Reopen",
	Delete:            "Delete",
	Submit:            "Add",
	TextPlaceholder:   "Enter a new todo...",
	SearchPlaceholder: "Search todos...",
}

// DefaultLabels returns the Japanese labels.
func DefaultLabels() Labels {
	return japaneseLabels
}

// LabelsFor returns the labels for a language name such as "ja" or "en".
// Unknown or empty names fall back to Japanese.
func LabelsFor(lang string) Labels {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return japaneseLabels
	}
	base, _ := tag.Base()
	if englishBase, _ := language.English.Base(); base == englishBase {
		return englishLabels
	}
	return japaneseLabels
}

// PriorityName returns the display name for a priority.
func (l Labels) PriorityName(p Priority) string {
	if name, ok := l.PriorityNames[p]; ok {
		return name
	}
	return string(p)
}

// TodoText formats a todo as "[priority] text".
func (l Labels) TodoText(t Todo) string {
	return fmt.Sprintf("[%s] %s", l.PriorityName(t.Priority), t.Text)
}

// DueText returns the display string for a due label.
func (l Labels) DueText(label DueLabel) string {
	switch label.Kind {
	case DueToday:
		return l.DueToday
	case DueTomorrow:
		return l.DueTomorrow
	case DueOverdue:
		return l.DueOverdue
	default:
		return fmt.Sprintf(l.DueFuture, label.Date)
	}
}

// EmptyMessage returns the message shown when a view in mode is empty.
func (l Labels) EmptyMessage(mode DisplayMode) string {
	if mode == ModeCompleted {
		return l.EmptyCompleted
	}
	return l.EmptyActive
}

// Heading returns the list heading for mode.
func (l Labels) Heading(mode DisplayMode) string {
	if mode == ModeCompleted {
		return l.HeadingCompleted
	}
	return l.HeadingActive
}

// ToggleLabel returns the label of the button that switches away from mode.
func (l Labels) ToggleLabel(mode DisplayMode) string {
	if mode == ModeCompleted {
		return l.ShowActive
	}
	return l.ShowCompleted
}

// ActionLabel returns the label of the completion toggle for t.
func (l Labels) ActionLabel(t Todo) string {
	if t.Completed {
		return l.Reopen
	}
	return l.Complete
}
