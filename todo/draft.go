package todo

import "time"

// Draft holds the transient input fields used to create a todo.
type Draft struct {
	Text     string    `json:"text"`
	Priority Priority  `json:"priority"`
	Due      time.Time `json:"due"`
}

// NewDraft returns a draft with empty text, medium priority and today's date.
func NewDraft(now time.Time) Draft {
	return Draft{Priority: PriorityMedium, Due: Today(now)}
}

// CanSubmit reports whether the draft's text is non-empty after trimming.
func (d Draft) CanSubmit() bool {
	return NormalizeText(d.Text) != ""
}

// Submit creates a todo from the draft. On success the draft is reset to
// NewDraft(now); on failure it is left untouched.
func (d *Draft) Submit(list *List, now time.Time) (Todo, error) {
	priority := d.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	due := d.Due
	if due.IsZero() {
		due = Today(now)
	}
	todo, err := list.Create(d.Text, priority, due)
	if err != nil {
		return Todo{}, err
	}
	*d = NewDraft(now)
	return todo, nil
}
