package todo

import (
	"fmt"
	"time"
)

// Create adds a todo built from text, priority and due, and returns it.
//
// The text is trimmed first. Whitespace-only text returns ErrEmptyText and
// leaves the list unchanged.
func (l *List) Create(text string, priority Priority, due time.Time) (Todo, error) {
	text = NormalizeText(text)
	if err := ValidateText(text); err != nil {
		return Todo{}, err
	}
	if err := ValidatePriority(priority); err != nil {
		return Todo{}, err
	}

	id := l.newID()
	if l.indexOf(id) >= 0 {
		return Todo{}, fmt.Errorf("generated duplicate todo id %q", id)
	}

	todo := Todo{
		ID:       id,
		Text:     text,
		Priority: priority,
		DueDate:  due,
	}
	l.todos = append(l.todos, todo)
	return todo, nil
}

// Update applies opts to the todo with the given ID and returns the result.
//
// An unknown ID is a no-op reported by found=false. Text is trimmed before it
// is stored; whitespace-only text returns ErrEmptyText and changes nothing.
func (l *List) Update(id string, opts UpdateOptions) (todo Todo, found bool, err error) {
	index := l.indexOf(id)
	if index < 0 {
		return Todo{}, false, nil
	}

	updated := l.todos[index]
	if opts.Text != nil {
		text := NormalizeText(*opts.Text)
		if err := ValidateText(text); err != nil {
			return Todo{}, true, err
		}
		updated.Text = text
	}
	if opts.Completed != nil {
		updated.Completed = *opts.Completed
	}

	l.todos[index] = updated
	return updated, true, nil
}

// Complete marks the todo as completed.
func (l *List) Complete(id string) (Todo, bool) {
	completed := true
	todo, found, _ := l.Update(id, UpdateOptions{Completed: &completed})
	return todo, found
}

// Reopen marks the todo as not completed.
func (l *List) Reopen(id string) (Todo, bool) {
	completed := false
	todo, found, _ := l.Update(id, UpdateOptions{Completed: &completed})
	return todo, found
}

// Edit replaces the todo's text.
func (l *List) Edit(id, text string) (Todo, bool, error) {
	return l.Update(id, UpdateOptions{Text: &text})
}

// Delete removes the todo with the given ID. It reports whether a todo was
// removed; an unknown ID is a no-op.
func (l *List) Delete(id string) bool {
	index := l.indexOf(id)
	if index < 0 {
		return false
	}
	l.todos = append(l.todos[:index], l.todos[index+1:]...)
	return true
}
