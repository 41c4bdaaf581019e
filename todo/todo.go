package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string `json:"id"`

	// Text is the trimmed display text.
	Text string `json:"text"`

	// Completed is true once the todo has been marked complete.
	Completed bool `json:"completed"`

	// Priority is the importance level (high, medium, low).
	Priority Priority `json:"priority"`

	// DueDate is when the todo is due. Only the calendar day is shown.
	DueDate time.Time `json:"due_date"`
}

// UpdateOptions configures fields to update on a todo.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Completed *bool   `json:"completed,omitempty"`
	Text      *string `json:"text,omitempty"`
}
