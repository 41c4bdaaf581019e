package server

import (
	"time"

	"github.com/amonks/tasklist/todo"
)

// ViewRequest asks for the todos visible in a mode.
type ViewRequest struct {
	Mode   todo.DisplayMode `json:"mode"`
	Search string           `json:"search"`
	// Now overrides the server clock for due-date labels.
	Now *time.Time `json:"now,omitempty"`
}

// ViewItem is one todo in a view, with its display strings.
type ViewItem struct {
	Todo  todo.Todo     `json:"todo"`
	Text  string        `json:"text"`
	Label todo.DueLabel `json:"label"`
	Due   string        `json:"due"`
}

// ViewResponse is the result of a view.
type ViewResponse struct {
	Mode         todo.DisplayMode `json:"mode"`
	Todos        []ViewItem       `json:"todos"`
	Heading      string           `json:"heading"`
	ToggleLabel  string           `json:"toggle_label"`
	EmptyMessage string           `json:"empty_message"`
}

// CreateRequest creates a todo. Priority accepts a name or 0-2 and defaults
// to medium. Due is YYYY-MM-DD and defaults to today.
type CreateRequest struct {
	Text     string     `json:"text"`
	Priority string     `json:"priority,omitempty"`
	Due      string     `json:"due,omitempty"`
	Now      *time.Time `json:"now,omitempty"`
}

// TodoResponse carries a single todo.
type TodoResponse struct {
	Todo todo.Todo `json:"todo"`
}

// UpdateRequest updates the todo whose ID matches exactly.
type UpdateRequest struct {
	ID        string  `json:"id"`
	Completed *bool   `json:"completed,omitempty"`
	Text      *string `json:"text,omitempty"`
}

// UpdateResponse reports the updated todo. Found is false for unknown IDs.
type UpdateResponse struct {
	Todo  todo.Todo `json:"todo"`
	Found bool      `json:"found"`
}

// DeleteRequest deletes the todo whose ID matches exactly.
type DeleteRequest struct {
	ID string `json:"id"`
}

// DeleteResponse reports whether a todo was removed.
type DeleteResponse struct {
	Found bool `json:"found"`
}

// ShowRequest looks up a todo by ID or unique ID prefix.
type ShowRequest struct {
	ID string `json:"id"`
}

// InfoResponse describes the server's display settings.
type InfoResponse struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type emptyRequest struct{}
