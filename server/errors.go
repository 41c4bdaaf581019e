package server

import (
	"errors"
	"net/http"

	"github.com/amonks/tasklist/todo"
)

var errorCodes = []struct {
	err    error
	code   string
	status int
}{
	{todo.ErrEmptyText, "empty_text", http.StatusBadRequest},
	{todo.ErrInvalidPriority, "invalid_priority", http.StatusBadRequest},
	{todo.ErrInvalidDisplayMode, "invalid_mode", http.StatusBadRequest},
	{todo.ErrInvalidDueDate, "invalid_due_date", http.StatusBadRequest},
	{todo.ErrTodoNotFound, "not_found", http.StatusNotFound},
	{todo.ErrAmbiguousTodoIDPrefix, "ambiguous_id", http.StatusConflict},
}

// statusFor maps an error to its HTTP status and wire code.
func statusFor(err error) (int, string) {
	for _, entry := range errorCodes {
		if errors.Is(err, entry.err) {
			return entry.status, entry.code
		}
	}
	return http.StatusInternalServerError, ""
}

// Error is a failed RPC as seen by a Client. It unwraps to the matching
// todo sentinel error when the server sent a known code.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	return "tasklist error: " + e.Message
}

// Unwrap returns the sentinel error for the code, if any.
func (e *Error) Unwrap() error {
	for _, entry := range errorCodes {
		if entry.code == e.Code {
			return entry.err
		}
	}
	return nil
}
