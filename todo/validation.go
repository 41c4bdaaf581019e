package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned when todo text is empty after trimming.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidPriority is returned when a priority is not high, medium or low.
	ErrInvalidPriority = errors.New("priority must be high, medium or low")

	// ErrInvalidDisplayMode is returned when a display mode is not active or completed.
	ErrInvalidDisplayMode = errors.New("display mode must be active or completed")

	// ErrInvalidDueDate is returned when a due date cannot be parsed.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrAmbiguousTodoIDPrefix is returned when an ID prefix matches multiple todos.
	ErrAmbiguousTodoIDPrefix = errors.New("ambiguous todo ID prefix")
)

// ValidateText checks already-normalized todo text.
func ValidateText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: got %q", ErrInvalidPriority, priority)
	}
	return nil
}

// ValidateTodo checks if a todo struct is valid.
func ValidateTodo(t *Todo) error {
	if t.ID == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if err := ValidateText(t.Text); err != nil {
		return err
	}
	if NormalizeText(t.Text) != t.Text {
		return fmt.Errorf("text %q has surrounding whitespace", t.Text)
	}
	return ValidatePriority(t.Priority)
}
