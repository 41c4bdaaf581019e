// Package todo implements an in-memory task list.
//
// A List owns an ordered collection of todos. Callers mutate it only through
// Create, Update (and the derived Complete, Reopen and Edit) and Delete, and
// read it through View, which filters by display mode, searches by text and
// sorts by priority then text. ClassifyDueDate labels a due date relative to
// an instant supplied by the caller.
package todo

import (
	"strconv"
	"strings"

	"github.com/amonks/tasklist/internal/validation"
)

// Priority is the importance level of a todo.
type Priority string

const (
	// PriorityHigh sorts first.
	PriorityHigh Priority = "high"

	// PriorityMedium is the default for new todos.
	PriorityMedium Priority = "medium"

	// PriorityLow sorts last.
	PriorityLow Priority = "low"
)

// ValidPriorities returns all priorities in sort order.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority. Lower ranks sort first.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ParsePriority accepts a priority name or the numeric form used by select
// inputs, where 2 is high, 1 is medium and 0 is low.
func ParsePriority(value string) (Priority, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if n, err := strconv.Atoi(normalized); err == nil {
		switch n {
		case 2:
			return PriorityHigh, nil
		case 1:
			return PriorityMedium, nil
		case 0:
			return PriorityLow, nil
		}
		return "", validation.FormatInvalidValueError(ErrInvalidPriority, Priority(value), ValidPriorities())
	}
	priority := Priority(normalized)
	if !priority.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidPriority, Priority(value), ValidPriorities())
	}
	return priority, nil
}

// Level returns the numeric select value for the priority (2=high, 0=low).
func (p Priority) Level() int {
	return 2 - PriorityRank(p)
}

// DisplayMode selects which subset of todos a view shows.
type DisplayMode string

const (
	// ModeActive shows todos that are not completed.
	ModeActive DisplayMode = "active"

	// ModeCompleted shows completed todos.
	ModeCompleted DisplayMode = "completed"
)

// ValidDisplayModes returns all display modes.
func ValidDisplayModes() []DisplayMode {
	return []DisplayMode{ModeActive, ModeCompleted}
}

// IsValid returns true if the mode is a known valid value.
func (m DisplayMode) IsValid() bool {
	return m == ModeActive || m == ModeCompleted
}

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeCompleted {
		return ModeActive
	}
	return ModeCompleted
}

// Includes reports whether a todo belongs to the mode.
func (m DisplayMode) Includes(t Todo) bool {
	if m == ModeCompleted {
		return t.Completed
	}
	return !t.Completed
}

// ParseDisplayMode parses a display mode, defaulting to active when empty.
func ParseDisplayMode(value string) (DisplayMode, error) {
	normalized := DisplayMode(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return ModeActive, nil
	}
	if !normalized.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidDisplayMode, DisplayMode(value), ValidDisplayModes())
	}
	return normalized, nil
}

// DueKind is the classification of a due date relative to now.
type DueKind string

const (
	// DueToday means the due date falls on the current calendar day.
	DueToday DueKind = "today"

	// DueTomorrow means the due date falls on the next calendar day.
	DueTomorrow DueKind = "tomorrow"

	// DueOverdue means the due instant is in the past.
	DueOverdue DueKind = "overdue"

	// DueFuture means the due date is after tomorrow.
	DueFuture DueKind = "future"
)

// DateLayout is the layout used for due dates in inputs and labels.
const DateLayout = "2006-01-02"
