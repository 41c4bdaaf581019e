package todo

import (
	"fmt"
	"strings"
	"time"
)

// DueLabel classifies a due date relative to a reference instant.
type DueLabel struct {
	Kind DueKind `json:"kind"`

	// Date is the due date as YYYY-MM-DD. It is always set, though only
	// future labels display it.
	Date string `json:"date"`
}

// ClassifyDueDate labels due relative to now. Calendar days are taken in
// now's location.
//
// Today and tomorrow are checked before the overdue comparison, so a todo
// due earlier today is labeled today rather than overdue.
func ClassifyDueDate(due, now time.Time) DueLabel {
	local := due.In(now.Location())
	label := DueLabel{Date: local.Format(DateLayout)}

	today := startOfDay(now)
	switch dueDay := startOfDay(local); {
	case dueDay.Equal(today):
		label.Kind = DueToday
	case dueDay.Equal(today.AddDate(0, 0, 1)):
		label.Kind = DueTomorrow
	case due.Before(now):
		label.Kind = DueOverdue
	default:
		label.Kind = DueFuture
	}
	return label
}

// ParseDueDate parses a YYYY-MM-DD date at midnight in loc.
// A nil loc means time.Local.
func ParseDueDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDueDate)
	}
	due, err := time.ParseInLocation(DateLayout, trimmed, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, value)
	}
	return due, nil
}

// Today returns midnight of now's calendar day.
func Today(now time.Time) time.Time {
	return startOfDay(now)
}

// DaysFrom returns midnight n calendar days after now's day.
func DaysFrom(now time.Time, n int) time.Time {
	return startOfDay(now).AddDate(0, 0, n)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
