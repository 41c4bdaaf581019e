package todo

import (
	"errors"
	"testing"
	"time"
)

func TestClassifyDueDate(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want DueLabel
	}{
		{"today", date(2025, time.June, 1), DueLabel{Kind: DueToday, Date: "2025-06-01"}},
		{"tomorrow", date(2025, time.June, 2), DueLabel{Kind: DueTomorrow, Date: "2025-06-02"}},
		{"overdue", date(2025, time.May, 30), DueLabel{Kind: DueOverdue, Date: "2025-05-30"}},
		{"future", date(2025, time.July, 1), DueLabel{Kind: DueFuture, Date: "2025-07-01"}},
		{"today late", time.Date(2025, time.June, 1, 23, 59, 0, 0, time.UTC), DueLabel{Kind: DueToday, Date: "2025-06-01"}},
		{"yesterday", date(2025, time.May, 31), DueLabel{Kind: DueOverdue, Date: "2025-05-31"}},
		{"day after tomorrow", date(2025, time.June, 3), DueLabel{Kind: DueFuture, Date: "2025-06-03"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDueDate(tt.due, now)
			if got != tt.want {
				t.Fatalf("ClassifyDueDate(%s) = %+v, want %+v", tt.due, got, tt.want)
			}
		})
	}
}

func TestClassifyDueDateTodayWinsOverOverdue(t *testing.T) {
	now := time.Date(2025, time.June, 1, 18, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	if got := ClassifyDueDate(due, now); got.Kind != DueToday {
		t.Fatalf("expected today for earlier instant on the same day, got %s", got.Kind)
	}
}

func TestClassifyDueDateUsesNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, tokyo)
	// 2025-05-31 23:30 UTC is 2025-06-01 08:30 in Tokyo.
	due := time.Date(2025, time.May, 31, 23, 30, 0, 0, time.UTC)

	got := ClassifyDueDate(due, now)
	if got.Kind != DueToday || got.Date != "2025-06-01" {
		t.Fatalf("expected today 2025-06-01, got %+v", got)
	}
}

func TestClassifyDueDateAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC)
	if got := ClassifyDueDate(date(2025, time.February, 1), now); got.Kind != DueTomorrow {
		t.Fatalf("expected tomorrow across month boundary, got %s", got.Kind)
	}
}

func TestParseDueDate(t *testing.T) {
	due, err := ParseDueDate("2025-06-02", time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !due.Equal(date(2025, time.June, 2)) {
		t.Fatalf("expected midnight 2025-06-02, got %s", due)
	}

	for _, input := range []string{"", "06/02/2025", "2025-13-01"} {
		if _, err := ParseDueDate(input, time.UTC); !errors.Is(err, ErrInvalidDueDate) {
			t.Fatalf("ParseDueDate(%q) expected ErrInvalidDueDate, got %v", input, err)
		}
	}
}

func TestDaysFrom(t *testing.T) {
	got := DaysFrom(time.Date(2025, time.June, 1, 15, 4, 5, 0, time.UTC), 5)
	if !got.Equal(date(2025, time.June, 6)) {
		t.Fatalf("expected 2025-06-06 midnight, got %s", got)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
