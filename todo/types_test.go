package todo

import (
	"errors"
	"testing"
)

func TestPriority_IsValid(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
	}{
		{PriorityHigh, true},
		{PriorityMedium, true},
		{PriorityLow, true},
		{Priority("urgent"), false},
		{Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.IsValid(); got != tt.valid {
				t.Errorf("Priority(%q).IsValid() = %v, want %v", tt.priority, got, tt.valid)
			}
		})
	}
}

func TestPriorityRankOrdersHighFirst(t *testing.T) {
	if !(PriorityRank(PriorityHigh) < PriorityRank(PriorityMedium) &&
		PriorityRank(PriorityMedium) < PriorityRank(PriorityLow)) {
		t.Fatalf("expected high < medium < low, got %d %d %d",
			PriorityRank(PriorityHigh), PriorityRank(PriorityMedium), PriorityRank(PriorityLow))
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{" Medium ", PriorityMedium, false},
		{"LOW", PriorityLow, false},
		{"2", PriorityHigh, false},
		{"1", PriorityMedium, false},
		{"0", PriorityLow, false},
		{"3", "", true},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPriority) {
					t.Fatalf("expected ErrInvalidPriority, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPriorityLevelRoundTrips(t *testing.T) {
	for _, priority := range ValidPriorities() {
		parsed, err := ParsePriority(string(rune('0' + priority.Level())))
		if err != nil {
			t.Fatalf("parse level of %s: %v", priority, err)
		}
		if parsed != priority {
			t.Fatalf("expected %s, got %s", priority, parsed)
		}
	}
}

func TestDisplayModeToggle(t *testing.T) {
	if ModeActive.Toggle() != ModeCompleted {
		t.Fatalf("expected active to toggle to completed")
	}
	if ModeCompleted.Toggle() != ModeActive {
		t.Fatalf("expected completed to toggle to active")
	}
}

func TestParseDisplayMode(t *testing.T) {
	mode, err := ParseDisplayMode("")
	if err != nil || mode != ModeActive {
		t.Fatalf("expected empty mode to default to active, got %q %v", mode, err)
	}
	mode, err = ParseDisplayMode("Completed")
	if err != nil || mode != ModeCompleted {
		t.Fatalf("expected completed, got %q %v", mode, err)
	}
	if _, err := ParseDisplayMode("all"); !errors.Is(err, ErrInvalidDisplayMode) {
		t.Fatalf("expected ErrInvalidDisplayMode for all, got %v", err)
	}
}
