package todo

import (
	"errors"
	"testing"
)

func TestNewDraftDefaults(t *testing.T) {
	draft := NewDraft(testNow)
	if draft.Text != "" || draft.Priority != PriorityMedium || !draft.Due.Equal(Today(testNow)) {
		t.Fatalf("unexpected default draft %+v", draft)
	}
	if draft.CanSubmit() {
		t.Fatalf("expected empty draft to be unsubmittable")
	}
}

func TestDraftSubmitResetsFields(t *testing.T) {
	list := newTestList()
	draft := Draft{Text: "  write report ", Priority: PriorityHigh, Due: DaysFrom(testNow, 4)}

	if !draft.CanSubmit() {
		t.Fatalf("expected draft to be submittable")
	}
	todo, err := draft.Submit(list, testNow)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if todo.Text != "write report" || todo.Priority != PriorityHigh || !todo.DueDate.Equal(DaysFrom(testNow, 4)) {
		t.Fatalf("unexpected created todo %+v", todo)
	}
	if draft != NewDraft(testNow) {
		t.Fatalf("expected draft reset to defaults, got %+v", draft)
	}
}

func TestDraftSubmitRejectedKeepsFields(t *testing.T) {
	list := newTestList()
	draft := Draft{Text: "　", Priority: PriorityLow, Due: DaysFrom(testNow, 2)}
	before := draft

	if draft.CanSubmit() {
		t.Fatalf("expected whitespace draft to be unsubmittable")
	}
	if _, err := draft.Submit(list, testNow); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if draft != before {
		t.Fatalf("expected draft untouched, got %+v", draft)
	}
	if list.Len() != 0 {
		t.Fatalf("expected list unchanged")
	}
}
