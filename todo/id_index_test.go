package todo

import (
	"errors"
	"testing"
)

func TestIDIndexPrefixLengthsUseAllIDs(t *testing.T) {
	todos := []Todo{
		{ID: "2u3iutfd"},
		{ID: "2a9k1111"},
		{ID: "abc12345"},
	}

	index := NewIDIndex(todos)
	lengths := index.PrefixLengths()

	if got := lengths["2u3iutfd"]; got != 2 {
		t.Fatalf("expected 2u3iutfd prefix length 2, got %d", got)
	}
	if got := lengths["2a9k1111"]; got != 2 {
		t.Fatalf("expected 2a9k1111 prefix length 2, got %d", got)
	}
	if got := lengths["abc12345"]; got != 1 {
		t.Fatalf("expected abc12345 prefix length 1, got %d", got)
	}
}

func TestIDIndexResolveHandlesAmbiguousPrefixes(t *testing.T) {
	todos := []Todo{
		{ID: "2u3iutfd"},
		{ID: "2a9k1111"},
	}

	index := NewIDIndex(todos)
	_, err := index.Resolve("2")
	if err == nil {
		t.Fatalf("expected ambiguous prefix error")
	}
	if !errors.Is(err, ErrAmbiguousTodoIDPrefix) {
		t.Fatalf("expected ErrAmbiguousTodoIDPrefix, got %v", err)
	}
}

func TestIDIndexResolveMatchesCaseInsensitive(t *testing.T) {
	todos := []Todo{{ID: "2u3iutfd"}}

	index := NewIDIndex(todos)
	resolved, err := index.Resolve("2U3")
	if err != nil {
		t.Fatalf("expected resolve to succeed, got %v", err)
	}
	if resolved != "2u3iutfd" {
		t.Fatalf("expected resolved ID 2u3iutfd, got %s", resolved)
	}
}

func TestIDIndexResolveReturnsOriginalCase(t *testing.T) {
	index := NewIDIndex([]Todo{{ID: "ABC-1"}, {ID: "xyz-2"}})

	resolved, err := index.Resolve("abc")
	if err != nil {
		t.Fatalf("expected resolve to succeed, got %v", err)
	}
	if resolved != "ABC-1" {
		t.Fatalf("expected original ID ABC-1, got %s", resolved)
	}
	if _, err := index.Resolve("nope"); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestIDIndexPrefixLength(t *testing.T) {
	index := NewIDIndex([]Todo{{ID: "abc"}, {ID: "abd"}, {ID: "x"}})
	if got := index.PrefixLength("ABC"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := index.PrefixLength("missing"); got != len("missing") {
		t.Fatalf("expected full length for unknown id, got %d", got)
	}
}
