package todo

import (
	"slices"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortsBefore reports whether a belongs ahead of b in a view.
func sortsBefore(collator *collate.Collator, a, b Todo) bool {
	if rankA, rankB := PriorityRank(a.Priority), PriorityRank(b.Priority); rankA != rankB {
		return rankA < rankB
	}
	return collator.CompareString(a.Text, b.Text) < 0
}

func texts(todos []Todo) []string {
	out := make([]string, 0, len(todos))
	for _, todo := range todos {
		out = append(out, todo.Text)
	}
	return out
}

func TestViewFiltersByMode(t *testing.T) {
	list := newTestList(
		Todo{ID: "1", Text: "open", Priority: PriorityLow},
		Todo{ID: "2", Text: "done", Priority: PriorityLow, Completed: true},
	)

	for _, mode := range ValidDisplayModes() {
		for _, todo := range list.View(mode, "") {
			if todo.Completed != (mode == ModeCompleted) {
				t.Fatalf("mode %s returned todo with completed=%v", mode, todo.Completed)
			}
		}
	}
	if got := texts(list.View(ModeActive, "")); !slices.Equal(got, []string{"open"}) {
		t.Fatalf("expected [open], got %v", got)
	}
	if got := texts(list.View(ModeCompleted, "")); !slices.Equal(got, []string{"done"}) {
		t.Fatalf("expected [done], got %v", got)
	}
}

func TestViewSearchIgnoresCase(t *testing.T) {
	list := newTestList(
		Todo{ID: "1", Text: "Buy Milk", Priority: PriorityLow},
		Todo{ID: "2", Text: "walk dog", Priority: PriorityLow},
		Todo{ID: "3", Text: "牛乳を買う", Priority: PriorityLow},
	)

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"Buy Milk", "walk dog", "牛乳を買う"}},
		{"milk", []string{"Buy Milk"}},
		{"MILK", []string{"Buy Milk"}},
		{"牛乳", []string{"牛乳を買う"}},
		{"cat", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := texts(list.View(ModeActive, tt.search))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("View(active, %q) = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestViewSortsByPriorityThenText(t *testing.T) {
	list := newTestList(
		Todo{ID: "1", Text: "zzzz", Priority: PriorityLow},
		Todo{ID: "2", Text: "beta", Priority: PriorityHigh},
		Todo{ID: "3", Text: "aaaa", Priority: PriorityLow},
		Todo{ID: "4", Text: "mid", Priority: PriorityMedium},
		Todo{ID: "5", Text: "alpha", Priority: PriorityHigh},
		Todo{ID: "6", Text: "todo2", Priority: PriorityLow},
	)

	got := texts(list.View(ModeActive, ""))
	want := []string{"alpha", "beta", "mid", "aaaa", "todo2", "zzzz"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	view := list.View(ModeActive, "")
	collator := collate.New(language.Japanese)
	for i := 1; i < len(view); i++ {
		if sortsBefore(collator, view[i], view[i-1]) {
			t.Fatalf("view out of order at %d: %q before %q", i, view[i-1].Text, view[i].Text)
		}
	}
}

func TestViewCollatesJapaneseAfterLatin(t *testing.T) {
	list := newTestList(
		Todo{ID: "1", Text: "いいいい", Priority: PriorityMedium},
		Todo{ID: "2", Text: "ああああ", Priority: PriorityMedium},
		Todo{ID: "3", Text: "todo1", Priority: PriorityMedium},
		Todo{ID: "4", Text: "日本語", Priority: PriorityHigh},
		Todo{ID: "5", Text: "todo4", Priority: PriorityHigh},
	)

	got := texts(list.View(ModeActive, ""))
	want := []string{"todo4", "日本語", "todo1", "ああああ", "いいいい"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestViewKeepsInsertionOrderForTies(t *testing.T) {
	list := newTestList(
		Todo{ID: "first", Text: "same", Priority: PriorityLow},
		Todo{ID: "second", Text: "same", Priority: PriorityLow},
	)

	view := list.View(ModeActive, "")
	if view[0].ID != "first" || view[1].ID != "second" {
		t.Fatalf("expected insertion order for ties, got %s, %s", view[0].ID, view[1].ID)
	}
}

func TestViewIsIdempotent(t *testing.T) {
	list := newTestList(DefaultSeed(testNow, sequentialIDs())...)

	first := list.View(ModeActive, "todo")
	second := list.View(ModeActive, "todo")
	if !slices.Equal(first, second) {
		t.Fatalf("expected identical views, got %v and %v", first, second)
	}
}

func TestViewReturnsCopies(t *testing.T) {
	list := newTestList(Todo{ID: "a", Text: "a", Priority: PriorityLow})

	view := list.View(ModeActive, "")
	view[0].Text = "mutated"
	view[0].Completed = true

	if got, _ := list.Get("a"); got.Text != "a" || got.Completed {
		t.Fatalf("expected stored todo untouched, got %+v", got)
	}
}

func TestViewSeqMatchesView(t *testing.T) {
	list := newTestList(DefaultSeed(testNow, sequentialIDs())...)

	got := slices.Collect(list.ViewSeq(ModeActive, ""))
	if !slices.Equal(got, list.View(ModeActive, "")) {
		t.Fatalf("expected ViewSeq to match View")
	}
}

func TestViewDefaultsToActiveMode(t *testing.T) {
	todos := []Todo{
		{ID: "1", Text: "open", Priority: PriorityLow},
		{ID: "2", Text: "done", Priority: PriorityLow, Completed: true},
	}
	got := texts(View(todos, ViewOptions{}))
	if !slices.Equal(got, []string{"open"}) {
		t.Fatalf("expected [open], got %v", got)
	}
}
