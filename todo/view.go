package todo

import (
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the collation language used when none is configured.
var DefaultLanguage = language.Japanese

// ViewOptions configures View.
type ViewOptions struct {
	// Mode selects active or completed todos. Empty means active.
	Mode DisplayMode

	// Search filters todos whose text contains it, ignoring case.
	// Empty matches everything.
	Search string

	// Language selects the text collation. Defaults to DefaultLanguage.
	Language language.Tag
}

// View returns the todos visible in mode whose text contains search,
// sorted by priority (high first) and then by text.
//
// The result is a fresh slice of copies and is recomputed on every call.
func (l *List) View(mode DisplayMode, search string) []Todo {
	return View(l.todos, ViewOptions{Mode: mode, Search: search, Language: l.language})
}

// ViewSeq is like View but yields the todos one at a time.
func (l *List) ViewSeq(mode DisplayMode, search string) iter.Seq[Todo] {
	return slices.Values(l.View(mode, search))
}

// View applies the display-mode filter, the text search and the
// priority-then-text sort to an arbitrary snapshot of todos.
func View(todos []Todo, opts ViewOptions) []Todo {
	mode := opts.Mode
	if mode == "" {
		mode = ModeActive
	}
	tag := opts.Language
	if tag == language.Und {
		tag = DefaultLanguage
	}
	query := normalizeSearch(opts.Search)

	filtered := make([]Todo, 0, len(todos))
	for _, todo := range todos {
		if !mode.Includes(todo) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(todo.Text), query) {
			continue
		}
		filtered = append(filtered, todo)
	}

	// Collators keep internal buffers, so each call gets its own.
	collator := collate.New(tag)
	slices.SortStableFunc(filtered, func(a, b Todo) int {
		if rankA, rankB := PriorityRank(a.Priority), PriorityRank(b.Priority); rankA != rankB {
			return rankA - rankB
		}
		return collator.CompareString(a.Text, b.Text)
	})
	return filtered
}
