package todo

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// ListOptions configures a List.
type ListOptions struct {
	// NewID generates IDs for created todos. Defaults to uuid.NewString.
	NewID func() string

	// Language selects the collation used to order todo text.
	// Defaults to Japanese.
	Language language.Tag
}

// List owns an ordered collection of todos.
//
// A List is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
type List struct {
	todos    []Todo
	newID    func() string
	language language.Tag
}

// NewList returns a list holding a copy of seed, in order.
func NewList(seed []Todo, opts ListOptions) *List {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Language == language.Und {
		opts.Language = DefaultLanguage
	}
	todos := make([]Todo, len(seed))
	copy(todos, seed)
	return &List{todos: todos, newID: opts.NewID, language: opts.Language}
}

// Len returns the number of todos in the list.
func (l *List) Len() int {
	return len(l.todos)
}

// Language returns the collation language used by View.
func (l *List) Language() language.Tag {
	return l.language
}

// All returns a copy of every todo in insertion order.
func (l *List) All() []Todo {
	out := make([]Todo, len(l.todos))
	copy(out, l.todos)
	return out
}

// Get returns the todo with the given ID.
func (l *List) Get(id string) (Todo, bool) {
	index := l.indexOf(id)
	if index < 0 {
		return Todo{}, false
	}
	return l.todos[index], true
}

// Resolve returns the todo whose ID equals or uniquely starts with prefix.
func (l *List) Resolve(prefix string) (Todo, error) {
	if todo, ok := l.Get(prefix); ok {
		return todo, nil
	}
	id, err := NewIDIndex(l.todos).Resolve(prefix)
	if err != nil {
		return Todo{}, err
	}
	todo, _ := l.Get(id)
	return todo, nil
}

func (l *List) indexOf(id string) int {
	for i := range l.todos {
		if l.todos[i].ID == id {
			return i
		}
	}
	return -1
}
