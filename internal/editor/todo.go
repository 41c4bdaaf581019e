package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/todo"
)

// TodoData represents the data used to render the TOML template.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID string
	// Text is the todo text, written below the separator.
	Text string
	// Priority is high, medium or low.
	Priority string
	// Due is the due date as YYYY-MM-DD.
	Due string
	// Completed is the completion state (only for updates).
	Completed bool
}

// DefaultCreateData returns TodoData with the defaults of a fresh draft.
func DefaultCreateData(now time.Time) TodoData {
	draft := todo.NewDraft(now)
	return TodoData{
		Priority: string(draft.Priority),
		Due:      draft.Due.Format(todo.DateLayout),
	}
}

// DataFromTodo creates TodoData from an existing todo for editing.
func DataFromTodo(t *todo.Todo) TodoData {
	return TodoData{
		IsUpdate:  true,
		ID:        t.ID,
		Text:      t.Text,
		Priority:  string(t.Priority),
		Due:       t.DueDate.Format(todo.DateLayout),
		Completed: t.Completed,
	}
}

// Priority and due date are fixed once a todo exists, so updates only
// expose the completion state.
var todoTemplate = template.Must(template.New("todo").Parse(`
{{- if .IsUpdate -}}
completed = {{ .Completed }}
{{- else -}}
priority = {{ printf "%q" .Priority }} # high, medium, low
due = {{ printf "%q" .Due }} # YYYY-MM-DD
{{- end }}
---
{{ .Text }}
`))

// RenderTodoTOML renders the todo data as a TOML string for editing.
func RenderTodoTOML(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo represents the parsed result from the TOML editor output.
// A zero Due means none was given.
type ParsedTodo struct {
	Text      string
	Priority  todo.Priority
	Due       time.Time
	Completed *bool
}

type todoFrontmatter struct {
	Priority  string `toml:"priority"`
	Due       string `toml:"due"`
	Completed *bool  `toml:"completed"`
}

// ParseTodoTOML parses the TOML content from the editor. Dates are read in loc.
func ParseTodoTOML(content string, loc *time.Location) (*ParsedTodo, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var raw todoFrontmatter
	if _, err := toml.Decode(frontmatter, &raw); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	parsed := ParsedTodo{
		Text:      joinBody(body),
		Priority:  todo.PriorityMedium,
		Completed: raw.Completed,
	}
	if err := todo.ValidateText(parsed.Text); err != nil {
		return nil, err
	}
	if !internalstrings.IsBlank(raw.Priority) {
		priority, err := todo.ParsePriority(raw.Priority)
		if err != nil {
			return nil, err
		}
		parsed.Priority = priority
	}
	if !internalstrings.IsBlank(raw.Due) {
		due, err := todo.ParseDueDate(raw.Due, loc)
		if err != nil {
			return nil, err
		}
		parsed.Due = due
	}

	return &parsed, nil
}

// joinBody turns the editor body into single-line todo text.
func joinBody(body string) string {
	var parts []string
	for _, line := range strings.Split(body, "\n") {
		if line = todo.NormalizeText(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditTodo opens the editor for a todo and returns the parsed result.
// For create: pass nil for existing.
// For update: pass the existing todo.
func EditTodo(existing *todo.Todo, now time.Time) (*ParsedTodo, error) {
	var data TodoData
	if existing == nil {
		data = DefaultCreateData(now)
	} else {
		data = DataFromTodo(existing)
	}
	return EditTodoWithData(data, now.Location())
}

// EditTodoWithData opens the editor with pre-populated data and returns the parsed result.
func EditTodoWithData(data TodoData, loc *time.Location) (*ParsedTodo, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "tl-todo-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoTOML(string(edited), loc)
}

// ToDraft converts a ParsedTodo to a draft ready to submit.
func (p *ParsedTodo) ToDraft() todo.Draft {
	return todo.Draft{Text: p.Text, Priority: p.Priority, Due: p.Due}
}
