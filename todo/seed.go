package todo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the initial list shown on a fresh start.
// A nil newID means uuid.NewString.
func DefaultSeed(now time.Time, newID func() string) []Todo {
	if newID == nil {
		newID = uuid.NewString
	}
	return []Todo{
		{ID: newID(), Text: "todo1", Priority: PriorityMedium, DueDate: DaysFrom(now, 1)},
		{ID: newID(), Text: "todo2", Priority: PriorityLow, DueDate: DaysFrom(now, 2)},
		{ID: newID(), Text: "todo3", Priority: PriorityHigh, Completed: true, DueDate: Today(now)},
		{ID: newID(), Text: "todo4", Priority: PriorityHigh, DueDate: DaysFrom(now, 5)},
	}
}

// SeedFile is the on-disk shape of a seed list.
type SeedFile struct {
	Todos []SeedEntry `toml:"todos" yaml:"todos"`
}

// SeedEntry describes one seeded todo. Due takes precedence over DueInDays.
type SeedEntry struct {
	Text      string `toml:"text" yaml:"text"`
	Priority  string `toml:"priority" yaml:"priority"`
	Completed bool   `toml:"completed" yaml:"completed"`
	Due       string `toml:"due" yaml:"due"`
	DueInDays int    `toml:"due_in_days" yaml:"due_in_days"`
}

// LoadSeedFile reads a seed list from a .toml, .yaml or .yml file.
// Relative due dates are resolved against now.
func LoadSeedFile(path string, now time.Time, newID func() string) ([]Todo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var file SeedFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("parse seed file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse seed file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("seed file %s: unsupported extension %q", path, ext)
	}

	todos, err := file.Build(now, newID)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return todos, nil
}

// Build converts the entries into todos with fresh IDs.
func (f SeedFile) Build(now time.Time, newID func() string) ([]Todo, error) {
	if newID == nil {
		newID = uuid.NewString
	}
	todos := make([]Todo, 0, len(f.Todos))
	for i, entry := range f.Todos {
		todo, err := entry.todo(now, newID())
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func (e SeedEntry) todo(now time.Time, id string) (Todo, error) {
	text := NormalizeText(e.Text)
	if err := ValidateText(text); err != nil {
		return Todo{}, err
	}

	priority := PriorityMedium
	if strings.TrimSpace(e.Priority) != "" {
		parsed, err := ParsePriority(e.Priority)
		if err != nil {
			return Todo{}, err
		}
		priority = parsed
	}

	due := DaysFrom(now, e.DueInDays)
	if e.Due != "" {
		parsed, err := ParseDueDate(e.Due, now.Location())
		if err != nil {
			return Todo{}, err
		}
		due = parsed
	}

	return Todo{
		ID:        id,
		Text:      text,
		Completed: e.Completed,
		Priority:  priority,
		DueDate:   due,
	}, nil
}
