package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/tasklist/internal/config"
	"github.com/amonks/tasklist/internal/paths"
	"github.com/amonks/tasklist/server"
	"github.com/amonks/tasklist/todo"
)

// loadConfig reads .env and tasklist.toml for the working directory.
func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	if err := config.LoadEnv(cwd); err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// openClient returns a client for the configured server and the labels for
// the configured language.
func openClient() (*server.Client, todo.Labels, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, todo.Labels{}, err
	}
	addr, err := cfg.ResolveAddr(rootAddr)
	if err != nil {
		return nil, todo.Labels{}, err
	}
	return server.NewClient(addr), todo.LabelsFor(cfg.Language()), nil
}

// allTodos returns every todo the server holds, active first.
func allTodos(ctx context.Context, client *server.Client) ([]todo.Todo, error) {
	var todos []todo.Todo
	for _, mode := range todo.ValidDisplayModes() {
		view, err := client.View(ctx, mode, "")
		if err != nil {
			return nil, err
		}
		for _, item := range view.Todos {
			todos = append(todos, item.Todo)
		}
	}
	return todos, nil
}

// idHighlighter returns a function that highlights the unique prefix of an
// ID among every todo on the server.
func idHighlighter(ctx context.Context, client *server.Client) (func(string) string, error) {
	todos, err := allTodos(ctx, client)
	if err != nil {
		return nil, err
	}
	index := todo.NewIDIndex(todos)
	return func(id string) string {
		return highlightID(id, index.PrefixLength(id))
	}, nil
}

// resolveTodoID turns an ID or unique prefix into the full ID. Unknown IDs
// report found=false; ambiguous prefixes are errors.
func resolveTodoID(ctx context.Context, client *server.Client, input string) (string, bool, error) {
	item, err := client.Show(ctx, input)
	if errors.Is(err, todo.ErrTodoNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return item.ID, true, nil
}

// notFoundError reports IDs that matched no todo.
type notFoundError struct {
	ids []string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s: %s", todo.ErrTodoNotFound, strings.Join(e.ids, ", "))
}

func (e *notFoundError) Unwrap() error {
	return todo.ErrTodoNotFound
}

// ExitCode distinguishes missing todos from other failures.
func (e *notFoundError) ExitCode() int {
	return 2
}
