package main

import (
	"fmt"

	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/todo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List todos by priority, then text",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listCompleted bool
	listSearch    string
	listJSON      bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listCompleted, "completed", "c", false, "Show completed todos instead of active ones")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show todos whose text contains this (case-insensitive)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	client, labels, err := openClient()
	if err != nil {
		return err
	}
	mode := todo.ModeActive
	if listCompleted {
		mode = todo.ModeCompleted
	}
	view, err := client.View(cmd.Context(), mode, listSearch)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		todos := make([]todo.Todo, 0, len(view.Todos))
		for _, item := range view.Todos {
			todos = append(todos, item.Todo)
		}
		return encodeJSON(out, todos)
	}

	fmt.Fprintln(out, ui.FormatHeading(labels.Heading(mode)))
	if len(view.Todos) == 0 {
		fmt.Fprintln(out, labels.EmptyMessage(mode))
		return nil
	}
	highlight, err := idHighlighter(cmd.Context(), client)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatTodoTable(view.Todos, labels, highlight))
	return nil
}
