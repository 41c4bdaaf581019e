package main

import (
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/server"
	"github.com/amonks/tasklist/todo"
)

// minDisplayIDLength keeps short prefixes from looking like full IDs.
const minDisplayIDLength = 8

func highlightID(id string, prefixLen int) string {
	shown := ui.ShortID(id, max(prefixLen, minDisplayIDLength))
	return ui.HighlightID(shown, prefixLen)
}

func formatTodoTable(items []server.ViewItem, labels todo.Labels, highlight func(string) string) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "DUE", "TEXT"}, len(items))
	for _, item := range items {
		builder.AddRow([]string{
			highlight(item.Todo.ID),
			labels.PriorityName(item.Todo.Priority),
			ui.FormatDue(labels, item.Label),
			ui.TruncateTableCell(item.Todo.Text),
		})
	}
	return builder.String()
}
