package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tasklist/todo"
)

// TodoDetail returns a markdown document describing t.
func TodoDetail(t todo.Todo, labels todo.Labels, now time.Time) string {
	status := todo.ModeActive
	if t.Completed {
		status = todo.ModeCompleted
	}
	due := todo.ClassifyDueDate(t.DueDate, now)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", labels.TodoText(t))
	fmt.Fprintf(&b, "- id: `%s`\n", t.ID)
	fmt.Fprintf(&b, "- status: %s\n", status)
	fmt.Fprintf(&b, "- priority: %s\n", labels.PriorityName(t.Priority))
	fmt.Fprintf(&b, "- due: %s (%s)\n", labels.DueText(due), due.Date)
	return b.String()
}
