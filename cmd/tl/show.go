package main

import (
	"fmt"
	"time"

	"github.com/amonks/tasklist/internal/markdown"
	"github.com/amonks/tasklist/todo"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

const showWidth = 80

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	client, labels, err := openClient()
	if err != nil {
		return err
	}

	todos := make([]todo.Todo, 0, len(args))
	for _, id := range args {
		item, err := client.Show(cmd.Context(), id)
		if err != nil {
			return err
		}
		todos = append(todos, item)
	}

	out := cmd.OutOrStdout()
	if showJSON {
		return encodeJSON(out, todos)
	}
	now := time.Now()
	for i, item := range todos {
		if i > 0 {
			fmt.Fprintln(out)
		}
		detail := markdown.TodoDetail(item, labels, now)
		fmt.Fprintln(out, string(markdown.SafeRender(showWidth, 0, []byte(detail))))
	}
	return nil
}
