package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tasklist/internal/editor"
	"github.com/amonks/tasklist/server"
	"github.com/amonks/tasklist/todo"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a todo",
	Long: `Add a todo.

The text is taken from the arguments. With no arguments, opens $EDITOR
when running interactively. Use --edit to open the editor with the
arguments and flags pre-filled.

Priority defaults to medium and the due date to today.`,
	RunE: runAdd,
}

var (
	addPriority string
	addDue      string
	addEdit     bool
	addNoEdit   bool
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (high, medium, low or 2, 1, 0)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no text is given)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")
}

func runAdd(cmd *cobra.Command, args []string) error {
	client, labels, err := openClient()
	if err != nil {
		return err
	}

	request := server.CreateRequest{
		Text:     strings.Join(args, " "),
		Priority: addPriority,
		Due:      addDue,
	}
	useEditor := shouldUseEditor(len(args) > 0 || hasChangedFlags(cmd, "priority", "due"), addEdit, addNoEdit, editor.IsInteractive())
	if useEditor {
		now := time.Now()
		data := editor.DefaultCreateData(now)
		data.Text = request.Text
		if request.Priority != "" {
			data.Priority = request.Priority
		}
		if request.Due != "" {
			data.Due = request.Due
		}
		parsed, err := editor.EditTodoWithData(data, now.Location())
		if err != nil {
			return err
		}
		request.Text = parsed.Text
		request.Priority = string(parsed.Priority)
		request.Due = ""
		if !parsed.Due.IsZero() {
			request.Due = parsed.Due.Format(todo.DateLayout)
		}
	} else if len(args) == 0 {
		return fmt.Errorf("todo text is required (use --edit to open editor)")
	}

	created, err := client.Create(cmd.Context(), request)
	if err != nil {
		return err
	}
	highlight, err := idHighlighter(cmd.Context(), client)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created todo %s: %s\n", highlight(created.ID), labels.TodoText(created))
	return nil
}
