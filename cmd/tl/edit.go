package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tasklist/internal/editor"
	"github.com/amonks/tasklist/todo"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a todo's text",
	Long: `Change a todo's text.

With --text, replaces the text directly. Otherwise opens $EDITOR with the
todo's text and completion state when running interactively.`,
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runEdit,
}

var (
	editText   string
	editEdit   bool
	editNoEdit bool
)

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editText, "text", "t", "", "New text")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no --text)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")
}

func runEdit(cmd *cobra.Command, args []string) error {
	client, labels, err := openClient()
	if err != nil {
		return err
	}
	missing := &notFoundError{ids: []string{strings.TrimSpace(args[0])}}
	id, found, err := resolveTodoID(cmd.Context(), client, args[0])
	if err != nil {
		return err
	}
	if !found {
		return missing
	}

	opts := todo.UpdateOptions{}
	useEditor := shouldUseEditor(hasChangedFlags(cmd, "text"), editEdit, editNoEdit, editor.IsInteractive())
	if useEditor {
		existing, err := client.Show(cmd.Context(), id)
		if err != nil {
			return err
		}
		data := editor.DataFromTodo(&existing)
		if cmd.Flags().Changed("text") {
			data.Text = editText
		}
		parsed, err := editor.EditTodoWithData(data, time.Local)
		if err != nil {
			return err
		}
		opts.Text = &parsed.Text
		opts.Completed = parsed.Completed
	} else {
		if !cmd.Flags().Changed("text") {
			return fmt.Errorf("--text is required (use --edit to open editor)")
		}
		opts.Text = &editText
	}

	updated, found, err := client.Update(cmd.Context(), id, opts)
	if err != nil {
		return err
	}
	if !found {
		return missing
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated todo %s: %s\n", highlightID(updated.ID, 0), labels.TodoText(updated))
	return nil
}
