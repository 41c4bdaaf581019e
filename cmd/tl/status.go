package main

import (
	"fmt"

	"github.com/amonks/tasklist/todo"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:     "done <id>...",
	Short:   "Mark one or more todos as completed",
	Aliases: []string{"complete"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetCompleted(cmd, args, true)
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>...",
	Short: "Mark one or more completed todos as active",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetCompleted(cmd, args, false)
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Short:   "Delete one or more todos",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(doneCmd, reopenCmd, deleteCmd)
}

func runSetCompleted(cmd *cobra.Command, args []string, completed bool) error {
	client, labels, err := openClient()
	if err != nil {
		return err
	}
	verb := "Reopened"
	if completed {
		verb = "Completed"
	}

	var missing []string
	for _, arg := range args {
		id, found, err := resolveTodoID(cmd.Context(), client, arg)
		if err != nil {
			return err
		}
		var updated todo.Todo
		if found {
			updated, found, err = client.SetCompleted(cmd.Context(), id, completed)
			if err != nil {
				return err
			}
		}
		if !found {
			missing = append(missing, arg)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s todo %s: %s\n", verb, highlightID(updated.ID, 0), labels.TodoText(updated))
	}
	if len(missing) > 0 {
		return &notFoundError{ids: missing}
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, _, err := openClient()
	if err != nil {
		return err
	}

	var missing []string
	for _, arg := range args {
		id, found, err := resolveTodoID(cmd.Context(), client, arg)
		if err != nil {
			return err
		}
		if found {
			found, err = client.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
		}
		if !found {
			missing = append(missing, arg)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted todo %s\n", id)
	}
	if len(missing) > 0 {
		return &notFoundError{ids: missing}
	}
	return nil
}
