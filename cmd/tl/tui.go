package main

import (
	"time"

	"github.com/amonks/tasklist/internal/tasktui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal client",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	client, labels, err := openClient()
	if err != nil {
		return err
	}
	return tasktui.Run(cmd.Context(), client, tasktui.Options{Labels: labels, Now: time.Now})
}
