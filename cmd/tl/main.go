// Package main implements the tl CLI.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tl",
	Short:        "Tasklist - a prioritized todo list with due dates",
	SilenceUsage: true,
}

var rootAddr string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootAddr, "addr", "", "Server address (host:port or port)")
}
