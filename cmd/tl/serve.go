package main

import (
	"time"

	"github.com/amonks/tasklist/server"
	"github.com/amonks/tasklist/todo"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tasklist server and web client",
	Long: `Start the tasklist server and web client.

The list lives in memory for the lifetime of the server. It starts from
--seed, then the seed file named in tasklist.toml, then a small sample
list. Use --empty to start with no todos.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveSeed  string
	serveEmpty bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveSeed, "seed", "", "Seed file (.toml, .yaml or .yml)")
	serveCmd.Flags().BoolVar(&serveEmpty, "empty", false, "Start with an empty list")
	serveCmd.MarkFlagsMutuallyExclusive("seed", "empty")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	addr, err := cfg.ResolveAddr(rootAddr)
	if err != nil {
		return err
	}

	seedFile := serveSeed
	if seedFile == "" {
		seedFile = cfg.Seed.File
	}
	seed, err := loadSeed(seedFile, serveEmpty, time.Now())
	if err != nil {
		return err
	}

	srv := server.New(server.Options{
		Seed:     seed,
		Language: cfg.Language(),
	})
	return srv.Serve(addr)
}

func loadSeed(path string, empty bool, now time.Time) ([]todo.Todo, error) {
	switch {
	case empty:
		return nil, nil
	case path != "":
		return todo.LoadSeedFile(path, now, nil)
	default:
		return todo.DefaultSeed(now, nil), nil
	}
}
