package testsupport

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/amonks/tasklist/server"
	"github.com/amonks/tasklist/todo"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	tlPath    string
	buildErr  error
)

// BuildTL builds the tl binary once and returns its path.
func BuildTL(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tl-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tlPath = filepath.Join(binDir, "tl")
		cmd := exec.Command("go", "build", "-o", tlPath, "./cmd/tl")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tl: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tlPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets its own home directory and a free local address in
// TASKLIST_ADDR.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TL", BuildTL(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	addr, err := freeAddr()
	if err != nil {
		return err
	}
	env.Setenv("TASKLIST_ADDR", addr)
	env.Setenv("TASKLIST_LANG", "")
	env.Setenv("NO_COLOR", "1")
	return nil
}

func freeAddr() (string, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("reserve port: %w", err)
	}
	defer listener.Close()
	return listener.Addr().String(), nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdTodoID finds a todo by text and stores its ID in an env var.
func CmdTodoID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("todoid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: todoid FILE TEXT VAR")
	}

	var items []todo.Todo
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		ts.Fatalf("parse todo list: %v", err)
	}

	text := args[1]
	for _, item := range items {
		if item.Text == text {
			ts.Setenv(args[2], item.ID)
			return
		}
	}

	ts.Fatalf("todo with text %q not found", text)
}

// CmdWaitServer polls the server at TASKLIST_ADDR until it answers.
func CmdWaitServer(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("waitserver does not support negation")
	}
	if len(args) != 0 {
		ts.Fatalf("usage: waitserver")
	}

	client := server.NewClient(ts.Getenv("TASKLIST_ADDR"))
	deadline := time.Now().Add(10 * time.Second)
	var lastErr error
	for time.Now().Before(deadline) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_, lastErr = client.Info(ctx)
		cancel()
		if lastErr == nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	ts.Fatalf("server did not start: %v", lastErr)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
