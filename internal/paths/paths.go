// Package paths locates tasklist files on disk.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// GlobalConfigPath returns ~/.config/tasklist/config.toml.
func GlobalConfigPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tasklist", "config.toml"), nil
}

// ProjectConfigPath returns the project config file inside dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, "tasklist.toml")
}

// EnvFilePath returns the .env file inside dir.
func EnvFilePath(dir string) string {
	return filepath.Join(dir, ".env")
}
