// Package config handles loading tasklist.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tasklist/internal/paths"
	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/joho/godotenv"
)

// DefaultPort is used when no port is configured.
const DefaultPort = 8089

// DefaultLanguage is used when no display language is configured.
const DefaultLanguage = "ja"

const (
	// EnvAddr overrides the server address.
	EnvAddr = "TASKLIST_ADDR"

	// EnvLanguage overrides the display language.
	EnvLanguage = "TASKLIST_LANG"
)

// Config represents the tasklist.toml configuration file.
type Config struct {
	Display Display `toml:"display"`
	Server  Server  `toml:"server"`
	Seed    Seed    `toml:"seed"`
}

// Display contains presentation settings.
type Display struct {
	// Language selects labels and text collation ("ja" or "en").
	Language string `toml:"language"`
}

// Server contains RPC server settings.
type Server struct {
	// Port is the local port the server listens on.
	Port int `toml:"port"`
}

// Seed contains startup data settings.
type Seed struct {
	// File is a TOML or YAML seed list loaded when the server starts.
	// Relative paths are resolved against the directory of the config
	// file that set it.
	File string `toml:"file"`
}

// Load loads configuration from dir and the global config file.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectPath := paths.ProjectConfigPath(dir)
	projectCfg, projectMeta, err := loadConfigFile(projectPath)
	if err != nil {
		return nil, err
	}

	globalCfg.Seed.File = resolveRelative(filepath.Dir(globalPath), globalCfg.Seed.File)
	projectCfg.Seed.File = resolveRelative(dir, projectCfg.Seed.File)

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	return merged, nil
}

// LoadEnv loads dir/.env into the process environment. Variables that are
// already set keep their values. A missing file is not an error.
func LoadEnv(dir string) error {
	path := paths.EnvFilePath(dir)
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Display.Language = mergeString(projectMeta.IsDefined("display", "language"), projectCfg.Display.Language, globalCfg.Display.Language)
	merged.Seed.File = mergeString(projectMeta.IsDefined("seed", "file"), projectCfg.Seed.File, globalCfg.Seed.File)
	if projectMeta.IsDefined("server", "port") {
		merged.Server.Port = projectCfg.Server.Port
	} else if globalMeta.IsDefined("server", "port") {
		merged.Server.Port = globalCfg.Server.Port
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func resolveRelative(dir, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Language returns the display language: TASKLIST_LANG, then the config
// file, then DefaultLanguage.
func (c *Config) Language() string {
	if lang := os.Getenv(EnvLanguage); !internalstrings.IsBlank(lang) {
		return strings.TrimSpace(lang)
	}
	if c != nil && c.Display.Language != "" {
		return c.Display.Language
	}
	return DefaultLanguage
}

// ResolveAddr returns the server address. An explicit addr wins, then
// TASKLIST_ADDR, then the configured port, then DefaultPort.
func (c *Config) ResolveAddr(addr string) (string, error) {
	if !internalstrings.IsBlank(addr) {
		return normalizeAddr(addr)
	}
	if env := os.Getenv(EnvAddr); !internalstrings.IsBlank(env) {
		return normalizeAddr(env)
	}
	port := DefaultPort
	if c != nil && c.Server.Port != 0 {
		port = c.Server.Port
	}
	return normalizeAddr(strconv.Itoa(port))
}

func normalizeAddr(addr string) (string, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return "", fmt.Errorf("address is required")
	}
	if strings.Contains(trimmed, ":") {
		return trimmed, nil
	}
	port, err := strconv.Atoi(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid port %q", trimmed)
	}
	if port <= 0 || port > 65535 {
		return "", fmt.Errorf("port out of range: %d", port)
	}
	return fmt.Sprintf("127.0.0.1:%d", port), nil
}
