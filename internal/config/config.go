// Package config loads and saves the per-project lintgate configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Dir is the per-project configuration directory.
const Dir = ".lintgate"

// FileName is the configuration file name inside Dir.
const FileName = "config.json"

// Config is the per-project lintgate configuration.
type Config struct {
	// Tool is the default runner name (e.g., "ruff").
	Tool string `json:"tool,omitempty"`

	// Fix controls auto-fix mode for hook runs. Defaults to true.
	Fix *bool `json:"fix,omitempty"`

	// ProjectDirEnv overrides the environment variable that supplies
	// the project root (default: LINTGATE_PROJECT_DIR).
	ProjectDirEnv string `json:"project_dir_env,omitempty"`

	// ToolsDir overrides where tools are installed.
	ToolsDir string `json:"tools_dir,omitempty"`
}

// DefaultTool is used when no config file exists.
const DefaultTool = "ruff"

// FixEnabled reports whether auto-fix is enabled (default true).
func (c *Config) FixEnabled() bool {
	if c.Fix == nil {
		return true
	}
	return *c.Fix
}

// Path returns the config file path under root.
func Path(root string) string {
	return filepath.Join(root, Dir, FileName)
}

// Load loads the configuration for the given project root.
// A missing config file is not an error: defaults are returned.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Tool: DefaultTool}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}

	return &cfg, nil
}

// Save writes the configuration under the given project root.
func Save(root string, cfg *Config) error {
	dir := filepath.Join(root, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(Path(root), data, 0644)
}
