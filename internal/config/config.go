// Package config loads tool defaults from an optional JSON file and
// merges CLI flag overrides on top.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds configurable defaults for skmedit.
type Config struct {
	NamesFile    string `json:"names_file"`
	BackupSuffix string `json:"backup_suffix"`
	Workers      int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	NamesFile string
	Workers   int
}

// Resolve fills in any empty fields with defaults. CLI flags take
// priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.NamesFile != "" {
		c.NamesFile = flags.NamesFile
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.BackupSuffix == "" {
		c.BackupSuffix = ".bak"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
