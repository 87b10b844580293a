package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skm-editor/internal/config"
	"skm-editor/internal/names"
	"skm-editor/internal/skeleton"
	"skm-editor/internal/skm"
)

var (
	flagConfig string
	flagNames  string
)

var rootCmd = &cobra.Command{
	Use:   "skmedit",
	Short: "skmedit inspects and edits object-to-joint bindings in SKM model files",
	Long: `skmedit loads an SKM skeletal model file, lists its joints and render
objects in canonical pre-order, moves objects between joints' lists, and
writes the result back out. Joint and object indices are derived per
session from the tree shape; they are not stored in the file.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to skmedit.json")
	rootCmd.PersistentFlags().StringVar(&flagNames, "names", "", "YAML file with joint label overrides")
}

// setup merges config file and persistent flags and loads the label table.
func setup(extra config.Flags) (config.Config, names.Table, error) {
	var cfg config.Config
	if flagConfig != "" {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return config.Config{}, nil, err
		}
	}
	if extra.NamesFile == "" {
		extra.NamesFile = flagNames
	}
	cfg.Resolve(extra)

	labels := names.Table{}
	if cfg.NamesFile != "" {
		var err error
		labels, err = names.Load(cfg.NamesFile)
		if err != nil {
			return config.Config{}, nil, err
		}
	}
	return cfg, labels, nil
}

// openSession parses a model file and opens an edit session over it.
func openSession(path string) (*skm.File, *skeleton.Model, *skeleton.Session, error) {
	f, err := skm.Parse(path)
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := skeleton.FromFile(f)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := skeleton.Open(m)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, m, s, nil
}
