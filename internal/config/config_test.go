package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skmedit.json")
	content := `{"names_file": "labels.yaml", "workers": 3}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Resolve(Flags{})

	require.Equal(t, "labels.yaml", cfg.NamesFile)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, ".bak", cfg.BackupSuffix)
}

func TestFlagsOverride(t *testing.T) {
	cfg := Config{NamesFile: "from-file.yaml", Workers: 2}
	cfg.Resolve(Flags{NamesFile: "from-flag.yaml", Workers: 8})

	require.Equal(t, "from-flag.yaml", cfg.NamesFile)
	require.Equal(t, 8, cfg.Workers)
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	require.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.Equal(t, ".bak", cfg.BackupSuffix)
	require.Empty(t, cfg.NamesFile)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = Load(path)
	require.Error(t, err)
}
