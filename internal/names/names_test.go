package names

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")
	content := "bone_03: left hand\n\"\": unnamed\nweapon_slot: sword mount\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "left hand", tbl["bone_03"])
	require.Equal(t, "sword mount", tbl["weapon_slot"])
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	tbl, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.NotNil(t, tbl)
	require.Empty(t, tbl)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLabel(t *testing.T) {
	tbl := Table{"bone_03": "left hand", "blank": ""}

	require.Equal(t, "left hand", tbl.Label("bone_03", 5))
	require.Equal(t, "bone_07", tbl.Label("bone_07", 7)) // no override
	require.Equal(t, "blank", tbl.Label("blank", 2))     // empty override falls back
	require.Equal(t, "joint4", tbl.Label("", 4))         // nameless joint
}
