package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"skm-editor/internal/skm"
)

func writeModel(t *testing.T, path string, version byte) {
	t.Helper()
	f := &skm.File{
		Name:    filepath.Base(path),
		Version: version,
		Joints: []skm.JointRec{
			{Name: "root", FirstChild: 1, NextSibling: skm.None, FirstObject: 0},
			{Name: "arm", FirstChild: skm.None, NextSibling: skm.None, FirstObject: skm.None},
		},
		Objects: []skm.ObjectRec{
			{Next: skm.None, Payload: []byte("payload")},
		},
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, skm.Write(path, f))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, filepath.Join(dir, "a.skm"), skm.VersionPlain)
	writeModel(t, filepath.Join(dir, "sub", "b.skm"), skm.VersionObfuscated)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.skm"), []byte("BMD\x01junk"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	results, err := Scan(Config{Dir: dir, Workers: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Path order regardless of worker completion order.
	require.Equal(t, filepath.Join(dir, "a.skm"), results[0].Path)
	require.Equal(t, filepath.Join(dir, "broken.skm"), results[1].Path)
	require.Equal(t, filepath.Join(dir, "sub", "b.skm"), results[2].Path)

	require.Empty(t, results[0].Error)
	require.Equal(t, 2, results[0].Joints)
	require.Equal(t, 1, results[0].Objects)

	require.NotEmpty(t, results[1].Error)

	require.Empty(t, results[2].Error)
	require.Equal(t, "b.skm", results[2].Name)
}

func TestScanMalformedHierarchy(t *testing.T) {
	dir := t.TempDir()
	// Structurally valid container whose object is claimed by two joints.
	f := &skm.File{
		Name: "shared",
		Joints: []skm.JointRec{
			{Name: "root", FirstChild: 1, NextSibling: skm.None, FirstObject: 0},
			{Name: "arm", FirstChild: skm.None, NextSibling: skm.None, FirstObject: 0},
		},
		Objects: []skm.ObjectRec{{Next: skm.None, Payload: []byte("x")}},
	}
	require.NoError(t, skm.Write(filepath.Join(dir, "shared.skm"), f))

	results, err := Scan(Config{Dir: dir, Workers: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Contains(t, results[0].Error, "linked from joints")
}

func TestScanEmptyDir(t *testing.T) {
	results, err := Scan(Config{Dir: t.TempDir(), Workers: 4})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(Config{Dir: filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
}
