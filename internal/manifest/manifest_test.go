package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	m := New("run-1", time.Now())
	m.Append("index.md")
	m.Append("reference/api.md")
	require.NoError(t, m.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "run-1", loaded.RunID)
	require.ElementsMatch(t, []string{"index.md", "reference/api.md"}, loaded.Files)
}

func TestLoad_MissingManifest_EmptyPriorRun(t *testing.T) {
	loaded, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, loaded.Files)
}

func TestContains_RecordedPath_Found(t *testing.T) {
	m := New("run-1", time.Now())
	m.Append("a/b.md")
	require.True(t, m.Contains("a/b.md"))
	require.False(t, m.Contains("a/c.md"))
}

func TestClean_RemovesRecordedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "page.md"), []byte("y"), 0o644))

	m := New("run-1", time.Now())
	m.Append("index.md")
	m.Append("sub/page.md")
	m.Append("never-written.md")

	removed, err := m.Clean(dir)
	require.NoError(t, err)
	require.Equal(t, 2, removed)
	require.NoFileExists(t, filepath.Join(dir, "index.md"))
	require.NoFileExists(t, filepath.Join(dir, "sub", "page.md"))
}
