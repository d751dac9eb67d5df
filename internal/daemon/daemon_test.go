package daemon

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/nuxtdoc/internal/config"
	"git.home.luguber.info/inful/nuxtdoc/internal/pages"
	"git.home.luguber.info/inful/nuxtdoc/internal/renderer"
)

func testDaemon(t *testing.T) *Daemon {
	t.Helper()
	cfg := &config.Config{
		APIDump: "api.json",
		Pages: []pages.Page{
			{Name: "index", Source: "README.md"},
			{Name: "guide", Children: []pages.Page{{Name: "install", Source: "docs/install.md"}}},
		},
	}
	cfg.ApplyDefaults()
	return New("nuxtdoc.yaml", cfg, Options{})
}

func TestWatchedFiles_ConfigDumpAndSources(t *testing.T) {
	d := testDaemon(t)
	files := d.watchedFiles()
	require.ElementsMatch(t, []string{"nuxtdoc.yaml", "api.json", "README.md", "docs/install.md"}, files)
}

func TestSourceWatcherUpdate_NewSourceFile_BecomesRelevant(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "nuxtdoc.yaml")
	second := filepath.Join(dir, "docs", "extra.md")
	require.NoError(t, os.WriteFile(first, []byte("pages: []\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Dir(second), 0o755))
	require.NoError(t, os.WriteFile(second, []byte("# Extra\n"), 0o644))

	sw, err := NewSourceWatcher([]string{first})
	require.NoError(t, err)
	defer sw.watcher.Close()

	require.False(t, sw.relevant(fsnotify.Event{Name: second, Op: fsnotify.Write}))

	require.NoError(t, sw.Update([]string{first, second}))

	require.True(t, sw.relevant(fsnotify.Event{Name: second, Op: fsnotify.Write}))
	require.True(t, sw.relevant(fsnotify.Event{Name: first, Op: fsnotify.Write}))
}

func TestHandleHealth_ReturnsOK(t *testing.T) {
	server := NewServer(testDaemon(t))

	rec := httptest.NewRecorder()
	server.handleHealth(rec, httptest.NewRequest("GET", "/healthz", nil))

	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleStatus_NoRenderYet(t *testing.T) {
	server := NewServer(testDaemon(t))

	rec := httptest.NewRecorder()
	server.handleStatus(rec, httptest.NewRequest("GET", "/status", nil))

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "no render yet")
}

func TestHandleStatus_ReportsLastRun(t *testing.T) {
	d := testDaemon(t)
	d.lastReport = &renderer.Report{
		RunID:    "run-1",
		Pages:    3,
		Files:    []string{"a.md", "b.md", "c.md"},
		Skipped:  1,
		Links:    7,
		Duration: 250 * time.Millisecond,
	}
	server := NewServer(d)

	rec := httptest.NewRecorder()
	server.handleStatus(rec, httptest.NewRequest("GET", "/status", nil))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "run-1", payload["run_id"])
	require.EqualValues(t, 3, payload["pages"])
	require.EqualValues(t, 3, payload["files"])
	require.EqualValues(t, 1, payload["skipped"])
	require.EqualValues(t, 7, payload["links"])
	require.EqualValues(t, 250, payload["duration_ms"])
}
