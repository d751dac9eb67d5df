package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nuxtdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MinimalConfig_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
api_dump: api.json
pages:
  - name: index
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "content", cfg.ContentDirectory)
	require.Equal(t, ":8931", cfg.Watch.Listen)
	require.Equal(t, "nuxtdoc.render", cfg.Events.Subject)
	require.True(t, cfg.CleanRenderEnabled())
	require.True(t, cfg.UseMDCEnabled())
}

func TestLoad_MissingFile_Error(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidPageTree_Error(t *testing.T) {
	path := writeConfig(t, `
api_dump: api.json
pages:
  - name: ""
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EnvExpansion_SubstitutesVariables(t *testing.T) {
	t.Setenv("NUXTDOC_TEST_DUMP", "expanded.json")
	path := writeConfig(t, `
api_dump: ${NUXTDOC_TEST_DUMP}
pages:
  - name: index
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "expanded.json", cfg.APIDump)
}

func TestLoad_ExplicitToggles_Respected(t *testing.T) {
	path := writeConfig(t, `
api_dump: api.json
clean_render: false
use_mdc: false
pages:
  - name: index
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.CleanRenderEnabled())
	require.False(t, cfg.UseMDCEnabled())
}

func TestComponents_OverlayOnDefaults(t *testing.T) {
	cfg := &Config{MDCComponents: map[string]string{"notes": "MyAlert"}}
	components := cfg.Components()
	require.Equal(t, "MyAlert", components["notes"])
	require.Equal(t, "UArguments", components["arguments"])
	require.Equal(t, "UCallout", components["raises"])
}

func TestIcons_OverlayOnDefaults(t *testing.T) {
	cfg := &Config{ObjectIcons: map[string]string{"class": "i-custom-class"}}
	icons := cfg.Icons()
	require.Equal(t, "i-custom-class", icons["class"])
	require.NotEmpty(t, icons["module"])
	require.NotEmpty(t, icons["page"])
}

func TestInit_ExistingFileWithoutForce_Error(t *testing.T) {
	path := writeConfig(t, "api_dump: api.json\npages:\n  - name: index\n")
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "api.json", cfg.APIDump)
	require.NotEmpty(t, cfg.Pages)
}
