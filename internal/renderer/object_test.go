package renderer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/nuxtdoc/internal/apidoc"
	"git.home.luguber.info/inful/nuxtdoc/internal/pages"
)

func TestRewriteCrossRefs_DottedReference_BecomesLink(t *testing.T) {
	cfg := testConfig(t, nil)
	cfg.BaseURL = "docs/api"
	r := New(cfg, nil)

	out := r.rewriteCrossRefs("See #calc.add for details.")
	require.Equal(t, "See [calc.add](/docs/api/calc/add) for details.", out)
}

func TestRewriteCrossRefs_HeadingsAndNumbers_Untouched(t *testing.T) {
	r := New(testConfig(t, nil), nil)

	for _, text := range []string{
		"# A heading line",
		"issue #42 is unrelated",
		"#!/bin/bash",
	} {
		require.Equal(t, text, r.rewriteCrossRefs(text))
	}
}

func TestRewriteCrossRefs_LineStart_Resolved(t *testing.T) {
	cfg := testConfig(t, nil)
	cfg.BaseURL = "/"
	r := New(cfg, nil)

	out := r.rewriteCrossRefs("intro line\n#calc.add does the work")
	require.Equal(t, "intro line\n[calc.add](/calc/add) does the work", out)
}

func TestRewriteCrossRefs_TextStart_Resolved(t *testing.T) {
	cfg := testConfig(t, nil)
	cfg.BaseURL = "/"
	r := New(cfg, nil)

	out := r.rewriteCrossRefs("#calc.add is the entry point")
	require.Equal(t, "[calc.add](/calc/add) is the entry point", out)
}

func TestRewriteCrossRefs_Parenthesized_Resolved(t *testing.T) {
	cfg := testConfig(t, nil)
	cfg.BaseURL = "/"
	r := New(cfg, nil)

	out := r.rewriteCrossRefs("the helper (#calc.add) does it")
	require.Contains(t, out, "[calc.add](/calc/add)")
}

func TestRenderObject_NestingDeeperThanSix_CapsHeadingLevel(t *testing.T) {
	r := New(testConfig(t, nil), nil)

	leaf := &apidoc.Object{Kind: apidoc.KindMethod, Name: "deep"}
	var buf bytes.Buffer
	r.renderObject(&buf, 9, leaf)

	require.True(t, strings.HasPrefix(buf.String(), "###### deep\n"))
	require.NotContains(t, buf.String(), "#######")
}

func TestRenderObject_CrossRefInsideDocstring_ResolvedBeforePipeline(t *testing.T) {
	cfg := testConfig(t, []pages.Page{{Name: "api", Contents: []string{"lib"}}})
	cfg.BaseURL = "docs"

	roots, err := apidoc.Parse([]byte(`[
		{"kind": "module", "name": "lib", "docstring": "Companion to #lib.Widget here."}
	]`))
	require.NoError(t, err)

	_, err = New(cfg, roots).Render(context.Background())
	require.NoError(t, err)

	_, body := readPage(t, cfg.ContentDirectory+"/api.md")
	require.Contains(t, body, "[lib.Widget](/docs/lib/widget)")
}
