package mdc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
)

func TestNormalize_CamelCase_DashSeparated(t *testing.T) {
	require.Equal(t, "u-code-group", Normalize("UCodeGroup"))
	require.Equal(t, "u-alert", Normalize("UAlert"))
	require.Equal(t, "my-component", Normalize("MyComponent"))
}

func TestNormalize_AlreadyNormalized_Idempotent(t *testing.T) {
	for _, s := range []string{"u-alert", "u-code-group", "U-Alert"} {
		once := Normalize(s)
		require.Equal(t, once, Normalize(once))
	}
	require.Equal(t, "u-alert", Normalize("u-alert"))
}

func TestAlert_WithTitle_EmitsProps(t *testing.T) {
	out := Alert("be careful", "warning", "Warning", "UAlert")
	require.Equal(t, "::u-alert{type=\"warning\" title=\"Warning\"}\nbe careful\n::", out)
}

func TestAlert_WithoutTitle_OmitsTitleProp(t *testing.T) {
	out := Alert("heads up", "info", "", "UAlert")
	require.Equal(t, "::u-alert{type=\"info\"}\nheads up\n::", out)
}

func TestText_WrapsContent_BareComponent(t *testing.T) {
	out := Text("the result", "UReturns")
	require.Equal(t, "::u-returns\nthe result\n::", out)
}

func TestCodeGroup_TwoBlocks_LabeledFences(t *testing.T) {
	out := CodeGroup([]CodeBlock{
		{Language: "python", Filename: "python", Code: "print(1)"},
		{Language: "bash", Filename: "bash", Code: "echo 1"},
	}, "UCodeGroup")

	expected := "::u-code-group\n" +
		"```python [python]\nprint(1)\n```\n" +
		"```bash [bash]\necho 1\n```\n" +
		"::"
	require.Equal(t, expected, out)
}

func TestCodeGroup_EmptyLanguage_DefaultsToText(t *testing.T) {
	out := CodeGroup([]CodeBlock{{Code: "plain"}}, "UCodeGroup")
	require.Contains(t, out, "```text\nplain\n```")
}

func TestCallout_MultipleLines_ErrorTypeProp(t *testing.T) {
	out := Callout([]string{"**ValueError**: bad input", "**KeyError**: missing"}, "UCallout")
	expected := "::u-callout\n---\ntype: error\n---\n" +
		"**ValueError**: bad input\n**KeyError**: missing\n::"
	require.Equal(t, expected, out)
}

func TestItemComponent_Arguments_YAMLProps(t *testing.T) {
	out, err := ItemComponent([]Item{
		{Name: "x", Type: "int", Description: "the value"},
		{Name: "y", Description: "optional"},
	}, ItemKindArguments, "UArguments")
	require.NoError(t, err)

	expected := "::u-arguments\n---\n" +
		"items:\n" +
		"  - name: x\n    type: int\n    description: the value\n" +
		"  - name: y\n    description: optional\n" +
		"---\n::"
	require.Equal(t, expected, out)
}

func TestItemComponent_InvalidKind_ValidationError(t *testing.T) {
	_, err := ItemComponent([]Item{{Name: "x"}}, "parameters", "")
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))
	re := err.(*errors.RenderError)
	require.Equal(t, "parameters", re.Context["component_type"])
}

func TestItemComponent_EmptyItems_EmptyOutput(t *testing.T) {
	out, err := ItemComponent(nil, ItemKindVariables, "")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestVariables_DefaultComponent_UsesUVariables(t *testing.T) {
	out, err := Variables([]Item{{Name: "count", Description: "total"}}, "")
	require.NoError(t, err)
	require.Contains(t, out, "::u-variables\n")
}
