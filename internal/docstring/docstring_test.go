package docstring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	return New(nil)
}

func TestProcess_WellFormedArguments_ConvertsToComponent(t *testing.T) {
	doc := "Does a thing.\n\n" +
		"**Arguments**:\n\n" +
		"- `a: int` - first operand\n" +
		"- `b: int` - second operand\n" +
		"- `scale: float` - multiplier\n"

	out := newPipeline(t).Process(doc)

	require.Contains(t, out, "::u-arguments\n")
	require.NotContains(t, out, "**Arguments**:")
	for _, want := range []string{"name: a", "name: b", "name: scale", "type: int", "type: float"} {
		require.Contains(t, out, want)
	}
	require.Contains(t, out, "description: first operand")
}

func TestProcess_MalformedArgumentBullet_SectionLeftUntouched(t *testing.T) {
	doc := "Does a thing.\n\n" +
		"**Arguments**:\n\n" +
		"- `a: int` - first operand\n" +
		"- b - not backticked\n"

	out := newPipeline(t).Process(doc)

	require.Contains(t, out, "**Arguments**:")
	require.NotContains(t, out, "::u-arguments")
}

func TestProcess_ArgumentsWithoutBlankLine_NotMatched(t *testing.T) {
	doc := "**Arguments**:\n- `a` - no blank line after heading\n"
	out := newPipeline(t).Process(doc)
	require.Contains(t, out, "**Arguments**:")
}

func TestProcess_AttributesSection_VariablesComponent(t *testing.T) {
	doc := "**Attributes**:\n\n" +
		"- `count: int` - number of entries\n" +
		"- `name` - display name\n"

	out := newPipeline(t).Process(doc)

	require.Contains(t, out, "::u-variables\n")
	require.Contains(t, out, "name: count")
	require.Contains(t, out, "type: int")
	require.NotContains(t, out, "**Attributes**:")
}

func TestProcess_Returns_WrappedInComponent(t *testing.T) {
	doc := "**Returns**:\n\nthe computed sum\n"
	out := newPipeline(t).Process(doc)
	require.Contains(t, out, "::u-returns\nthe computed sum\n::")
	require.NotContains(t, out, "**Returns**:")
}

func TestProcess_NotesAndWarnings_AlertComponents(t *testing.T) {
	doc := "**Notes**:\n\nremember this\n\n**Warnings**:\n\nwatch out\n"
	out := newPipeline(t).Process(doc)
	require.Contains(t, out, "::u-alert{type=\"info\" title=\"Note\"}\nremember this\n::")
	require.Contains(t, out, "::u-alert{type=\"warning\" title=\"Warning\"}\nwatch out\n::")
}

func TestProcess_AdjacentHeadings_EmptySectionLeftUntouched(t *testing.T) {
	doc := "**Notes**:\n\n**Warnings**:\n\nwatch out\n"

	out := newPipeline(t).Process(doc)

	require.Contains(t, out, "**Notes**:")
	require.Contains(t, out, "::u-alert{type=\"warning\" title=\"Warning\"}\nwatch out\n::")
	require.NotContains(t, out, "::u-alert{type=\"info\"")
}

func TestProcess_HeadingAfterSingleNewline_NotSwallowed(t *testing.T) {
	doc := "**Notes**:\n\nremember this\n**Warnings**:\n\nwatch out\n"

	out := newPipeline(t).Process(doc)

	require.Contains(t, out, "::u-alert{type=\"info\" title=\"Note\"}\nremember this\n::")
	require.Contains(t, out, "::u-alert{type=\"warning\" title=\"Warning\"}\nwatch out\n::")
	require.NotContains(t, out, "**Warnings**:")
}

func TestProcess_Raises_CalloutWithBoldedNames(t *testing.T) {
	doc := "**Raises**:\n\n" +
		"- `ValueError`: when input is negative\n" +
		"- `KeyError`: when the key is missing\n"

	out := newPipeline(t).Process(doc)

	require.Contains(t, out, "::u-callout\n---\ntype: error\n---\n")
	require.Contains(t, out, "**ValueError**: when input is negative")
	require.Contains(t, out, "**KeyError**: when the key is missing")
	require.NotContains(t, out, "**Raises**:")
}

func TestProcess_MalformedRaisesBullet_SectionLeftUntouched(t *testing.T) {
	doc := "**Raises**:\n\n- ValueError without backticks\n"
	out := newPipeline(t).Process(doc)
	require.Contains(t, out, "**Raises**:")
	require.NotContains(t, out, "::u-callout")
}

func TestProcess_ExamplesWithFences_GroupedCodeComponent(t *testing.T) {
	doc := "**Examples**:\n\n" +
		"```python\nprint(add(1, 2))\n```\n\n" +
		"```bash\nadd 1 2\n```\n"

	out := newPipeline(t).Process(doc)

	require.Contains(t, out, "::u-code-group\n")
	require.Contains(t, out, "```python [python]\nprint(add(1, 2))\n```")
	require.Contains(t, out, "```bash [bash]\nadd 1 2\n```")
	require.NotContains(t, out, "**Examples**:")
}

func TestProcess_ExamplesWithoutFences_LeftUntouched(t *testing.T) {
	doc := "**Examples**:\n\njust prose, no code\n"
	out := newPipeline(t).Process(doc)
	require.Contains(t, out, "**Examples**:")
}

func TestProcess_FullDocstring_AllSectionsConverted(t *testing.T) {
	doc := "Adds two numbers.\n\n" +
		"**Arguments**:\n\n" +
		"- `a: int` - first operand\n" +
		"- `b: int` - second operand\n\n" +
		"**Returns**:\n\nthe sum\n\n" +
		"**Examples**:\n\n" +
		"```python\nadd(1, 2)\n```\n\n" +
		"```bash\nadd 1 2\n```\n\n" +
		"**Notes**:\n\ncommutative\n\n" +
		"**Warnings**:\n\noverflow is not checked\n\n" +
		"**Raises**:\n\n" +
		"- `OverflowError`: on wraparound\n"

	out := newPipeline(t).Process(doc)

	for _, marker := range []string{"::u-arguments", "::u-returns", "::u-code-group", "::u-alert", "::u-callout"} {
		require.Contains(t, out, marker)
	}
	for _, heading := range []string{"**Arguments**:", "**Returns**:", "**Examples**:", "**Notes**:", "**Warnings**:", "**Raises**:"} {
		require.NotContains(t, out, heading)
	}
	require.Contains(t, out, "Adds two numbers.")
}

func TestProcess_Idempotent_SecondRunChangesNothing(t *testing.T) {
	doc := "**Examples**:\n\n```python\nadd(1, 2)\n```\n\n```bash\nadd 1 2\n```\n"
	p := newPipeline(t)
	once := p.Process(doc)
	require.Equal(t, once, p.Process(once))
}

func TestProcess_CustomComponentMapping_Respected(t *testing.T) {
	p := New(map[string]string{"returns": "MyReturns"})
	out := p.Process("**Returns**:\n\nvalue\n")
	require.Contains(t, out, "::my-returns\n")
}

func TestCodeGroupRule_AdjacentFences_Grouped(t *testing.T) {
	doc := "```python\nfirst()\n```\n\n```bash\nsecond\n```\n"
	out := newPipeline(t).Process(doc)

	require.Contains(t, out, "::u-code-group\n")
	require.Contains(t, out, "```python [python]\nfirst()\n```")
	require.Contains(t, out, "```bash [bash]\nsecond\n```")
}

func TestCodeGroupRule_FencesSeparatedByProse_NotGrouped(t *testing.T) {
	doc := "```python\nfirst()\n```\n\nsome prose in between\nspanning lines\n\n```bash\nsecond\n```\n"
	out := newPipeline(t).Process(doc)

	require.NotContains(t, out, "::u-code-group")
	require.Contains(t, out, "```python\nfirst()\n```")
	require.Contains(t, out, "```bash\nsecond\n```")
}

func TestCodeGroupRule_SingleFence_LeftAlone(t *testing.T) {
	doc := "```python\nonly()\n```\n"
	out := newPipeline(t).Process(doc)
	require.Equal(t, doc, out)
}

func TestFindFences_LabeledOpener_NotRecognized(t *testing.T) {
	fences := findFences("```python [python]\ncode\n```\n")
	require.Empty(t, fences)
}

func TestFindFences_UnclosedFence_Ignored(t *testing.T) {
	fences := findFences("```python\ndangling")
	require.Empty(t, fences)
}

func TestFindFences_TwoFences_LanguagesAndCode(t *testing.T) {
	text := "intro\n\n```python\na = 1\n```\n\n```\nplain\n```\n"
	fences := findFences(text)
	require.Len(t, fences, 2)
	require.Equal(t, "python", fences[0].language)
	require.Equal(t, "a = 1", fences[0].code)
	require.Equal(t, "", fences[1].language)
	require.Equal(t, "plain", fences[1].code)
	require.True(t, strings.HasPrefix(text[fences[0].start:], "```python"))
}
