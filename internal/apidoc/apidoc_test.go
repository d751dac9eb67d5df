package apidoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDump = `[
	{
		"kind": "module",
		"name": "calc",
		"docstring": "\nArithmetic helpers.\n\nDetails follow.",
		"members": [
			{
				"kind": "function",
				"name": "add",
				"signature": "add(a, b)",
				"docstring": "Adds two numbers."
			},
			{
				"kind": "class",
				"name": "Calculator",
				"members": [
					{"kind": "method", "name": "reset"}
				]
			}
		]
	}
]`

func TestParse_WiresParentLinks(t *testing.T) {
	roots, err := Parse([]byte(sampleDump))
	require.NoError(t, err)
	require.Len(t, roots, 1)

	reset := Lookup(roots, "calc.Calculator.reset")
	require.NotNil(t, reset)
	require.Equal(t, "Calculator", reset.Parent().Name)
	require.Equal(t, "calc.Calculator.reset", reset.ID())
}

func TestLookup_MissingSegment_Nil(t *testing.T) {
	roots, err := Parse([]byte(sampleDump))
	require.NoError(t, err)
	require.Nil(t, Lookup(roots, "calc.nope"))
	require.Nil(t, Lookup(roots, "other.add"))
}

func TestFirstDocstringLine_SkipsLeadingBlankLines(t *testing.T) {
	roots, err := Parse([]byte(sampleDump))
	require.NoError(t, err)
	require.Equal(t, "Arithmetic helpers.", roots[0].FirstDocstringLine())
}

func TestKindNormalize_UnknownKinds_MapToUnknown(t *testing.T) {
	require.Equal(t, KindClass, Kind("Class").Normalize())
	require.Equal(t, KindModule, Kind("MODULE").Normalize())
	require.Equal(t, KindUnknown, Kind("enum").Normalize())
	require.Equal(t, KindUnknown, Kind("").Normalize())
}

func TestMember_DirectChildOnly(t *testing.T) {
	roots, err := Parse([]byte(sampleDump))
	require.NoError(t, err)
	calc := roots[0]
	require.NotNil(t, calc.Member("add"))
	require.Nil(t, calc.Member("reset"))
}
