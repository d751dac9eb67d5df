package pages

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
)

func TestWalk_LeafPage_RendersToNameWithExtension(t *testing.T) {
	resolved := Walk([]Page{{Name: "index"}})
	require.Len(t, resolved, 1)
	require.Equal(t, "index.md", resolved[0].OutputPath)
}

func TestWalk_DirectoryOverride_PlacesPageThere(t *testing.T) {
	resolved := Walk([]Page{{Name: "api", Directory: "reference"}})
	require.Len(t, resolved, 1)
	require.Equal(t, "reference/api.md", resolved[0].OutputPath)
}

func TestWalk_ContainerPage_IndexAndChildrenUnderDirectory(t *testing.T) {
	resolved := Walk([]Page{{
		Name: "guide",
		Children: []Page{
			{Name: "install"},
			{Name: "usage"},
		},
	}})

	require.Len(t, resolved, 3)
	require.Equal(t, "guide/index.md", resolved[0].OutputPath)
	require.Equal(t, "guide/install.md", resolved[1].OutputPath)
	require.Equal(t, "guide/usage.md", resolved[2].OutputPath)
}

func TestWalk_DirectoryOverrideOnContainer_ChildrenKeepHierarchy(t *testing.T) {
	resolved := Walk([]Page{{
		Name:      "guide",
		Directory: "special",
		Children:  []Page{{Name: "install"}},
	}})

	require.Equal(t, "special/guide/index.md", resolved[0].OutputPath)
	require.Equal(t, "guide/install.md", resolved[1].OutputPath)
}

func TestWalk_CustomExtension_Respected(t *testing.T) {
	resolved := Walk([]Page{{Name: "api", Extension: ".mdc"}})
	require.Equal(t, "api.mdc", resolved[0].OutputPath)
}

func TestWalk_ConfiguredOrder_Preserved(t *testing.T) {
	resolved := Walk([]Page{{Name: "b"}, {Name: "a"}})
	require.Equal(t, "b.md", resolved[0].OutputPath)
	require.Equal(t, "a.md", resolved[1].OutputPath)
}

func TestValidate_EmptyName_ValidationError(t *testing.T) {
	err := Validate([]Page{{Name: "ok", Children: []Page{{Name: ""}}}})
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

func TestValidate_AllNamed_NoError(t *testing.T) {
	require.NoError(t, Validate([]Page{{Name: "a", Children: []Page{{Name: "b"}}}}))
}
