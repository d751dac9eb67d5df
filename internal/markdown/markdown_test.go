package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstParagraph_SkipsHeading(t *testing.T) {
	body := []byte("# Title\n\nThe first paragraph of prose.\n\nSecond paragraph.\n")
	require.Equal(t, "The first paragraph of prose.", FirstParagraph(body))
}

func TestFirstParagraph_NoParagraph_Empty(t *testing.T) {
	require.Empty(t, FirstParagraph([]byte("# Only a heading\n")))
	require.Empty(t, FirstParagraph(nil))
}

func TestLinkCount_CountsInlineLinks(t *testing.T) {
	body := []byte("See [one](/a) and [two](/b).\n\n- [three](./c)\n")
	require.Equal(t, 3, LinkCount(body))
}

func TestLinkCount_NoLinks_Zero(t *testing.T) {
	require.Equal(t, 0, LinkCount([]byte("plain text\n")))
}
