// Package markdown provides read-only analysis of Markdown bodies
// (frontmatter already removed). It backs description derivation for spliced
// source files and link counting for the render report; it never re-renders
// Markdown.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstParagraph returns the plain text of the first paragraph of a Markdown
// body, or "" when the document has none. Headings are skipped.
func FirstParagraph(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var result string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || result != "" {
			return gmast.WalkContinue, nil
		}
		if para, ok := n.(*gmast.Paragraph); ok {
			var b strings.Builder
			for i := 0; i < para.Lines().Len(); i++ {
				seg := para.Lines().At(i)
				b.Write(seg.Value(body))
			}
			result = strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", " "))
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return result
}

// LinkCount returns the number of link-like constructs (inline links,
// autolinks, images) in a Markdown body.
func LinkCount(body []byte) int {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	count := 0
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch n.(type) {
		case *gmast.Link, *gmast.AutoLink, *gmast.Image:
			count++
		}
		return gmast.WalkContinue, nil
	})
	return count
}
