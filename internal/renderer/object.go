package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/nuxtdoc/internal/apidoc"
)

// maxHeadingLevel caps nesting: markdown has no heading deeper than h6.
const maxHeadingLevel = 6

// renderObject writes one documented object and its members. Heading depth
// follows the nesting level; the docstring is rewritten through the MDC
// pipeline when MDC output is enabled.
func (r *Renderer) renderObject(buf *bytes.Buffer, level int, obj *apidoc.Object) {
	depth := level
	if depth > maxHeadingLevel {
		depth = maxHeadingLevel
	}
	fmt.Fprintf(buf, "%s %s\n\n", strings.Repeat("#", depth), obj.Name)

	if obj.Signature != "" {
		fmt.Fprintf(buf, "```\n%s\n```\n\n", strings.TrimRight(obj.Signature, "\n"))
	}

	if doc := strings.TrimSpace(obj.Docstring); doc != "" {
		doc = r.rewriteCrossRefs(doc)
		if r.cfg.UseMDCEnabled() {
			doc = r.pipeline.Process(doc)
		}
		buf.WriteString(doc)
		buf.WriteString("\n\n")
	}

	for _, member := range obj.Members {
		r.renderObject(buf, level+1, member)
	}
}

// rewriteCrossRefs replaces inline #dotted.name references with markdown
// links to the referenced object's page. A marker only counts when preceded
// by a space, an opening parenthesis, or a line start, and followed by an
// identifier. Markdown headings and shell comments keep a space after the
// hash and stay untouched.
func (r *Renderer) rewriteCrossRefs(text string) string {
	var out strings.Builder
	last := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '#' {
			continue
		}
		if i > 0 && text[i-1] != ' ' && text[i-1] != '(' && text[i-1] != '\n' {
			continue
		}
		name := refNameAt(text, i+1)
		if name == "" {
			continue
		}

		out.WriteString(text[last:i])
		fmt.Fprintf(&out, "[%s](%s)", name, r.refs.Resolve(name))
		i += len(name)
		last = i + 1
	}
	if last == 0 {
		return text
	}
	out.WriteString(text[last:])
	return out.String()
}

// refNameAt extracts a dotted identifier starting at position i, or "" when
// the character there cannot start one.
func refNameAt(text string, i int) string {
	j := i
	for j < len(text) {
		c := text[j]
		if c == '_' || c == '.' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9' && j > i) {
			j++
			continue
		}
		break
	}
	name := strings.TrimRight(text[i:j], ".")
	if name == "" || !isRefStart(name[0]) {
		return ""
	}
	return name
}

func isRefStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
