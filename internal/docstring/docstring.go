// Package docstring rewrites conventional documentation sections found in
// free-form docstrings (Arguments, Variables, Returns, Examples, Notes,
// Warnings, Raises) into MDC component blocks.
//
// The pipeline is an ordered list of rewrite rules. Each rule locates its
// section by a forward string search for the literal bolded heading marker,
// parses the body, and replaces the section with a component block. Malformed
// bodies are never partially converted: the rule leaves the whole section
// untouched and the docstring renders as plain Markdown.
package docstring

import (
	"strings"
)

// Pipeline runs the section rewrites in a fixed order. Later rules never
// re-match text produced by earlier ones: heading-bounded rules stop at the
// next heading marker, and grouped code fences carry a "[label]" suffix
// that the fence scanner does not recognize.
type Pipeline struct {
	rules []rule
}

// rule is one section rewrite. Rules are stateless; rewrite returns the full
// text with every occurrence of the rule's section converted.
type rule interface {
	name() string
	rewrite(text string) string
}

// New builds a pipeline using the configured section-kind → component
// identifier mapping. Missing keys fall back to the Nuxt UI defaults.
func New(components map[string]string) *Pipeline {
	get := func(key, fallback string) string {
		if v, ok := components[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	return &Pipeline{rules: []rule{
		&argumentsRule{component: get("arguments", "UArguments")},
		&variablesRule{component: get("variables", "UVariables")},
		&textRule{kind: "returns", headings: []string{"Returns"}, component: get("returns", "UReturns")},
		&examplesRule{component: get("examples", "UCodeGroup")},
		&alertRule{kind: "notes", headings: []string{"Notes", "Note"}, alertType: "info", title: "Note", component: get("notes", "UAlert")},
		&alertRule{kind: "warnings", headings: []string{"Warnings", "Warning"}, alertType: "warning", title: "Warning", component: get("warnings", "UAlert")},
		&raisesRule{component: get("raises", "UCallout")},
		&codeGroupRule{component: get("code_block", "UCodeGroup")},
	}}
}

// Process rewrites all recognized sections of a docstring. The input is
// returned unchanged when no section matches.
func (p *Pipeline) Process(doc string) string {
	for _, r := range p.rules {
		doc = r.rewrite(doc)
	}
	return doc
}

// findHeading locates the next "**<name>**:" marker at a line start, at or
// after the from offset, trying each candidate heading name. The heading must
// be followed by a blank line; start is the marker offset and bodyStart the
// offset just past the blank line.
func findHeading(text string, from int, names []string) (start, bodyStart int, ok bool) {
	best := -1
	bestBody := 0
	for _, name := range names {
		marker := "**" + name + "**:"
		cursor := from
		for {
			idx := strings.Index(text[cursor:], marker)
			if idx < 0 {
				break
			}
			pos := cursor + idx
			if pos > 0 && text[pos-1] != '\n' {
				cursor = pos + len(marker)
				continue
			}
			body, found := consumeBlankLine(text, pos+len(marker))
			if !found {
				cursor = pos + len(marker)
				continue
			}
			if best < 0 || pos < best {
				best = pos
				bestBody = body
			}
			break
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestBody, true
}

// consumeBlankLine expects optional horizontal whitespace, a newline, more
// optional horizontal whitespace, and a second newline.
func consumeBlankLine(text string, i int) (int, bool) {
	for n := 0; n < 2; n++ {
		for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
		if i >= len(text) || text[i] != '\n' {
			return 0, false
		}
		i++
	}
	return i, true
}

// bodyEnd returns the end of a section body: the offset just before the
// next line-start heading marker, or the end of text. Whitespace between the
// body and the boundary heading stays outside the body, so an adjacent
// heading yields an empty body.
func bodyEnd(text string, bodyStart int) int {
	cursor := bodyStart
	for {
		idx := strings.Index(text[cursor:], "**")
		if idx < 0 {
			return len(text)
		}
		pos := cursor + idx
		if (pos == 0 || text[pos-1] == '\n') && isHeadingAt(text, pos) {
			for pos > bodyStart {
				c := text[pos-1]
				if c != '\n' && c != ' ' && c != '\t' {
					break
				}
				pos--
			}
			return pos
		}
		cursor = pos + 2
	}
}

// isHeadingAt reports whether a heading that findHeading accepts starts at
// pos: "**<name>**:" with a non-empty single-line name, followed by a blank
// line.
func isHeadingAt(text string, pos int) bool {
	s := text[pos:]
	if !strings.HasPrefix(s, "**") {
		return false
	}
	closing := strings.Index(s[2:], "**:")
	if closing <= 0 {
		return false
	}
	if strings.ContainsAny(s[2:2+closing], "*\n") {
		return false
	}
	_, ok := consumeBlankLine(text, pos+closing+5)
	return ok
}

// rewriteSections drives a heading-bounded rule: for every heading occurrence
// it calls try with the raw body; try returns the replacement text, or
// ok=false to leave the section untouched.
func rewriteSections(text string, headings []string, try func(body string) (string, bool)) string {
	var b strings.Builder
	cursor := 0
	for cursor < len(text) {
		start, bodyStart, found := findHeading(text, cursor, headings)
		if !found {
			break
		}
		end := bodyEnd(text, bodyStart)
		replacement, converted := "", false
		if end > bodyStart {
			replacement, converted = try(text[bodyStart:end])
		}
		if !converted {
			b.WriteString(text[cursor:bodyStart])
			cursor = bodyStart
			continue
		}
		b.WriteString(text[cursor:start])
		b.WriteString(replacement)
		cursor = end
	}
	b.WriteString(text[cursor:])
	return b.String()
}
