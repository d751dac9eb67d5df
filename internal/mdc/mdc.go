// Package mdc emits MDC (Markdown Components) block syntax as understood by
// Nuxt Content. Builders are pure string producers; they never touch the
// filesystem.
package mdc

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize converts a component identifier (e.g. "UCodeGroup") into the
// canonical dash-separated form Nuxt Content expects ("u-code-group").
//
// Identifiers that already contain a dash are assumed normalized and are
// only lower-cased, making Normalize idempotent.
func Normalize(component string) string {
	if strings.Contains(component, "-") {
		return strings.ToLower(component)
	}

	var b strings.Builder
	b.Grow(len(component) + 4)
	for i, r := range component {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CodeBlock is one fenced code fragment inside a code group.
type CodeBlock struct {
	Language string
	Filename string
	Code     string
}

// Alert builds an alert component with a severity type and optional title.
//
//	::u-alert{type="warning" title="Warning"}
//	content
//	::
func Alert(content, alertType, title, component string) string {
	props := fmt.Sprintf("type=%q", alertType)
	if title != "" {
		props += fmt.Sprintf(" title=%q", title)
	}
	return fmt.Sprintf("::%s{%s}\n%s\n::", Normalize(component), props, content)
}

// Text wraps free text in a bare component block without properties.
func Text(content, component string) string {
	return fmt.Sprintf("::%s\n%s\n::", Normalize(component), content)
}

// CodeGroup builds a grouped code component from one or more fenced blocks.
// Each block keeps its language tag; the filename renders as the tab label
// when present.
func CodeGroup(blocks []CodeBlock, component string) string {
	var b strings.Builder
	b.WriteString("::")
	b.WriteString(Normalize(component))
	b.WriteByte('\n')

	for _, block := range blocks {
		lang := block.Language
		if lang == "" {
			lang = "text"
		}
		if block.Filename != "" {
			fmt.Fprintf(&b, "```%s [%s]\n", lang, block.Filename)
		} else {
			fmt.Fprintf(&b, "```%s\n", lang)
		}
		b.WriteString(block.Code)
		b.WriteString("\n```\n")
	}

	b.WriteString("::")
	return b.String()
}

// Callout builds a callout component carrying an error category property,
// with one body line per entry.
//
//	::u-callout
//	---
//	type: error
//	---
//	**ValueError**: when input is negative
//	::
func Callout(lines []string, component string) string {
	var b strings.Builder
	b.WriteString("::")
	b.WriteString(Normalize(component))
	b.WriteString("\n---\ntype: error\n---\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n::")
	return b.String()
}
