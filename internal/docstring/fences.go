package docstring

import (
	"strings"

	"git.home.luguber.info/inful/nuxtdoc/internal/mdc"
)

// fence is one triple-backtick code fragment found by a line scan. The span
// covers the fence lines themselves; end stops at the closing backticks so
// the trailing newline stays outside the span.
type fence struct {
	start    int
	end      int
	language string
	code     string
}

// toBlock converts a fence into a code-group block. The language doubles as
// the display filename; untagged fences default to "text".
func (f fence) toBlock() mdc.CodeBlock {
	lang := f.language
	if lang == "" {
		lang = "text"
	}
	return mdc.CodeBlock{Language: lang, Filename: lang, Code: f.code}
}

// findFences scans text line by line for fenced code fragments.
//
// An opening line is "```" optionally followed by a bare language word; a
// line with anything else after the backticks (a space, a "[label]") is not
// an opener. The closing line is exactly "```". Unclosed fences are ignored.
func findFences(text string) []fence {
	var fences []fence

	offset := 0
	open := false
	var cur fence
	var codeLines []string

	for offset <= len(text) {
		lineEnd := strings.IndexByte(text[offset:], '\n')
		var line string
		next := len(text) + 1
		if lineEnd < 0 {
			line = text[offset:]
		} else {
			line = text[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}

		trimmed := strings.TrimRight(line, " \t")
		switch {
		case !open && isFenceOpener(trimmed):
			open = true
			cur = fence{start: offset, language: trimmed[3:]}
			codeLines = codeLines[:0]
		case open && trimmed == "```":
			cur.end = offset + len(line)
			cur.code = strings.TrimSpace(strings.Join(codeLines, "\n"))
			fences = append(fences, cur)
			open = false
		case open:
			codeLines = append(codeLines, line)
		}

		offset = next
	}

	return fences
}

func isFenceOpener(line string) bool {
	if !strings.HasPrefix(line, "```") {
		return false
	}
	for _, r := range line[3:] {
		isWord := r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isWord {
			return false
		}
	}
	return true
}
