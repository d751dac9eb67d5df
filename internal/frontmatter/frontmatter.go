// Package frontmatter reads, writes, and assembles the YAML metadata block
// (`---` delimited) at the top of generated content files.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates a document started with a frontmatter
// delimiter but never closed it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

var delimiter = []byte("---\n")

// Split separates a document into its parsed frontmatter fields and the
// Markdown body. Documents without a leading delimiter return had=false and
// the full input as body.
func Split(content []byte) (fields map[string]any, body []byte, had bool, err error) {
	if !bytes.HasPrefix(content, delimiter) {
		return nil, content, false, nil
	}

	rest := content[len(delimiter):]
	var raw []byte
	switch {
	case bytes.HasPrefix(rest, delimiter):
		// Empty frontmatter block.
		body = rest[len(delimiter):]
	default:
		idx := bytes.Index(rest, []byte("\n---\n"))
		if idx < 0 {
			return nil, nil, false, ErrMissingClosingDelimiter
		}
		raw = rest[:idx+1]
		body = rest[idx+len("\n---\n"):]
	}

	fields = map[string]any{}
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &fields); err != nil {
			return nil, nil, false, err
		}
		if fields == nil {
			fields = map[string]any{}
		}
	}
	return fields, body, true, nil
}

// Compose serializes fields between `---` delimiters and appends the body,
// separated by a blank line. With no fields the body is returned as-is.
func Compose(fields map[string]any, body []byte) ([]byte, error) {
	if len(fields) == 0 {
		return body, nil
	}

	raw, err := SerializeYAML(fields)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(raw)+len(body)+2*len(delimiter)+1)
	out = append(out, delimiter...)
	out = append(out, raw...)
	out = append(out, delimiter...)
	out = append(out, '\n')
	out = append(out, body...)
	return out, nil
}
