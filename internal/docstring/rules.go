package docstring

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/nuxtdoc/internal/mdc"
)

// argumentsRule converts "**Arguments**:" bullet lists into an arguments
// component. Every non-blank body line must have the shape
//
//	- `name` - description
//
// where name may carry an inline ": type" annotation inside the backticks.
// Any non-conforming line leaves the whole section untouched.
type argumentsRule struct {
	component string
}

func (r *argumentsRule) name() string { return "arguments" }

func (r *argumentsRule) rewrite(text string) string {
	return rewriteSections(text, []string{"Arguments"}, func(body string) (string, bool) {
		items, ok := parseArgumentItems(body)
		if !ok || len(items) == 0 {
			return "", false
		}
		out, err := mdc.Arguments(items, r.component)
		if err != nil || out == "" {
			return "", false
		}
		return out, true
	})
}

func parseArgumentItems(body string) ([]mdc.Item, bool) {
	var items []mdc.Item
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, rest, ok := parseBullet(line, " - ")
		if !ok {
			return nil, false
		}
		item := mdc.Item{Name: name, Description: strings.TrimSpace(rest)}
		if colon := strings.Index(name, ":"); colon >= 0 {
			item.Name = strings.TrimSpace(name[:colon])
			item.Type = strings.TrimSpace(name[colon+1:])
		}
		items = append(items, item)
	}
	return items, true
}

// parseBullet matches "- `name`<sep>rest" and returns the backticked name
// and the remainder.
func parseBullet(line, sep string) (name, rest string, ok bool) {
	s := strings.TrimRight(line, " \t")
	if !strings.HasPrefix(s, "- `") {
		return "", "", false
	}
	s = s[len("- `"):]
	closing := strings.Index(s, "`")
	if closing <= 0 {
		return "", "", false
	}
	name = s[:closing]
	s = s[closing+1:]
	if !strings.HasPrefix(s, sep) {
		return "", "", false
	}
	rest = s[len(sep):]
	if strings.TrimSpace(rest) == "" {
		return "", "", false
	}
	return name, rest, true
}

// variablesRule converts "**Variables**:" and "**Attributes**:" bullet lists
// into a variables component. Bullet shape and the conservative all-or-nothing
// policy match the arguments rule.
type variablesRule struct {
	component string
}

func (r *variablesRule) name() string { return "variables" }

func (r *variablesRule) rewrite(text string) string {
	return rewriteSections(text, []string{"Variables", "Attributes"}, func(body string) (string, bool) {
		items, ok := parseArgumentItems(body)
		if !ok || len(items) == 0 {
			return "", false
		}
		out, err := mdc.Variables(items, r.component)
		if err != nil || out == "" {
			return "", false
		}
		return out, true
	})
}

// textRule wraps a free-text section body in a bare component block.
type textRule struct {
	kind      string
	headings  []string
	component string
}

func (r *textRule) name() string { return r.kind }

func (r *textRule) rewrite(text string) string {
	return rewriteSections(text, r.headings, func(body string) (string, bool) {
		content := strings.TrimSpace(body)
		if content == "" {
			return "", false
		}
		return mdc.Text(content, r.component), true
	})
}

// alertRule wraps a free-text section body in an alert component with a
// fixed severity and title.
type alertRule struct {
	kind      string
	headings  []string
	alertType string
	title     string
	component string
}

func (r *alertRule) name() string { return r.kind }

func (r *alertRule) rewrite(text string) string {
	return rewriteSections(text, r.headings, func(body string) (string, bool) {
		content := strings.TrimSpace(body)
		if content == "" {
			return "", false
		}
		return mdc.Alert(content, r.alertType, r.title, r.component), true
	})
}

// examplesRule converts "**Examples**:" sections containing fenced code into
// a single grouped code component. Sections without any fenced code are left
// as plain Markdown.
type examplesRule struct {
	component string
}

func (r *examplesRule) name() string { return "examples" }

func (r *examplesRule) rewrite(text string) string {
	return rewriteSections(text, []string{"Examples"}, func(body string) (string, bool) {
		fences := findFences(body)
		if len(fences) == 0 {
			return "", false
		}
		blocks := make([]mdc.CodeBlock, 0, len(fences))
		for _, f := range fences {
			blocks = append(blocks, f.toBlock())
		}
		return mdc.CodeGroup(blocks, r.component), true
	})
}

// raisesRule converts "**Raises**:" bullet lists of the shape
//
//	- `ExceptionName`: description
//
// into a callout component with one bolded line per exception.
type raisesRule struct {
	component string
}

func (r *raisesRule) name() string { return "raises" }

func (r *raisesRule) rewrite(text string) string {
	return rewriteSections(text, []string{"Raises"}, func(body string) (string, bool) {
		var lines []string
		for _, line := range strings.Split(body, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			name, rest, ok := parseBullet(line, ": ")
			if !ok {
				return "", false
			}
			lines = append(lines, fmt.Sprintf("**%s**: %s", name, strings.TrimSpace(rest)))
		}
		if len(lines) == 0 {
			return "", false
		}
		return mdc.Callout(lines, r.component), true
	})
}

// codeGroupRule is the leftover pass: stray fenced blocks separated by at
// most two lines are grouped into one code component. It never fires for a
// single block, and fences already inside a rendered code group are immune
// because their opening line carries a "[label]" suffix.
type codeGroupRule struct {
	component string
}

func (r *codeGroupRule) name() string { return "code_block" }

func (r *codeGroupRule) rewrite(text string) string {
	fences := findFences(text)
	if len(fences) <= 1 {
		return text
	}

	var groups [][]fence
	current := []fence{fences[0]}
	for _, f := range fences[1:] {
		prev := current[len(current)-1]
		if strings.Count(text[prev.end:f.start], "\n") > 2 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, f)
	}
	groups = append(groups, current)

	var b strings.Builder
	cursor := 0
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		blocks := make([]mdc.CodeBlock, 0, len(group))
		for _, f := range group {
			blocks = append(blocks, f.toBlock())
		}
		b.WriteString(text[cursor:group[0].start])
		b.WriteString(mdc.CodeGroup(blocks, r.component))
		cursor = group[len(group)-1].end
	}
	b.WriteString(text[cursor:])
	return b.String()
}
