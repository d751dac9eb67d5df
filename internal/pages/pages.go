// Package pages models the configured page tree and resolves each page to
// its output location.
package pages

import (
	"path"

	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
)

// Page is one configured content page. Pages form a tree: a page with
// children becomes a directory with an index file, a page without children
// a single file.
type Page struct {
	Title       string         `yaml:"title"`
	Name        string         `yaml:"name"`
	Frontmatter map[string]any `yaml:"frontmatter,omitempty"`

	// Directory overrides the hierarchy-derived output directory for this
	// page only (relative to the content directory).
	Directory string `yaml:"directory,omitempty"`

	// Extension of the output file. Defaults to ".md".
	Extension string `yaml:"extension,omitempty"`

	// Source names a Markdown file spliced verbatim into the page body.
	Source string `yaml:"source,omitempty"`

	// Contents lists dotted names of documented objects to render on this
	// page, in order.
	Contents []string `yaml:"contents,omitempty"`

	Children []Page `yaml:"children,omitempty"`
}

// Ext returns the page's output extension, defaulting to ".md".
func (p *Page) Ext() string {
	if p.Extension == "" {
		return ".md"
	}
	return p.Extension
}

// Resolved pairs a page with its output path relative to the content
// directory.
type Resolved struct {
	Page       *Page
	OutputPath string
}

// Walk flattens the page tree in configured order, resolving output paths.
//
// A leaf page renders to <dir>/<name><ext>; a page with children renders to
// <dir>/<name>/index<ext> and its children underneath <dir>/<name>/. A
// Directory override replaces the hierarchy-derived directory for that page
// alone; its children keep their hierarchy position.
func Walk(pgs []Page) []Resolved {
	out := make([]Resolved, 0, len(pgs))

	var walk func(p *Page, parentDir string)
	walk = func(p *Page, parentDir string) {
		dir := parentDir
		if p.Directory != "" {
			dir = p.Directory
		}

		if len(p.Children) == 0 {
			out = append(out, Resolved{Page: p, OutputPath: path.Join(dir, p.Name+p.Ext())})
			return
		}

		out = append(out, Resolved{Page: p, OutputPath: path.Join(dir, p.Name, "index"+p.Ext())})
		childDir := path.Join(parentDir, p.Name)
		for i := range p.Children {
			walk(&p.Children[i], childDir)
		}
	}

	for i := range pgs {
		walk(&pgs[i], "")
	}
	return out
}

// Validate checks structural requirements of a page tree: every page needs
// a non-empty name.
func Validate(pgs []Page) error {
	var check func(p *Page) error
	check = func(p *Page) error {
		if p.Name == "" {
			return errors.ValidationFailed("pages.name", "page name must not be empty")
		}
		for i := range p.Children {
			if err := check(&p.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for i := range pgs {
		if err := check(&pgs[i]); err != nil {
			return err
		}
	}
	return nil
}
