package renderer

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/nuxtdoc/internal/apidoc"
	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
	"git.home.luguber.info/inful/nuxtdoc/internal/frontmatter"
	"git.home.luguber.info/inful/nuxtdoc/internal/logfields"
	"git.home.luguber.info/inful/nuxtdoc/internal/markdown"
	"git.home.luguber.info/inful/nuxtdoc/internal/pages"
)

// pageResult reports what happened to a single page.
type pageResult struct {
	skipped bool // content unchanged, file left as-is
	links   int
}

// renderPage assembles and writes one page: spliced source first, then each
// configured documented object rendered through the docstring pipeline.
func (r *Renderer) renderPage(resolved pages.Resolved) (pageResult, error) {
	page := resolved.Page

	members := r.resolveMembers(page)
	var primary *apidoc.Object
	if len(members) == 1 {
		primary = members[0]
	}

	spliceFields, spliceBody := r.spliceSource(page)

	// Page-declared frontmatter wins over metadata carried by the spliced
	// source file.
	merged := make(map[string]any, len(spliceFields)+len(page.Frontmatter))
	for k, v := range spliceFields {
		merged[k] = v
	}
	for k, v := range page.Frontmatter {
		merged[k] = v
	}

	var body bytes.Buffer
	if len(spliceBody) > 0 {
		body.Write(spliceBody)
		if !bytes.HasSuffix(spliceBody, []byte("\n")) {
			body.WriteByte('\n')
		}
	}
	for _, obj := range members {
		r.renderObject(&body, 1, obj)
	}
	if body.Len() == 0 && len(page.Children) > 0 {
		writeChildIndex(&body, page)
	}

	if _, ok := merged["description"]; !ok && primary == nil && len(spliceBody) > 0 {
		if para := markdown.FirstParagraph(spliceBody); para != "" {
			merged["description"] = para
		}
	}

	editURL := ""
	if r.editBase != "" && page.Source != "" {
		editURL = r.editBase + "/" + path.Clean(filepath.ToSlash(page.Source))
	}

	fields := frontmatter.Assemble(frontmatter.AssembleInput{
		Defaults: r.cfg.DefaultFrontmatter,
		Page:     merged,
		Title:    page.Title,
		PageName: page.Name,
		Primary:  primary,
		Icons:    r.icons,
		EditURL:  editURL,
	})

	return r.writePage(r.outputPathFor(resolved), fields, body.Bytes())
}

// resolveMembers looks up the page's configured contents in the loaded
// documentation trees. "*" selects every root object; unresolvable names
// are logged and skipped.
func (r *Renderer) resolveMembers(page *pages.Page) []*apidoc.Object {
	var members []*apidoc.Object
	for _, name := range page.Contents {
		if name == "*" {
			members = append(members, r.objects...)
			continue
		}
		obj := apidoc.Lookup(r.objects, name)
		if obj == nil {
			slog.Warn("Documented object not found", logfields.Page(page.Name), logfields.Object(name))
			continue
		}
		members = append(members, obj)
	}
	return members
}

// spliceSource reads the page's source file. A missing file is a warning,
// not an error: the spliced content is simply empty. When the source itself
// starts with frontmatter, it is parsed out of the body and returned as
// metadata.
func (r *Renderer) spliceSource(page *pages.Page) (map[string]any, []byte) {
	if page.Source == "" {
		return nil, nil
	}

	content, err := os.ReadFile(page.Source)
	if err != nil {
		slog.Warn("Page source file not readable, splicing nothing",
			logfields.Page(page.Name), logfields.Path(page.Source), logfields.Error(err))
		return nil, nil
	}

	fields, body, had, err := frontmatter.Split(content)
	if err != nil || !had {
		return nil, content
	}
	return fields, body
}

// writeChildIndex renders a container page's body: a navigation list of its
// children.
func writeChildIndex(buf *bytes.Buffer, page *pages.Page) {
	for i := range page.Children {
		child := &page.Children[i]
		title := child.Title
		if title == "" {
			title = frontmatter.TitleFromName(child.Name)
		}
		target := "./" + child.Name
		if len(child.Children) > 0 {
			target += "/"
		}
		fmt.Fprintf(buf, "- [%s](%s)\n", title, target)
	}
}

// writePage writes the composed document, skipping the write when the
// on-disk content carries the same fingerprint. The existing file's uid is
// reused so unchanged pages keep stable metadata.
func (r *Renderer) writePage(absPath string, fields map[string]any, body []byte) (pageResult, error) {
	result := pageResult{links: markdown.LinkCount(body)}

	existing := readExistingFields(absPath)
	if uid, ok := existing["uid"]; ok {
		if _, has := fields["uid"]; !has {
			fields["uid"] = uid
		}
	}
	frontmatter.EnsureUID(fields)

	fp, _, err := frontmatter.UpsertFingerprint(fields, body)
	if err != nil {
		return result, errors.Wrap(err, errors.CategoryRender, errors.SeverityFatal, "fingerprint page").
			WithContext("path", absPath)
	}
	if prev, ok := existing[mdfp.FingerprintField].(string); ok && prev == fp {
		result.skipped = true
		return result, nil
	}

	content, err := frontmatter.Compose(fields, body)
	if err != nil {
		return result, errors.Wrap(err, errors.CategoryRender, errors.SeverityFatal, "compose page").
			WithContext("path", absPath)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return result, errors.WriteFailed(absPath, err)
	}
	if err := os.WriteFile(absPath, content, 0o644); err != nil {
		return result, errors.WriteFailed(absPath, err)
	}
	return result, nil
}

// readExistingFields parses the frontmatter of a previously written file.
// Any read or parse failure just means there is nothing to reuse.
func readExistingFields(absPath string) map[string]any {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil
	}
	fields, _, had, err := frontmatter.Split(content)
	if err != nil || !had {
		return nil
	}
	return fields
}
