// Package resolver turns dotted API references into root-relative content
// URLs.
package resolver

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/nuxtdoc/internal/apidoc"
)

// Resolver converts dotted module references (e.g. "my.module.MyClass") into
// Nuxt Content paths (e.g. "/docs/api/my/module/myclass").
type Resolver struct {
	basePath string
}

// New creates a resolver for the given base URL path.
func New(basePath string) *Resolver {
	return &Resolver{basePath: strings.Trim(basePath, "/")}
}

// FromContentDirectory derives the URL base path from the content directory,
// dropping a leading "content" segment: "content/docs/api" → "docs/api".
func FromContentDirectory(contentDir string) *Resolver {
	parts := strings.Split(path.Clean(strings.Trim(strings.ReplaceAll(contentDir, "\\", "/"), "/")), "/")
	if len(parts) > 0 && strings.EqualFold(parts[0], "content") {
		parts = parts[1:]
	}
	return New(path.Join(parts...))
}

// ObjectID generates the unique dotted ID of an object, used for anchors.
func (r *Resolver) ObjectID(obj *apidoc.Object) string {
	return obj.ID()
}

// Resolve maps a fully-qualified dotted reference to a root-relative URL.
// All references are interpreted as absolute paths from the documentation
// root; the result is lower-cased.
func (r *Resolver) Resolve(ref string) string {
	refPath := strings.ReplaceAll(ref, ".", "/")
	return strings.ToLower(path.Join("/", r.basePath, refPath))
}

// ResolveLocal finds an object for a reference by searching the scope's
// members and then walking up its ancestry. It exists for lexically scoped
// references; the renderer itself resolves globally via Resolve.
func (r *Resolver) ResolveLocal(scope *apidoc.Object, ref string) *apidoc.Object {
	first := strings.SplitN(ref, ".", 2)[0]
	for obj := scope; obj != nil; obj = obj.Parent() {
		if m := obj.Member(first); m != nil {
			return m
		}
	}
	return nil
}
