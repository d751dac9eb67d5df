// Package apidoc models the documentation tree produced by the external
// extraction stage. Objects are consumed read-only by the renderer; this
// package only loads and navigates them.
package apidoc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Kind identifies what a documented object is. Unknown kinds are preserved
// as-is in the tree but normalize to KindUnknown for lookups.
type Kind string

const (
	KindModule    Kind = "module"
	KindClass     Kind = "class"
	KindFunction  Kind = "function"
	KindMethod    Kind = "method"
	KindVariable  Kind = "variable"
	KindAttribute Kind = "attribute"
	KindUnknown   Kind = "unknown"
)

// Normalize maps arbitrary kind strings onto the known enumeration.
func (k Kind) Normalize() Kind {
	switch Kind(strings.ToLower(string(k))) {
	case KindModule, KindClass, KindFunction, KindMethod, KindVariable, KindAttribute:
		return Kind(strings.ToLower(string(k)))
	default:
		return KindUnknown
	}
}

// Object is a node in a documentation tree: a module, class, function or
// variable together with its docstring and child members.
type Object struct {
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	Docstring string    `json:"docstring,omitempty"`
	Signature string    `json:"signature,omitempty"`
	Members   []*Object `json:"members,omitempty"`

	parent *Object
}

// Parent returns the enclosing object, or nil for roots.
func (o *Object) Parent() *Object { return o.parent }

// Path returns the names from the root down to this object.
// Path segments uniquely identify a node within its tree.
func (o *Object) Path() []string {
	if o == nil {
		return nil
	}
	parts := o.parent.Path()
	return append(parts, o.Name)
}

// ID returns the dotted path of the object, used for anchors and
// cross-reference targets.
func (o *Object) ID() string {
	return strings.Join(o.Path(), ".")
}

// Member returns the direct child with the given name, or nil.
func (o *Object) Member(name string) *Object {
	for _, m := range o.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// FirstDocstringLine returns the first non-empty line of the docstring,
// trimmed. Empty when the object has no docstring.
func (o *Object) FirstDocstringLine() string {
	for _, line := range strings.Split(strings.TrimSpace(o.Docstring), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

// link wires parent pointers after unmarshalling.
func (o *Object) link(parent *Object) {
	o.parent = parent
	for _, m := range o.Members {
		m.link(o)
	}
}

// Load reads a JSON dump of documentation trees (an array of root modules)
// as produced by the extraction stage.
func Load(path string) ([]*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read api dump: %w", err)
	}
	return Parse(data)
}

// Parse decodes documentation trees from JSON bytes and wires parent links.
func Parse(data []byte) ([]*Object, error) {
	var roots []*Object
	if err := json.Unmarshal(data, &roots); err != nil {
		return nil, fmt.Errorf("decode api dump: %w", err)
	}
	for _, root := range roots {
		root.link(nil)
	}
	return roots, nil
}

// Lookup resolves a dotted path (e.g. "pkg.mod.Class") against a set of
// root objects. Returns nil when any segment is missing.
func Lookup(roots []*Object, dotted string) *Object {
	segments := strings.Split(dotted, ".")
	if len(segments) == 0 {
		return nil
	}
	var cur *Object
	for _, root := range roots {
		if root.Name == segments[0] {
			cur = root
			break
		}
	}
	for _, seg := range segments[1:] {
		if cur == nil {
			return nil
		}
		cur = cur.Member(seg)
	}
	return cur
}
