// Package catalog builds the mapping from snippet filenames
// to their highlighted HTML.
//
// A [Builder] lists snippets once,
// infers each snippet's language from its file extension,
// and renders it with a [Highlighter].
// The resulting [Catalog] is immutable.
package catalog

import (
	"encoding/json"
	"maps"
	"slices"

	"braces.dev/errtrace"
)

// Catalog is a read-only mapping from snippet filename
// to rendered HTML.
//
// The zero value is an empty catalog.
type Catalog struct {
	codes map[string]string // filename -> HTML
}

// New builds a catalog from the given mapping.
// The mapping is copied.
func New(codes map[string]string) *Catalog {
	return &Catalog{codes: maps.Clone(codes)}
}

// Len reports the number of snippets in the catalog.
func (c *Catalog) Len() int {
	return len(c.codes)
}

// Get returns the HTML for the snippet with the given filename.
func (c *Catalog) Get(name string) (html string, ok bool) {
	html, ok = c.codes[name]
	return html, ok
}

// Names returns the filenames of all snippets, sorted.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.codes))
}

// All returns a copy of the full mapping.
func (c *Catalog) All() map[string]string {
	out := maps.Clone(c.codes)
	if out == nil {
		out = make(map[string]string)
	}
	return out
}

// MarshalJSON encodes the catalog as a JSON object
// keyed by filename.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	bs, err := json.Marshal(c.All())
	return bs, errtrace.Wrap(err)
}

// MarshalYAML encodes the catalog as a YAML mapping
// keyed by filename.
func (c *Catalog) MarshalYAML() (any, error) {
	return c.All(), nil
}
