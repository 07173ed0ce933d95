package snippet

import (
	"fmt"
	"strings"
)

// Resource is a single snippet file loaded from a [Lister].
type Resource struct {
	// ID identifies the resource within its source.
	// This is a slash-separated path.
	ID string

	// Content is the raw text of the snippet.
	Content string
}

// Name returns the filename of this resource.
func (r *Resource) Name() string {
	return Name(r.ID)
}

// Name reports the final path segment of a resource identifier.
//
//	Name("lib/snippets/demo.js") == "demo.js"
func Name(id string) string {
	if idx := strings.LastIndexByte(id, '/'); idx >= 0 {
		id = id[idx+1:]
	}
	return id
}

// LanguageOf infers the language tag for a snippet
// from its filename: the text after the last ".".
//
//	LanguageOf("a.b.css") == "css"
//
// It fails with a [*MissingExtensionError]
// if the name has no extension.
func LanguageOf(name string) (string, error) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return "", &MissingExtensionError{Name: name}
	}
	return name[idx+1:], nil
}

// MissingExtensionError indicates that a snippet's language
// could not be inferred because its name has no extension.
type MissingExtensionError struct {
	Name string
}

func (e *MissingExtensionError) Error() string {
	return fmt.Sprintf("snippet %q has no file extension", e.Name)
}
