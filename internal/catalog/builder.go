package catalog

import (
	"errors"
	"io"
	"log"

	"braces.dev/errtrace"
	"go.abhg.dev/codesnip/internal/highlight"
	"go.abhg.dev/codesnip/internal/snippet"
)

// Highlighter renders source code of a given language into HTML.
type Highlighter interface {
	Render(content, lang string) (string, error)
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Builder builds a [Catalog] from snippet resources.
//
// Each call to Build starts from scratch.
// Nothing is retained between calls.
type Builder struct {
	Lister      snippet.Lister // required
	Highlighter Highlighter    // required

	// Log receives warnings about skipped or shadowed snippets.
	//
	// Defaults to discarding all messages.
	Log *log.Logger

	// SkipInvalid skips snippets without a file extension
	// or in an unsupported language instead of failing the build.
	// Other errors always fail the build.
	SkipInvalid bool
}

// Build lists all snippets and renders them into a catalog.
//
// Unless SkipInvalid is set,
// a snippet with no extension fails with [*snippet.MissingExtensionError]
// and a snippet in an unsupported language fails with
// [*highlight.UnsupportedLanguageError].
// Errors from the Lister are returned unchanged.
// No partial catalog is returned on failure.
//
// If two snippets share a filename, the later one wins.
func (b *Builder) Build() (*Catalog, error) {
	logger := b.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	resources, err := b.Lister.ListResources()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	codes := make(map[string]string, len(resources))
	sources := make(map[string]string, len(resources)) // filename -> ID
	for _, r := range resources {
		name := r.Name()
		code, err := b.render(name, r.Content)
		if err != nil {
			if b.SkipInvalid && isInvalid(err) {
				logger.Printf("warning: skipping %v: %v", r.ID, err)
				continue
			}
			return nil, errtrace.Errorf("%v: %w", r.ID, err)
		}

		if prev, ok := sources[name]; ok {
			logger.Printf("warning: %v replaces %v", r.ID, prev)
		}
		codes[name] = code
		sources[name] = r.ID
	}

	return &Catalog{codes: codes}, nil
}

func (b *Builder) render(name, content string) (string, error) {
	lang, err := snippet.LanguageOf(name)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	code, err := b.Highlighter.Render(content, lang)
	return code, errtrace.Wrap(err)
}

// isInvalid reports whether err was caused by the snippet itself
// rather than by the build environment.
func isInvalid(err error) bool {
	var (
		extErr  *snippet.MissingExtensionError
		langErr *highlight.UnsupportedLanguageError
	)
	return errors.As(err, &extErr) || errors.As(err, &langErr)
}
