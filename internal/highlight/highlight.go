package highlight

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// DefaultLanguages is the set of language tags
// supported when none are specified.
var DefaultLanguages = []string{"html", "js", "css", "svelte"}

// Config specifies how a [Highlighter] renders code.
type Config struct {
	// Theme is the name of the Chroma style to render with.
	//
	// Defaults to DefaultTheme.
	Theme string

	// Languages lists the language tags the highlighter accepts.
	// Each must be known to Chroma.
	//
	// Defaults to DefaultLanguages.
	Languages []string

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool
}

// Highlighter turns source code into HTML.
//
// It is safe for concurrent use once built.
type Highlighter struct {
	style      *chroma.Style
	lexers     map[string]Lexer // language tag -> lexer
	useClasses bool
	formatter  *chromahtml.Formatter
}

// New builds a Highlighter from the given configuration.
// It fails if the theme or any of the languages is unknown.
func New(cfg Config) (*Highlighter, error) {
	theme := cfg.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	style, err := lookupStyle(theme)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	langs := cfg.Languages
	if len(langs) == 0 {
		langs = DefaultLanguages
	}
	lexers := make(map[string]Lexer, len(langs))
	for _, lang := range langs {
		lexer, err := LexerFor(lang)
		if err != nil {
			return nil, errtrace.Errorf("language %q: %w", lang, err)
		}
		lexers[lang] = lexer
	}

	return &Highlighter{
		style:      style,
		lexers:     lexers,
		useClasses: cfg.UseClasses,
		formatter: chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(cfg.UseClasses),
		),
	}, nil
}

// Languages reports the language tags this highlighter accepts, sorted.
func (h *Highlighter) Languages() []string {
	return slices.Sorted(maps.Keys(h.lexers))
}

// UseClasses reports whether rendered HTML refers to CSS classes
// instead of carrying inline styles.
func (h *Highlighter) UseClasses() bool {
	return h.useClasses
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	if !h.useClasses {
		return nil
	}

	return errtrace.Wrap(h.formatter.WriteCSS(w, h.style))
}

// Render highlights the given source code as the given language,
// and returns it as HTML wrapped in a <pre> element.
//
// It fails with an [*UnsupportedLanguageError]
// if lang is not one of the configured languages.
func (h *Highlighter) Render(content, lang string) (string, error) {
	lexer, ok := h.lexers[lang]
	if !ok {
		return "", &UnsupportedLanguageError{
			Lang:      lang,
			Supported: h.Languages(),
		}
	}

	tokens, err := lexer.Lex([]byte(content))
	if err != nil {
		return "", errtrace.Errorf("lex %v: %w", lang, err)
	}

	var buff bytes.Buffer
	if h.useClasses {
		fmt.Fprintf(&buff, "<pre class=%q>", chroma.StandardTypes[chroma.PreWrapper])
	} else {
		style := chromahtml.StyleEntryToCSS(h.style.Get(chroma.PreWrapper))
		fmt.Fprintf(&buff, "<pre style=%q>", style)
	}
	if err := h.formatter.Format(&buff, h.style, chroma.Literator(tokens...)); err != nil {
		return "", errtrace.Errorf("format %v: %w", lang, err)
	}
	buff.WriteString("</pre>")
	return buff.String(), nil
}

// UnsupportedLanguageError indicates that code was submitted
// in a language the highlighter was not configured for.
type UnsupportedLanguageError struct {
	Lang string

	// Supported lists the configured languages, if known.
	Supported []string
}

func (e *UnsupportedLanguageError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unsupported language %q", e.Lang)
	}
	return fmt.Sprintf("unsupported language %q: expected one of %q", e.Lang, e.Supported)
}
