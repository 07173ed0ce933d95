// Package page renders a snippet catalog into a standalone HTML page.
package page

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"slices"

	"braces.dev/errtrace"
	"go.abhg.dev/codesnip/internal/catalog"
	"go.abhg.dev/codesnip/internal/highlight"
	"go.abhg.dev/codesnip/internal/snippet"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultTitle is the page title used when none is specified.
const DefaultTitle = "Snippets"

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	_pageTmpl = template.Must(template.ParseFS(_tmplFS, "tmpl/page.html"))
)

// CSSWriter writes the style sheet that highlighted code depends on.
type CSSWriter interface {
	WriteCSS(io.Writer) error
}

var _ CSSWriter = (*highlight.Highlighter)(nil)

// Renderer renders snippet catalogs into HTML pages.
type Renderer struct {
	// Title of the page.
	//
	// Defaults to DefaultTitle.
	Title string

	// Highlighter that produced the catalog.
	// If set, its CSS is embedded into the page.
	Highlighter CSSWriter
}

type snippetData struct {
	Name string
	Lang string
	Code template.HTML
}

type pageData struct {
	Title    string
	CSS      template.CSS
	Snippets []snippetData
}

// Render writes an HTML page listing every snippet in the catalog.
//
// Snippets are ordered by name,
// with runs of digits compared numerically.
func (r *Renderer) Render(w io.Writer, c *catalog.Catalog) error {
	data := pageData{Title: r.Title}
	if data.Title == "" {
		data.Title = DefaultTitle
	}

	if r.Highlighter != nil {
		var css bytes.Buffer
		if err := r.Highlighter.WriteCSS(&css); err != nil {
			return errtrace.Wrap(err)
		}
		data.CSS = template.CSS(css.String())
	}

	names := c.Names()
	col := collate.New(language.English, collate.Numeric)
	slices.SortStableFunc(names, col.CompareString)

	for _, name := range names {
		code, _ := c.Get(name)
		lang, _ := snippet.LanguageOf(name) // empty if unknown
		data.Snippets = append(data.Snippets, snippetData{
			Name: name,
			Lang: lang,
			// Markup produced by the highlighter is trusted.
			Code: template.HTML(code),
		})
	}

	return errtrace.Wrap(_pageTmpl.Execute(w, &data))
}
