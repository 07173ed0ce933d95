// Package highlight renders snippet source code into HTML.
// It uses the Chroma library to do this work.
//
// A [Highlighter] is configured once with a theme
// and a fixed set of language tags.
// It refuses to render any language outside that set.
package highlight
