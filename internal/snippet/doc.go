// Package snippet discovers code snippet files
// and infers the language each one is written in.
//
// Snippets are represented as [Resource] values,
// produced eagerly by a [Lister] such as [FS].
package snippet
