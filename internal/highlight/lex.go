package highlight

import (
	"errors"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

var _ Lexer = (*chromaLexer)(nil)

// LexerFor returns a [Lexer] for the given language tag.
// The tag may be a language name, an alias, or a file extension
// known to Chroma.
func LexerFor(lang string) (Lexer, error) {
	if lang == "" {
		return nil, errors.New("empty language tag")
	}

	l := lexers.Get(lang)
	if l == nil {
		return nil, &UnsupportedLanguageError{Lang: lang}
	}
	return &chromaLexer{l: chroma.Coalesce(l)}, nil
}

// Lex lexically analyzes the given source code using Chroma.
func (cl *chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	return chroma.Tokenise(cl.l, nil, string(src))
}
