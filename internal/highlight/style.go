package highlight

import (
	"slices"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is the theme used when none is specified.
const DefaultTheme = "dark-plus"

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, and fades comments ever so slightly.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:    "#666666",
	chroma.PreWrapper: "bg:#eeeeee",
	chroma.Background: "bg:#eeeeee",
})

// DarkPlusStyle approximates the "Dark+" theme of Visual Studio Code.
var DarkPlusStyle = chroma.MustNewStyle(DefaultTheme, map[chroma.TokenType]string{
	chroma.PreWrapper: "#d4d4d4 bg:#1e1e1e",
	chroma.Background: "#d4d4d4 bg:#1e1e1e",
	chroma.Error:      "#f44747",

	chroma.Comment:        "#6a9955",
	chroma.CommentPreproc: "#c586c0",

	chroma.Keyword:         "#569cd6",
	chroma.KeywordConstant: "#569cd6",
	chroma.KeywordReserved: "#c586c0",
	chroma.KeywordType:     "#4ec9b0",

	chroma.Name:          "#9cdcfe",
	chroma.NameAttribute: "#9cdcfe",
	chroma.NameBuiltin:   "#4ec9b0",
	chroma.NameClass:     "#4ec9b0",
	chroma.NameConstant:  "#4fc1ff",
	chroma.NameFunction:  "#dcdcaa",
	chroma.NameTag:       "#569cd6",
	chroma.NameVariable:  "#9cdcfe",

	chroma.LiteralString:      "#ce9178",
	chroma.LiteralStringRegex: "#d16969",
	chroma.LiteralNumber:      "#b5cea8",

	chroma.Operator:    "#d4d4d4",
	chroma.Punctuation: "#d4d4d4",

	chroma.GenericDeleted:  "#ce9178",
	chroma.GenericInserted: "#b5cea8",
	chroma.GenericHeading:  "bold #569cd6",
	chroma.GenericEmph:     "italic",
	chroma.GenericStrong:   "bold",
})

func init() {
	styles.Register(PlainStyle)
	styles.Register(DarkPlusStyle)
}

// Themes returns the names of all known themes, sorted.
func Themes() []string {
	return styles.Names()
}

// lookupStyle finds a registered Chroma style by name.
// Unlike styles.Get, it does not fall back to a default style.
func lookupStyle(name string) (*chroma.Style, error) {
	if !slices.Contains(styles.Names(), name) {
		return nil, errtrace.Errorf("unknown theme %q", name)
	}
	return styles.Get(name), nil
}
