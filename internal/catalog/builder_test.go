package catalog

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/codesnip/internal/highlight"
	"go.abhg.dev/codesnip/internal/iotest"
	"go.abhg.dev/codesnip/internal/snippet"
)

// stubLister is a Lister that returns a fixed set of resources.
type stubLister struct {
	resources []snippet.Resource
	err       error
	calls     int
}

var _ snippet.Lister = (*stubLister)(nil)

func (l *stubLister) ListResources() ([]snippet.Resource, error) {
	l.calls++
	return l.resources, l.err
}

// fakeHighlighter renders code as "<lang>:<content>"
// for a fixed set of languages.
type fakeHighlighter struct {
	langs []string
	err   error // returned for every call if set
}

func (h *fakeHighlighter) Render(content, lang string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	for _, l := range h.langs {
		if l == lang {
			return lang + ":" + content, nil
		}
	}
	return "", &highlight.UnsupportedLanguageError{Lang: lang, Supported: h.langs}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		give  []snippet.Resource
		langs []string
		want  map[string]string
	}{
		{
			desc: "empty",
			want: map[string]string{},
		},
		{
			desc: "single",
			give: []snippet.Resource{
				{ID: "snippets/demo.js", Content: "let x=1;"},
			},
			langs: []string{"js"},
			want: map[string]string{
				"demo.js": "js:let x=1;",
			},
		},
		{
			desc: "keyed by filename",
			give: []snippet.Resource{
				{ID: "src/lib/snippets/demo.js", Content: "let x=1;"},
				{ID: "src/lib/snippets/demo.css", Content: "body{}"},
				{ID: "index.html", Content: "<p></p>"},
			},
			langs: []string{"js", "css", "html"},
			want: map[string]string{
				"demo.js":    "js:let x=1;",
				"demo.css":   "css:body{}",
				"index.html": "html:<p></p>",
			},
		},
		{
			desc: "last dot wins",
			give: []snippet.Resource{
				{ID: "a.b.css", Content: "p{}"},
			},
			langs: []string{"css", "b.css"},
			want: map[string]string{
				"a.b.css": "css:p{}",
			},
		},
		{
			desc: "duplicate filename",
			give: []snippet.Resource{
				{ID: "one/demo.js", Content: "1"},
				{ID: "two/demo.js", Content: "2"},
			},
			langs: []string{"js"},
			want: map[string]string{
				"demo.js": "js:2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			b := Builder{
				Lister:      &stubLister{resources: tt.give},
				Highlighter: &fakeHighlighter{langs: tt.langs},
				Log:         log.New(iotest.Writer(t), "", 0),
			}
			got, err := b.Build()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got.All()); diff != "" {
				t.Errorf("catalog mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuilder_Build_duplicateWarning(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	b := Builder{
		Lister: &stubLister{resources: []snippet.Resource{
			{ID: "one/demo.js", Content: "1"},
			{ID: "two/demo.js", Content: "2"},
		}},
		Highlighter: &fakeHighlighter{langs: []string{"js"}},
		Log:         log.New(&logs, "", 0),
	}
	_, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "two/demo.js replaces one/demo.js")
}

func TestBuilder_Build_missingExtension(t *testing.T) {
	t.Parallel()

	b := Builder{
		Lister: &stubLister{resources: []snippet.Resource{
			{ID: "demo.js", Content: "let x=1;"},
			{ID: "snippets/noext", Content: "???"},
		}},
		Highlighter: &fakeHighlighter{langs: []string{"js"}},
	}
	got, err := b.Build()
	assert.Nil(t, got, "no partial catalog")

	var extErr *snippet.MissingExtensionError
	require.True(t, errors.As(err, &extErr), "got %v", err)
	assert.Equal(t, "noext", extErr.Name)
	assert.ErrorContains(t, err, "snippets/noext")
}

func TestBuilder_Build_unsupportedLanguage(t *testing.T) {
	t.Parallel()

	b := Builder{
		Lister: &stubLister{resources: []snippet.Resource{
			{ID: "index.html", Content: "<p></p>"},
			{ID: "style.css", Content: "body{}"},
		}},
		Highlighter: &fakeHighlighter{langs: []string{"html", "js"}},
	}
	got, err := b.Build()
	assert.Nil(t, got, "no partial catalog")

	var langErr *highlight.UnsupportedLanguageError
	require.True(t, errors.As(err, &langErr), "got %v", err)
	assert.Equal(t, "css", langErr.Lang)
}

func TestBuilder_Build_listingError(t *testing.T) {
	t.Parallel()

	b := Builder{
		Lister:      &stubLister{err: fs.ErrNotExist},
		Highlighter: &fakeHighlighter{},
	}
	got, err := b.Build()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBuilder_Build_highlightError(t *testing.T) {
	t.Parallel()

	giveErr := errors.New("great sadness")
	b := Builder{
		Lister: &stubLister{resources: []snippet.Resource{
			{ID: "demo.js", Content: "let x=1;"},
		}},
		Highlighter: &fakeHighlighter{err: giveErr},
		SkipInvalid: true,
	}
	_, err := b.Build()
	assert.ErrorIs(t, err, giveErr, "only invalid snippets may be skipped")
}

func TestBuilder_Build_skipInvalid(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	b := Builder{
		Lister: &stubLister{resources: []snippet.Resource{
			{ID: "demo.js", Content: "let x=1;"},
			{ID: "Makefile", Content: "all:"},
			{ID: "style.css", Content: "body{}"},
		}},
		Highlighter: &fakeHighlighter{langs: []string{"js"}},
		Log:         log.New(&logs, "", 0),
		SkipInvalid: true,
	}
	got, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"demo.js"}, got.Names())

	out := logs.String()
	assert.Contains(t, out, "skipping Makefile")
	assert.Contains(t, out, "skipping style.css")
}

func TestBuilder_Build_noMemoization(t *testing.T) {
	t.Parallel()

	lister := &stubLister{resources: []snippet.Resource{
		{ID: "demo.js", Content: "1"},
	}}
	b := Builder{
		Lister:      lister,
		Highlighter: &fakeHighlighter{langs: []string{"js"}},
	}

	first, err := b.Build()
	require.NoError(t, err)

	lister.resources = []snippet.Resource{
		{ID: "other.js", Content: "2"},
	}
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 2, lister.calls)
	assert.Equal(t, []string{"demo.js"}, first.Names())
	assert.Equal(t, []string{"other.js"}, second.Names())
}

// Exercises the builder with the real file system lister and highlighter.
func TestBuilder_Build_endToEnd(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"demo.js":  {Data: []byte("let x=1;")},
		"demo.css": {Data: []byte("body{}")},
	}
	h, err := highlight.New(highlight.Config{
		Languages: []string{"js", "css"},
	})
	require.NoError(t, err)

	build := func() *Catalog {
		b := Builder{
			Lister:      &snippet.FS{FS: fsys},
			Highlighter: h,
			Log:         log.New(iotest.Writer(t), "", 0),
		}
		c, err := b.Build()
		require.NoError(t, err)
		return c
	}

	first := build()
	assert.Equal(t, []string{"demo.css", "demo.js"}, first.Names())
	for _, name := range first.Names() {
		code, _ := first.Get(name)
		assert.True(t, strings.HasPrefix(code, `<pre style="`),
			"%v: missing theme wrapper: %q", name, code)
	}

	second := build()
	if diff := cmp.Diff(first.All(), second.All()); diff != "" {
		t.Errorf("builds differ (-first +second):\n%s", diff)
	}
}

func TestBuilder_Build_endToEnd_unsupported(t *testing.T) {
	t.Parallel()

	h, err := highlight.New(highlight.Config{
		Languages: []string{"html", "js"},
	})
	require.NoError(t, err)

	b := Builder{
		Lister: &snippet.FS{FS: fstest.MapFS{
			"style.css": {Data: []byte("body{}")},
		}},
		Highlighter: h,
	}
	_, err = b.Build()

	var langErr *highlight.UnsupportedLanguageError
	assert.True(t, errors.As(err, &langErr), "got %v", err)
}
