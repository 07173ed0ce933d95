package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"go.abhg.dev/codesnip/internal/catalog"
	"go.abhg.dev/codesnip/internal/errdefer"
	"gopkg.in/yaml.v3"
)

// outputFormat is the encoding used to write the catalog.
type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

var _ flag.Getter = (*outputFormat)(nil)

func (f *outputFormat) Get() any { return *f }

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(s); v {
	case formatJSON, formatYAML:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected %q or %q", s, formatJSON, formatYAML)
	}
}

// Encode writes the catalog to w in this format.
func (f outputFormat) Encode(w io.Writer, c *catalog.Catalog) error {
	switch f {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(enc.Close())

	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Markup is the payload; keep it readable.
		enc.SetEscapeHTML(false)
		return errtrace.Wrap(enc.Encode(c.All()))
	}
}

// writeOutput calls write with a writer for the given path.
// "-" and "" refer to stdout.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(stdout)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o1755); err != nil {
		return errtrace.Wrap(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(write(f))
}
