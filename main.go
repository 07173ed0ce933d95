// codesnip renders a directory of code snippets into syntax-highlighted HTML.
//
// It reads every snippet file in a directory,
// highlights each one according to its file extension,
// and writes a mapping from filename to HTML
// for a page-rendering layer to consume.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/codesnip/internal/catalog"
	"go.abhg.dev/codesnip/internal/highlight"
	"go.abhg.dev/codesnip/internal/page"
	"go.abhg.dev/codesnip/internal/snippet"
)

var _version = "dev"

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("codesnip: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugLog, doneDebug, err := opts.Debug.Logger(cmd.Stderr)
	if err != nil {
		return errtrace.Errorf("debug log: %w", err)
	}
	defer func() {
		err = doneDebug(err)
	}()

	langs := make([]string, len(opts.Languages))
	for i, l := range opts.Languages {
		langs[i] = string(l)
	}

	// A single highlighter serves the whole run.
	h, err := highlight.New(highlight.Config{
		Theme:      opts.Theme,
		Languages:  langs,
		UseClasses: opts.Classes,
	})
	if err != nil {
		return errtrace.Wrap(err)
	}
	debugLog.Printf("Highlighting %q with theme %q", h.Languages(), opts.Theme)

	builder := catalog.Builder{
		Lister: &snippet.FS{
			FS:       os.DirFS(opts.Dir),
			Pattern:  opts.Pattern,
			DebugLog: debugLog,
		},
		Highlighter: h,
		Log:         cmd.log,
		SkipInvalid: opts.SkipInvalid,
	}
	codes, err := builder.Build()
	if err != nil {
		return errtrace.Errorf("build catalog from %v: %w", opts.Dir, err)
	}
	debugLog.Printf("Built catalog with %d snippets", codes.Len())

	err = writeOutput(opts.Out, cmd.Stdout, func(w io.Writer) error {
		return opts.Format.Encode(w, codes)
	})
	if err != nil {
		return errtrace.Errorf("write catalog: %w", err)
	}

	if opts.HTML != "" {
		renderer := page.Renderer{
			Title:       opts.Title,
			Highlighter: h,
		}
		err := writeOutput(opts.HTML, cmd.Stdout, func(w io.Writer) error {
			return renderer.Render(w, codes)
		})
		if err != nil {
			return errtrace.Errorf("write page: %w", err)
		}
		debugLog.Printf("Wrote page to %v", opts.HTML)
	}

	return nil
}
