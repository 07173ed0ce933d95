package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/codesnip/internal/flagvalue"
	"go.abhg.dev/codesnip/internal/highlight"
	"go.abhg.dev/codesnip/internal/page"
	"go.abhg.dev/codesnip/internal/snippet"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that may be used in place of flags.
const _envPrefix = "CODESNIP"

// params holds all arguments for codesnip.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	// Input:
	Pattern string

	// Highlighting:
	Theme       string
	Languages   []languageTag
	Classes     bool
	SkipInvalid bool

	// Output:
	Format outputFormat
	Out    string
	HTML   string
	Title  string

	Dir string
}

// cliParser parses the command line arguments for codesnip.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("codesnip", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	p := params{Format: formatJSON}

	// Input:
	flag.StringVar(&p.Pattern, "pattern", snippet.DefaultPattern, "")

	// Highlighting:
	flag.StringVar(&p.Theme, "theme", highlight.DefaultTheme, "")
	flag.Var(flagvalue.ListOf(&p.Languages), "lang", "")
	flag.BoolVar(&p.Classes, "classes", false, "")
	flag.BoolVar(&p.SkipInvalid, "skip-invalid", false, "")

	// Output:
	flag.Var(&p.Format, "format", "")
	flag.StringVar(&p.Out, "out", "-", "")
	flag.StringVar(&p.HTML, "html", "", "")
	flag.StringVar(&p.Title, "title", page.DefaultTitle, "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix(_envPrefix),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "codesnip", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide a snippet directory.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	case 1:
		p.Dir = args[0]
	default:
		fmt.Fprintf(cmd.Stderr, "Too many arguments: %q\n", args)
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// languageTag is a language accepted by the highlighter.
type languageTag string

var _ flag.Getter = (*languageTag)(nil)

func (l *languageTag) Get() any { return *l }

func (l *languageTag) String() string { return string(*l) }

func (l *languageTag) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("language must not be empty")
	}
	*l = languageTag(s)
	return nil
}
