// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"vfit/internal/version"
)

// Output formats accepted by -output.
const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatJSON = "json"
	FormatFit  = "fit"
)

// Options holds all CLI flags and arguments.
type Options struct {
	File   string // fit-output file, "-" = stdin
	Output string
	Sort   bool
	Quiet  bool
	Header bool // true unless -no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(),
			`%s: inspect Voigt-profile fit output

License: MIT
Version: %s

Usage of %s:
  %s [flags] <fit-output file | ->
`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.File, "f", "", "fit-output file to read ('-' = stdin) [*]")
	fs.StringVar(&opt.Output, "output", FormatText, "output format: text | tsv | json | fit [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort rows for determinism (ion, index) [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress skipped-line warnings [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	args := fs.Args()
	switch {
	case opt.File != "" && len(args) > 0:
		return opt, errors.New("-f conflicts with a positional file argument")
	case len(args) > 1:
		return opt, errors.New("at most one fit-output file may be given")
	case len(args) == 1:
		opt.File = args[0]
	}
	if opt.File == "" {
		return opt, errors.New("provide a fit-output file (or '-' for stdin)")
	}
	switch opt.Output {
	case FormatText, FormatTSV, FormatJSON, FormatFit:
	default:
		return opt, fmt.Errorf("invalid -output %q", opt.Output)
	}
	return opt, nil
}
