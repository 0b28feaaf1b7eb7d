// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"vfit-core/fitfile"
	"vfit-core/params"
	"vfit/internal/cli"
	"vfit/internal/cmdutil"
	"vfit/internal/output"
	"vfit/internal/version"
)

// Run parses argv, loads the fit-output file and renders it to stdout.
// Exit codes: 0 ok, 1 empty parameter set, 2 usage/load error, 3 write
// error. A broken pipe on flush is success (downstream pager closed early).
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("vfit")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "vfit version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	var (
		set   *params.Set
		warns []string
	)
	if opts.File == "-" {
		set, warns, err = fitfile.LoadReader(os.Stdin, "stdin")
	} else {
		set, warns, err = fitfile.Load(opts.File)
	}
	for _, w := range warns {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if set.Len() == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no components recovered from %s", opts.File)
		return flush(outw, stderr, 1)
	}

	if err := output.Write(opts.Output, outw, set, opts.Sort, opts.Header); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flush(outw, stderr, 0)
}

// flush drains the buffered writer, mapping a broken pipe to success.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); cmdutil.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
