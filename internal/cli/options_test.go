// internal/cli/options_test.go
package cli_test

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vfit/internal/cli"
)

func parse(t *testing.T, argv ...string) (cli.Options, error) {
	t.Helper()
	fs := cli.NewFlagSet("vfit")
	fs.SetOutput(io.Discard)
	return cli.ParseArgs(fs, argv)
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t, "fit.out")
	require.NoError(t, err)
	assert.Equal(t, "fit.out", opt.File)
	assert.Equal(t, cli.FormatText, opt.Output)
	assert.False(t, opt.Sort)
	assert.False(t, opt.Quiet)
	assert.True(t, opt.Header)
}

func TestParseFlagAndPositionalFile(t *testing.T) {
	opt, err := parse(t, "-f", "fit.out", "-output", "tsv", "-sort", "-no-header")
	require.NoError(t, err)
	assert.Equal(t, "fit.out", opt.File)
	assert.Equal(t, cli.FormatTSV, opt.Output)
	assert.True(t, opt.Sort)
	assert.False(t, opt.Header)

	_, err = parse(t, "-f", "a.out", "b.out")
	require.Error(t, err, "-f plus positional must conflict")
}

func TestParseStdinDash(t *testing.T) {
	opt, err := parse(t, "-")
	require.NoError(t, err)
	assert.Equal(t, "-", opt.File)
}

func TestParseMissingFile(t *testing.T) {
	_, err := parse(t, "-output", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provide a fit-output file")
}

func TestParseTooManyFiles(t *testing.T) {
	_, err := parse(t, "a.out", "b.out")
	require.Error(t, err)
}

func TestParseInvalidOutput(t *testing.T) {
	_, err := parse(t, "-output", "xml", "fit.out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid -output "xml"`)
}

func TestParseHelp(t *testing.T) {
	_, err := parse(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "-version")
	require.NoError(t, err)
	assert.True(t, opt.Version)
}
