// core/fitfile/loader.go

// Package fitfile reads and writes the persisted fit-output text format:
// '#' comment lines and blank lines are ignored, every data line carries
// exactly 10 whitespace-separated tokens,
//
//	index ion z z_err b b_err logN logN_err rf rf_err
//
// with a zero-based component index and the ion label as written in the
// line list, asterisks and all. Parameter names sanitize the label, so a
// file with Al* components loads (and writes back) as Alx.
package fitfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"vfit-core/params"
)

const lineTokens = 10

// Labels for the eight numeric tokens, in line order.
var tokenLabels = [8]string{"z", "z_err", "b", "b_err", "logN", "logN_err", "rf", "rf_err"}

// Load reads a fit-output file into a named parameter set with values and
// uncertainties. The returned strings describe lines that were skipped for
// a wrong token count; print them or drop them, they are not errors.
func Load(path string) (*params.Set, []string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = fh.Close() }()
	return LoadReader(fh, path)
}

// LoadReader scans fit output from r; name prefixes positions in warnings
// and errors. A numeric token that does not parse aborts the load, a line
// with the wrong token count is dropped with a warning.
func LoadReader(r io.Reader, name string) (*params.Set, []string, error) {
	s := params.NewSet()
	var warns []string

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != lineTokens {
			warns = append(warns, fmt.Sprintf("%s:%d: skipping line with %d fields (want %d)",
				name, ln, len(f), lineTokens))
			continue
		}

		num, err := strconv.Atoi(f[0])
		if err != nil || num < 0 {
			return nil, warns, fmt.Errorf("%s:%d bad component index %q", name, ln, f[0])
		}
		ion := f[1]

		var vals [8]float64
		for i := range vals {
			vals[i], err = strconv.ParseFloat(f[i+2], 64)
			if err != nil {
				return nil, warns, fmt.Errorf("%s:%d bad %s: %v", name, ln, tokenLabels[i], err)
			}
		}

		for j, field := range params.AllFields {
			p := params.NewParameter(params.Name(field, num, ion), vals[2*j])
			p.Stderr = vals[2*j+1]
			p.HasStderr = true
			_ = s.Add(p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, warns, err
	}
	return s, warns, nil
}
