// core/fitfile/writer.go
package fitfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"vfit-core/params"
)

// header is the comment line Write emits above the data rows.
const header = "# index ion z z_err b b_err logN logN_err rf rf_err"

type componentKey struct {
	ion   string
	index int
}

// row collects the value/err pairs of one component in z b logN rf order.
type row struct {
	vals [8]float64
	seen [4]bool
}

// Write renders s in the fit-output text format, one 10-token line per
// component. Parameters are regrouped by their (ion, index) name parts; rows
// appear in first-appearance order of the set. A missing stderr is written
// as 0. Ion labels stay sanitized: a set loaded from an Al* file writes back
// as Alx, the translation is one-directional. A parameter whose name does
// not parse, or a component missing one of its four fields, is an error.
func Write(w io.Writer, s *params.Set) error {
	var order []componentKey
	rows := make(map[componentKey]*row)
	for _, p := range s.All() {
		f, index, ion, err := params.ParseName(p.Name)
		if err != nil {
			return err
		}
		k := componentKey{ion: ion, index: index}
		r, ok := rows[k]
		if !ok {
			r = &row{}
			rows[k] = r
			order = append(order, k)
		}
		j := fieldPos(f)
		r.vals[2*j] = p.Value
		if p.HasStderr {
			r.vals[2*j+1] = p.Stderr
		}
		r.seen[j] = true
	}

	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintln(bw, header)
	for _, k := range order {
		r := rows[k]
		for j, f := range params.AllFields {
			if !r.seen[j] {
				return fmt.Errorf("fitfile: component %d of ion %s has no %s parameter", k.index, k.ion, f)
			}
		}
		args := make([]any, 0, 10)
		args = append(args, k.index, k.ion)
		for _, v := range r.vals {
			args = append(args, v)
		}
		_, _ = fmt.Fprintf(bw, "%d %s %g %g %g %g %g %g %g %g\n", args...)
	}
	return bw.Flush()
}

// Save writes s to a freshly created file at path.
func Save(path string, s *params.Set) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, s); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func fieldPos(f params.Field) int {
	for j, g := range params.AllFields {
		if f == g {
			return j
		}
	}
	return 0 // unreachable: ParseName only returns the four fields
}
