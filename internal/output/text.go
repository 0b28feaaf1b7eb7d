// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"vfit/pkg/api"
)

// WriteTable prints one aligned line per component.
func WriteTable(w io.Writer, rows []api.ComponentRowV1, header bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if header {
		_, _ = fmt.Fprintln(tw, TSVHeader)
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			r.Index, r.Ion,
			r.Z, r.ZErr, r.B, r.BErr, r.LogN, r.LogNErr, r.RF, r.RFErr,
		)
	}
	return tw.Flush()
}

// WriteTSV prints one raw tab-separated line per component.
func WriteTSV(w io.Writer, rows []api.ComponentRowV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%d\t%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			r.Index, r.Ion,
			r.Z, r.ZErr, r.B, r.BErr, r.LogN, r.LogNErr, r.RF, r.RFErr,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
