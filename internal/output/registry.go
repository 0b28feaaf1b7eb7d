// internal/output/registry.go
package output

import (
	"fmt"
	"io"

	"vfit-core/fitfile"
	"vfit-core/params"
)

// WriterFunc renders a loaded parameter set to w.
type WriterFunc func(w io.Writer, s *params.Set, sortRows, header bool) error

// writers maps -output formats to their renderers.
var writers = map[string]WriterFunc{
	"text": func(w io.Writer, s *params.Set, sortRows, header bool) error {
		rows, err := Rows(s)
		if err != nil {
			return err
		}
		if sortRows {
			SortRows(rows)
		}
		return WriteTable(w, rows, header)
	},
	"tsv": func(w io.Writer, s *params.Set, sortRows, header bool) error {
		rows, err := Rows(s)
		if err != nil {
			return err
		}
		if sortRows {
			SortRows(rows)
		}
		return WriteTSV(w, rows, header)
	},
	"json": func(w io.Writer, s *params.Set, sortRows, header bool) error {
		rows, err := Rows(s)
		if err != nil {
			return err
		}
		if sortRows {
			SortRows(rows)
		}
		return WriteJSON(w, rows)
	},
	// fit re-emits the documented text format; it carries its own header
	// and preserves the set's own ordering.
	"fit": func(w io.Writer, s *params.Set, _, _ bool) error {
		return fitfile.Write(w, s)
	},
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, s *params.Set, sortRows, header bool) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, s, sortRows, header)
}
