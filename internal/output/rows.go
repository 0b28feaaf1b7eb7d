// internal/output/rows.go
package output

import (
	"sort"

	"vfit-core/params"
	"vfit/pkg/api"
)

// Rows regroups a flat parameter set into one row per (ion, index)
// component, in first-appearance order of the set. A parameter whose name
// is outside the generated grammar is an error.
func Rows(s *params.Set) ([]api.ComponentRowV1, error) {
	type key struct {
		ion   string
		index int
	}
	pos := make(map[key]int)
	var rows []api.ComponentRowV1
	for _, p := range s.All() {
		f, index, ion, err := params.ParseName(p.Name)
		if err != nil {
			return nil, err
		}
		k := key{ion: ion, index: index}
		i, ok := pos[k]
		if !ok {
			i = len(rows)
			pos[k] = i
			rows = append(rows, api.ComponentRowV1{Index: index, Ion: ion})
		}
		r := &rows[i]
		switch f {
		case params.FieldZ:
			r.Z, r.ZErr = p.Value, p.Stderr
		case params.FieldB:
			r.B, r.BErr = p.Value, p.Stderr
		case params.FieldLogN:
			r.LogN, r.LogNErr = p.Value, p.Stderr
		case params.FieldRF:
			r.RF, r.RFErr = p.Value, p.Stderr
		}
	}
	return rows, nil
}

// SortRows orders rows by (ion, index) for deterministic output.
func SortRows(rows []api.ComponentRowV1) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Ion != rows[j].Ion {
			return rows[i].Ion < rows[j].Ion
		}
		return rows[i].Index < rows[j].Index
	})
}
