// core/params/builders.go
package params

import (
	"fmt"

	"vfit-core/component"
)

// FromArrays builds the parameter set for a single ion directly from equal
// length value arrays, one component per position. The arrays must line up:
// differing lengths are an error, never a silent truncation. This path
// performs no physical validation — values land in the set exactly as given,
// without the b/rf corrections the Component setters apply — and carries no
// uncertainties and no tie/vary metadata beyond the free defaults.
func FromArrays(ion string, z, b, logN, rf []float64) (*Set, error) {
	n := len(z)
	if len(b) != n || len(logN) != n || len(rf) != n {
		return nil, fmt.Errorf("%w: z=%d b=%d logN=%d rf=%d",
			ErrLengthMismatch, len(z), len(b), len(logN), len(rf))
	}

	s := NewSet()
	for i := 0; i < n; i++ {
		_ = s.Add(NewParameter(Name(FieldZ, i, ion), z[i]))
		_ = s.Add(NewParameter(Name(FieldB, i, ion), b[i]))
		_ = s.Add(NewParameter(Name(FieldLogN, i, ion), logN[i]))
		_ = s.Add(NewParameter(Name(FieldRF, i, ion), rf[i]))
	}
	return s, nil
}

// FromComponents flattens ordered components of one ion into the named set
// consumed by the minimizer. The slice position is the component index; each
// component contributes four parameters carrying its var flags and tie
// expressions. Values are read back as stored, i.e. after the setters'
// physical corrections.
func FromComponents(ion string, comps []*component.Component) (*Set, error) {
	s := NewSet()
	for i, c := range comps {
		if c == nil {
			return nil, fmt.Errorf("params: nil component at index %d for ion %s", i, ion)
		}
		o := c.Options()
		add := func(f Field, value float64, vary bool, expr string) {
			p := NewParameter(Name(f, i, ion), value)
			p.Vary = vary
			p.Expr = expr
			_ = s.Add(p)
		}
		add(FieldZ, c.Z(), o.VarZ, o.TieZ)
		add(FieldB, c.B(), o.VarB, o.TieB)
		add(FieldLogN, c.LogN(), o.VarN, o.TieN)
		add(FieldRF, c.RF(), o.VarRF, o.TieRF)
	}
	return s, nil
}
