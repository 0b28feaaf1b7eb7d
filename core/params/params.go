// core/params/params.go
package params

import "math"

// Field identifies one of the four physical parameters of a component and
// doubles as the prefix of generated parameter names.
type Field string

const (
	FieldZ    Field = "z"
	FieldB    Field = "b"
	FieldLogN Field = "logN"
	FieldRF   Field = "rf"
)

// AllFields lists the fields in canonical emission order.
var AllFields = []Field{FieldZ, FieldB, FieldLogN, FieldRF}

// Parameter is one named scalar handed to the minimizer. Vary marks it free,
// Expr constrains it to another parameter by name, Min/Max bound the search
// range. Stderr is only meaningful when HasStderr is set (fit outputs carry
// uncertainties, freshly built sets do not).
type Parameter struct {
	Name      string
	Value     float64
	Stderr    float64
	HasStderr bool
	Vary      bool
	Expr      string
	Min, Max  float64
}

// NewParameter returns a free, unbounded parameter with no reported
// uncertainty. Use this instead of a struct literal so Min/Max default to
// the open range rather than zero.
func NewParameter(name string, value float64) Parameter {
	return Parameter{
		Name:  name,
		Value: value,
		Vary:  true,
		Min:   math.Inf(-1),
		Max:   math.Inf(1),
	}
}

// Set is an insertion-ordered collection of uniquely named parameters. It is
// the boundary contract toward the minimizer and the reporting code; nothing
// here knows about any concrete optimizer API.
type Set struct {
	order  []string
	byName map[string]Parameter
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{byName: make(map[string]Parameter)}
}

// Add inserts p. A parameter of the same name is replaced in place, keeping
// its original position, so name uniqueness holds by construction.
func (s *Set) Add(p Parameter) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if _, exists := s.byName[p.Name]; !exists {
		s.order = append(s.order, p.Name)
	}
	s.byName[p.Name] = p
	return nil
}

// Get returns the parameter stored under name.
func (s *Set) Get(name string) (Parameter, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// Value returns just the value stored under name.
func (s *Set) Value(name string) (float64, bool) {
	p, ok := s.byName[name]
	return p.Value, ok
}

// Has reports whether name is present.
func (s *Set) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Len returns the number of parameters.
func (s *Set) Len() int { return len(s.order) }

// Names returns the parameter names in insertion order.
func (s *Set) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns the parameters in insertion order.
func (s *Set) All() []Parameter {
	out := make([]Parameter, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}
