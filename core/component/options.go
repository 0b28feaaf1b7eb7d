// core/component/options.go
package component

import (
	"errors"
	"fmt"
)

// Options is the tie/var metadata consumed by the fitting engine: one var
// flag and one tie expression per physical parameter, independently settable.
// A var flag marks the parameter free during minimization; a tie expression
// constrains it to another parameter by name. Zero tie means untied.
//
// Note the column-density pair is keyed var_N / tie_N, not var_logN.
type Options struct {
	VarZ  bool
	VarB  bool
	VarN  bool
	VarRF bool

	TieZ  string
	TieB  string
	TieN  string
	TieRF string
}

// Option keys recognized by Get and Set.
const (
	KeyVarZ  = "var_z"
	KeyVarB  = "var_b"
	KeyVarN  = "var_N"
	KeyVarRF = "var_rf"
	KeyTieZ  = "tie_z"
	KeyTieB  = "tie_b"
	KeyTieN  = "tie_N"
	KeyTieRF = "tie_rf"
)

// OptionKeys lists the eight recognized keys in a fixed order.
var OptionKeys = []string{
	KeyVarZ, KeyVarB, KeyVarN, KeyVarRF,
	KeyTieZ, KeyTieB, KeyTieN, KeyTieRF,
}

var (
	// ErrUnknownOption reports a key outside the eight tie/var names.
	ErrUnknownOption = errors.New("component: unknown option key")
	// ErrOptionType reports a Set value whose type does not match the field.
	ErrOptionType = errors.New("component: wrong option value type")
)

// DefaultOptions returns the bag used for new components: all four
// parameters free, nothing tied.
func DefaultOptions() Options {
	return Options{VarZ: true, VarB: true, VarN: true, VarRF: true}
}

// Get returns the field stored under key: bool for var_* keys, string for
// tie_* keys. Unknown keys are an explicit error, never a zero value.
func (o Options) Get(key string) (any, error) {
	switch key {
	case KeyVarZ:
		return o.VarZ, nil
	case KeyVarB:
		return o.VarB, nil
	case KeyVarN:
		return o.VarN, nil
	case KeyVarRF:
		return o.VarRF, nil
	case KeyTieZ:
		return o.TieZ, nil
	case KeyTieB:
		return o.TieB, nil
	case KeyTieN:
		return o.TieN, nil
	case KeyTieRF:
		return o.TieRF, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOption, key)
}

// Set stores value under key. Unknown keys and mismatched value types are
// explicit errors; nothing is ever inserted silently.
func (o *Options) Set(key string, value any) error {
	switch key {
	case KeyVarZ:
		return setVar(&o.VarZ, key, value)
	case KeyVarB:
		return setVar(&o.VarB, key, value)
	case KeyVarN:
		return setVar(&o.VarN, key, value)
	case KeyVarRF:
		return setVar(&o.VarRF, key, value)
	case KeyTieZ:
		return setTie(&o.TieZ, key, value)
	case KeyTieB:
		return setTie(&o.TieB, key, value)
	case KeyTieN:
		return setTie(&o.TieN, key, value)
	case KeyTieRF:
		return setTie(&o.TieRF, key, value)
	}
	return fmt.Errorf("%w: %q", ErrUnknownOption, key)
}

func setVar(dst *bool, key string, value any) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: %s wants bool, got %T", ErrOptionType, key, value)
	}
	*dst = b
	return nil
}

func setTie(dst *string, key string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s wants string, got %T", ErrOptionType, key, value)
	}
	*dst = s
	return nil
}
