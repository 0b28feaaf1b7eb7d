// core/params/errors.go
package params

import "errors"

var (
	// ErrEmptyName indicates a parameter with no name was added to a set.
	ErrEmptyName = errors.New("params: parameter name must not be empty")
	// ErrBadName indicates a name outside the <field><index>_<ion> grammar.
	ErrBadName = errors.New("params: name does not match (z|b|logN|rf)<index>_<ion>")
	// ErrLengthMismatch indicates per-field value arrays of differing length.
	ErrLengthMismatch = errors.New("params: value arrays must have equal length")
)
