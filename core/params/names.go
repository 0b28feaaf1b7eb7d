// core/params/names.go
package params

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SanitizeIon returns the ion label with every '*' replaced by 'x'. The
// asterisk marks fine-structure levels in ion notation (e.g. Al*) but is not
// legal inside generated parameter names. The translation is one-directional;
// the original label is not recoverable from a sanitized one.
func SanitizeIon(ion string) string {
	return strings.ReplaceAll(ion, "*", "x")
}

// Name synthesizes the unique parameter name <field><index>_<ion> for a
// zero-based component index, sanitizing the ion label.
func Name(f Field, index int, ion string) string {
	return fmt.Sprintf("%s%d_%s", f, index, SanitizeIon(ion))
}

// ParseName splits a generated name back into field, component index and
// sanitized ion label. It accepts exactly the synthesized grammar
// (z|b|logN|rf)<digits>_<ion>; anything else is ErrBadName.
func ParseName(name string) (Field, int, string, error) {
	var f Field
	switch {
	// logN before the single-letter fields so "logN…" never parses as "l".
	case strings.HasPrefix(name, string(FieldLogN)):
		f = FieldLogN
	case strings.HasPrefix(name, string(FieldRF)):
		f = FieldRF
	case strings.HasPrefix(name, string(FieldZ)):
		f = FieldZ
	case strings.HasPrefix(name, string(FieldB)):
		f = FieldB
	default:
		return "", 0, "", fmt.Errorf("%w: %q", ErrBadName, name)
	}

	rest := name[len(f):]
	us := strings.IndexByte(rest, '_')
	if us <= 0 || us == len(rest)-1 {
		return "", 0, "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	for i := 0; i < us; i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return "", 0, "", fmt.Errorf("%w: %q", ErrBadName, name)
		}
	}
	index, err := strconv.Atoi(rest[:us])
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	ion := rest[us+1:]
	if strings.IndexFunc(ion, unicode.IsSpace) >= 0 {
		return "", 0, "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return f, index, ion, nil
}
