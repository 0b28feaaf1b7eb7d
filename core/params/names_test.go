// core/params/names_test.go
package params_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vfit-core/params"
)

func TestSanitizeIon(t *testing.T) {
	assert.Equal(t, "FeII", params.SanitizeIon("FeII"))
	assert.Equal(t, "Alx", params.SanitizeIon("Al*"))
	assert.Equal(t, "CIxx", params.SanitizeIon("CI**"), "every asterisk is replaced")
}

func TestNameSynthesis(t *testing.T) {
	assert.Equal(t, "z0_FeII", params.Name(params.FieldZ, 0, "FeII"))
	assert.Equal(t, "b12_SiII", params.Name(params.FieldB, 12, "SiII"))

	// Excited-state labels survive as identifiers.
	want := []string{"z2_Alx", "b2_Alx", "logN2_Alx", "rf2_Alx"}
	for i, f := range params.AllFields {
		assert.Equal(t, want[i], params.Name(f, 2, "Al*"))
	}
}

func TestParseName(t *testing.T) {
	cases := []struct {
		name  string
		field params.Field
		index int
		ion   string
	}{
		{"z0_FeII", params.FieldZ, 0, "FeII"},
		{"b12_SiII", params.FieldB, 12, "SiII"},
		{"logN3_CIa", params.FieldLogN, 3, "CIa"},
		{"rf10_Alx", params.FieldRF, 10, "Alx"},
		{"b007_X", params.FieldB, 7, "X"},
		{"z0_Fe_II", params.FieldZ, 0, "Fe_II"},
	}
	for _, tc := range cases {
		f, idx, ion, err := params.ParseName(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.field, f, tc.name)
		assert.Equal(t, tc.index, idx, tc.name)
		assert.Equal(t, tc.ion, ion, tc.name)
	}
}

func TestParseNameRejects(t *testing.T) {
	bad := []string{
		"",
		"q0_Fe",    // unknown field
		"l0_Fe",    // not logN
		"z_Fe",     // missing index
		"z0Fe",     // missing separator
		"z0_",      // missing ion
		"logN-1_X", // signed index
		"zx0_Fe",   // junk between field and index
		"z0_Fe II", // whitespace in ion
	}
	for _, name := range bad {
		_, _, _, err := params.ParseName(name)
		assert.ErrorIs(t, err, params.ErrBadName, "%q must be rejected", name)
	}
}

func TestParseNameInvertsSynthesis(t *testing.T) {
	for _, f := range params.AllFields {
		for _, ion := range []string{"FeII", "Al*", "CI**"} {
			for _, idx := range []int{0, 3, 41} {
				name := params.Name(f, idx, ion)
				gf, gidx, gion, err := params.ParseName(name)
				require.NoError(t, err, name)
				assert.Equal(t, f, gf)
				assert.Equal(t, idx, gidx)
				assert.Equal(t, params.SanitizeIon(ion), gion,
					fmt.Sprintf("ion comes back sanitized for %s", name))
			}
		}
	}
}
