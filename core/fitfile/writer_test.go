// core/fitfile/writer_test.go
package fitfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vfit-core/fitfile"
	"vfit-core/params"
)

func TestWriteRendersLoadedSet(t *testing.T) {
	in := "0 FeII 0.52341 0.00002 12.3 0.4 14.52 0.03 0.85 0.02\n"
	s, _, err := fitfile.LoadReader(strings.NewReader(in), "test")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fitfile.Write(&buf, s))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#"), "first line must be a comment header")
	assert.Equal(t, "0 FeII 0.52341 2e-05 12.3 0.4 14.52 0.03 0.85 0.02", lines[1])
}

func TestWriteLoadRoundTrip(t *testing.T) {
	in := `0 FeII 0.52341 0.00002 12.3 0.4 14.52 0.03 0.85 0.02
1 FeII 0.52358 0.00003 9.1 0.6 13.87 0.05 0.70 0.04
0 Al* 0.52341 0.00002 15.0 1.2 12.40 0.10 1.00 0
`
	orig, _, err := fitfile.LoadReader(strings.NewReader(in), "orig")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fitfile.Write(&buf, orig))
	back, warns, err := fitfile.LoadReader(&buf, "rt")
	require.NoError(t, err)
	assert.Empty(t, warns)

	// Sanitized labels survive the round trip unchanged (Al* stays Alx).
	assert.Equal(t, orig.Names(), back.Names())
	for _, name := range orig.Names() {
		want, _ := orig.Get(name)
		got, ok := back.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, want.Value, got.Value, name)
		assert.Equal(t, want.Stderr, got.Stderr, name)
	}
}

func TestWriteMissingStderrAsZero(t *testing.T) {
	s, err := params.FromArrays("MgII", []float64{0.1}, []float64{5}, []float64{13}, []float64{0.9})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fitfile.Write(&buf, s))
	assert.Contains(t, buf.String(), "0 MgII 0.1 0 5 0 13 0 0.9 0\n")
}

func TestWriteRejectsForeignNames(t *testing.T) {
	s := params.NewSet()
	require.NoError(t, s.Add(params.NewParameter("chi2", 1.04)))

	err := fitfile.Write(&bytes.Buffer{}, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, params.ErrBadName)
}

func TestWriteIncompleteComponent(t *testing.T) {
	s := params.NewSet()
	require.NoError(t, s.Add(params.NewParameter("z0_FeII", 0.5)))

	err := fitfile.Write(&bytes.Buffer{}, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no b parameter")
}

func TestSaveLoad(t *testing.T) {
	s, err := params.FromArrays("CIV", []float64{0.1, 0.2}, []float64{5, 10}, []float64{13, 14}, []float64{0.9, 1.0})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fit.out")
	require.NoError(t, fitfile.Save(path, s))

	back, warns, err := fitfile.Load(path)
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, s.Names(), back.Names())
}
