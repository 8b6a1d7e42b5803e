// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-grace/agr"
)

func TestExtractRoundTrip(t *testing.T) {
	p, err := Subplots(Options{"time": fixedTime}, 2)
	require.NoError(t, err)
	g0, _ := p.Graph(0)
	g1, _ := p.Graph(1)
	_, err = g0.Plot([]float64{0, 1, 2}, []float64{3, 2, 1}, Options{"label": "a"})
	require.NoError(t, err)
	_, err = g0.Plot([]float64{0, 1}, []float64{0.5, 1.5}, Options{"label": "b", "dy": []float64{0.1, 0.2}})
	require.NoError(t, err)
	_, err = g1.Plot([]float64{4}, []float64{5}, Options{"label": "c"})
	require.NoError(t, err)

	x, err := Extract(strings.NewReader(p.String()))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, x.Legends)
	assert.Equal(t, []string{"xy", "xydy", "xy"}, x.Types)
	require.Len(t, x.Tables, 3)
	assert.Equal(t, []string{"x", "y"}, x.Tables[0].Columns())
	assert.Equal(t, []float64{0, 1, 2}, x.Tables[0].MustColumn("x"))
	assert.Equal(t, []float64{3, 2, 1}, x.Tables[0].MustColumn("y"))
	assert.Equal(t, []string{"x", "y", "dy"}, x.Tables[1].Columns())
	assert.Equal(t, []float64{0.1, 0.2}, x.Tables[1].MustColumn("dy"))

	path := filepath.Join(t.TempDir(), "p.agr")
	require.NoError(t, p.WriteFile(path))
	y, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, x.Legends, y.Legends)
}

func TestExtract(t *testing.T) {
	in := `# hand written
&
@type XYDY
1 2
3 4
&
@target G0.S4
@type xy
# comment
5 6
&
`
	x, err := Extract(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"xydy", "xy"}, x.Types)
	assert.Equal(t, []string{"", ""}, x.Legends)
	assert.Equal(t, []string{"c0", "c1"}, x.Tables[0].Columns())
	assert.Equal(t, []string{"x", "y"}, x.Tables[1].Columns())
}

func TestExtractMalformed(t *testing.T) {
	for _, in := range []string{
		"@type xy\n1 2\n",
		"@type xy\n1 2\n@type xy\n3 4\n&\n",
		"@type xy\n1 2\n3\n&\n",
		"@type xy\n1 x\n&\n",
		"@type\n&\n",
	} {
		_, err := Extract(strings.NewReader(in))
		assert.True(t, errors.Is(err, agr.ErrMalformed), "%q: got %v", in, err)
	}

	_, err := ExtractFile(filepath.Join(t.TempDir(), "missing.agr"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}
