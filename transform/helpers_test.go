package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"pgmproc/raster"
)

func grid(t *testing.T, rows ...[]uint8) *raster.Grid {
	t.Helper()
	g, err := raster.FromRows(255, rows)
	require.NoError(t, err)
	return g
}

func uniform(t *testing.T, width, height int, v uint8) *raster.Grid {
	t.Helper()
	g, err := raster.New(width, height, 255)
	require.NoError(t, err)
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// ramp fills g with distinct-ish values so geometric tests can track samples.
func ramp(t *testing.T, width, height int) *raster.Grid {
	t.Helper()
	g, err := raster.New(width, height, 255)
	require.NoError(t, err)
	for i := range g.Pix {
		g.Pix[i] = uint8(i%250 + 1)
	}
	return g
}

func requireRows(t *testing.T, want [][]uint8, g *raster.Grid) {
	t.Helper()
	if diff := cmp.Diff(want, g.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
