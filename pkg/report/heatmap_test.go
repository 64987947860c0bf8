package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHeatmap(t *testing.T) {
	corr := mat.NewSymDense(3, []float64{
		1, -0.9, 0.1,
		-0.9, 1, math.NaN(),
		0.1, math.NaN(), 1,
	})
	path := filepath.Join(t.TempDir(), "corr.png")

	require.NoError(t, Heatmap([]string{"x", "y", "z"}, corr, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHeatmapRejectsBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corr.png")

	assert.Error(t, Heatmap(nil, nil, path))
	assert.Error(t, Heatmap([]string{"x"}, mat.NewSymDense(2, nil), path))
}

func TestAbsGrid(t *testing.T) {
	g := absGrid{m: mat.NewSymDense(2, []float64{1, -0.5, -0.5, 1})}

	c, r := g.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0.5, g.Z(0, 0))
	assert.Equal(t, 1.0, g.Z(0, 1))
	assert.Equal(t, 1.0, g.X(1))
}
