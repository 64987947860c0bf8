package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPearson(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 1},
		{"perfect negative", []float64{1, 2, 3, 4}, []float64{8, 6, 4, 2}, -1},
		{"pairwise complete", []float64{1, 2, nan, 3, 4}, []float64{10, 20, 99, nan, 40}, 1},
		{"constant column", []float64{1, 2, 3}, []float64{0.1, 0.1, 0.1}, nan},
		{"single complete row", []float64{1, nan}, []float64{nan, 2}, nan},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, nan},
		{"empty", nil, nil, nan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pearson(tt.x, tt.y)
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got), "expected NaN, got %v", got)
				return
			}
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCorrelationMatrix(t *testing.T) {
	cols := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 4, 6, 8, 10},
		{5, 3, 4, 1, 2},
		{7, 7, 7, 7, 7},
	}

	m := CorrelationMatrix(cols, 1)
	require.NotNil(t, m)
	require.Equal(t, 4, m.SymmetricDim())

	assert.InDelta(t, 1.0, m.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, m.At(0, 1), 1e-12)
	assert.InDelta(t, m.At(0, 2), m.At(2, 0), 0)
	assert.True(t, math.IsNaN(m.At(3, 3)))
	assert.True(t, math.IsNaN(m.At(0, 3)))

	// worker count must not change the result
	for _, workers := range []int{0, 2, 3, 64} {
		other := CorrelationMatrix(cols, workers)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				a, b := m.At(i, j), other.At(i, j)
				if math.IsNaN(a) {
					assert.True(t, math.IsNaN(b))
					continue
				}
				assert.Equal(t, a, b, "workers=%d cell (%d,%d)", workers, i, j)
			}
		}
	}
}

func TestCorrelationMatrixEmpty(t *testing.T) {
	assert.Nil(t, CorrelationMatrix(nil, 4))
}
