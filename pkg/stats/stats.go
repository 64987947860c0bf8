package stats

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Pearson computes the Pearson correlation coefficient between x and y using only
// the rows where both values are present (pairwise-complete observations).
// The result is NaN when fewer than two complete rows remain or when either
// side has zero variance.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) {
		return math.NaN()
	}
	xs, ys := completePairs(x, y)
	if len(xs) < 2 || constant(xs) || constant(ys) {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// completePairs drops every row where x or y is NaN.
func completePairs(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// constant reports whether every value in x is the same. Checking the range
// directly keeps rounding noise in the mean from producing a bogus coefficient.
func constant(x []float64) bool {
	return floats.Max(x) == floats.Min(x)
}

type pair struct{ i, j int }

// CorrelationMatrix returns the pairwise Pearson correlation of the given columns.
// Pairs are computed concurrently by the given number of workers
// (<= 0 means GOMAXPROCS). Returns nil when there are no columns.
func CorrelationMatrix(cols [][]float64, workers int) *mat.SymDense {
	n := len(cols)
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	npairs := n * (n + 1) / 2
	if workers > npairs {
		workers = npairs
	}

	dst := mat.NewSymDense(n, nil)
	pairs := make(chan pair, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// each pair owns a distinct cell of the upper triangle
			for p := range pairs {
				dst.SetSym(p.i, p.j, Pearson(cols[p.i], cols[p.j]))
			}
		}()
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pairs <- pair{i, j}
		}
	}
	close(pairs)
	wg.Wait()

	return dst
}
