package dataprep

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"reviewprep/pkg/stats"
)

// DefaultThreshold is the absolute correlation above which a column is redundant.
const DefaultThreshold = 0.79

// NaNPolicy decides what an undefined (NaN) coefficient does to the drop decision.
type NaNPolicy int

const (
	// NaNIgnore treats an undefined coefficient as never exceeding the threshold,
	// so zero-variance columns are kept.
	NaNIgnore NaNPolicy = iota
	// NaNError fails the reduction on the first undefined coefficient.
	NaNError
)

func (p NaNPolicy) String() string {
	switch p {
	case NaNIgnore:
		return "ignore"
	case NaNError:
		return "error"
	}
	return fmt.Sprintf("NaNPolicy(%d)", int(p))
}

// ParseNaNPolicy parses "ignore" or "error".
func ParseNaNPolicy(s string) (NaNPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return NaNIgnore, nil
	case "error":
		return NaNError, nil
	}
	return NaNIgnore, fmt.Errorf("unknown NaN policy %q (want ignore or error)", s)
}

// Reduction is the result of a correlation reduction.
type Reduction struct {
	Data    dataframe.DataFrame
	Dropped []string // in column order
	Columns int      // columns left in Data
}

// CorrelationReducer removes columns whose absolute Pearson correlation with an
// earlier column exceeds Threshold. Of two redundant columns the later one is
// always dropped, whatever its correlation with the rest of the table.
type CorrelationReducer struct {
	Threshold float64
	Policy    NaNPolicy
	Workers   int      // goroutines for the pairwise matrix; <= 0 means GOMAXPROCS
	Exclude   []string // columns Transform leaves out of the reduction

	logger *zap.Logger
}

// ReducerOption configures a CorrelationReducer.
type ReducerOption func(*CorrelationReducer)

func WithThreshold(t float64) ReducerOption {
	return func(r *CorrelationReducer) { r.Threshold = t }
}

func WithNaNPolicy(p NaNPolicy) ReducerOption {
	return func(r *CorrelationReducer) { r.Policy = p }
}

func WithWorkers(n int) ReducerOption {
	return func(r *CorrelationReducer) { r.Workers = n }
}

func WithExclude(cols ...string) ReducerOption {
	return func(r *CorrelationReducer) { r.Exclude = append(r.Exclude, cols...) }
}

func WithLogger(l *zap.Logger) ReducerOption {
	return func(r *CorrelationReducer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewCorrelationReducer returns a reducer with a 0.79 threshold that ignores
// undefined coefficients.
func NewCorrelationReducer(opts ...ReducerOption) *CorrelationReducer {
	r := &CorrelationReducer{
		Threshold: DefaultThreshold,
		Policy:    NaNIgnore,
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// DropHighCorr reduces df with the default reducer.
func DropHighCorr(df dataframe.DataFrame) (Reduction, error) {
	return NewCorrelationReducer().Reduce(df)
}

// Matrix returns the column names of df and their pairwise Pearson correlation.
// Every column must be numeric.
func (r *CorrelationReducer) Matrix(df dataframe.DataFrame) ([]string, *mat.SymDense, error) {
	if df.Err != nil {
		return nil, nil, df.Err
	}
	names := df.Names()
	var bad []string
	for i, t := range df.Types() {
		if !IsNumeric(t) {
			bad = append(bad, fmt.Sprintf("%s (%s)", names[i], t))
		}
	}
	if len(bad) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidInputKind, strings.Join(bad, ", "))
	}

	cols := make([][]float64, len(names))
	for i, n := range names {
		cols[i] = df.Col(n).Float()
	}
	return names, stats.CorrelationMatrix(cols, r.Workers), nil
}

// Reduce drops every column j for which some earlier column i has
// |corr(i, j)| > Threshold. Only the strict upper triangle (i < j) is consulted.
// The input is never modified; rows and the order of kept columns are preserved.
// A frame with no columns, no rows or a single column is returned unchanged.
func (r *CorrelationReducer) Reduce(df dataframe.DataFrame) (Reduction, error) {
	if df.Err != nil {
		return Reduction{}, df.Err
	}
	if df.Ncol() == 0 || df.Nrow() == 0 {
		return Reduction{Data: df, Columns: df.Ncol()}, nil
	}

	names, corr, err := r.Matrix(df)
	if err != nil {
		return Reduction{}, err
	}
	if len(names) < 2 {
		return Reduction{Data: df, Columns: df.Ncol()}, nil
	}

	drop, err := r.dropSet(names, corr)
	if err != nil {
		return Reduction{}, err
	}

	out := df
	if len(drop) > 0 {
		out = df.Drop(drop)
		if out.Err != nil {
			return Reduction{}, fmt.Errorf("drop columns: %w", out.Err)
		}
	}

	r.logger.Info("reduced dataset",
		zap.Int("columns", out.Ncol()),
		zap.Strings("dropped", drop),
		zap.Float64("threshold", r.Threshold))

	return Reduction{Data: out, Dropped: drop, Columns: out.Ncol()}, nil
}

// dropSet walks the strict upper triangle column by column. Comparison is strict,
// so a coefficient equal to the threshold keeps the column.
func (r *CorrelationReducer) dropSet(names []string, corr mat.Symmetric) ([]string, error) {
	n := corr.SymmetricDim()
	var drop []string
	for j := 1; j < n; j++ {
		redundant := false
		for i := 0; i < j; i++ {
			c := math.Abs(corr.At(i, j))
			if math.IsNaN(c) {
				if r.Policy == NaNError {
					return nil, fmt.Errorf("%w: %s ~ %s", ErrUndefinedCorrelation, names[i], names[j])
				}
				continue
			}
			if c > r.Threshold {
				redundant = true
				if r.Policy != NaNError {
					break
				}
			}
		}
		if redundant {
			drop = append(drop, names[j])
		}
	}
	return drop, nil
}

// Name implements pipeline.Step.
func (r *CorrelationReducer) Name() string { return "drop_high_corr" }

// Transform reduces only the numeric, non-excluded columns of a mixed frame and
// removes the dropped names from the full frame. Text columns pass through.
func (r *CorrelationReducer) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, df.Err
	}
	excluded := make(map[string]bool, len(r.Exclude))
	for _, c := range r.Exclude {
		excluded[c] = true
	}
	var features []string
	for _, c := range NumericColumns(df) {
		if !excluded[c] {
			features = append(features, c)
		}
	}
	if len(features) < 2 {
		return df, nil
	}

	red, err := r.Reduce(df.Select(features))
	if err != nil {
		return df, err
	}
	if len(red.Dropped) == 0 {
		return df, nil
	}
	out := df.Drop(red.Dropped)
	if out.Err != nil {
		return df, fmt.Errorf("drop columns: %w", out.Err)
	}
	return out, nil
}
