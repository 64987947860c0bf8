package dataprep

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	// ErrInvalidInputKind is returned when a column cannot be treated as numeric.
	ErrInvalidInputKind = errors.New("dataprep: non-numeric column")
	// ErrUndefinedCorrelation is returned under NaNError when a coefficient is NaN.
	ErrUndefinedCorrelation = errors.New("dataprep: undefined correlation")
	ErrUnknownColumn        = errors.New("dataprep: unknown column")
	ErrUnparsableDate       = errors.New("dataprep: unparsable date")
	ErrUnknownLabel         = errors.New("dataprep: unknown sentiment label")
)

// na is the record gota parses as a missing element for every series type.
const na = "NaN"

// Value is the set of Go types a derived column can hold.
type Value interface {
	string | int | float64 | bool
}

// IsNumeric reports whether a column of kind t takes part in correlation.
// Booleans count as 0/1.
func IsNumeric(t series.Type) bool {
	switch t {
	case series.Float, series.Int, series.Bool:
		return true
	}
	return false
}

// NumericColumns lists the numeric columns of df in column order.
func NumericColumns(df dataframe.DataFrame) []string {
	names := df.Names()
	var out []string
	for i, t := range df.Types() {
		if IsNumeric(t) {
			out = append(out, names[i])
		}
	}
	return out
}

func column(df dataframe.DataFrame, name string) (series.Series, error) {
	if df.Err != nil {
		return series.Series{}, df.Err
	}
	for _, n := range df.Names() {
		if n == name {
			return df.Col(name), nil
		}
	}
	return series.Series{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// mutate adds or replaces each series in turn.
func mutate(df dataframe.DataFrame, cols ...series.Series) (dataframe.DataFrame, error) {
	for _, s := range cols {
		df = df.Mutate(s)
		if df.Err != nil {
			return df, fmt.Errorf("set column %q: %w", s.Name, df.Err)
		}
	}
	return df, nil
}

func kindOf[T Value]() series.Type {
	var zero T
	switch any(zero).(type) {
	case int:
		return series.Int
	case float64:
		return series.Float
	case bool:
		return series.Bool
	}
	return series.String
}

func record[T Value](v T) string {
	switch x := any(v).(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		if math.IsNaN(x) {
			return na
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	}
	return na
}

// newSeries builds a named series of kind T. Rows flagged in missing become NA.
func newSeries[T Value](name string, vals []T, missing []bool) series.Series {
	records := make([]string, len(vals))
	for i, v := range vals {
		if missing != nil && missing[i] {
			records[i] = na
			continue
		}
		records[i] = record(v)
	}
	return series.New(records, kindOf[T](), name)
}

// missingMask reports which elements of s are NA.
func missingMask(s series.Series) []bool {
	mask := make([]bool, s.Len())
	for i := range mask {
		mask[i] = s.Elem(i).IsNA()
	}
	return mask
}
