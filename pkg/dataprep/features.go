package dataprep

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
)

// Columns added by DateFeatures.
const (
	MonthColumn     = "month"
	DayColumn       = "day"
	DayOfWeekColumn = "dayofweek"
	HourColumn      = "hour"
)

// CanonicalDateLayout is the form DateFeatures rewrites the date column into.
const CanonicalDateLayout = "2006-01-02 15:04:05"

// DateLayouts are tried in order when no layout is given.
var DateLayouts = []string{
	time.RFC3339Nano,
	CanonicalDateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

// Apply maps fn over the records of src and stores the results in dst, a column
// of the kind matching T. Missing source values stay missing.
func Apply[T Value](df dataframe.DataFrame, src, dst string, fn func(string) T) (dataframe.DataFrame, error) {
	s, err := column(df, src)
	if err != nil {
		return df, err
	}
	missing := missingMask(s)
	records := s.Records()
	vals := make([]T, len(records))
	for i, rec := range records {
		if !missing[i] {
			vals[i] = fn(rec)
		}
	}
	return mutate(df, newSeries(dst, vals, missing))
}

// CharCount stores the number of characters (code points) of each text value.
func CharCount(df dataframe.DataFrame, textCol, dst string) (dataframe.DataFrame, error) {
	return Apply(df, textCol, dst, utf8.RuneCountInString)
}

// DateFeatures parses dateCol, rewrites it in CanonicalDateLayout and adds the
// month, day, dayofweek (Monday=0) and hour columns. Layouts default to DateLayouts.
// Missing dates stay missing in every derived column.
func DateFeatures(df dataframe.DataFrame, dateCol string, layouts ...string) (dataframe.DataFrame, error) {
	s, err := column(df, dateCol)
	if err != nil {
		return df, err
	}
	if len(layouts) == 0 {
		layouts = DateLayouts
	}

	n := s.Len()
	missing := missingMask(s)
	var (
		canon                  = make([]string, n)
		month, day, dow, hours = make([]int, n), make([]int, n), make([]int, n), make([]int, n)
	)
	for i := 0; i < n; i++ {
		if missing[i] {
			continue
		}
		raw := s.Elem(i).String()
		t, ok := parseDate(raw, layouts)
		if !ok {
			return df, fmt.Errorf("%w: column %q row %d: %q", ErrUnparsableDate, dateCol, i, raw)
		}
		canon[i] = t.Format(CanonicalDateLayout)
		month[i] = int(t.Month())
		day[i] = t.Day()
		dow[i] = (int(t.Weekday()) + 6) % 7
		hours[i] = t.Hour()
	}

	return mutate(df,
		newSeries(dateCol, canon, missing),
		newSeries(MonthColumn, month, missing),
		newSeries(DayColumn, day, missing),
		newSeries(DayOfWeekColumn, dow, missing),
		newSeries(HourColumn, hours, missing),
	)
}

func parseDate(raw string, layouts []string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
