package dataprep

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"reviewprep/pkg/sentiment"
)

// EncodeLabels maps the sentiment labels of labelCol to their class index
// (negative=0, neutral=1, positive=2) in the Int column targetCol.
// Missing labels stay missing; any other label is an error.
func EncodeLabels(df dataframe.DataFrame, labelCol, targetCol string) (dataframe.DataFrame, error) {
	s, err := column(df, labelCol)
	if err != nil {
		return df, err
	}
	missing := missingMask(s)
	ids := make([]int, s.Len())
	for i := range ids {
		if missing[i] {
			continue
		}
		label := s.Elem(i).String()
		idx, ok := sentiment.ClassIndex(label)
		if !ok {
			return df, fmt.Errorf("%w: %q at row %d", ErrUnknownLabel, label, i)
		}
		ids[i] = idx
	}
	return mutate(df, newSeries(targetCol, ids, missing))
}

func errorKind(col string, t series.Type) error {
	return fmt.Errorf("%w: %s (%s)", ErrInvalidInputKind, col, t)
}
