package dataprep

import (
	"github.com/go-gota/gota/dataframe"

	"reviewprep/pkg/text"
)

// CleanText normalises each text of textCol, removes stopwords and stores the
// result in dst. Rows that clean down to nothing become missing.
func CleanText(df dataframe.DataFrame, textCol, dst string, stop text.Stopwords) (dataframe.DataFrame, error) {
	s, err := column(df, textCol)
	if err != nil {
		return df, err
	}
	missing := missingMask(s)
	records := s.Records()
	cleaned := make([]string, len(records))
	for i, rec := range records {
		if missing[i] {
			continue
		}
		cleaned[i] = text.Clean(rec, stop)
		if cleaned[i] == "" {
			missing[i] = true
		}
	}
	return mutate(df, newSeries(dst, cleaned, missing))
}
