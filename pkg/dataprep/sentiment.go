package dataprep

import (
	"math"

	"github.com/go-gota/gota/dataframe"

	"reviewprep/pkg/sentiment"
)

// ScoreSentiment scores every text of textCol once and stores polarity and
// subjectivity as Float columns. Missing text yields missing scores.
func ScoreSentiment(df dataframe.DataFrame, textCol, polarityCol, subjectivityCol string, scorer sentiment.Scorer) (dataframe.DataFrame, error) {
	s, err := column(df, textCol)
	if err != nil {
		return df, err
	}
	missing := missingMask(s)
	records := s.Records()
	polarity := make([]float64, len(records))
	subjectivity := make([]float64, len(records))
	for i, rec := range records {
		if missing[i] {
			continue
		}
		score := scorer.Score(rec)
		polarity[i], subjectivity[i] = score.Polarity, score.Subjectivity
	}
	return mutate(df,
		newSeries(polarityCol, polarity, missing),
		newSeries(subjectivityCol, subjectivity, missing),
	)
}

// SentimentLabel buckets the numeric scoreCol into positive/neutral/negative and
// stores the labels in labelCol. Missing scores get no label.
func SentimentLabel(df dataframe.DataFrame, scoreCol, labelCol string) (dataframe.DataFrame, error) {
	s, err := column(df, scoreCol)
	if err != nil {
		return df, err
	}
	if !IsNumeric(s.Type()) {
		return df, errorKind(scoreCol, s.Type())
	}
	scores := s.Float()
	labels := make([]string, len(scores))
	missing := make([]bool, len(scores))
	for i, v := range scores {
		if math.IsNaN(v) {
			missing[i] = true
			continue
		}
		labels[i], _ = sentiment.Label(v)
	}
	return mutate(df, newSeries(labelCol, labels, missing))
}

// LabelCounts counts the non-missing values of labelCol.
func LabelCounts(df dataframe.DataFrame, labelCol string) (map[string]int, error) {
	s, err := column(df, labelCol)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		counts[e.String()]++
	}
	return counts, nil
}
