// Package sentiment defines the text-to-score contract used by the feature
// pipeline, the polarity bucketing into class labels, and a small lexicon scorer.
package sentiment

import "math"

// Class labels produced by Label.
const (
	Negative = "negative"
	Neutral  = "neutral"
	Positive = "positive"
)

// Band is the half-width of the neutral polarity band.
const Band = 0.05

// Classes lists the labels in target-encoding order.
var Classes = []string{Negative, Neutral, Positive}

// Sentiment is a scored piece of text.
type Sentiment struct {
	Polarity     float64 // [-1, 1]
	Subjectivity float64 // [0, 1]
}

// Scorer maps text to a Sentiment. Implementations wrap an NLP library.
type Scorer interface {
	Score(text string) Sentiment
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(text string) Sentiment

func (f ScorerFunc) Score(text string) Sentiment { return f(text) }

// Label buckets a polarity score: >= 0.05 is positive, <= -0.05 is negative and
// anything strictly between is neutral. NaN has no label.
func Label(score float64) (string, bool) {
	switch {
	case score >= Band:
		return Positive, true
	case score > -Band && score < Band:
		return Neutral, true
	case score <= -Band:
		return Negative, true
	}
	return "", false
}

// ClassIndex returns the position of label in Classes.
func ClassIndex(label string) (int, bool) {
	for i, c := range Classes {
		if c == label {
			return i, true
		}
	}
	return 0, false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
