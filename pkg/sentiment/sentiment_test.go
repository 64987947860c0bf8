package sentiment

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
		ok    bool
	}{
		{0.05, Positive, true},
		{0.9, Positive, true},
		{0.0499, Neutral, true},
		{0, Neutral, true},
		{-0.0499, Neutral, true},
		{-0.05, Negative, true},
		{-1, Negative, true},
		{math.NaN(), "", false},
	}
	for _, tt := range tests {
		got, ok := Label(tt.score)
		assert.Equal(t, tt.want, got, "score %v", tt.score)
		assert.Equal(t, tt.ok, ok, "score %v", tt.score)
	}
}

func TestClassIndex(t *testing.T) {
	for want, label := range Classes {
		got, ok := ClassIndex(label)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := ClassIndex("mixed")
	assert.False(t, ok)
}

const lexiconFixture = `# word	valence	std	ratings
good	1.9	0.9	[2, 2]
great	3.1	0.7	[3, 3]
awful	-2.8	0.6	[-3, -3]
:)	2.0	0.5	[2, 2]
can't stand	-2.0	0.5	[-2, -2]
`

func TestLoadLexicon(t *testing.T) {
	lex, err := LoadLexicon(strings.NewReader(lexiconFixture))
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())

	_, err = LoadLexicon(strings.NewReader("good\tvery\n"))
	assert.Error(t, err)

	_, err = LoadLexicon(strings.NewReader("lonely\n"))
	assert.Error(t, err)
}

func TestLoadLexiconFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	require.NoError(t, os.WriteFile(path, []byte(lexiconFixture), 0o600))

	lex, err := LoadLexiconFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())

	_, err = LoadLexiconFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLexiconScore(t *testing.T) {
	lex := NewLexicon(map[string]float64{"good": 2, "great": 4, "awful": -4, "meh": 9})

	s := lex.Score("Good plot, GREAT cast")
	assert.InDelta(t, 0.75, s.Polarity, 1e-12)
	assert.InDelta(t, 0.5, s.Subjectivity, 1e-12)

	s = lex.Score("awful")
	assert.InDelta(t, -1, s.Polarity, 1e-12)
	assert.InDelta(t, 1, s.Subjectivity, 1e-12)

	// valences are clamped to the lexicon range
	assert.InDelta(t, 1, lex.Score("meh").Polarity, 1e-12)

	assert.Equal(t, Sentiment{}, lex.Score("nothing known here"))
	assert.Equal(t, Sentiment{}, lex.Score(""))

	var scorer Scorer = lex
	assert.Equal(t, s.Subjectivity, scorer.Score("awful").Subjectivity)
}

func TestScorerFunc(t *testing.T) {
	f := ScorerFunc(func(string) Sentiment { return Sentiment{Polarity: 0.3} })
	assert.Equal(t, 0.3, f.Score("anything").Polarity)
}
