package sentiment

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"reviewprep/pkg/text"
)

// maxValence is the magnitude of the strongest lexicon entry.
const maxValence = 4.0

// Lexicon scores text by averaging the valence of the words it knows.
// Polarity is the mean valence scaled to [-1, 1]; subjectivity is the share of
// tokens found in the lexicon.
type Lexicon struct {
	valence map[string]float64
}

// NewLexicon builds a Lexicon from word valences in [-4, 4].
// Entries that are not a single plain word (emoticons, phrases) are skipped.
func NewLexicon(entries map[string]float64) *Lexicon {
	l := &Lexicon{valence: make(map[string]float64, len(entries))}
	for w, v := range entries {
		l.add(w, v)
	}
	return l
}

func (l *Lexicon) add(word string, valence float64) bool {
	tokens := text.Tokens(word)
	if len(tokens) != 1 || tokens[0] != strings.ToLower(word) {
		return false
	}
	l.valence[tokens[0]] = clamp(valence, -maxValence, maxValence)
	return true
}

// Len returns the number of usable entries.
func (l *Lexicon) Len() int { return len(l.valence) }

// LoadLexicon reads tab-separated "word<TAB>valence[<TAB>...]" lines, the layout
// of the VADER lexicon. Blank lines and lines starting with '#' are ignored.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	l := &Lexicon{valence: make(map[string]float64)}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		fields := strings.Split(raw, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("lexicon line %d: expected word and valence", line)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: %w", line, err)
		}
		l.add(strings.TrimSpace(fields[0]), v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return l, nil
}

// LoadLexiconFile opens path and calls LoadLexicon.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadLexicon(f)
}

// Score implements Scorer. Text without known words scores zero on both axes.
func (l *Lexicon) Score(s string) Sentiment {
	tokens := text.Tokens(s)
	if len(tokens) == 0 {
		return Sentiment{}
	}
	var hits []float64
	for _, t := range tokens {
		if v, ok := l.valence[t]; ok {
			hits = append(hits, v)
		}
	}
	if len(hits) == 0 {
		return Sentiment{}
	}
	return Sentiment{
		Polarity:     clamp(stat.Mean(hits, nil)/maxValence, -1, 1),
		Subjectivity: float64(len(hits)) / float64(len(tokens)),
	}
}
