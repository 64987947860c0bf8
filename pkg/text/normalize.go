// Package text holds the text normalisation used to build the stopword set and to
// clean review text before modeling.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold returns a fresh transformer that strips diacritics and lowercases.
// Chains and casers keep state and must not be shared between goroutines.
func fold() transform.Transformer {
	return transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		cases.Lower(language.English),
	)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// Tokens splits s into lowercase alphabetic tokens.
// Contractions keep only their head ("he'd" -> "he"), and tokens holding digits or
// other non-letter runes are dropped.
func Tokens(s string) []string {
	folded, _, err := transform.String(fold(), s)
	if err != nil {
		folded = strings.ToLower(s)
	}

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !isApostrophe(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if i := strings.IndexFunc(w, isApostrophe); i >= 0 {
			w = w[:i]
		}
		if w == "" || !alpha(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func alpha(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Normalize returns the tokens of s joined by single spaces.
func Normalize(s string) string {
	return join(Tokens(s))
}

func join(tokens []string) string {
	return strings.Join(tokens, " ")
}
