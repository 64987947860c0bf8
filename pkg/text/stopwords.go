package text

import (
	"sort"
	"sync"
)

// Stopwords is an immutable set of normalised stopwords.
// The zero value is an empty set.
type Stopwords struct {
	set map[string]struct{}
}

// NewStopwords normalises every word with Tokens and returns the resulting set.
// Contractions collapse onto their head, so "he'd" and "he" yield one entry.
func NewStopwords(words []string) Stopwords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		for _, tok := range Tokens(w) {
			set[tok] = struct{}{}
		}
	}
	return Stopwords{set: set}
}

// Contains reports whether the normalised token is a stopword.
func (s Stopwords) Contains(token string) bool {
	_, ok := s.set[token]
	return ok
}

func (s Stopwords) Len() int { return len(s.set) }

// Words returns the set's members sorted alphabetically.
func (s Stopwords) Words() []string {
	out := make([]string, 0, len(s.set))
	for w := range s.set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Filter returns the tokens that are not stopwords, preserving order.
func (s Stopwords) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Clean normalises s and removes stopwords.
func Clean(s string, stop Stopwords) string {
	return join(stop.Filter(Tokens(s)))
}

var defaultStopwords = sync.OnceValue(func() Stopwords {
	return NewStopwords(reviewStopwords)
})

// DefaultStopwords returns the review-domain stopword set. It is built on first use
// and shared afterwards; the set is never modified.
func DefaultStopwords() Stopwords {
	return defaultStopwords()
}

// reviewStopwords is a general English list extended with review-site noise
// ("film", "movie", "watch", "http", "www").
var reviewStopwords = []string{
	"a", "about", "above", "after", "again", "all", "also", "am", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
	"but", "by", "can", "com", "could", "did", "do", "does", "doing", "down", "during",
	"each", "else", "ever", "few", "film", "films", "for", "from", "further", "get", "had",
	"has", "have", "having", "he", "he'd", "he'll", "he's", "her", "here", "here's", "hers",
	"herself", "him", "himself", "his", "how", "how's", "however", "http", "i", "i'd",
	"i'll", "i'm", "i've", "if", "in", "into", "is", "it", "it's", "its", "itself", "just",
	"let's", "like", "me", "more", "most", "movie", "movies", "my", "myself", "of", "off",
	"on", "once", "only", "or", "other", "otherwise", "ought", "our", "ours", "ourselves",
	"out", "over", "own", "same", "shall", "she", "she'd", "she'll", "she's", "should",
	"since", "so", "some", "such", "than", "that", "that's", "the", "their", "theirs",
	"them", "themselves", "then", "there", "there's", "these", "they", "they'd", "they'll",
	"they're", "they've", "this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "watch", "we", "we'd", "we'll", "we're", "we've", "were", "what",
	"what's", "when", "when's", "where", "where's", "which", "while", "who", "who's",
	"whom", "why", "why's", "with", "would", "www", "you", "you'd", "you'll", "you're",
	"you've", "your", "yours", "yourself", "yourselves",
}
