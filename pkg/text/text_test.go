package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"The film was GREAT!", []string{"the", "film", "was", "great"}},
		{"He'd say it's fine", []string{"he", "say", "it", "fine"}},
		{"I’m done.", []string{"i", "done"}},
		{"Café crème", []string{"cafe", "creme"}},
		{"route66 and 2020 scores", []string{"and", "scores"}},
		{"well-made, self-aware", []string{"well", "made", "self", "aware"}},
		{"   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "loved every minute", Normalize("Loved   every... minute!!"))
	assert.Equal(t, "", Normalize(""))
}

func TestNewStopwords(t *testing.T) {
	stop := NewStopwords([]string{"He'd", "he", "Movies", "it's", "123"})

	assert.Equal(t, 3, stop.Len())
	assert.Equal(t, []string{"he", "it", "movies"}, stop.Words())
	assert.True(t, stop.Contains("movies"))
	assert.False(t, stop.Contains("He"))
}

func TestDefaultStopwords(t *testing.T) {
	stop := DefaultStopwords()

	for _, w := range []string{"a", "film", "movie", "watch", "http", "yourselves", "he", "let"} {
		assert.True(t, stop.Contains(w), w)
	}
	assert.False(t, stop.Contains("good"))
	assert.False(t, stop.Contains("he'd"))
	assert.Equal(t, stop.Len(), DefaultStopwords().Len())
}

func TestClean(t *testing.T) {
	stop := DefaultStopwords()

	assert.Equal(t, "brilliant acting terrible plot", Clean("The movie had brilliant acting, but a terrible plot!", stop))
	assert.Equal(t, "", Clean("It's the film.", stop))

	var empty Stopwords
	assert.Equal(t, "it the film", Clean("It's the film.", empty))
}
