package moderation

import (
	"game-hub/errors"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := NewModerator([]string{"badger", "snake", "mushroom"}, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "B.4.d.g.€r 42",
			expected: "********** 42",
			words:    []string{"badger"},
		},
		{
			name:     "Uppercase and noise",
			input:    "S-N-A-K-E",
			expected: "*********",
			words:    []string{"snake"},
		},
		{
			name:     "Accents are kept",
			input:    "Élodie badger",
			expected: "Élodie ******",
			words:    []string{"badger"},
		},
		{
			name:     "Nothing to censor",
			input:    "Bot 7",
			expected: "Bot 7",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_Skips_Noise_Words(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given noise only entries in the dictionary
	mod, err := NewModerator([]string{"...", ",,,", "", "badger"}, replacementChar, log)
	req.NoError(err)

	// Then noise is left untouched
	content, words := mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestLoadAll(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"words/en.txt": {Data: []byte("badger\r\nsnake\n\n")},
		"words/fr.txt": {Data: []byte("blaireau\nbadger\n")},
	}

	data, err := LoadAll(fsys, "words")

	req.NoError(err)
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
	req.ElementsMatch([]string{"badger", "snake", "blaireau"}, data.Words)
}

func TestLoadAll_Fails_Without_Words(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{"words/en.txt": {Data: []byte("\n")}}

	_, err := LoadAll(fsys, "words")

	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestLoadDefault(t *testing.T) {
	req := require.New(t)

	data, err := LoadDefault()

	req.NoError(err)
	req.NotEmpty(data.Words)
}
