package moderation

import (
	"testing"

	"mongolshop/errors"

	"github.com/stretchr/testify/require"
)

const maskChar = '*'

// The blocklist uses specific words to avoid partial collisions
// (e.g., "he" inside "The").
func TestModerator_Mask(t *testing.T) {
	req := require.New(t)
	blocklist := []string{"badger", "snake", "новш"}
	mod, err := NewModerator(blocklist, maskChar)
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
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Cyrillic word inside a Mongolian sentence",
			input:    "Энэ новш юм",
			expected: "Энэ **** юм",
			words:    []string{"новш"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "S-N-A-K-E is fine",
			expected: "********* is fine",
			words:    []string{"snake"},
		},
		{
			name:     "Nothing to mask",
			input:    "Mongol Shop is amazing",
			expected: "Mongol Shop is amazing",
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
			masked, words := mod.Mask(tt.input)
			req.Equal(tt.expected, masked, "test=%s", tt.name)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_NilPassthrough(t *testing.T) {
	req := require.New(t)

	var mod *Moderator
	masked, words := mod.Mask("untouched text")
	req.Equal("untouched text", masked)
	req.Nil(words)
}

func TestModerator_EmptyBlocklist(t *testing.T) {
	req := require.New(t)

	_, err := NewModerator(nil, maskChar)
	req.ErrorIs(err, errors.ErrEmptyWords)
}
