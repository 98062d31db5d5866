package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"mongolshop/errors"
)

// Moderator masks blocklisted words in outgoing chat prompts before
// they leave the client. Matching runs on a normalized shadow of the
// text (lowercased, leet speak folded, punctuation stripped) while the
// masking is applied to the original runes.
type Moderator struct {
	matcher  *goahocorasick.Machine
	maskChar rune
}

// NewModerator builds the automaton from the blocklist. An empty list
// is rejected; callers that want no moderation simply pass a nil
// *Moderator around.
func NewModerator(blocklist []string, maskChar rune) (*Moderator, error) {
	if len(blocklist) == 0 {
		return nil, errors.ErrEmptyWords
	}
	patterns := make([][]rune, len(blocklist))
	for i, word := range blocklist {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, maskChar: maskChar}, nil
}

// Mask replaces every blocklisted span with the mask character and
// returns the matched (normalized) words. A nil moderator passes text
// through untouched.
func (m *Moderator) Mask(original string) (string, []string) {
	if m == nil {
		return original, nil
	}

	norm, origIdx := normalizeWithPositions(original)
	if len(norm) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(norm, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	found := make([]string, 0, len(spans))
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		found = append(found, string(span.Word))

		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.maskChar
		}
	}
	return string(origRunes), found
}

// normalizeWithPositions produces the searchable shadow text along with
// a mapping from each shadow rune back to its original index.
func normalizeWithPositions(input string) ([]rune, []int) {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		folded := foldLeet(r)
		if isNoise(folded) {
			continue
		}
		norm = append(norm, unicode.ToLower(folded))
		origIdx = append(origIdx, i)
	}
	return norm, origIdx
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		folded := foldLeet(r)
		if isNoise(folded) {
			continue
		}
		out = append(out, unicode.ToLower(folded))
	}
	return out
}

// foldLeet maps common character substitutions back to the letters
// they stand in for, so "1diot" matches the same pattern as "idiot".
func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
