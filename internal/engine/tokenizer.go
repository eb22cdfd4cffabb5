package engine

import (
	"regexp"
	"strings"
)

// Range is a half-open byte range into the parsed sentence.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (r Range) Len() int {
	return r.End - r.Start
}

// Overlaps reports whether the two ranges share at least one byte.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

type token struct {
	text string
	rng  Range
}

// Digits may carry a decimal part and glued letters ("21st", "3,5", "1er").
var tokenPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?\p{L}*|\p{L}+|[^\s\p{L}\p{N}]`)

func tokenize(sentence string) []token {
	locs := tokenPattern.FindAllStringIndex(sentence, -1)
	tokens := make([]token, 0, len(locs))
	for _, loc := range locs {
		tokens = append(tokens, token{
			text: sentence[loc[0]:loc[1]],
			rng:  Range{Start: loc[0], End: loc[1]},
		})
	}
	return tokens
}

// joinable reports whether the text between two adjacent nodes may be
// skipped: whitespace only, or one of the extra separators.
func joinable(gap string, extra ...string) bool {
	gap = strings.TrimSpace(gap)
	if gap == "" {
		return true
	}
	for _, sep := range extra {
		if gap == sep {
			return true
		}
	}
	return false
}
