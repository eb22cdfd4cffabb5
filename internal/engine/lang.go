// Package engine is the bundled entity extraction engine inspected by ontoscope.
//
// A sentence is tokenized, terminal rules turn tokens into chart nodes and
// composite rules combine adjacent nodes until no new node appears. Every
// node carries a log-probability and a derivation tree. A CandidateTagger then
// marks the best non-overlapping nodes and resolves their values through a
// ResolutionContext.
package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a two-letter ISO 639-1 language code.
type Lang string

const (
	LangEN Lang = "en"
	LangFR Lang = "fr"
)

// ParseLang parses a two-letter language code. It only checks the syntax;
// whether a grammar exists for the language is decided by BuildParser.
func ParseLang(code string) (Lang, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidLang, code)
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidLang, code)
		}
	}
	return Lang(code), nil
}

// String implements fmt.Stringer.
func (l Lang) String() string {
	return string(l)
}

// Tag returns the BCP 47 tag used for language-aware case folding.
func (l Lang) Tag() language.Tag {
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.Und
	}
	return tag
}

// SupportedLangs lists the languages with a bundled grammar, sorted.
func SupportedLangs() []Lang {
	return lexiconLangs()
}
