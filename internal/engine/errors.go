package engine

import "errors"

var (
	// ErrInvalidLang is returned for language codes that are not two ASCII letters.
	ErrInvalidLang = errors.New("invalid language code")

	// ErrUnsupportedLang is returned when no grammar is bundled for a language.
	ErrUnsupportedLang = errors.New("unsupported language")

	// ErrUnknownKind is returned when an output kind name cannot be parsed.
	ErrUnknownKind = errors.New("unknown output kind")

	// ErrEmptySentence is returned when the sentence has no token to parse.
	ErrEmptySentence = errors.New("empty sentence")

	// ErrChartOverflow is returned when a sentence yields more nodes than the chart accepts.
	ErrChartOverflow = errors.New("parse chart overflow")
)
