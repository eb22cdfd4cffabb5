package inspect

import "ontoscope/internal/engine"

// Parser returns the resolved entities of a sentence.
type Parser interface {
	Parse(sentence string, ctx engine.ResolutionContext) ([]engine.ResolvedEntity, error)
	ParseWithKindOrder(sentence string, ctx engine.ResolutionContext, kinds []engine.OutputKind) ([]engine.ResolvedEntity, error)
	ParseWithKindFilter(sentence string, ctx engine.ResolutionContext, kinds []engine.OutputKind) ([]engine.ResolvedEntity, error)
}

// RawParser enumerates every scored candidate of a sentence.
type RawParser interface {
	Candidates(sentence string, tagger engine.CandidateTagger) ([]engine.Candidate, error)
	ResolveSym(sym engine.RuleSym) (string, bool)
}

// Engine builds parsers for a language.
type Engine interface {
	BuildParser(lang engine.Lang) (Parser, error)
	BuildRawParser(lang engine.Lang) (RawParser, error)
}

// Bundled is the Engine backed by internal/engine.
type Bundled struct{}

// BuildParser implements Engine.
func (Bundled) BuildParser(lang engine.Lang) (Parser, error) {
	p, err := engine.BuildParser(lang)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// BuildRawParser implements Engine.
func (Bundled) BuildRawParser(lang engine.Lang) (RawParser, error) {
	p, err := engine.BuildRawParser(lang)
	if err != nil {
		return nil, err
	}
	return p, nil
}
