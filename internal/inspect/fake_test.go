package inspect

import (
	"ontoscope/internal/engine"
)

// fakeEngine records the calls made by the inspector and returns canned
// results.
type fakeEngine struct {
	entities   []engine.ResolvedEntity
	candidates []engine.Candidate
	symbols    map[engine.RuleSym]string
	buildErr   error
	parseErr   error

	lang       engine.Lang
	sentence   string
	method     string
	ctx        engine.ResolutionContext
	kinds      []engine.OutputKind
	tagger     engine.CandidateTagger
	taggerSeen bool
}

func (f *fakeEngine) BuildParser(lang engine.Lang) (Parser, error) {
	f.lang = lang
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return f, nil
}

func (f *fakeEngine) BuildRawParser(lang engine.Lang) (RawParser, error) {
	f.lang = lang
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return f, nil
}

func (f *fakeEngine) record(method, sentence string, ctx engine.ResolutionContext, kinds []engine.OutputKind) ([]engine.ResolvedEntity, error) {
	f.method, f.sentence, f.ctx, f.kinds = method, sentence, ctx, kinds
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.entities, nil
}

func (f *fakeEngine) Parse(sentence string, ctx engine.ResolutionContext) ([]engine.ResolvedEntity, error) {
	return f.record("Parse", sentence, ctx, nil)
}

func (f *fakeEngine) ParseWithKindOrder(sentence string, ctx engine.ResolutionContext, kinds []engine.OutputKind) ([]engine.ResolvedEntity, error) {
	return f.record("ParseWithKindOrder", sentence, ctx, kinds)
}

func (f *fakeEngine) ParseWithKindFilter(sentence string, ctx engine.ResolutionContext, kinds []engine.OutputKind) ([]engine.ResolvedEntity, error) {
	return f.record("ParseWithKindFilter", sentence, ctx, kinds)
}

func (f *fakeEngine) Candidates(sentence string, tagger engine.CandidateTagger) ([]engine.Candidate, error) {
	f.method, f.sentence, f.tagger, f.taggerSeen = "Candidates", sentence, tagger, true
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.candidates, nil
}

func (f *fakeEngine) ResolveSym(sym engine.RuleSym) (string, bool) {
	name, ok := f.symbols[sym]
	return name, ok
}

// symbolMap is a SymbolResolver over a plain map.
type symbolMap map[engine.RuleSym]string

func (m symbolMap) ResolveSym(sym engine.RuleSym) (string, bool) {
	name, ok := m[sym]
	return name, ok
}
