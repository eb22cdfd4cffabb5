package engine

import (
	"fmt"
	"sort"
)

// RawParser exposes the full candidate lattice of the grammar.
type RawParser struct {
	lang    Lang
	lex     *lexicon
	rules   []*rule
	symbols *SymbolTable
}

// BuildRawParser loads the grammar for lang.
func BuildRawParser(lang Lang) (*RawParser, error) {
	lex, err := loadLexicon(lang)
	if err != nil {
		return nil, err
	}

	symbols := newSymbolTable()
	rules := defaultRules()
	for _, r := range rules {
		r.sym = symbols.Intern(r.name)
	}

	return &RawParser{
		lang:    lang,
		lex:     lex,
		rules:   rules,
		symbols: symbols,
	}, nil
}

// Candidates parses sentence and tags every resulting node with tagger.
// The sentence must already be lower-cased.
func (p *RawParser) Candidates(sentence string, tagger CandidateTagger) ([]Candidate, error) {
	nodes, err := parseChart(sentence, p.lex, p.rules)
	if err != nil {
		return nil, fmt.Errorf("parse %q (%s): %w", sentence, p.lang, err)
	}
	return tagger.Tag(nodes), nil
}

// ResolveSym returns the rule name of sym.
func (p *RawParser) ResolveSym(sym RuleSym) (string, bool) {
	return p.symbols.Resolve(sym)
}

// Parser returns only the selected, resolved entities.
type Parser struct {
	raw *RawParser
}

// BuildParser loads the grammar for lang.
func BuildParser(lang Lang) (*Parser, error) {
	raw, err := BuildRawParser(lang)
	if err != nil {
		return nil, err
	}
	return &Parser{raw: raw}, nil
}

// Parse resolves sentence using the canonical kind order.
func (p *Parser) Parse(sentence string, ctx ResolutionContext) ([]ResolvedEntity, error) {
	return p.ParseWithKindOrder(sentence, ctx, AllOutputKinds())
}

// ParseWithKindOrder resolves sentence, using kinds as a priority order.
func (p *Parser) ParseWithKindOrder(sentence string, ctx ResolutionContext, kinds []OutputKind) ([]ResolvedEntity, error) {
	return p.run(sentence, CandidateTagger{Order: kinds, Context: ctx})
}

// ParseWithKindFilter resolves sentence, keeping only entities of the given kinds.
func (p *Parser) ParseWithKindFilter(sentence string, ctx ResolutionContext, kinds []OutputKind) ([]ResolvedEntity, error) {
	return p.run(sentence, CandidateTagger{Order: kinds, Context: ctx, Strict: true})
}

func (p *Parser) run(sentence string, tagger CandidateTagger) ([]ResolvedEntity, error) {
	candidates, err := p.raw.Candidates(sentence, tagger)
	if err != nil {
		return nil, err
	}

	var entities []ResolvedEntity
	for _, c := range candidates {
		if !c.Tagged || c.Match.Value == nil {
			continue
		}
		entities = append(entities, ResolvedEntity{
			ByteRange: c.Match.ByteRange,
			Probalog:  c.Match.Probalog,
			Value:     c.Match.Value,
		})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].ByteRange.Start < entities[j].ByteRange.Start
	})
	return entities, nil
}
