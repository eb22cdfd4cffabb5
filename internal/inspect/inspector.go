// Package inspect turns the output of an entity extraction engine into
// tables: the resolved entities of a sentence (parse) or every scored
// candidate the engine considered (play).
//
// Rows are shown in reverse engine order and every row highlights the part
// of the sentence it covers.
package inspect

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"ontoscope/internal/engine"
	"ontoscope/internal/logging"
	"ontoscope/internal/ui"
)

// DefaultSlowThreshold is the engine call duration above which a warning is logged.
const DefaultSlowThreshold = 500 * time.Millisecond

// Request describes one inspection run.
type Request struct {
	Lang     engine.Lang
	Sentence string

	// Kinds is the kind priority order. Empty means none was requested.
	Kinds []engine.OutputKind

	// Strict turns Kinds into a hard filter.
	Strict bool
}

// Inspector runs the parse and play pipelines.
type Inspector struct {
	engine Engine
	styles ui.Styles
	logger *logging.Logger
	title  bool
	slow   time.Duration

	// resolver builds the resolution context of the resolved view.
	resolver func() engine.ResolutionContext
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithStyles sets the table styles.
func WithStyles(s ui.Styles) Option {
	return func(i *Inspector) { i.styles = s }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(i *Inspector) { i.logger = l }
}

// WithTitle prints a title line above the table.
func WithTitle(on bool) Option {
	return func(i *Inspector) { i.title = on }
}

// WithSlowThreshold sets the engine call duration above which a warning is logged.
func WithSlowThreshold(d time.Duration) Option {
	return func(i *Inspector) { i.slow = d }
}

// WithResolutionContext replaces the default resolver context of the
// resolved view.
func WithResolutionContext(build func() engine.ResolutionContext) Option {
	return func(i *Inspector) { i.resolver = build }
}

// New returns an Inspector over eng.
func New(eng Engine, opts ...Option) *Inspector {
	i := &Inspector{
		engine: eng,
		styles: ui.DefaultStyles(),
		logger: logging.Nop(),
		slow:   DefaultSlowThreshold,
		resolver: func() engine.ResolutionContext {
			return engine.DefaultResolverContext()
		},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Normalize lower-cases sentence with the case rules of lang.
func Normalize(lang engine.Lang, sentence string) string {
	return cases.Lower(lang.Tag()).String(sentence)
}

// ParseTable builds the resolved view of req.
func (i *Inspector) ParseTable(req Request) (*ui.SimpleTable, error) {
	log := i.logger.Get(logging.CategoryEngine)

	parser, err := i.engine.BuildParser(req.Lang)
	if err != nil {
		return nil, fmt.Errorf("build parser for %s: %w", req.Lang, err)
	}

	sentence := Normalize(req.Lang, req.Sentence)
	ctx := i.resolver()

	timer := logging.StartTimer(log, "parse")
	var entities []engine.ResolvedEntity
	switch {
	case req.Strict:
		kinds := req.Kinds
		if len(kinds) == 0 {
			kinds = engine.AllOutputKinds()
		}
		entities, err = parser.ParseWithKindFilter(sentence, ctx, kinds)
	case len(req.Kinds) > 0:
		entities, err = parser.ParseWithKindOrder(sentence, ctx, req.Kinds)
	default:
		entities, err = parser.Parse(sentence, ctx)
	}
	timer.StopWithThreshold(i.slow)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	log.Debug("parsed", zap.String("sentence", sentence), zap.Int("entities", len(entities)))

	table := ui.NewSimpleTable(i.titleFor("parse", req.Lang, sentence), resolvedHeaders)
	table.Layout = ui.LayoutBordered
	for ix := len(entities) - 1; ix >= 0; ix-- {
		table.AddRow(ResolvedRow(ix, sentence, entities[ix])...)
	}
	return table, nil
}

// PlayTable builds the candidate view of req.
func (i *Inspector) PlayTable(req Request) (*ui.SimpleTable, error) {
	log := i.logger.Get(logging.CategoryEngine)

	parser, err := i.engine.BuildRawParser(req.Lang)
	if err != nil {
		return nil, fmt.Errorf("build raw parser for %s: %w", req.Lang, err)
	}

	sentence := Normalize(req.Lang, req.Sentence)

	kinds := req.Kinds
	if len(kinds) == 0 {
		kinds = engine.AllOutputKinds()
	}
	tagger := engine.CandidateTagger{
		Order:      kinds,
		Context:    engine.NewIdentityContext(),
		ResolveAll: true,
		Strict:     req.Strict,
	}

	timer := logging.StartTimer(log, "candidates")
	candidates, err := parser.Candidates(sentence, tagger)
	timer.StopWithThreshold(i.slow)
	if err != nil {
		return nil, fmt.Errorf("candidates: %w", err)
	}
	log.Debug("enumerated candidates", zap.String("sentence", sentence), zap.Int("candidates", len(candidates)))

	table := ui.NewSimpleTable(i.titleFor("play", req.Lang, sentence), candidateHeaders)
	table.Layout = ui.LayoutCompact
	table.AccentColumn(1)
	for ix := len(candidates) - 1; ix >= 0; ix-- {
		table.AddRow(CandidateRow(ix, sentence, candidates[ix], parser)...)
	}
	return table, nil
}

// Parse renders the resolved view of req to w.
func (i *Inspector) Parse(w io.Writer, req Request) error {
	table, err := i.ParseTable(req)
	if err != nil {
		return err
	}
	return i.render(w, table)
}

// Play renders the candidate view of req to w.
func (i *Inspector) Play(w io.Writer, req Request) error {
	table, err := i.PlayTable(req)
	if err != nil {
		return err
	}
	return i.render(w, table)
}

func (i *Inspector) render(w io.Writer, table *ui.SimpleTable) error {
	timer := logging.StartTimer(i.logger.Get(logging.CategoryInspect), "render")
	defer timer.Stop()
	if err := table.Render(w, i.styles); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func (i *Inspector) titleFor(mode string, lang engine.Lang, sentence string) string {
	if !i.title {
		return ""
	}
	return fmt.Sprintf("%s [%s] %q", mode, lang, sentence)
}
