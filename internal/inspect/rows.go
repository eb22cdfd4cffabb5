package inspect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"ontoscope/internal/engine"
)

const (
	filler        = "_"
	bestMarker    = "*"
	childSep      = " + "
	childNameRune = 20
)

var (
	resolvedHeaders  = []string{"ix", "log(p)", "p", "text", "value"}
	candidateHeaders = []string{"ix", "best", "log(p)", "p", "text", "value", "latent", "rule", "childs"}
)

// Highlight returns sentence with every byte outside [start,end) replaced by
// an underscore. The result has the byte length of sentence. Both bounds
// must be character boundaries of sentence; anything else panics.
func Highlight(sentence string, start, end int) string {
	if start < 0 || start > end || end > len(sentence) {
		panic(fmt.Sprintf("inspect: range [%d,%d) out of bounds for sentence of length %d", start, end, len(sentence)))
	}
	if !isBoundary(sentence, start) || !isBoundary(sentence, end) {
		panic(fmt.Sprintf("inspect: range [%d,%d) is not on character boundaries", start, end))
	}

	var sb strings.Builder
	sb.Grow(len(sentence))
	sb.WriteString(strings.Repeat(filler, start))
	sb.WriteString(sentence[start:end])
	sb.WriteString(strings.Repeat(filler, len(sentence)-end))
	return sb.String()
}

func isBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}

// Probability returns exp(probalog) in single precision.
func Probability(probalog float32) float32 {
	return float32(math.Exp(float64(probalog)))
}

func formatProb(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func formatValue(v engine.Value) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// ResolvedRow builds the table row of a resolved entity shown at index ix.
func ResolvedRow(ix int, sentence string, e engine.ResolvedEntity) []string {
	return []string{
		strconv.Itoa(ix),
		formatProb(e.Probalog),
		formatProb(Probability(e.Probalog)),
		Highlight(sentence, e.ByteRange.Start, e.ByteRange.End),
		formatValue(e.Value),
	}
}

// SymbolResolver maps rule symbols to rule names.
type SymbolResolver interface {
	ResolveSym(sym engine.RuleSym) (string, bool)
}

// symbolName returns the rule name of sym, or "" when the table misses it.
func symbolName(syms SymbolResolver, sym engine.RuleSym) string {
	name, ok := syms.ResolveSym(sym)
	if !ok {
		return ""
	}
	return name
}

// ChildrenSummary joins the truncated rule names of children in order.
func ChildrenSummary(syms SymbolResolver, children []engine.Node) string {
	names := make([]string, len(children))
	for i, child := range children {
		names[i] = truncateRunes(symbolName(syms, child.RuleSym), childNameRune)
	}
	return strings.Join(names, childSep)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// CandidateRow builds the table row of a candidate shown at index ix.
func CandidateRow(ix int, sentence string, c engine.Candidate, syms SymbolResolver) []string {
	best := " "
	if c.Tagged {
		best = bestMarker
	}
	return []string{
		strconv.Itoa(ix),
		best,
		formatProb(c.Match.Probalog),
		formatProb(Probability(c.Match.Probalog)),
		Highlight(sentence, c.Match.ByteRange.Start, c.Match.ByteRange.End),
		formatValue(c.Match.Value),
		strconv.FormatBool(c.Node.Value.Latent()),
		symbolName(syms, c.Node.Root.RuleSym),
		ChildrenSummary(syms, c.Node.Root.Children),
	}
}
