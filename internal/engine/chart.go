package engine

import "sort"

// maxChartNodes bounds the work spent on a single sentence.
const maxChartNodes = 4096

// Node is one step of a derivation: the rule applied and the nodes it consumed.
type Node struct {
	RuleSym  RuleSym
	Range    Range
	Children []Node
}

// ParsedNode is a derivation tree together with the dimension it produced.
type ParsedNode struct {
	Range    Range
	Probalog float32
	Value    Dimension
	Root     Node
}

type chartNode struct {
	rule     *rule
	rng      Range
	children []*chartNode
	dim      Dimension
	probalog float32
}

func (n *chartNode) tree() Node {
	children := make([]Node, len(n.children))
	for i, c := range n.children {
		children[i] = c.tree()
	}
	return Node{RuleSym: n.rule.sym, Range: n.rng, Children: children}
}

type chartKey struct {
	sym RuleSym
	rng Range
}

type chart struct {
	sentence string
	lex      *lexicon
	nodes    []*chartNode
	seen     map[chartKey]bool
}

func (c *chart) add(r *rule, rng Range, children []*chartNode, dim Dimension) {
	key := chartKey{sym: r.sym, rng: rng}
	if c.seen[key] {
		return
	}
	c.seen[key] = true

	probalog := r.logprob
	for _, child := range children {
		probalog += child.probalog
	}
	c.nodes = append(c.nodes, &chartNode{
		rule:     r,
		rng:      rng,
		children: children,
		dim:      dim,
		probalog: probalog,
	})
}

func (c *chart) tryBinary(r *rule, a, b *chartNode) {
	if a.rng.End > b.rng.Start {
		return
	}
	gap := c.sentence[a.rng.End:b.rng.Start]
	if dim, ok := r.binary(c.lex, a, b, gap); ok {
		c.add(r, Range{Start: a.rng.Start, End: b.rng.End}, []*chartNode{a, b}, dim)
	}
}

// parseChart runs every rule to a fixpoint over the sentence and returns the
// resulting nodes ordered by start offset, then end offset, then discovery.
func parseChart(sentence string, lex *lexicon, rules []*rule) ([]ParsedNode, error) {
	tokens := tokenize(sentence)
	if len(tokens) == 0 {
		return nil, ErrEmptySentence
	}

	c := &chart{sentence: sentence, lex: lex, seen: make(map[chartKey]bool)}
	for _, tok := range tokens {
		for _, r := range rules {
			if r.terminal == nil {
				continue
			}
			if dim, ok := r.terminal(lex, tok.text); ok {
				c.add(r, tok.rng, nil, dim)
			}
		}
	}

	// Every pair (i, j) is tried once, when the later of the two is dequeued.
	for i := 0; i < len(c.nodes); i++ {
		if len(c.nodes) > maxChartNodes {
			return nil, ErrChartOverflow
		}
		n := c.nodes[i]
		for _, r := range rules {
			switch {
			case r.unary != nil:
				if dim, ok := r.unary(lex, n); ok {
					c.add(r, n.rng, []*chartNode{n}, dim)
				}
			case r.binary != nil:
				for j := 0; j < i; j++ {
					m := c.nodes[j]
					c.tryBinary(r, m, n)
					c.tryBinary(r, n, m)
				}
			}
		}
	}

	sorted := make([]*chartNode, len(c.nodes))
	copy(sorted, c.nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].rng.Start != sorted[j].rng.Start {
			return sorted[i].rng.Start < sorted[j].rng.Start
		}
		return sorted[i].rng.End < sorted[j].rng.End
	})

	parsed := make([]ParsedNode, len(sorted))
	for i, n := range sorted {
		parsed[i] = ParsedNode{
			Range:    n.rng,
			Probalog: n.probalog,
			Value:    n.dim,
			Root:     n.tree(),
		}
	}
	return parsed, nil
}
