package engine

import "sort"

// Match is an engine result: a byte range into the sentence, a natural-log
// probability and, when resolved, a value.
type Match struct {
	ByteRange Range
	Probalog  float32
	Value     Value
}

// ResolvedEntity is a selected match whose value is always present.
type ResolvedEntity struct {
	ByteRange Range
	Probalog  float32
	Value     Value
}

// Candidate is one parse hypothesis, selected or not.
type Candidate struct {
	Match  Match
	Tagged bool
	Node   ParsedNode
}

// CandidateTagger selects the best candidates of a chart.
//
// Order ranks output kinds: later entries win over earlier ones and the last
// occurrence of a duplicated kind counts. Kinds missing from Order rank below
// every listed kind unless Strict is set, in which case they are never
// selected. With ResolveAll, values are resolved for every candidate instead
// of only the selected ones.
type CandidateTagger struct {
	Order      []OutputKind
	Context    ResolutionContext
	ResolveAll bool
	Strict     bool
}

func (t CandidateTagger) priority(k OutputKind) (int, bool) {
	p := -1
	for i, o := range t.Order {
		if o == k {
			p = i
		}
	}
	return p, p >= 0
}

// Tag marks the best non-overlapping candidates. Longer spans win, then the
// kind priority, then the probability, then the earlier start. Latent nodes
// and helper symbols are never selected. The result keeps the node order.
func (t CandidateTagger) Tag(nodes []ParsedNode) []Candidate {
	type eligible struct {
		idx  int
		prio int
	}

	var pool []eligible
	for i, n := range nodes {
		kind, ok := n.Value.OutputKind()
		if !ok || n.Value.Latent() {
			continue
		}
		prio, listed := t.priority(kind)
		if !listed && t.Strict {
			continue
		}
		pool = append(pool, eligible{idx: i, prio: prio})
	}

	sort.SliceStable(pool, func(a, b int) bool {
		na, nb := nodes[pool[a].idx], nodes[pool[b].idx]
		if na.Range.Len() != nb.Range.Len() {
			return na.Range.Len() > nb.Range.Len()
		}
		if pool[a].prio != pool[b].prio {
			return pool[a].prio > pool[b].prio
		}
		if na.Probalog != nb.Probalog {
			return na.Probalog > nb.Probalog
		}
		return na.Range.Start < nb.Range.Start
	})

	tagged := make([]bool, len(nodes))
	var taken []Range
	for _, e := range pool {
		rng := nodes[e.idx].Range
		free := true
		for _, r := range taken {
			if r.Overlaps(rng) {
				free = false
				break
			}
		}
		if free {
			tagged[e.idx] = true
			taken = append(taken, rng)
		}
	}

	candidates := make([]Candidate, len(nodes))
	for i, n := range nodes {
		m := Match{ByteRange: n.Range, Probalog: n.Probalog}
		if tagged[i] || t.ResolveAll {
			if v, ok := resolve(n.Value, t.Context); ok {
				m.Value = v
			}
		}
		candidates[i] = Candidate{Match: m, Tagged: tagged[i], Node: n}
	}
	return candidates
}
