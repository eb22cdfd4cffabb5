package inspect

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"ontoscope/internal/engine"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name       string
		sentence   string
		start, end int
		want       string
	}{
		{"middle", "i want 3 coffees", 7, 8, "_______3________"},
		{"whole", "tomorrow", 0, 8, "tomorrow"},
		{"empty range", "abc", 1, 1, "___"},
		{"prefix", "21 euros", 0, 2, "21______"},
		{"multibyte kept", "vingt-deux degrés", 11, 18, "___________degrés"},
		{"multibyte replaced bytewise", "été 3", 6, 7, "______3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.sentence, tt.start, tt.end)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHighlightKeepsLengthAndSpan(t *testing.T) {
	sentences := []string{"", "a", "in 3 days", "vingt et un euros", "température 25°"}
	for _, s := range sentences {
		for a := 0; a <= len(s); a++ {
			for b := a; b <= len(s); b++ {
				if !isBoundary(s, a) || !isBoundary(s, b) {
					continue
				}
				got := Highlight(s, a, b)
				assert.Len(t, got, len(s))
				assert.Equal(t, s[a:b], got[a:b])
				assert.Equal(t, strings.Repeat("_", a), got[:a])
				assert.Equal(t, strings.Repeat("_", len(s)-b), got[b:])
			}
		}
	}
}

func TestHighlightPanicsOnInvalidRange(t *testing.T) {
	assert.Panics(t, func() { Highlight("abc", 2, 1) })
	assert.Panics(t, func() { Highlight("abc", -1, 1) })
	assert.Panics(t, func() { Highlight("abc", 0, 4) })
	assert.Panics(t, func() { Highlight("été", 1, 2) }, "inside a multi-byte rune")
}

func TestProbability(t *testing.T) {
	assert.Equal(t, float32(1), Probability(0))

	prev := float32(0)
	for _, lp := range []float32{-100, -10, -2.3, -1, -0.5, -0.05, 0} {
		p := Probability(lp)
		assert.Greater(t, p, float32(0), "p(%v)", lp)
		assert.LessOrEqual(t, p, float32(1), "p(%v)", lp)
		assert.GreaterOrEqual(t, p, prev, "monotonic at %v", lp)
		prev = p
	}

	assert.InDelta(t, math.Exp(-0.05), float64(Probability(-0.05)), 1e-6)
}

func TestResolvedRow(t *testing.T) {
	e := engine.ResolvedEntity{
		ByteRange: engine.Range{Start: 3, End: 9},
		Probalog:  -0.05,
		Value:     engine.NumberValue{Value: 21, Integer: true},
	}

	got := ResolvedRow(4, "in twenty!", e)
	want := []string{"4", "-0.05", formatProb(Probability(-0.05)), "___twenty_", "Number{Integer: 21}"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolvedRow mismatch (-want +got):\n%s", diff)
	}
}

func TestChildrenSummary(t *testing.T) {
	syms := symbolMap{
		1: "integer (numeric)",
		2: "amount of money (currency first)",
		3: "currency",
	}

	tests := []struct {
		name     string
		children []engine.Node
		want     string
	}{
		{"none", nil, ""},
		{"short", []engine.Node{{RuleSym: 1}}, "integer (numeric)"},
		{"truncated and ordered",
			[]engine.Node{{RuleSym: 3}, {RuleSym: 2}, {RuleSym: 1}},
			"currency + amount of money (cur + integer (numeric)"},
		{"missing symbol", []engine.Node{{RuleSym: 1}, {RuleSym: 99}}, "integer (numeric) + "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChildrenSummary(syms, tt.children))
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 20))
	assert.Equal(t, "degré", truncateRunes("degrés", 5))
	assert.Equal(t, strings.Repeat("é", 20), truncateRunes(strings.Repeat("é", 25), 20))
}

func TestCandidateRow(t *testing.T) {
	syms := symbolMap{
		10: "temperature (latent)",
		11: "integer (numeric)",
	}
	c := engine.Candidate{
		Match: engine.Match{
			ByteRange: engine.Range{Start: 0, End: 2},
			Probalog:  -2.35,
			Value:     engine.TemperatureValue{Value: 25},
		},
		Tagged: false,
		Node: engine.ParsedNode{
			Range:    engine.Range{Start: 0, End: 2},
			Probalog: -2.35,
			Value:    engine.Dimension{Kind: engine.KindTemperature, Value: 25}.WithLatent(true),
			Root: engine.Node{
				RuleSym:  10,
				Range:    engine.Range{Start: 0, End: 2},
				Children: []engine.Node{{RuleSym: 11, Range: engine.Range{Start: 0, End: 2}}},
			},
		},
	}

	got := CandidateRow(7, "25 c", c, syms)
	want := []string{"7", " ", "-2.35", formatProb(Probability(-2.35)), "25__", "Temperature{Value: 25}", "true", "temperature (latent)", "integer (numeric)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CandidateRow mismatch (-want +got):\n%s", diff)
	}

	c.Tagged = true
	c.Match.Value = nil
	c.Node.Root.RuleSym = 42
	got = CandidateRow(0, "25 c", c, syms)
	assert.Equal(t, "*", got[1])
	assert.Equal(t, "", got[5], "absent value renders empty")
	assert.Equal(t, "", got[7], "unknown rule renders empty")
}
