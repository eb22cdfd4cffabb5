package engine

import (
	"strconv"
	"strings"
	"time"
)

// rule is one grammar production. Exactly one of terminal, unary or binary is set.
type rule struct {
	name    string
	logprob float32
	sym     RuleSym

	terminal func(lex *lexicon, text string) (Dimension, bool)
	unary    func(lex *lexicon, a *chartNode) (Dimension, bool)
	binary   func(lex *lexicon, a, b *chartNode, gap string) (Dimension, bool)
}

const (
	ruleIntegerNumeric    = "integer (numeric)"
	ruleDecimal           = "decimal number"
	ruleIntegerWord       = "integer (0..19)"
	ruleIntegerTens       = "integer (tens)"
	ruleIntegerCompound   = "integer (tens + units)"
	ruleIntegerMultiplier = "integer (multiplied)"
	ruleOrdinalDigits     = "ordinal (digits)"
	ruleOrdinalWords      = "ordinal (words)"
	ruleCurrency          = "currency"
	ruleDegree            = "degree"
	ruleTemperatureUnit   = "temperature unit"
	ruleGrain             = "unit of duration"
	rulePercentSign       = "percent sign"
	ruleMultiplier        = "multiplier"
	ruleIn                = "in (preposition)"
	ruleRelativeDay       = "relative day"
	ruleNow               = "now"
	ruleWeekday           = "day of week"
	rulePercentage        = "percentage"
	ruleMoneyPrefix       = "amount of money (currency first)"
	ruleMoneySuffix       = "amount of money (currency last)"
	ruleTemperatureLatent = "temperature (latent)"
	ruleTemperatureDegree = "<number> degrees"
	ruleTemperatureWithUn = "<temperature> <unit>"
	ruleDuration          = "<integer> <unit-of-duration>"
	ruleInDuration        = "in <duration>"
)

func numberDim(v float64, integer bool) Dimension {
	return Dimension{Kind: KindNumber, Value: v, Integer: integer}
}

func isNumber(n *chartNode) bool {
	return n.dim.Kind == KindNumber
}

func isInteger(n *chartNode) bool {
	return n.dim.Kind == KindNumber && n.dim.Integer
}

func isHelper(n *chartNode, h helper) bool {
	return n.dim.Kind == kindNone && n.dim.helper == h
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func leadingDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// defaultRules returns a fresh copy of the grammar shared by all languages;
// the lexicon supplies the words.
func defaultRules() []*rule {
	return []*rule{
		{
			name:    ruleIntegerNumeric,
			logprob: -0.05,
			terminal: func(_ *lexicon, text string) (Dimension, bool) {
				if !allDigits(text) || len(text) > 15 {
					return Dimension{}, false
				}
				v, err := strconv.ParseInt(text, 10, 64)
				if err != nil {
					return Dimension{}, false
				}
				return numberDim(float64(v), true), true
			},
		},
		{
			name:    ruleDecimal,
			logprob: -0.1,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				whole, frac, ok := strings.Cut(text, lex.DecimalSeparator)
				if !ok || !allDigits(whole) || !allDigits(frac) {
					return Dimension{}, false
				}
				v, err := strconv.ParseFloat(whole+"."+frac, 64)
				if err != nil {
					return Dimension{}, false
				}
				return numberDim(v, false), true
			},
		},
		{
			name:    ruleIntegerWord,
			logprob: -0.1,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				v, ok := lex.Numbers[text]
				return numberDim(float64(v), true), ok
			},
		},
		{
			name:    ruleIntegerTens,
			logprob: -0.15,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				v, ok := lex.Tens[text]
				return numberDim(float64(v), true), ok
			},
		},
		{
			name:    ruleOrdinalDigits,
			logprob: -0.05,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				digits, suffix := leadingDigits(text)
				if digits == "" || len(digits) > 15 || !contains(lex.OrdinalSuffixes, suffix) {
					return Dimension{}, false
				}
				v, err := strconv.ParseInt(digits, 10, 64)
				if err != nil {
					return Dimension{}, false
				}
				return Dimension{Kind: KindOrdinal, Value: float64(v), Integer: true}, true
			},
		},
		{
			name:    ruleOrdinalWords,
			logprob: -0.1,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				v, ok := lex.Ordinals[text]
				return Dimension{Kind: KindOrdinal, Value: float64(v), Integer: true}, ok
			},
		},
		{
			name:    ruleCurrency,
			logprob: -0.01,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				code, ok := lex.Currencies[text]
				return Dimension{helper: helperCurrency, Unit: code}, ok
			},
		},
		{
			name:    ruleDegree,
			logprob: -0.01,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				return Dimension{helper: helperDegree}, contains(lex.Degrees, text)
			},
		},
		{
			name:    ruleTemperatureUnit,
			logprob: -0.01,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				unit, ok := lex.TemperatureUnits[text]
				return Dimension{helper: helperTempUnit, Unit: unit}, ok
			},
		},
		{
			name:    ruleGrain,
			logprob: -0.01,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				g, ok := lex.Grains[text]
				return Dimension{helper: helperGrain, Grain: g}, ok
			},
		},
		{
			name:    rulePercentSign,
			logprob: -0.01,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				return Dimension{helper: helperPercent}, contains(lex.Percent, text)
			},
		},
		{
			name:    ruleMultiplier,
			logprob: -0.01,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				v, ok := lex.Multipliers[text]
				return Dimension{helper: helperMultiplier, Value: float64(v)}, ok
			},
		},
		{
			name:    ruleIn,
			logprob: -0.01,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				return Dimension{helper: helperIn}, contains(lex.In, text)
			},
		},
		{
			name:    ruleRelativeDay,
			logprob: -0.2,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				n, ok := lex.RelativeDays[text]
				return Dimension{Kind: KindDatetime, Offset: RelativeTime{Amount: n, Grain: GrainDay}}, ok
			},
		},
		{
			name:    ruleNow,
			logprob: -0.2,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				return Dimension{Kind: KindDatetime, Offset: RelativeTime{Grain: GrainSecond}}, contains(lex.Now, text)
			},
		},
		{
			name:    ruleWeekday,
			logprob: -0.3,
			terminal: func(lex *lexicon, text string) (Dimension, bool) {
				d, ok := lex.Weekdays[text]
				return Dimension{
					Kind:   KindDatetime,
					Offset: RelativeTime{Grain: GrainDay, Weekday: time.Weekday(d), HasWeekday: true},
				}, ok
			},
		},
		{
			name:    ruleIntegerCompound,
			logprob: -0.05,
			binary: func(lex *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if a.rule.name != ruleIntegerTens || b.rule.name != ruleIntegerWord {
					return Dimension{}, false
				}
				if b.dim.Value < 1 || b.dim.Value > 9 {
					return Dimension{}, false
				}
				if !joinable(gap, append([]string{"-"}, lex.Connectors...)...) {
					return Dimension{}, false
				}
				return numberDim(a.dim.Value+b.dim.Value, true), true
			},
		},
		{
			name:    ruleIntegerMultiplier,
			logprob: -0.1,
			binary: func(_ *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if !isInteger(a) || !isHelper(b, helperMultiplier) || !joinable(gap) {
					return Dimension{}, false
				}
				if a.dim.Value <= 0 || a.dim.Value >= b.dim.Value {
					return Dimension{}, false
				}
				return numberDim(a.dim.Value*b.dim.Value, true), true
			},
		},
		{
			name:    rulePercentage,
			logprob: -0.05,
			binary: func(_ *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if !isNumber(a) || !isHelper(b, helperPercent) || !joinable(gap) {
					return Dimension{}, false
				}
				return Dimension{Kind: KindPercentage, Value: a.dim.Value}, true
			},
		},
		{
			name:    ruleMoneyPrefix,
			logprob: -0.1,
			binary: func(_ *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if !isHelper(a, helperCurrency) || !isNumber(b) || !joinable(gap) {
					return Dimension{}, false
				}
				return Dimension{Kind: KindAmountOfMoney, Value: b.dim.Value, Unit: a.dim.Unit}, true
			},
		},
		{
			name:    ruleMoneySuffix,
			logprob: -0.1,
			binary: func(_ *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if !isNumber(a) || !isHelper(b, helperCurrency) || !joinable(gap) {
					return Dimension{}, false
				}
				return Dimension{Kind: KindAmountOfMoney, Value: a.dim.Value, Unit: b.dim.Unit}, true
			},
		},
		{
			name:    ruleTemperatureLatent,
			logprob: -2.3,
			unary: func(_ *lexicon, a *chartNode) (Dimension, bool) {
				if !isNumber(a) {
					return Dimension{}, false
				}
				return Dimension{Kind: KindTemperature, Value: a.dim.Value, latent: true}, true
			},
		},
		{
			name:    ruleTemperatureDegree,
			logprob: -0.2,
			binary: func(_ *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if !isNumber(a) || !isHelper(b, helperDegree) || !joinable(gap) {
					return Dimension{}, false
				}
				return Dimension{Kind: KindTemperature, Value: a.dim.Value, Unit: "degree"}, true
			},
		},
		{
			name:    ruleTemperatureWithUn,
			logprob: -0.1,
			binary: func(_ *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if a.dim.Kind != KindTemperature || (a.dim.Unit != "" && a.dim.Unit != "degree") {
					return Dimension{}, false
				}
				if !isHelper(b, helperTempUnit) || !joinable(gap) {
					return Dimension{}, false
				}
				return Dimension{Kind: KindTemperature, Value: a.dim.Value, Unit: b.dim.Unit}, true
			},
		},
		{
			name:    ruleDuration,
			logprob: -0.2,
			binary: func(_ *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if !isInteger(a) || !isHelper(b, helperGrain) || !joinable(gap) {
					return Dimension{}, false
				}
				return Dimension{Kind: KindDuration, Value: a.dim.Value, Integer: true, Grain: b.dim.Grain}, true
			},
		},
		{
			name:    ruleInDuration,
			logprob: -0.3,
			binary: func(_ *lexicon, a, b *chartNode, gap string) (Dimension, bool) {
				if !isHelper(a, helperIn) || b.dim.Kind != KindDuration || !joinable(gap) {
					return Dimension{}, false
				}
				return Dimension{
					Kind:   KindDatetime,
					Offset: RelativeTime{Amount: int(b.dim.Value), Grain: b.dim.Grain},
				}, true
			},
		},
	}
}
