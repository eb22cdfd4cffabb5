package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Grain is the resolution unit of a duration or datetime.
type Grain string

const (
	GrainSecond Grain = "second"
	GrainMinute Grain = "minute"
	GrainHour   Grain = "hour"
	GrainDay    Grain = "day"
	GrainWeek   Grain = "week"
	GrainMonth  Grain = "month"
	GrainYear   Grain = "year"
)

// RelativeTime is a datetime expressed against a reference that is not yet known.
type RelativeTime struct {
	Amount     int
	Grain      Grain
	Weekday    time.Weekday
	HasWeekday bool
}

func (r RelativeTime) String() string {
	if r.HasWeekday {
		return "next " + strings.ToLower(r.Weekday.String())
	}
	return fmt.Sprintf("%+d %s", r.Amount, r.Grain)
}

type helper string

const (
	helperNone       helper = ""
	helperCurrency   helper = "currency"
	helperDegree     helper = "degree"
	helperTempUnit   helper = "temperature-unit"
	helperGrain      helper = "grain"
	helperPercent    helper = "percent"
	helperMultiplier helper = "multiplier"
	helperIn         helper = "in"
)

// Dimension is the intermediate value a rule attaches to a chart node.
// Helper symbols (currency signs, duration grains, ...) have no output kind.
type Dimension struct {
	Kind    OutputKind
	Value   float64
	Integer bool
	Unit    string
	Grain   Grain
	Offset  RelativeTime

	latent bool
	helper helper
}

// Latent reports whether the node stands for an intermediate symbol that
// should not be selected as a final entity on its own.
func (d Dimension) Latent() bool {
	return d.latent
}

// WithLatent returns a copy of d with the latent flag set to latent.
func (d Dimension) WithLatent(latent bool) Dimension {
	d.latent = latent
	return d
}

// OutputKind returns the kind the node would resolve to, if any.
func (d Dimension) OutputKind() (OutputKind, bool) {
	return d.Kind, d.Kind != kindNone
}

// Value is a decoded entity value. String gives a lossless debug rendering.
type Value interface {
	Kind() OutputKind
	String() string
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NumberValue is an integer or decimal number.
type NumberValue struct {
	Value   float64
	Integer bool
}

func (NumberValue) Kind() OutputKind { return KindNumber }

func (v NumberValue) String() string {
	if v.Integer {
		return fmt.Sprintf("Number{Integer: %s}", formatFloat(v.Value))
	}
	return fmt.Sprintf("Number{Float: %s}", formatFloat(v.Value))
}

// OrdinalValue is a position such as "third" or "21st".
type OrdinalValue struct {
	Value int64
}

func (OrdinalValue) Kind() OutputKind { return KindOrdinal }

func (v OrdinalValue) String() string {
	return fmt.Sprintf("Ordinal{Value: %d}", v.Value)
}

// DurationValue is an amount of a time grain.
type DurationValue struct {
	Amount int64
	Grain  Grain
}

func (DurationValue) Kind() OutputKind { return KindDuration }

func (v DurationValue) String() string {
	return fmt.Sprintf("Duration{Amount: %d, Grain: %s}", v.Amount, v.Grain)
}

// DatetimeValue is a datetime grounded against a reference time.
type DatetimeValue struct {
	Moment time.Time
	Grain  Grain
}

func (DatetimeValue) Kind() OutputKind { return KindDatetime }

func (v DatetimeValue) String() string {
	return fmt.Sprintf("Datetime{Moment: %s, Grain: %s}", v.Moment.Format(time.RFC3339), v.Grain)
}

// RelativeDatetimeValue is a datetime left relative by an IdentityContext.
type RelativeDatetimeValue struct {
	Offset RelativeTime
}

func (RelativeDatetimeValue) Kind() OutputKind { return KindDatetime }

func (v RelativeDatetimeValue) String() string {
	return fmt.Sprintf("Datetime{Offset: %s}", v.Offset)
}

// TemperatureValue is a temperature; Unit is empty when none was given.
type TemperatureValue struct {
	Value float64
	Unit  string
}

func (TemperatureValue) Kind() OutputKind { return KindTemperature }

func (v TemperatureValue) String() string {
	if v.Unit == "" {
		return fmt.Sprintf("Temperature{Value: %s}", formatFloat(v.Value))
	}
	return fmt.Sprintf("Temperature{Value: %s, Unit: %s}", formatFloat(v.Value), v.Unit)
}

// AmountOfMoneyValue is a monetary amount with an ISO 4217 currency code.
type AmountOfMoneyValue struct {
	Value float64
	Unit  string
}

func (AmountOfMoneyValue) Kind() OutputKind { return KindAmountOfMoney }

func (v AmountOfMoneyValue) String() string {
	return fmt.Sprintf("AmountOfMoney{Value: %s, Unit: %s}", formatFloat(v.Value), v.Unit)
}

// PercentageValue is a percentage, 50 for "50%".
type PercentageValue struct {
	Value float64
}

func (PercentageValue) Kind() OutputKind { return KindPercentage }

func (v PercentageValue) String() string {
	return fmt.Sprintf("Percentage{Value: %s}", formatFloat(v.Value))
}

// resolve turns a dimension into a value. Helper dimensions have no value.
func resolve(d Dimension, ctx ResolutionContext) (Value, bool) {
	switch d.Kind {
	case KindNumber:
		return NumberValue{Value: d.Value, Integer: d.Integer}, true
	case KindOrdinal:
		return OrdinalValue{Value: int64(d.Value)}, true
	case KindDuration:
		return DurationValue{Amount: int64(d.Value), Grain: d.Grain}, true
	case KindDatetime:
		if ctx == nil {
			ctx = IdentityContext{}
		}
		return ctx.ResolveDatetime(d.Offset), true
	case KindTemperature:
		return TemperatureValue{Value: d.Value, Unit: d.Unit}, true
	case KindAmountOfMoney:
		return AmountOfMoneyValue{Value: d.Value, Unit: d.Unit}, true
	case KindPercentage:
		return PercentageValue{Value: d.Value}, true
	default:
		return nil, false
	}
}
