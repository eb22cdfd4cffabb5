package engine

import (
	"math"
	"time"
)

// ResolutionContext grounds relative values into concrete ones.
type ResolutionContext interface {
	ResolveDatetime(rel RelativeTime) Value
}

// ResolverContext grounds relative datetimes against a reference time.
type ResolverContext struct {
	Reference time.Time
}

// DefaultResolverContext returns a context anchored at the current time.
func DefaultResolverContext() ResolverContext {
	return ResolverContext{Reference: time.Now()}
}

// NewResolverContext returns a context anchored at ref.
func NewResolverContext(ref time.Time) ResolverContext {
	return ResolverContext{Reference: ref}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ResolveDatetime implements ResolutionContext.
func (c ResolverContext) ResolveDatetime(rel RelativeTime) Value {
	ref := c.Reference
	if rel.HasWeekday {
		day := startOfDay(ref)
		delta := (int(rel.Weekday) - int(day.Weekday()) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		return DatetimeValue{Moment: day.AddDate(0, 0, delta), Grain: GrainDay}
	}

	n := rel.Amount
	if !withinRange(n, rel.Grain) {
		return RelativeDatetimeValue{Offset: rel}
	}

	var moment time.Time
	switch rel.Grain {
	case GrainSecond:
		moment = ref.Add(time.Duration(n) * time.Second).Truncate(time.Second)
	case GrainMinute:
		moment = ref.Add(time.Duration(n) * time.Minute).Truncate(time.Minute)
	case GrainHour:
		moment = ref.Add(time.Duration(n) * time.Hour).Truncate(time.Hour)
	case GrainWeek:
		moment = startOfDay(ref).AddDate(0, 0, 7*n)
	case GrainMonth:
		moment = startOfDay(ref).AddDate(0, n, 0)
	case GrainYear:
		moment = startOfDay(ref).AddDate(n, 0, 0)
	default:
		moment = startOfDay(ref).AddDate(0, 0, n)
	}
	return DatetimeValue{Moment: moment, Grain: rel.Grain}
}

// maxOffsetYears bounds how far a relative datetime may be grounded.
// Offsets beyond it stay relative.
const maxOffsetYears = 10000

// maxOffset is the largest amount per grain that can be grounded. Sub-day
// grains are added as a time.Duration and are bounded by its range instead.
var maxOffset = map[Grain]int64{
	GrainSecond: math.MaxInt64 / int64(time.Second),
	GrainMinute: math.MaxInt64 / int64(time.Minute),
	GrainHour:   math.MaxInt64 / int64(time.Hour),
	GrainDay:    maxOffsetYears * 366,
	GrainWeek:   maxOffsetYears * 53,
	GrainMonth:  maxOffsetYears * 12,
	GrainYear:   maxOffsetYears,
}

func withinRange(n int, g Grain) bool {
	limit, ok := maxOffset[g]
	if !ok {
		limit = maxOffset[GrainDay]
	}
	a := int64(n)
	return a <= limit && a >= -limit
}

// IdentityContext performs no grounding: datetimes stay relative.
type IdentityContext struct{}

// NewIdentityContext returns an IdentityContext.
func NewIdentityContext() IdentityContext {
	return IdentityContext{}
}

// ResolveDatetime implements ResolutionContext.
func (IdentityContext) ResolveDatetime(rel RelativeTime) Value {
	return RelativeDatetimeValue{Offset: rel}
}
