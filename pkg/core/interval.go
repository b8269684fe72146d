package core

import "math"

// Interval is a range of real values used to bound ray parameters and clamp
// color channels. Min > Max denotes an empty interval.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains no values
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real value
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates an interval from its bounds
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalUnion returns the tightest interval enclosing both a and b
func NewIntervalUnion(a, b Interval) Interval {
	return Interval{
		Min: math.Min(a.Min, b.Min),
		Max: math.Max(a.Max, b.Max),
	}
}

// Size returns Max - Min. Negative sizes mean the interval is empty.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// IsEmpty reports whether the interval has negative size
func (i Interval) IsEmpty() bool {
	return i.Max < i.Min
}

// Contains reports membership in [Min, Max)
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x < i.Max
}

// Surrounds reports whether x lies strictly inside the interval.
// Ray hits exactly at Min are rejected, which suppresses self-intersection.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp projects x into [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval padded by delta/2 on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}
