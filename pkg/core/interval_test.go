package core

import (
	"math"
	"testing"
)

func TestInterval_Surrounds(t *testing.T) {
	interval := NewInterval(0.001, 10)

	tests := []struct {
		name     string
		x        float64
		expected bool
	}{
		{"at min", 0.001, false},
		{"at max", 10, false},
		{"just above min", 0.0011, true},
		{"middle", 5, true},
		{"below min", 0, false},
		{"above max", 11, false},
		{"negative infinity", math.Inf(-1), false},
		{"positive infinity", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Surrounds(tt.x); got != tt.expected {
				t.Errorf("Surrounds(%v) = %v, expected %v", tt.x, got, tt.expected)
			}
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	interval := NewInterval(-1, 1)

	if !interval.Contains(-1) {
		t.Error("Expected Contains to include min")
	}
	if interval.Contains(1) {
		t.Error("Expected Contains to exclude max")
	}
	if !interval.Contains(0) {
		t.Error("Expected Contains to include interior point")
	}
}

func TestInterval_SurroundsUnboundedAbove(t *testing.T) {
	rayT := NewInterval(0.001, math.Inf(1))

	for _, x := range []float64{0.0011, 1, 1e300, math.MaxFloat64} {
		if !rayT.Surrounds(x) {
			t.Errorf("Expected %v inside (0.001, +Inf)", x)
		}
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(0, 0.999)

	values := []float64{-5, -0.0001, 0, 0.5, 0.999, 1, 42, math.Inf(1), math.Inf(-1)}
	for _, x := range values {
		once := interval.Clamp(x)
		twice := interval.Clamp(once)

		if once != twice {
			t.Errorf("Clamp not idempotent for %v: %v then %v", x, once, twice)
		}
		if once < interval.Min || once > interval.Max {
			t.Errorf("Clamp(%v) = %v lies outside [%v, %v]", x, once, interval.Min, interval.Max)
		}
	}

	// Clamp is closed on both ends, unlike Surrounds
	if got := interval.Clamp(0.999); got != 0.999 {
		t.Errorf("Expected max to clamp to itself, got %v", got)
	}
}

func TestInterval_Size(t *testing.T) {
	if got := NewInterval(2, 5).Size(); got != 3 {
		t.Errorf("Expected size 3, got %v", got)
	}

	if size := EmptyInterval.Size(); !(size < 0) {
		t.Errorf("Expected negative size for empty interval, got %v", size)
	}
	if !EmptyInterval.IsEmpty() {
		t.Error("Expected EmptyInterval to be empty")
	}

	if size := UniverseInterval.Size(); !math.IsInf(size, 1) {
		t.Errorf("Expected infinite size for universe interval, got %v", size)
	}
	if UniverseInterval.IsEmpty() {
		t.Error("Expected UniverseInterval to be non-empty")
	}
}

func TestInterval_WellKnownConstants(t *testing.T) {
	if !math.IsInf(EmptyInterval.Min, 1) || !math.IsInf(EmptyInterval.Max, -1) {
		t.Errorf("Unexpected EmptyInterval %+v", EmptyInterval)
	}
	if !math.IsInf(UniverseInterval.Min, -1) || !math.IsInf(UniverseInterval.Max, 1) {
		t.Errorf("Unexpected UniverseInterval %+v", UniverseInterval)
	}

	for _, x := range []float64{-1e300, 0, 1e300} {
		if EmptyInterval.Surrounds(x) {
			t.Errorf("EmptyInterval should not surround %v", x)
		}
		if !UniverseInterval.Surrounds(x) {
			t.Errorf("UniverseInterval should surround %v", x)
		}
	}
}

func TestInterval_Expand(t *testing.T) {
	expanded := NewInterval(1, 3).Expand(1)

	if expanded.Min != 0.5 || expanded.Max != 3.5 {
		t.Errorf("Expected [0.5, 3.5], got [%v, %v]", expanded.Min, expanded.Max)
	}
	if got := expanded.Size(); got != 3 {
		t.Errorf("Expected expanded size 3, got %v", got)
	}
}

func TestIntervalUnion(t *testing.T) {
	a := NewInterval(0, 2)
	b := NewInterval(1, 5)
	c := NewInterval(-3, -1)

	ab := NewIntervalUnion(a, b)
	if ab.Min != 0 || ab.Max != 5 {
		t.Errorf("Expected [0, 5], got [%v, %v]", ab.Min, ab.Max)
	}

	if NewIntervalUnion(a, b) != NewIntervalUnion(b, a) {
		t.Error("Union should be commutative")
	}

	left := NewIntervalUnion(NewIntervalUnion(a, b), c)
	right := NewIntervalUnion(a, NewIntervalUnion(b, c))
	if left != right {
		t.Errorf("Union should be associative: %+v vs %+v", left, right)
	}

	for _, in := range []Interval{a, b} {
		if ab.Size() < in.Size() {
			t.Errorf("Union size %v smaller than input size %v", ab.Size(), in.Size())
		}
	}

	// Disjoint inputs produce the enclosing range, gap included
	ac := NewIntervalUnion(a, c)
	if ac.Min != -3 || ac.Max != 2 {
		t.Errorf("Expected [-3, 2], got [%v, %v]", ac.Min, ac.Max)
	}

	// Empty is the identity for union
	if got := NewIntervalUnion(EmptyInterval, b); got != b {
		t.Errorf("Expected union with empty to return %+v, got %+v", b, got)
	}
}
