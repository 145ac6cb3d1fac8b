package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsSurrounds(t *testing.T) {
	i := NewInterval(1, 2)

	tests := []struct {
		v         float64
		contains  bool
		surrounds bool
	}{
		{0.5, false, false},
		{1, true, false},
		{1.5, true, true},
		{2, true, false},
		{2.5, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.v); got != tt.contains {
			t.Errorf("Contains(%v): expected %v, got %v", tt.v, tt.contains, got)
		}
		if got := i.Surrounds(tt.v); got != tt.surrounds {
			t.Errorf("Surrounds(%v): expected %v, got %v", tt.v, tt.surrounds, got)
		}
	}
}

func TestInterval_Empty(t *testing.T) {
	if !EmptyInterval.IsEmpty() {
		t.Error("Expected EmptyInterval to be empty")
	}
	if EmptyInterval.Contains(0) || EmptyInterval.Surrounds(0) {
		t.Error("Expected EmptyInterval to contain nothing")
	}
	if !UniverseInterval.Surrounds(1e300) {
		t.Error("Expected UniverseInterval to surround every finite value")
	}

	// Empty is the identity for Union
	i := NewInterval(-1, 3)
	if EmptyInterval.Union(i) != i || i.Union(EmptyInterval) != i {
		t.Errorf("Expected union with empty to be %v", i)
	}
}

func TestInterval_Operations(t *testing.T) {
	i := NewInterval(1, 3)

	if i.Length() != 2 {
		t.Errorf("Expected length 2, got %f", i.Length())
	}
	if e := i.Expand(0.5); e != NewInterval(0.5, 3.5) {
		t.Errorf("Expected [0.5, 3.5], got %v", e)
	}
	if s := i.Shift(-1); s != NewInterval(0, 2) {
		t.Errorf("Expected [0, 2], got %v", s)
	}
	if u := i.Union(NewInterval(5, 6)); u != NewInterval(1, 6) {
		t.Errorf("Expected [1, 6], got %v", u)
	}
	if c := i.Clamp(10); c != 3 {
		t.Errorf("Expected clamp to 3, got %f", c)
	}
	if c := i.Clamp(-10); c != 1 {
		t.Errorf("Expected clamp to 1, got %f", c)
	}
}

func TestValidRange(t *testing.T) {
	r := ValidRange()
	if r.Min != RayEpsilon || !math.IsInf(r.Max, 1) {
		t.Errorf("Expected (%v, +Inf), got %v", RayEpsilon, r)
	}
	if r.Surrounds(0) || r.Surrounds(RayEpsilon) {
		t.Error("Expected the ray origin to be outside the valid range")
	}
}
