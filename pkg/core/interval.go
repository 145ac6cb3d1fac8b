package core

import "math"

// Interval is a closed range of real numbers [Min, Max]
type Interval struct {
	Min, Max float64
}

// EmptyInterval contains nothing: Min > Max by construction
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains every real number
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// UnitInterval is [0, 1]
var UnitInterval = Interval{Min: 0, Max: 1}

// NewInterval creates an interval from two bounds
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Contains reports whether Min <= v <= Max
func (i Interval) Contains(v float64) bool {
	return i.Min <= v && v <= i.Max
}

// Surrounds reports whether Min < v < Max
func (i Interval) Surrounds(v float64) bool {
	return i.Min < v && v < i.Max
}

// Length returns Max - Min
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// Expand grows the interval by halfDelta at each end
func (i Interval) Expand(halfDelta float64) Interval {
	return Interval{Min: i.Min - halfDelta, Max: i.Max + halfDelta}
}

// Union returns the smallest interval containing both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}

// Shift moves both ends of the interval by offset
func (i Interval) Shift(offset float64) Interval {
	return Interval{Min: i.Min + offset, Max: i.Max + offset}
}

// Clamp limits v to the interval
func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}
