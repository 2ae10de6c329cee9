package utils

import (
	"math"

	"github.com/golang/geo/r3"
)

// MMToMeters converts millimeters to meters.
func MMToMeters(mm float64) float64 {
	return mm / 1000
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if all elements are within epsilon of each other.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return Float64AlmostEqual(a.X, b.X, epsilon) &&
		Float64AlmostEqual(a.Y, b.Y, epsilon) &&
		Float64AlmostEqual(a.Z, b.Z, epsilon)
}

// R3VectorFromSlice builds a vector from the first three entries of s. The second return value is false if s does
// not hold exactly three entries.
func R3VectorFromSlice(s []float64) (r3.Vector, bool) {
	if len(s) != 3 {
		return r3.Vector{}, false
	}
	return r3.Vector{X: s[0], Y: s[1], Z: s[2]}, true
}
