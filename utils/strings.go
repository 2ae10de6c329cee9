package utils

import (
	"math"
	"strconv"
	"strings"
)

// SpaceDelimitedStringToFloatSlice splits up space-delimited fields in a string and converts them to floats.
// Fields that do not parse become NaN.
func SpaceDelimitedStringToFloatSlice(s string) []float64 {
	var converted []float64
	for _, field := range strings.Fields(s) {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			value = math.NaN()
		}
		converted = append(converted, value)
	}
	return converted
}

// FloatSliceToSpaceDelimitedString is the inverse of SpaceDelimitedStringToFloatSlice. It uses the shortest
// representation that round-trips each value.
func FloatSliceToSpaceDelimitedString(values ...float64) string {
	fields := make([]string, 0, len(values))
	for _, v := range values {
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(fields, " ")
}
