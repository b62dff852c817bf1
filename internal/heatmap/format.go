package heatmap

import (
	"math"
	"strconv"
)

// FormatLabel renders a stat value for display. Without a unit the bare
// number is returned, so it marshals as a JSON number. With a unit the
// value is suffixed and pluralized; only an absolute value of exactly one
// stays singular, so zero reads "0 days".
func FormatLabel(value float64, unit string) any {
	if unit == "" {
		return value
	}
	suffix := "s"
	if math.Abs(value) == 1 {
		suffix = ""
	}
	return formatNumber(value) + " " + unit + suffix
}

// formatNumber prints the shortest exact decimal form. Labels never use
// exponent notation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
