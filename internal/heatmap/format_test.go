package heatmap

import "testing"

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     string
		expected any
	}{
		{"ZeroPluralizes", 0, "day", "0 days"},
		{"OneStaysSingular", 1, "day", "1 day"},
		{"MinusOneStaysSingular", -1, "day", "-1 day"},
		{"ManyPluralizes", 14, "day", "14 days"},
		{"NegativePluralizes", -3, "card", "-3 cards"},
		{"FractionPluralizes", 0.5, "card", "0.5 cards"},
		{"IntegralFloatPrintsTrimmed", 40, "card", "40 cards"},
		{"FractionKeepsDecimals", 12.25, "card", "12.25 cards"},
		{"NoUnitBareNumber", 93.5, "", 93.5},
		{"NoUnitZero", 0, "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLabel(tt.value, tt.unit); got != tt.expected {
				t.Errorf("FormatLabel(%v, %q) = %v (%T), want %v (%T)",
					tt.value, tt.unit, got, got, tt.expected, tt.expected)
			}
		})
	}
}
