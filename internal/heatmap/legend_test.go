package heatmap

import (
	"slices"
	"testing"
)

func TestComputeLegends(t *testing.T) {
	tests := []struct {
		name     string
		average  float64
		expected []float64
	}{
		{"BelowFloor", 5, []float64{0, 2.5, 5, 10, 15, 20, 25, 30, 40, 80}},
		{"AtFloor", 20, []float64{0, 2.5, 5, 10, 15, 20, 25, 30, 40, 80}},
		{"Average40", 40, []float64{0, 5, 10, 20, 30, 40, 50, 60, 80, 160}},
		{"Fractional", 21.5, []float64{0, 2.6875, 5.375, 10.75, 16.125, 21.5, 26.875, 32.25, 43, 86}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statsLegend, _ := ComputeLegends(tt.average)
			if !slices.Equal(statsLegend, tt.expected) {
				t.Errorf("ComputeLegends(%v) stats legend = %v, want %v", tt.average, statsLegend, tt.expected)
			}
		})
	}
}

func TestComputeLegends_FloorCollapsesLowAverages(t *testing.T) {
	stats5, heatmap5 := ComputeLegends(5)
	stats20, heatmap20 := ComputeLegends(20)

	if !slices.Equal(stats5, stats20) {
		t.Errorf("stats legends differ below the floor: %v vs %v", stats5, stats20)
	}
	if !slices.Equal(heatmap5, heatmap20) {
		t.Errorf("heatmap legends differ below the floor: %v vs %v", heatmap5, heatmap20)
	}
}

func TestComputeLegends_HeatmapShape(t *testing.T) {
	statsLegend, heatmapLegend := ComputeLegends(40)

	if len(statsLegend) != 10 {
		t.Fatalf("stats legend length = %d, want 10", len(statsLegend))
	}
	if len(heatmapLegend) != 19 {
		t.Fatalf("heatmap legend length = %d, want 19", len(heatmapLegend))
	}

	mid := len(heatmapLegend) / 2
	if heatmapLegend[mid] != 0 {
		t.Errorf("heatmap legend middle = %v, want 0", heatmapLegend[mid])
	}
	for i := 0; i < mid; i++ {
		mirror := heatmapLegend[len(heatmapLegend)-1-i]
		if heatmapLegend[i] != -mirror {
			t.Errorf("heatmap legend not antisymmetric at %d: %v vs %v", i, heatmapLegend[i], mirror)
		}
	}
	if !slices.IsSorted(heatmapLegend) {
		t.Errorf("heatmap legend not ascending: %v", heatmapLegend)
	}
}
