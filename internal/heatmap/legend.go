package heatmap

import "math"

// LegendFactors scales the effective daily average into the ascending
// legend steps. Nine steps line up with the eleven-class color scale once
// the zero bucket and the open-ended top are added.
var LegendFactors = [...]float64{0.125, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 2, 4}

// minLegendAverage is the floor applied to the daily average before
// scaling, so low-activity profiles still get distinguishable steps.
const minLegendAverage = 20

// ComputeLegends derives the dynamic legends from the daily activity
// average. The stats legend prepends a zero bucket to the scaled factors.
// The heatmap legend mirrors the scaled factors into the negative range,
// where forecast counts (stored negated) land.
func ComputeLegends(average float64) (statsLegend, heatmapLegend []float64) {
	effective := math.Max(minLegendAverage, average)

	core := make([]float64, len(LegendFactors))
	for i, factor := range LegendFactors {
		core[i] = factor * effective
	}

	statsLegend = make([]float64, 0, len(core)+1)
	statsLegend = append(statsLegend, 0)
	statsLegend = append(statsLegend, core...)

	heatmapLegend = make([]float64, 0, 2*len(core)+1)
	for i := len(core) - 1; i >= 0; i-- {
		heatmapLegend = append(heatmapLegend, -core[i])
	}
	heatmapLegend = append(heatmapLegend, 0)
	heatmapLegend = append(heatmapLegend, core...)

	return statsLegend, heatmapLegend
}
