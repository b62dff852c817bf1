package heatmap

// cssColors is the color class scale shared with the host stylesheet.
// Indices 1-10 of the stylesheet scale are reserved for the negative
// (forecast) ramp, so the positive scale jumps from col0 straight to
// col11.
var cssColors = [...]string{
	"gg-col0",
	"gg-col11",
	"gg-col12",
	"gg-col13",
	"gg-col14",
	"gg-col15",
	"gg-col16",
	"gg-col17",
	"gg-col18",
	"gg-col19",
	"gg-col20",
}

// Level pairs an inclusive upper threshold with the css class applied to
// values at or below it.
type Level struct {
	Threshold float64
	Class     string
}

// ThresholdTable is an ordered classification table, ascending by
// threshold. The last level doubles as the open-ended top bucket.
type ThresholdTable []Level

var (
	streakLevels     ThresholdTable
	percentageLevels ThresholdTable
)

func init() {
	buildStaticTables()
}

// buildStaticTables assembles the fixed streak and percentage tables from
// the color scale. Streaks skip steps of the scale so the jump from a
// two-week to a one-year streak reads as a clear color progression. Both
// tables stay immutable after startup.
func buildStaticTables() {
	streakLevels = zipLevels(
		[]float64{0, 14, 30, 90, 180, 365},
		pickColors(0, 2, 4, 6, 9, 10),
	)
	percentageLevels = zipLevels(
		[]float64{0, 25, 50, 60, 70, 80, 85, 90, 95, 99},
		cssColors[:10],
	)
}

func pickColors(indices ...int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = cssColors[idx]
	}
	return out
}

func zipLevels(thresholds []float64, classes []string) ThresholdTable {
	if len(thresholds) != len(classes) {
		panic("heatmap: threshold and class counts differ")
	}
	table := make(ThresholdTable, len(thresholds))
	for i := range thresholds {
		table[i] = Level{Threshold: thresholds[i], Class: classes[i]}
	}
	return table
}

// cardLevels builds the per-render cards table by zipping the dynamic
// stats legend with the color scale, truncated to the shorter of the two.
func cardLevels(statsLegend []float64) ThresholdTable {
	n := min(len(statsLegend), len(cssColors))
	return zipLevels(statsLegend[:n], cssColors[:n])
}

// Classify returns the class of the first level whose threshold is at or
// above value. Values beyond every threshold land in the last level, and
// an empty table yields the empty class.
func Classify(table ThresholdTable, value float64) string {
	if len(table) == 0 {
		return ""
	}
	for _, level := range table {
		if value <= level.Threshold {
			return level.Class
		}
	}
	return table[len(table)-1].Class
}
