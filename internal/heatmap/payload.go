package heatmap

// HeatmapOptions configures the host calendar widget. The json field
// names are a wire contract with the widget and must not change.
type HeatmapOptions struct {
	Domain     string    `json:"domain"`
	Subdomain  string    `json:"subdomain"`
	Range      int       `json:"range"`
	DomLabForm string    `json:"domLabForm"`
	Start      int64     `json:"start"`
	Stop       int64     `json:"stop"`
	Today      int64     `json:"today"`
	Offset     int       `json:"offset"`
	Legend     []float64 `json:"legend"`
	Whole      bool      `json:"whole"`
}

// HeatmapBlock bundles the widget options with the per-day activity
// counts, keyed by day-start epoch seconds.
type HeatmapBlock struct {
	Options HeatmapOptions    `json:"options"`
	Data    map[int64]float64 `json:"data"`
}

// StatEntry is one classified statistic for the stats strip. Label is
// either a formatted string or a bare number, depending on the stat's
// unit.
type StatEntry struct {
	Class string `json:"cssClass"`
	Label any    `json:"label"`
}

// RenderPayload is the complete render product handed to the host shell.
type RenderPayload struct {
	Classes []string             `json:"classes"`
	Heatmap *HeatmapBlock        `json:"heatmap,omitempty"`
	Stats   map[string]StatEntry `json:"stats,omitempty"`
	NoData  bool                 `json:"noData,omitempty"`
}
