package heatmap

import (
	"fmt"
	"runtime"
	"time"

	"glowgrid/internal/activity"
	"glowgrid/internal/perf"

	"github.com/rs/zerolog/log"
)

// Creator assembles render payloads from activity snapshots.
type Creator struct {
	prefs    Prefs
	reporter activity.Reporter
	recorder perf.Recorder
	platform string
	whole    bool
	now      func() time.Time
}

// NewCreator wires the assembler. whole marks whole-collection scope;
// only those renders feed the recorder, which may be nil.
func NewCreator(prefs Prefs, reporter activity.Reporter, recorder perf.Recorder, whole bool) *Creator {
	return &Creator{
		prefs:    prefs,
		reporter: reporter,
		recorder: recorder,
		platform: platformTag(),
		whole:    whole,
		now:      time.Now,
	}
}

// Generate renders the payload for one view. It never mutates the
// snapshot it receives; rendering the same data twice yields equal
// payloads.
func (c *Creator) Generate(view View, limhist, limfcst *int) (*RenderPayload, error) {
	// 1. Fetch the windowed snapshot
	data, err := c.reporter.GetData(limhist, limfcst)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity data: %w", err)
	}
	if data.Empty() {
		return &RenderPayload{Classes: []string{}, NoData: true}, nil
	}

	// 2. Derive the dynamic legends from the daily average
	average := data.Stats[activity.StatDailyAvg].Value
	statsLegend, heatmapLegend := ComputeLegends(average)

	// 3. Base classes steer the host stylesheet
	classes := []string{
		"gg-platform-" + c.platform,
		"gg-theme-" + string(c.prefs.Theme),
		"gg-mode-" + string(c.prefs.Mode),
		"gg-view-" + string(view),
	}

	payload := &RenderPayload{}

	// 4. Heatmap block, unless the view has it switched off
	if c.prefs.Display[view] {
		payload.Heatmap = c.heatmapBlock(data, heatmapLegend)
	} else {
		classes = append(classes, "gg-disable-heatmap")
	}

	// 5. The stats strip shows alongside the heatmap or on its own
	if c.prefs.Display[view] || c.prefs.StatsVis {
		payload.Stats = c.statsEntries(data, statsLegend)
	} else {
		classes = append(classes, "gg-disable-stats")
	}

	payload.Classes = classes

	// 6. Whole-collection renders publish the headline numbers
	if c.whole && c.recorder != nil {
		c.recordPerf(data)
	}

	log.Debug().
		Str("view", string(view)).
		Int("days", len(data.Activity)).
		Float64("average", average).
		Msg("Render payload assembled")

	return payload, nil
}

func (c *Creator) heatmapBlock(data *activity.Snapshot, legend []float64) *HeatmapBlock {
	preset := c.prefs.Mode.Preset()
	return &HeatmapBlock{
		Options: HeatmapOptions{
			Domain:     preset.Domain,
			Subdomain:  preset.Subdomain,
			Range:      preset.Range,
			DomLabForm: preset.DomLabForm,
			Start:      data.Start,
			Stop:       data.Stop,
			Today:      data.Today,
			Offset:     data.Offset,
			Legend:     legend,
			Whole:      c.whole,
		},
		Data: data.Activity,
	}
}

func (c *Creator) statsEntries(data *activity.Snapshot, statsLegend []float64) map[string]StatEntry {
	cards := cardLevels(statsLegend)

	entries := make(map[string]StatEntry, len(data.Stats))
	for name, stat := range data.Stats {
		var table ThresholdTable
		var unit string
		switch stat.Kind {
		case activity.KindStreak:
			table, unit = streakLevels, "day"
		case activity.KindPercentage:
			table, unit = percentageLevels, ""
		case activity.KindCards:
			table, unit = cards, "card"
		}
		entries[name] = StatEntry{
			Class: Classify(table, stat.Value),
			Label: FormatLabel(stat.Value, unit),
		}
	}
	return entries
}

func (c *Creator) recordPerf(data *activity.Snapshot) {
	sample := perf.Sample{
		StreakMax:  data.Stats[activity.StatStreakMax].Value,
		StreakCur:  data.Stats[activity.StatStreakCur].Value,
		DailyAvg:   data.Stats[activity.StatDailyAvg].Value,
		RecordedAt: c.now(),
	}
	c.recorder.Record(sample)
	log.Debug().
		Float64("streakMax", sample.StreakMax).
		Float64("streakCur", sample.StreakCur).
		Float64("dailyAvg", sample.DailyAvg).
		Msg("Performance sample recorded")
}

// platformTag maps the runtime OS onto the host stylesheet's platform
// classes.
func platformTag() string {
	switch runtime.GOOS {
	case "windows":
		return "win"
	case "darwin":
		return "mac"
	default:
		return "lin"
	}
}
