package heatmap

import "fmt"

// View identifies the host surface a render targets.
type View string

const (
	ViewDeckBrowser View = "deckbrowser"
	ViewOverview    View = "overview"
	ViewStats       View = "stats"
)

// Views lists every valid view in display order.
var Views = []View{ViewDeckBrowser, ViewOverview, ViewStats}

// ParseView validates a view name.
func ParseView(name string) (View, error) {
	for _, v := range Views {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", name)
}

// Theme names a color theme of the host stylesheet.
type Theme string

const (
	ThemeLime    Theme = "lime"
	ThemeOlive   Theme = "olive"
	ThemeIce     Theme = "ice"
	ThemeMagenta Theme = "magenta"
	ThemeFlame   Theme = "flame"
)

// Themes lists every valid theme.
var Themes = []Theme{ThemeLime, ThemeOlive, ThemeIce, ThemeMagenta, ThemeFlame}

// ParseTheme validates a theme name.
func ParseTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", name)
}

// Mode selects the calendar layout preset.
type Mode string

const (
	ModeYear   Mode = "year"
	ModeMonths Mode = "months"
)

// Modes lists every valid mode.
var Modes = []Mode{ModeYear, ModeMonths}

// ParseMode validates a mode name.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", name)
}

// ModePreset carries the widget layout options a mode implies.
type ModePreset struct {
	Domain     string
	Subdomain  string
	Range      int
	DomLabForm string
}

var modePresets = map[Mode]ModePreset{
	ModeYear:   {Domain: "year", Subdomain: "day", Range: 1, DomLabForm: "%Y"},
	ModeMonths: {Domain: "month", Subdomain: "day", Range: 12, DomLabForm: "%b '%y"},
}

// Preset returns the widget layout options for the mode.
func (m Mode) Preset() ModePreset {
	return modePresets[m]
}

// Prefs are the render preferences the assembler honors. Display toggles
// the heatmap per view; StatsVis keeps the stats strip visible on views
// with the heatmap disabled.
type Prefs struct {
	Theme    Theme
	Mode     Mode
	Display  map[View]bool
	StatsVis bool
}
