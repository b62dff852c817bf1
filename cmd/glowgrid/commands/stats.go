package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"glowgrid/internal/activity"
	"glowgrid/internal/heatmap"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the snapshot's classified stats as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := source.GetData(nil, nil)
		if err != nil {
			return err
		}
		if data.Empty() {
			fmt.Println(color.YellowString("No activity recorded yet"))
			return nil
		}

		payload, err := creator.Generate(heatmap.ViewStats, nil, nil)
		if err != nil {
			return err
		}
		if payload.Stats == nil {
			fmt.Println(color.YellowString("Stats are disabled for the stats view"))
			return nil
		}

		names := make([]string, 0, len(payload.Stats))
		for name := range payload.Stats {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			entry := payload.Stats[name]
			rows = append(rows, []string{
				name,
				string(data.Stats[name].Kind),
				fmt.Sprintf("%v", entry.Label),
				colorizeLevel(entry.Class),
			})
		}

		table := tablewriter.NewTable(os.Stdout,
			tablewriter.WithConfig(tablewriter.Config{
				Row: tw.CellConfig{
					Formatting: tw.CellFormatting{
						AutoWrap: tw.WrapNone,
					},
					Alignment: tw.CellAlignment{
						Global: tw.AlignLeft,
					},
				},
				Header: tw.CellConfig{
					Formatting: tw.CellFormatting{
						AutoFormat: tw.On,
					},
					Alignment: tw.CellAlignment{
						Global: tw.AlignLeft,
					},
				},
			}),
			tablewriter.WithRendition(tw.Rendition{
				Borders: tw.BorderNone,
				Settings: tw.Settings{
					Separators: tw.Separators{
						ShowHeader: tw.Off,
					},
				},
			}),
		)
		table.Header([]string{"Stat", "Kind", "Value", "Level"})
		table.Bulk(rows)
		table.Render()

		statsLegend, _ := heatmap.ComputeLegends(data.Stats[activity.StatDailyAvg].Value)
		fmt.Printf("\nLegend: %s\n", formatLegend(statsLegend))
		return nil
	},
}

// colorizeLevel approximates the stylesheet activity ramp in the
// terminal: faint for no activity, brighter green toward the top.
func colorizeLevel(class string) string {
	switch class {
	case "gg-col0":
		return color.New(color.Faint).Sprint(class)
	case "gg-col11", "gg-col12", "gg-col13":
		return color.CyanString(class)
	case "gg-col14", "gg-col15", "gg-col16", "gg-col17":
		return color.GreenString(class)
	default:
		return color.New(color.FgGreen, color.Bold).Sprint(class)
	}
}

func formatLegend(legend []float64) string {
	parts := make([]string, len(legend))
	for i, v := range legend {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
