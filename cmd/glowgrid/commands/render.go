package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"glowgrid/internal/heatmap"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	renderViews []string
	renderOut   string
	limHist     int
	limFcst     int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render payloads for one or more views",
	Long: `Renders the payload for each requested view. A single view prints to
stdout by default; with --out, every view is written to <out>/<view>.json
and views render concurrently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		views := make([]heatmap.View, 0, len(renderViews))
		for _, name := range renderViews {
			view, err := heatmap.ParseView(name)
			if err != nil {
				return err
			}
			views = append(views, view)
		}

		// Flags distinguish "unset" from an explicit 0 (unlimited).
		var limhist, limfcst *int
		if cmd.Flags().Changed("limhist") {
			limhist = &limHist
		}
		if cmd.Flags().Changed("limfcst") {
			limfcst = &limFcst
		}

		if renderOut == "-" {
			if len(views) != 1 {
				return fmt.Errorf("stdout output requires exactly one view, got %d", len(views))
			}
			payload, err := creator.Generate(views[0], limhist, limfcst)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if err := os.MkdirAll(renderOut, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		var g errgroup.Group
		for _, view := range views {
			g.Go(func() error {
				payload, err := creator.Generate(view, limhist, limfcst)
				if err != nil {
					return fmt.Errorf("render %s: %w", view, err)
				}
				out, err := json.MarshalIndent(payload, "", "  ")
				if err != nil {
					return err
				}
				path := filepath.Join(renderOut, fmt.Sprintf("%s.json", view))
				if err := os.WriteFile(path, out, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				log.Info().Str("view", string(view)).Str("path", path).Msg("View rendered")
				return nil
			})
		}
		return g.Wait()
	},
}

func init() {
	renderCmd.Flags().StringSliceVar(&renderViews, "view", []string{string(heatmap.ViewDeckBrowser)}, "view to render (repeatable)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "output directory, or - for stdout")
	renderCmd.Flags().IntVar(&limHist, "limhist", 0, "history limit in days, 0 for unlimited")
	renderCmd.Flags().IntVar(&limFcst, "limfcst", 0, "forecast limit in days, 0 for unlimited")
	rootCmd.AddCommand(renderCmd)
}
