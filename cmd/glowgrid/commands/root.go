package commands

import (
	"fmt"

	"glowgrid/internal/activity"
	"glowgrid/internal/config"
	"glowgrid/internal/heatmap"
	"glowgrid/internal/logging"
	"glowgrid/internal/perf"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose      bool
	snapshotPath string

	cfg       *config.AppConfig
	source    *activity.FileSource
	perfStore *perf.Store
	creator   *heatmap.Creator
)

var rootCmd = &cobra.Command{
	Use:   "glowgrid",
	Short: "Glowgrid is a heatmap and stats panel render engine",
	Long: `A render engine that turns pre-computed activity snapshots into calendar
heatmap payloads and classified stats panels for a host shell.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		if snapshotPath != "" {
			cfg.SnapshotPath = snapshotPath
		}

		source = activity.NewFileSource(cfg.SnapshotPath, cfg.LimHist, cfg.LimFcst)
		perfStore = perf.NewStore()
		creator = heatmap.NewCreator(cfg.Prefs, source, perfStore, cfg.Whole)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("snapshot", cfg.SnapshotPath).
			Msg("Glowgrid starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&snapshotPath, "snapshot", "s", "", "path to the activity snapshot JSON (overrides GG_SNAPSHOT)")
}
