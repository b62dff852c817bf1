package commands

import (
	"glowgrid/internal/hostbridge"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stdio JSON-RPC bridge for host shells",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	log.Info().Msg("Bridge starting stdio loop")
	server := hostbridge.NewServer(creator, perfStore, Version)
	if err := server.Serve(); err != nil {
		log.Fatal().Err(err).Msg("Bridge terminated")
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
