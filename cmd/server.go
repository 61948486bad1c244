package cmd

import (
	"github.com/spf13/cobra"
	"github.com/streetleague/skillbuilder/internal/api"
	"github.com/streetleague/skillbuilder/internal/config"
	"github.com/streetleague/skillbuilder/internal/telemetry"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start Admin Server",
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.ReadConfig()

		shutdownTelemetry := telemetry.NewProvider(conf.OTEL_EXPORTER_OTLP_ENDPOINT)
		defer shutdownTelemetry()

		s := api.New(conf)
		s.Start()
	},
}

// Register the "server" command
func init() {
	rootCmd.AddCommand(serverCmd)
}
