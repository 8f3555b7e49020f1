package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/major-advisor/internal/recommend"
	"github.com/jonathan/major-advisor/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Load the asset snapshot and start an HTTP server exposing the recommendation endpoints. The process exits instead of serving if the asset load fails.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, store, cleanup, err := bootstrap(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv := server.New(server.Config{
		Port:      port,
		Store:     store,
		Logger:    log,
		Threshold: cfg.ResolveThreshold,
		Policy: recommend.WeightPolicy{
			LevelOffset: cfg.WeightLevelOffset,
			MaxWeight:   cfg.WeightMax,
		},
	})
	return srv.Start()
}
