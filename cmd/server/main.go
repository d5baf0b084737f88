package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"frontend/config"
	"frontend/logger"
	"frontend/server"
)

var (
	// Version info (set via ldflags)
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	flagAddr     string
	flagLogLevel string
	flagOTLP     string
)

var rootCmd = &cobra.Command{
	Use:   "frontend-server",
	Short: "Serve the loader front-end",
	Long: `frontend-server serves the WebAssembly front-end built into ./web,
its embedded stylesheet and animation, and a small status API.

Configuration is read from ./frontend.toml (or $FRONTEND_CONFIG) and
FRONTEND_* environment variables. Flags override both.`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = flagAddr
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = flagLogLevel
		}
		if cmd.Flags().Changed("otlp-endpoint") {
			cfg.Telemetry.OTLPEndpoint = flagOTLP
		}
		if version != "dev" {
			cfg.Server.Version = version
		}

		level, err := logger.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		logger.SetLevel(level)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagAddr, "addr", "a", ":8000", "Address to listen on")
	rootCmd.Flags().StringVarP(&flagLogLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagOTLP, "otlp-endpoint", "", "OTLP/HTTP endpoint for request traces (host:port)")
}
