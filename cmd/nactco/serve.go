package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/logging"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the catalog, calculation, comparison, sensitivity and break-even
endpoints over HTTP. Settings come from NACTCO_* environment variables or a
.env file; flags override them.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if root := cmd.Root().PersistentFlags(); root.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Root().PersistentFlags().Changed("dev") {
		cfg.LogDevelopment = devLogging
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := reference.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	srv, err := server.New(cfg, cat, logger)
	if err != nil {
		return err
	}

	logger.Info("starting server",
		zap.String("addr", cfg.Address()),
		zap.String("catalog_schema", cat.SchemaVersion()))
	if err := srv.Run(cmd.Context()); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (default NACTCO_HOST or 0.0.0.0)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (default NACTCO_PORT or 8080)")

	rootCmd.AddCommand(serveCmd)
}
