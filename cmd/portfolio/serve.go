package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tj2904.com/internal/config"
	"tj2904.com/internal/handlers"
	"tj2904.com/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr, catalogPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(catalogPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ServerAddr = addr
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			projects, err := cfg.LoadCatalog()
			if err != nil {
				logger.Error("catalog is invalid", "error", err)
				return err
			}
			logger.Info("catalog loaded", "projects", projects.Len(), "source", catalogSource(cfg))

			missing, err := projects.MissingAssets(cfg.AssetsDir)
			if err != nil {
				logger.Warn("checking assets", "error", err)
			}
			for _, p := range missing {
				logger.Warn("missing asset", "path", p, "assets_dir", cfg.AssetsDir)
			}

			srv, err := server.New(server.Config{
				Addr:            cfg.ServerAddr,
				ShutdownTimeout: cfg.ShutdownTimeout,
			}, handlers.SetupRoutes(cfg, projects, logger), logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ListenAndServe(ctx); err != nil {
				logger.Error("server error", "error", err)
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides SERVER_ADDR)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file, .json or .yaml (overrides CATALOG_PATH)")

	return cmd
}

func loadConfig(catalogPath string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	return cfg, nil
}

func catalogSource(cfg *config.Config) string {
	if cfg.CatalogPath == "" {
		return "embedded"
	}
	return cfg.CatalogPath
}
