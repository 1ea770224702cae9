package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"assetmgmt/pkg/assets"
	"assetmgmt/pkg/db"
	"assetmgmt/pkg/seed"
	"assetmgmt/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pool, err := db.Connect(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo := assets.NewPostgresAssetRepository(pool)

		if cfg.IsDevelopment() && cfg.SeedData {
			if _, err := seed.Run(ctx, repo, cfg.SeedCount, logger); err != nil {
				return err
			}
		}

		router := server.NewRouter(cfg, logger, assets.NewAssetService(repo), pool)
		srv := server.NewHTTPServer(cfg, router)

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server starting", slog.String("addr", srv.Addr), slog.Bool("tls", cfg.TLS.EnableTLS))
			errCh <- listen(srv, cfg)
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		logger.Info("server exiting")
		return nil
	},
}
