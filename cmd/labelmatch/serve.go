package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-label-matcher/api"
	"github.com/gcbaptista/go-label-matcher/internal/logger"
	"github.com/gcbaptista/go-label-matcher/matcher"
	"github.com/gcbaptista/go-label-matcher/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfgFile *string) *cobra.Command {
	var seedFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API serving the /match and /labels routes.

The label catalog lives in memory. Use --seed to preload it from a YAML or
JSON list of label names or {display_name, color} entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile)
			if err != nil {
				return err
			}

			log, err := logger.NewLogger(cfg.Server.Env, cfg.Server.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			labels := store.NewLabelStore()
			if seedFile != "" {
				n, err := seedLabels(labels, seedFile)
				if err != nil {
					return err
				}
				log.Info("Seeded label catalog", zap.String("file", seedFile), zap.Int("labels", n))
			}

			if cfg.Server.Env == "prod" {
				gin.SetMode(gin.ReleaseMode)
			}
			router := gin.New()
			router.Use(gin.Recovery())

			m := matcher.New(cfg.Matcher)
			settings := m.Settings()
			apiHandler := api.NewAPI(m, labels, log, cfg.Server)
			api.SetupRoutes(router, apiHandler, cfg.Server.MaxBodyBytes)

			srv := &http.Server{
				Addr:              ":" + cfg.Server.Port,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("Starting HTTP server",
					zap.String("addr", srv.Addr),
					zap.String("env", cfg.Server.Env),
					zap.Float64("fuzzy_damping", settings.FuzzyDamping),
					zap.Int("parallel_threshold", settings.ParallelThreshold),
					zap.Int("max_workers", settings.MaxWorkers))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("Shutting down HTTP server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("port", "8080", "port to listen on")
	cmd.Flags().String("env", "dev", "environment: prod, dev or local")
	cmd.Flags().String("log-level", "", "log level override: debug, info, warn, error")
	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML/JSON file of labels to preload")

	return cmd
}
