package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	v1 "github.com/Drishanv/ola-rides-insights/api/v1"
	"github.com/Drishanv/ola-rides-insights/internal/config"
	"github.com/Drishanv/ola-rides-insights/internal/handlers"
	"github.com/Drishanv/ola-rides-insights/internal/report"
	"github.com/Drishanv/ola-rides-insights/internal/server"
	"github.com/Drishanv/ola-rides-insights/internal/services"
)

const waitForStoreTimeout = 5 * time.Minute

func newServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg)
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a config file")
	cmd.Flags().String("store-path", "", "store file path")
	cmd.Flags().Int("http-port", 0, "HTTP listen port")
	cmd.Flags().String("mode", "", `server mode ("dev" or "prod")`)
	cmd.Flags().Bool("wait-for-store", false, "poll for the store file before connecting")
	return cmd
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Configuration) {
	if cmd.Flags().Changed("store-path") {
		cfg.Store.Path, _ = cmd.Flags().GetString("store-path")
	}
	if cmd.Flags().Changed("http-port") {
		cfg.Server.HTTPPort, _ = cmd.Flags().GetInt("http-port")
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("wait-for-store") {
		cfg.Store.WaitForStore, _ = cmd.Flags().GetBool("wait-for-store")
	}
}

func runServe(cfg *config.Configuration) error {
	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar().Named("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Store.WaitForStore {
		if err := waitForStore(ctx, cfg.Store.Path, log); err != nil {
			return err
		}
	}

	session := services.NewSession(cfg.Store.SampleRows)
	defer session.Close()

	// A missing or empty store is a blocking warning, not a startup failure:
	// the UI can re-point the path at any time.
	if err := session.Connect(ctx, cfg.Store.Path); err != nil {
		log.Warnw("store not connected; connect from the dashboard to continue",
			"path", cfg.Store.Path, "error", err)
	}

	handler := handlers.New(
		session,
		services.NewExplorer(session),
		services.NewRunner(session),
		services.NewExporter(),
		report.NewChain(),
		report.Document{
			Path:       cfg.Report.Path,
			Zoom:       cfg.Report.Zoom,
			PageTitles: cfg.Report.PageTitles,
		},
	)

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, handler)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return srv.Stop(context.Background())
}

// waitForStore polls until the store file exists, with exponential backoff.
// Queries themselves are never retried; this only covers startup racing the
// data pipeline that produces the store file.
func waitForStore(ctx context.Context, path string, log *zap.SugaredLogger) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if _, statErr := os.Stat(path); statErr != nil {
			log.Warnw("waiting for store file", "path", path)
			return struct{}{}, statErr
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(waitForStoreTimeout),
	)
	return err
}

func buildLogger(cfg *config.Configuration) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var zapCfg zap.Config
	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
