package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"election_dashboard/internal/config"
	"election_dashboard/internal/fetcher"
	"election_dashboard/internal/historical"
	"election_dashboard/internal/live"
	"election_dashboard/internal/logger"
	"election_dashboard/internal/metrics"
	"election_dashboard/internal/server"

	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := os.Getenv("DASHBOARD_CONFIG")
	if configPath == "" {
		configPath = "config.json"
	}

	// Загрузка конфигурации
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Init("")
		logger.Log.Fatalf("Config load error: %v", err)
	}
	logger.Init(cfg.LogLevel)
	defer logger.Log.Info("Application stopped")

	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalf("Invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	aggregator := historical.NewAggregator(historical.NewCSVSource(cfg.HistoricalCSV), m.RowsSkipped)
	news := fetcher.NewClient(cfg.NewsFeedURL, cfg.FetchTimeoutDuration(), cfg.SummaryLength)
	srv := server.NewServer(aggregator, news, live.NewBoard(), m)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Handler(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.WithFields(logger.Fields{
			"addr":           cfg.ListenAddr,
			"news_feed":      cfg.NewsFeedURL,
			"historical_csv": cfg.HistoricalCSV,
		}).Info("Starting HTTP server")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Errorf("Server error: %v", err)
		os.Exit(1)
	}
}
