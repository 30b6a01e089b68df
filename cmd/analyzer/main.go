package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"liquidity-engine/internal/analyzer"
	"liquidity-engine/internal/config"
	"liquidity-engine/internal/database"
	"liquidity-engine/internal/scheduler"
	"liquidity-engine/internal/server"
	"liquidity-engine/internal/storage"
	"liquidity-engine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: true})
	logger.SetGlobalLogger(log)

	db, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "analysis.db"),
		Profile: database.ProfileCache,
		Name:    "analysis",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Database open failed")
	}
	defer db.Close()

	store, err := storage.NewSnapshotStore(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Snapshot store init failed")
	}

	var sentiment analyzer.SentimentProvider = analyzer.NoopSentiment{}
	if cfg.SentimentAPIKey != "" {
		sentiment = analyzer.NewChatSentiment(cfg.SentimentAPIURL, cfg.SentimentAPIKey, cfg.SentimentModel, log)
		log.Info().Str("model", cfg.SentimentModel).Msg("AI sentiment enabled")
	} else {
		log.Info().Msg("No sentiment API key, multipliers stay neutral")
	}

	a := analyzer.New(analyzer.NewCoinbaseSource(log), sentiment, log)

	sched := scheduler.New(log)
	job := scheduler.NewAnalysisJob(a, store, cfg.Symbols, log)
	if err := sched.AddJob(cfg.AnalyzeCron, job); err != nil {
		log.Fatal().Err(err).Msg("Job registration failed")
	}
	sched.Start()
	defer sched.Stop()

	// Warm the cache in the background when it is empty, so the first
	// /cryptos hit doesn't pay for a full universe analysis.
	if n, err := store.Count(); err == nil && n == 0 {
		go func() {
			if err := sched.RunNow(job); err != nil {
				log.Warn().Err(err).Msg("Initial analysis failed")
			}
		}()
	}

	srv := server.New(server.Config{
		Log:      log,
		Analyzer: a,
		Store:    store,
		Symbols:  cfg.Symbols,
		Port:     cfg.Port,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}
