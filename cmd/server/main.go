package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hritik3345/LIPA-Name/internal/api"
	"github.com/hritik3345/LIPA-Name/internal/capture"
	"github.com/hritik3345/LIPA-Name/internal/config"
	"github.com/hritik3345/LIPA-Name/internal/lexicon"
	"github.com/hritik3345/LIPA-Name/internal/stats"
)

func main() {
	cfg := config.Load()

	level, levelErr := cfg.SlogLevel()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if levelErr != nil {
		log.Error("invalid configuration", "error", levelErr)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	lex, err := lexicon.Resolve(cfg.LexiconFile)
	if err != nil {
		log.Error("load lexicon", "error", err, "path", cfg.LexiconFile)
		os.Exit(1)
	}
	engine, err := capture.New(lex)
	if err != nil {
		log.Error("build capture engine", "error", err)
		os.Exit(1)
	}

	latency := stats.NewLatency(cfg.StatsWindow)
	srv := api.NewServer(engine, latency, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("starting name capture webhook",
		"port", cfg.Port,
		"product", lex.Product,
		"lexicon", lexiconSource(cfg.LexiconFile),
		"auth", cfg.WebhookAPIKey != "",
		"metrics", cfg.MetricsEnabled,
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	<-done
}

func lexiconSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
