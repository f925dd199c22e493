package main

import (
	"context"
	"errors"
	"eventCalendar/internal/config"
	"eventCalendar/internal/http-server/middleware/mwmetrics"
	"eventCalendar/internal/http-server/router"
	"eventCalendar/internal/lib/logger/handlers/slogpretty"
	"eventCalendar/internal/lib/logger/sl"
	"eventCalendar/internal/storage/memory"
	"eventCalendar/internal/storage/postgres"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

type storage interface {
	router.Storage
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event calendar", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	// Load already checked both values.
	weekStart, _ := cfg.Calendar.FirstWeekday()
	loc, _ := cfg.Calendar.Location()

	store, err := setupStorage(cfg, loc)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	log.Info("storage ready", slog.String("storage", cfg.Storage))

	metrics := mwmetrics.NewMetrics()
	if pg, ok := store.(*postgres.Storage); ok {
		metrics.Registry().MustRegister(collectors.NewDBStatsCollector(pg.DB, cfg.Database.DBName))
	}

	r := router.New(log, store, router.Options{
		WeekStart: weekStart,
		Location:  loc,
		Metrics:   metrics,
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config, loc *time.Location) (storage, error) {
	if cfg.Storage == config.StorageMemory {
		return memory.New(loc), nil
	}

	return postgres.InitDB(&cfg.Database, loc)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
