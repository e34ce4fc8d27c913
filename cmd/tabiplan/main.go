package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"tabiplan.jp/internal/app"
	"tabiplan.jp/internal/config"
	"tabiplan.jp/internal/report"
	"tabiplan.jp/internal/trip"
)

const version = "1.0.0"

func main() {
	cfg := config.NewConfig(4000, "development")

	flag.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	flag.StringVar(&cfg.Env, "env", cfg.Env, "Environment (development|staging|production)")
	flag.StringVar(&cfg.DataFile, "data-file", "", "Path to a local reference dataset JSON file")
	flag.StringVar(&cfg.DataURL, "data-url", "", "URL of a remote reference dataset JSON file")
	flag.DurationVar(&cfg.RefreshInterval, "refresh-interval", cfg.RefreshInterval, "How often to re-fetch a remote dataset")
	flag.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "Path to the SQLite file holding saved plans")
	flag.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "Retry attempts for remote dataset fetches")
	flag.Parse()

	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	if err := cfg.Validate(); err != nil {
		fmt.Println("Error:", err)
		flag.Usage()
		os.Exit(1)
	}

	report.SetupSentry()
	defer report.FlushSentry()
	report.ConfigureScope(cfg.Env, version)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	plans, err := trip.OpenStore(cfg.DatabasePath)
	if err != nil {
		logger.Error("Failed to open plan store", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer plans.Close()

	application := app.New(cfg, logger, app.NewPooledClient(), plans, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataAuthUser := os.Getenv("DATA_AUTH_USER")
	dataAuthPass := os.Getenv("DATA_AUTH_PASS")

	if err := application.RefDataService.Load(ctx, cfg.DataFile, cfg.DataURL, dataAuthUser, dataAuthPass, cfg.MaxRetries); err != nil {
		report.ReportError(err, sentry.LevelFatal)
		logger.Error("Failed to load reference dataset", "error", err)
		os.Exit(1)
	}

	application.StartMetricsCollection(ctx)

	// A remote dataset is kept fresh in the background; file and builtin
	// sources are static for the life of the process.
	if cfg.DataURL != "" {
		go application.RefDataService.Refresh(ctx, cfg.DataURL, dataAuthUser, dataAuthPass, cfg.RefreshInterval, cfg.MaxRetries)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	report.ReportError(err, sentry.LevelFatal)
	report.FlushSentry()
	logger.Error(err.Error())
	os.Exit(1)
}
