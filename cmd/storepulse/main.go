package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // Timezone database for hosts without /usr/share/zoneinfo

	corecfg "github.com/storepulse/storepulse/internal/core/config"
	"github.com/storepulse/storepulse/internal/core/storage"
	"github.com/storepulse/storepulse/internal/core/storage/memory"
	"github.com/storepulse/storepulse/internal/core/storage/postgres"
	"github.com/storepulse/storepulse/internal/ingestion"
	"github.com/storepulse/storepulse/internal/migrations"
	"github.com/storepulse/storepulse/internal/observability/metrics"
	"github.com/storepulse/storepulse/internal/report"
	"github.com/storepulse/storepulse/internal/server"
)

const reportShutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "storepulse.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"output_dir", cfg.Report.OutputDir,
		"worker_count", cfg.Report.WorkerCount,
		"run_timeout", cfg.Report.RunTimeoutDuration(),
		"schedule_interval", cfg.Report.ScheduleIntervalDuration())

	// 2. Initialize Storage
	var (
		dataset storage.DatasetStore
		runs    storage.ReportRunStore
		health  server.HealthChecker
	)
	switch cfg.Database.Type {
	case "postgres":
		dbAdapter, err := postgres.NewAdapter(
			cfg.Database.DSN,
			cfg.Database.MaxOpenConns,
			cfg.Database.MaxIdleConns,
			cfg.Database.AutoMigrate,
		)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer dbAdapter.Close()

		// 2.1. Run Database Migrations
		if err := migrations.Run(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}

		dataset = dbAdapter
		runs = postgres.NewReportRunAdapter(dbAdapter.DB())
		health = dbAdapter
		metrics.Init(dbAdapter.DB())
	default:
		slog.Warn("Using in-memory storage; data and report runs are lost on restart")
		dataset = memory.NewDatasetStore()
		runs = memory.NewReportRunStore()
		metrics.Init(nil)
	}

	// 3. Initialize Ingestion
	ingestionSvc := ingestion.NewService(dataset, cfg.Server.MaxBodySizeMB)
	if cfg.Ingest.LoadOnStart {
		importCtx, cancelImport := context.WithTimeout(context.Background(), cfg.Report.RunTimeoutDuration())
		err := ingestionSvc.ImportFiles(importCtx, ingestion.Files{
			StatusPath:        cfg.Ingest.StatusPath,
			BusinessHoursPath: cfg.Ingest.BusinessHoursPath,
			TimezonesPath:     cfg.Ingest.TimezonesPath,
		})
		cancelImport()
		if err != nil {
			slog.Error("Failed to import CSV exports", "error", err)
			os.Exit(1)
		}
	}

	// 4. Initialize Report Service
	reportSvc, err := report.NewService(dataset, runs, report.Options{
		OutputDir:   cfg.Report.OutputDir,
		WorkerCount: cfg.Report.WorkerCount,
		RunTimeout:  cfg.Report.RunTimeoutDuration(),
	})
	if err != nil {
		slog.Error("Failed to initialize report service", "error", err)
		os.Exit(1)
	}

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), health, cfg.Server.Mode)
	ingestionSvc.RegisterRoutes(srv.Engine)
	reportSvc.RegisterRoutes(srv.Engine)

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if interval := cfg.Report.ScheduleIntervalDuration(); interval > 0 {
		scheduler := report.NewScheduler(interval, reportSvc)
		go func() {
			if err := scheduler.Start(ctx); err != nil {
				slog.Error("Scheduler stopped with error", "error", err)
			}
		}()
	} else {
		slog.Info("Report scheduler disabled by config")
	}

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), reportShutdownTimeout)
	defer cancelShutdown()
	if err := reportSvc.Shutdown(shutdownCtx); err != nil {
		slog.Error("Report runs did not stop in time", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
