package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aerogest/backoffice/internal/api"
	"github.com/aerogest/backoffice/internal/domain/analytics"
	"github.com/aerogest/backoffice/internal/domain/ingestion"
	"github.com/aerogest/backoffice/internal/domain/ledger"
	"github.com/aerogest/backoffice/internal/domain/reconciliation"
	"github.com/aerogest/backoffice/pkg/config"
	"github.com/aerogest/backoffice/pkg/cron"
	"github.com/aerogest/backoffice/pkg/db"
	"github.com/aerogest/backoffice/pkg/metrics"
	"github.com/aerogest/backoffice/pkg/money"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config  *config.Config
	DB      *db.DB
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	// Repositories
	LedgerRepo ledger.Repository

	// Services
	LedgerService         *ledger.Service
	IngestionPipeline     *ingestion.Pipeline
	AnalyticsService      *analytics.Service
	ReconciliationService *reconciliation.Service
	Scheduler             *cron.Scheduler

	// Handlers
	LedgerHandler         *api.LedgerHandler
	ImportHandler         *api.ImportHandler
	AnalyticsHandler      *api.AnalyticsHandler
	ReconciliationHandler *api.ReconciliationHandler
	HealthHandler         *api.HealthHandler
}

// InitDependencies initializes all application dependencies
func InitDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
	}

	if err := deps.initDatabase(ctx); err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}

	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase initializes the database connection and runs migrations
func (d *Dependencies) initDatabase(ctx context.Context) error {
	database, err := db.New(ctx, d.Config.Database)
	if err != nil {
		return err
	}
	d.DB = database

	if err := db.Migrate(d.Config.Database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.Logger.Info("database connected and migrations completed successfully")
	return nil
}

func (d *Dependencies) initServices() {
	retrier := ledger.NewRetrier(d.Logger)
	d.LedgerRepo = ledger.NewPostgresRepository(d.DB.Pool, retrier)

	formatter := money.NewBRLFormatter()
	d.LedgerService = ledger.NewService(d.LedgerRepo, d.Logger)
	d.IngestionPipeline = ingestion.NewPipeline(d.LedgerRepo, d.Logger, d.Metrics)
	d.AnalyticsService = analytics.NewService(d.LedgerRepo, formatter, d.Logger)
	d.ReconciliationService = reconciliation.NewService(d.LedgerRepo, d.Logger, d.Metrics)
	d.Scheduler = cron.NewScheduler(d.ReconciliationService, d.Logger)

	d.Logger.Info("services initialized")
}

func (d *Dependencies) initHandlers() {
	exporter := ingestion.NewExporter(money.NewBRLFormatter())

	d.LedgerHandler = api.NewLedgerHandler(d.LedgerService, exporter)
	d.ImportHandler = api.NewImportHandler(d.IngestionPipeline,
		d.Config.Import.MaxUploadBytes, d.Config.Import.MaxRows)
	d.AnalyticsHandler = api.NewAnalyticsHandler(d.AnalyticsService)
	d.ReconciliationHandler = api.NewReconciliationHandler(d.ReconciliationService)
	d.HealthHandler = api.NewHealthHandler(d.DB.Pool)

	d.Logger.Info("handlers initialized")
}

// Close releases held resources.
func (d *Dependencies) Close() {
	if d.Scheduler != nil {
		<-d.Scheduler.Stop().Done()
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
