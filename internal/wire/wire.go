// Package wire provides dependency injection for the shiftops application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/example/shiftops/internal/adapters/documents"
	"github.com/example/shiftops/internal/adapters/filesystem"
	"github.com/example/shiftops/internal/adapters/masterdata"
	"github.com/example/shiftops/internal/adapters/sqlite"
	"github.com/example/shiftops/internal/app"
	"github.com/example/shiftops/internal/config"
	"github.com/example/shiftops/internal/db"
	"github.com/example/shiftops/internal/draft"
	"github.com/example/shiftops/internal/logger"
	"github.com/example/shiftops/internal/ports/primary"
)

var (
	cfg              *config.Config
	appLogger        *zap.Logger
	reportService    primary.ReportService
	inventoryService primary.InventoryService
	dashboardService primary.DashboardService
	once             sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the shared application logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return appLogger
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// InventoryService returns the singleton InventoryService instance.
func InventoryService() primary.InventoryService {
	once.Do(initServices)
	return inventoryService
}

// DashboardService returns the singleton DashboardService instance.
func DashboardService() primary.DashboardService {
	once.Do(initServices)
	return dashboardService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to resolve working directory: %v", err)
	}

	cfg, err = config.Load(cwd)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger, err = logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db.SetPath(db.DefaultPath(cfg.DataDir))
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	reportRepo := sqlite.NewReportRepository(database)
	inventoryRepo := sqlite.NewInventoryRepository(database)

	// File-backed adapters
	drafts := draft.NewStore(cfg.DraftPath())
	archive := filesystem.NewArchive(cfg.ReportsDir())
	catalog := masterdata.NewSparesCatalogSource(cfg.SparesCatalogPath())
	schedule := masterdata.NewPPMScheduleSource(cfg.PPMSchedulePath())

	// Services (primary ports implementation)
	reportService = app.NewReportService(
		reportRepo,
		inventoryRepo,
		drafts,
		archive,
		documents.NewWorkbookRenderer(),
		documents.NewPDFRenderer(),
		schedule,
		cfg,
		appLogger,
	)
	inventoryService = app.NewInventoryService(inventoryRepo, catalog, cfg, appLogger)
	dashboardService = app.NewDashboardService(reportRepo, archive, cfg)
}

// AssetSource returns a new asset register reader.
func AssetSource() *masterdata.AssetSource {
	once.Do(initServices)
	return masterdata.NewAssetSource(cfg.AssetsPath())
}

// ScheduleSource returns a new maintenance schedule reader.
func ScheduleSource() *masterdata.PPMScheduleSource {
	once.Do(initServices)
	return masterdata.NewPPMScheduleSource(cfg.PPMSchedulePath())
}
