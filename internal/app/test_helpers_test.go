package app

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/shiftops/internal/adapters/documents"
	"github.com/example/shiftops/internal/adapters/filesystem"
	"github.com/example/shiftops/internal/adapters/masterdata"
	"github.com/example/shiftops/internal/adapters/sqlite"
	"github.com/example/shiftops/internal/config"
	"github.com/example/shiftops/internal/db"
	"github.com/example/shiftops/internal/draft"
	"github.com/example/shiftops/internal/logger"
)

// testEnv wires real adapters against an in-memory database and a temp
// data directory.
type testEnv struct {
	db        *sql.DB
	cfg       *config.Config
	drafts    *draft.Store
	reports   *sqlite.ReportRepository
	inventory *sqlite.InventoryRepository
	archive   *filesystem.Archive
	report    *ReportServiceImpl
	inv       *InventoryServiceImpl
	dashboard *DashboardServiceImpl
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if _, err := conn.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	cfg := config.Default(t.TempDir())
	env := &testEnv{
		db:        conn,
		cfg:       cfg,
		drafts:    draft.NewStore(cfg.DraftPath()),
		reports:   sqlite.NewReportRepository(conn),
		inventory: sqlite.NewInventoryRepository(conn),
		archive:   filesystem.NewArchive(cfg.ReportsDir()),
	}

	log := logger.NewNop()
	env.report = NewReportService(
		env.reports,
		env.inventory,
		env.drafts,
		env.archive,
		documents.NewWorkbookRenderer(),
		documents.NewPDFRenderer(),
		masterdata.NewPPMScheduleSource(cfg.PPMSchedulePath()),
		cfg,
		log,
	)
	env.inv = NewInventoryService(
		env.inventory,
		masterdata.NewSparesCatalogSource(cfg.SparesCatalogPath()),
		cfg,
		log,
	)
	env.dashboard = NewDashboardService(env.reports, env.archive, cfg)

	return env
}

// fixedNow pins the service clock so generated filenames are predictable.
func (e *testEnv) fixedNow(t *testing.T, value time.Time) {
	t.Helper()
	e.report.now = func() time.Time { return value }
}

func (e *testEnv) writeDataFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.MkdirAll(e.cfg.DataDir, 0755); err != nil {
		t.Fatalf("Failed to create data dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.cfg.DataDir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}
