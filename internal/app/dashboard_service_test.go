package app

import (
	"context"
	"math"
	"testing"

	"github.com/example/shiftops/internal/ports/primary"
)

// seedReport commits one report on the given date with the given reactive
// downtime windows as (fault, called, back) triples.
func seedReport(t *testing.T, env *testEnv, date string, reactives [][3]string) *primary.CommitResult {
	t.Helper()
	ctx := context.Background()

	if _, err := env.report.NewDraft(ctx, primary.NewDraftRequest{
		Date:     date,
		Shift:    "Day",
		Engineer: "Chris McGhee",
	}); err != nil {
		t.Fatalf("NewDraft failed: %v", err)
	}
	for _, r := range reactives {
		if _, err := env.report.AddReactive(ctx, primary.AddReactiveRequest{
			Asset:      "Conveyor B3",
			Fault:      r[0],
			TimeCalled: r[1],
			TimeBack:   r[2],
		}); err != nil {
			t.Fatalf("AddReactive failed: %v", err)
		}
	}
	return commitDraft(t, env)
}

func TestOverview_EmptyStore(t *testing.T) {
	env := setupEnv(t)

	overview, err := env.dashboard.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if overview.ReportCount != 0 || overview.Availability != 100 {
		t.Errorf("Expected 100%% availability with no reports, got %+v", overview)
	}
}

func TestOverview_AggregatesDowntimeAndFaults(t *testing.T) {
	env := setupEnv(t)

	seedReport(t, env, "2025-03-10", [][3]string{
		{"Belt tracking", "08:00", "09:00"},
		{"Jam", "10:00", "10:30"},
	})
	seedReport(t, env, "2025-03-12", [][3]string{
		{"Belt tracking", "09:00", "09:30"},
	})

	overview, err := env.dashboard.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}

	if overview.ReportCount != 2 || overview.ReactiveCount != 3 {
		t.Fatalf("Unexpected counts: %+v", overview)
	}
	if overview.DowntimeHours != 2 {
		t.Errorf("Expected 2 downtime hours, got %v", overview.DowntimeHours)
	}
	// 2 reports x 12h = 24h, 2h down.
	wantAvailability := (24.0 - 2.0) / 24.0 * 100
	if math.Abs(overview.Availability-wantAvailability) > 0.001 {
		t.Errorf("Expected availability %.3f, got %.3f", wantAvailability, overview.Availability)
	}
	if len(overview.FaultBreakdown) != 2 || overview.FaultBreakdown[0].Fault != "Belt tracking" || overview.FaultBreakdown[0].Count != 2 {
		t.Errorf("Unexpected fault breakdown: %+v", overview.FaultBreakdown)
	}
}

func TestAssetReliability_SingleAsset(t *testing.T) {
	env := setupEnv(t)

	seedReport(t, env, "2025-03-10", [][3]string{{"Jam", "08:00", "09:00"}})
	seedReport(t, env, "2025-03-14", [][3]string{{"Jam", "10:00", "10:30"}})

	rel, err := env.dashboard.AssetReliability(context.Background(), "Conveyor B3")
	if err != nil {
		t.Fatalf("AssetReliability failed: %v", err)
	}

	if rel.BreakdownCount != 2 {
		t.Fatalf("Expected 2 breakdowns, got %d", rel.BreakdownCount)
	}
	if rel.MTTRMinutes != 45 {
		t.Errorf("Expected MTTR 45 minutes, got %v", rel.MTTRMinutes)
	}
	if !rel.MTBFAvailable || rel.MTBFDays != 4 {
		t.Errorf("Expected MTBF 4 days, got %v available=%v", rel.MTBFDays, rel.MTBFAvailable)
	}
	// 90 downtime minutes at the default 50/hr.
	if rel.EstimatedCost != 75 {
		t.Errorf("Expected estimated cost 75, got %v", rel.EstimatedCost)
	}
}

func TestAssetReliability_SingleEventHasNoMTBF(t *testing.T) {
	env := setupEnv(t)
	seedReport(t, env, "2025-03-10", [][3]string{{"Jam", "08:00", "09:00"}})

	rel, err := env.dashboard.AssetReliability(context.Background(), "Conveyor B3")
	if err != nil {
		t.Fatalf("AssetReliability failed: %v", err)
	}
	if rel.MTBFAvailable {
		t.Error("Expected MTBF unavailable with a single event")
	}
}

func TestAssetReliability_AllAssets(t *testing.T) {
	env := setupEnv(t)
	seedReport(t, env, "2025-03-10", [][3]string{{"Jam", "08:00", "09:00"}})

	rel, err := env.dashboard.AssetReliability(context.Background(), "")
	if err != nil {
		t.Fatalf("AssetReliability failed: %v", err)
	}
	if rel.BreakdownCount != 1 || rel.Asset != "" {
		t.Errorf("Unexpected combined reliability: %+v", rel)
	}
}

func TestBrowse_ResolvesDocuments(t *testing.T) {
	env := setupEnv(t)
	result := seedReport(t, env, "2025-03-10", nil)

	rows, err := env.dashboard.Browse(context.Background(), primary.ReportFilters{})
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.ID != result.ReportID || row.HandoverNotes != "All quiet" {
		t.Errorf("Unexpected row: %+v", row)
	}
	if !row.WorkbookExists || !row.PDFExists {
		t.Errorf("Expected both documents resolved, got %+v", row)
	}
	if row.WorkbookPath != result.WorkbookPath {
		t.Errorf("Path mismatch: %s vs %s", row.WorkbookPath, result.WorkbookPath)
	}
}
