package app

import (
	"context"
	"sort"
	"time"

	"github.com/example/shiftops/internal/config"
	"github.com/example/shiftops/internal/core/reliability"
	"github.com/example/shiftops/internal/ports/primary"
	"github.com/example/shiftops/internal/ports/secondary"
)

// DashboardServiceImpl implements the DashboardService interface.
type DashboardServiceImpl struct {
	reports secondary.ReportRepository
	archive secondary.ReportArchive
	cfg     *config.Config
}

// NewDashboardService creates a new DashboardService with injected dependencies.
func NewDashboardService(
	reports secondary.ReportRepository,
	archive secondary.ReportArchive,
	cfg *config.Config,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		reports: reports,
		archive: archive,
		cfg:     cfg,
	}
}

// Overview returns the fleet-wide downtime and availability summary.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (*primary.Overview, error) {
	headers, err := s.reports.List(ctx, secondary.ReportFilters{})
	if err != nil {
		return nil, err
	}

	overview := &primary.Overview{ReportCount: len(headers)}
	faults := make(map[string]int)

	var downtimeMinutes float64
	for _, h := range headers {
		reactives, _, _, err := s.reports.GetChildren(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		for _, t := range reactives {
			overview.ReactiveCount++
			downtimeMinutes += t.DowntimeMinutes
			if t.Fault != "" {
				faults[t.Fault]++
			}
		}
	}

	overview.DowntimeHours = downtimeMinutes / 60
	overview.Availability = reliability.Availability(overview.ReportCount, overview.DowntimeHours, s.cfg.ShiftHours)

	for fault, count := range faults {
		overview.FaultBreakdown = append(overview.FaultBreakdown, primary.FaultCount{Fault: fault, Count: count})
	}
	sort.Slice(overview.FaultBreakdown, func(i, j int) bool {
		a, b := overview.FaultBreakdown[i], overview.FaultBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Fault < b.Fault
	})

	return overview, nil
}

// AssetReliability returns reliability metrics for one asset, or for all
// assets combined when asset is empty.
func (s *DashboardServiceImpl) AssetReliability(ctx context.Context, asset string) (*primary.Reliability, error) {
	var records []*secondary.AssetEventRecord
	var err error
	if asset != "" {
		records, err = s.reports.ReactiveHistoryByAsset(ctx, asset)
	} else {
		records, err = s.allReactiveEvents(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := &primary.Reliability{
		Asset:          asset,
		BreakdownCount: len(records),
	}

	var downtimes []float64
	var totalDowntime float64
	var dates []time.Time
	for _, r := range records {
		downtimes = append(downtimes, r.DowntimeMinutes)
		totalDowntime += r.DowntimeMinutes
		if d, err := time.Parse("2006-01-02", r.Date); err == nil {
			dates = append(dates, d)
		}
		result.Events = append(result.Events, &primary.AssetEvent{
			Date:            r.Date,
			Shift:           r.Shift,
			Engineer:        r.Engineer,
			Fault:           r.Fault,
			Description:     r.Description,
			DowntimeMinutes: r.DowntimeMinutes,
			Status:          r.Status,
		})
	}

	result.MTTRMinutes = reliability.MTTRMinutes(downtimes)
	result.MTBFDays, result.MTBFAvailable = reliability.MTBFDays(dates)
	result.EstimatedCost = reliability.EstimatedCost(totalDowntime, s.cfg.HourlyRate)

	return result, nil
}

// allReactiveEvents flattens every report's reactive tasks with their report
// context, newest report first.
func (s *DashboardServiceImpl) allReactiveEvents(ctx context.Context) ([]*secondary.AssetEventRecord, error) {
	headers, err := s.reports.List(ctx, secondary.ReportFilters{})
	if err != nil {
		return nil, err
	}

	var events []*secondary.AssetEventRecord
	for _, h := range headers {
		reactives, _, _, err := s.reports.GetChildren(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		for _, t := range reactives {
			events = append(events, &secondary.AssetEventRecord{
				Date:            h.Date,
				Shift:           h.Shift,
				Engineer:        h.Engineer,
				Asset:           t.Asset,
				Fault:           t.Fault,
				Description:     t.Description,
				DowntimeMinutes: t.DowntimeMinutes,
				Status:          t.Status,
			})
		}
	}
	return events, nil
}

// Browse lists stored reports with their resolved document pair.
func (s *DashboardServiceImpl) Browse(ctx context.Context, filters primary.ReportFilters) ([]*primary.BrowseRow, error) {
	headers, err := s.reports.List(ctx, secondary.ReportFilters{
		Engineer: filters.Engineer,
		Shift:    filters.Shift,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]*primary.BrowseRow, 0, len(headers))
	for _, h := range headers {
		paths := s.archive.Resolve(h)
		rows = append(rows, &primary.BrowseRow{
			ID:             h.ID,
			Date:           h.Date,
			Shift:          h.Shift,
			Engineer:       h.Engineer,
			HandoverNotes:  h.HandoverNotes,
			RadiosCharged:  h.RadiosCharged,
			PhonesWorking:  h.PhonesWorking,
			KeysHanded:     h.KeysHanded,
			SafetyCheck:    h.SafetyCheck,
			WorkbookPath:   paths.WorkbookPath,
			PDFPath:        paths.PDFPath,
			WorkbookExists: paths.WorkbookExists,
			PDFExists:      paths.PDFExists,
		})
	}
	return rows, nil
}

var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
