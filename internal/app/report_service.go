// Package app implements the primary port services with injected
// repositories, renderers and master-data sources.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/shiftops/internal/config"
	"github.com/example/shiftops/internal/core/shiftlog"
	"github.com/example/shiftops/internal/draft"
	"github.com/example/shiftops/internal/ports/primary"
	"github.com/example/shiftops/internal/ports/secondary"
)

// autoScheduledComment marks PPM entries imported from the schedule.
const autoScheduledComment = "Auto-scheduled"

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	reports   secondary.ReportRepository
	inventory secondary.InventoryRepository
	drafts    *draft.Store
	archive   secondary.ReportArchive
	workbook  secondary.WorkbookRenderer
	pdf       secondary.PDFRenderer
	schedule  secondary.PPMScheduleSource
	cfg       *config.Config
	log       *zap.Logger
	now       func() time.Time
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(
	reports secondary.ReportRepository,
	inventory secondary.InventoryRepository,
	drafts *draft.Store,
	archive secondary.ReportArchive,
	workbook secondary.WorkbookRenderer,
	pdf secondary.PDFRenderer,
	schedule secondary.PPMScheduleSource,
	cfg *config.Config,
	log *zap.Logger,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		reports:   reports,
		inventory: inventory,
		drafts:    drafts,
		archive:   archive,
		workbook:  workbook,
		pdf:       pdf,
		schedule:  schedule,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// NewDraft starts a fresh draft, importing open tasks from previous shifts
// and today's scheduled PPMs. Both imports are best-effort.
func (s *ReportServiceImpl) NewDraft(ctx context.Context, req primary.NewDraftRequest) (*primary.DraftSummary, error) {
	if s.drafts.Exists() {
		return nil, fmt.Errorf("a draft is already in progress, commit or discard it first")
	}

	date := req.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	if err := shiftlog.ValidateHeader(shiftlog.HeaderContext{
		Date:     date,
		Shift:    req.Shift,
		Engineer: req.Engineer,
	}); err != nil {
		return nil, err
	}

	d := &draft.Draft{
		Date:           date,
		Shift:          req.Shift,
		Engineer:       req.Engineer,
		SecondEngineer: req.SecondEngineer,
		TeamMembers:    req.TeamMembers,
	}

	s.importCarryOvers(ctx, d)
	s.importScheduledPPMs(d)

	if err := s.drafts.Save(d); err != nil {
		return nil, err
	}
	return summarize(d), nil
}

// importCarryOvers pulls open reactive tasks from previous shifts into the
// draft, tagging their description. Query failure only costs the import.
func (s *ReportServiceImpl) importCarryOvers(ctx context.Context, d *draft.Draft) {
	open, err := s.reports.OpenReactives(ctx)
	if err != nil {
		s.log.Warn("carry-over import failed", zap.Error(err))
		return
	}
	for _, t := range open {
		description := t.Description
		if !strings.HasPrefix(description, shiftlog.CarryOverMarker) {
			description = shiftlog.CarryOverMarker + description
		}
		d.Reactives = append(d.Reactives, &draft.Reactive{
			Asset:           t.Asset,
			TimeCalled:      t.TimeCalled,
			TimeBack:        t.TimeBack,
			Fault:           t.Fault,
			Engineers:       t.Engineers,
			Description:     description,
			DowntimeMinutes: t.DowntimeMinutes,
			Status:          t.Status,
		})
		d.CarriedOver++
	}
}

// importScheduledPPMs injects the schedule rows for the draft's weekday.
// A missing or unreadable schedule only costs the import.
func (s *ReportServiceImpl) importScheduledPPMs(d *draft.Draft) {
	day, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		s.log.Warn("scheduled ppm import skipped, bad draft date", zap.String("date", d.Date))
		return
	}

	tasks, err := s.schedule.TasksForDay(day.Weekday())
	if err != nil {
		if !errors.Is(err, secondary.ErrDataSourceMissing) {
			s.log.Warn("scheduled ppm import failed", zap.Error(err))
		}
		return
	}
	for _, task := range tasks {
		d.PPMs = append(d.PPMs, &draft.PPM{
			Asset:    task.Asset,
			TaskID:   task.Description,
			Status:   shiftlog.StatusInProgress,
			Comments: autoScheduledComment,
		})
		d.Scheduled++
	}
}

// AddReactive appends a reactive task to the draft. When the engineer count
// is unset it defaults from second-engineer presence.
func (s *ReportServiceImpl) AddReactive(ctx context.Context, req primary.AddReactiveRequest) (*primary.DraftSummary, error) {
	d, err := s.drafts.Load()
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = shiftlog.StatusComplete
	}
	engineers := req.Engineers
	if engineers == 0 {
		engineers = 1
		if d.SecondEngineer != "" {
			engineers = 2
		}
	}

	if err := shiftlog.ValidateReactive(shiftlog.ReactiveContext{
		Asset:      req.Asset,
		TimeCalled: req.TimeCalled,
		TimeBack:   req.TimeBack,
		Engineers:  engineers,
		Status:     status,
	}); err != nil {
		return nil, err
	}

	downtime, err := shiftlog.DowntimeMinutes(req.TimeCalled, req.TimeBack)
	if err != nil {
		return nil, err
	}

	d.Reactives = append(d.Reactives, &draft.Reactive{
		Asset:           req.Asset,
		TimeCalled:      req.TimeCalled,
		TimeBack:        req.TimeBack,
		Fault:           req.Fault,
		Engineers:       engineers,
		Description:     req.Description,
		DowntimeMinutes: downtime,
		Status:          status,
	})

	if err := s.drafts.Save(d); err != nil {
		return nil, err
	}
	return summarize(d), nil
}

// AddPPM appends a planned maintenance task to the draft.
func (s *ReportServiceImpl) AddPPM(ctx context.Context, req primary.AddPPMRequest) (*primary.DraftSummary, error) {
	d, err := s.drafts.Load()
	if err != nil {
		return nil, err
	}

	if err := shiftlog.ValidatePPM(shiftlog.PPMContext{Asset: req.Asset}); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = shiftlog.StatusComplete
	}

	d.PPMs = append(d.PPMs, &draft.PPM{
		Asset:    req.Asset,
		TaskID:   req.TaskID,
		Status:   status,
		Comments: req.Comments,
	})

	if err := s.drafts.Save(d); err != nil {
		return nil, err
	}
	return summarize(d), nil
}

// AddSpare appends a spare usage entry, filling description and location
// from the inventory when the part number is known there.
func (s *ReportServiceImpl) AddSpare(ctx context.Context, req primary.AddSpareRequest) (*primary.DraftSummary, error) {
	d, err := s.drafts.Load()
	if err != nil {
		return nil, err
	}

	if err := shiftlog.ValidateSpare(shiftlog.SpareContext{
		PartNumber: req.PartNumber,
		Quantity:   req.Quantity,
	}); err != nil {
		return nil, err
	}

	entry := &draft.Spare{
		PartNumber:   req.PartNumber,
		Description:  req.Description,
		Location:     req.Location,
		CategoryCode: req.CategoryCode,
		Quantity:     req.Quantity,
		Decision:     req.Decision,
	}
	if item, err := s.inventory.Get(ctx, req.PartNumber); err == nil {
		if entry.Description == "" {
			entry.Description = item.Description
		}
		if entry.Location == "" {
			entry.Location = item.Location
		}
	} else if !errors.Is(err, secondary.ErrNotFound) {
		return nil, err
	}

	d.Spares = append(d.Spares, entry)

	if err := s.drafts.Save(d); err != nil {
		return nil, err
	}
	return summarize(d), nil
}

// LoadForEdit fetches a stored report into the draft for amendment. The
// commit of an edited draft never decrements inventory again.
func (s *ReportServiceImpl) LoadForEdit(ctx context.Context, reportID int64) (*primary.DraftSummary, error) {
	if s.drafts.Exists() {
		return nil, fmt.Errorf("a draft is already in progress, commit or discard it first")
	}

	header, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	reactives, ppms, spares, err := s.reports.GetChildren(ctx, reportID)
	if err != nil {
		return nil, err
	}

	d := &draft.Draft{
		EditingReportID: header.ID,
		Date:            header.Date,
		Shift:           header.Shift,
		Engineer:        header.Engineer,
		SecondEngineer:  header.SecondEngineer,
		TeamMembers:     header.TeamMembers,
	}
	for _, t := range reactives {
		d.Reactives = append(d.Reactives, &draft.Reactive{
			Asset:           t.Asset,
			TimeCalled:      t.TimeCalled,
			TimeBack:        t.TimeBack,
			Fault:           t.Fault,
			Engineers:       t.Engineers,
			Description:     t.Description,
			DowntimeMinutes: t.DowntimeMinutes,
			Status:          t.Status,
		})
	}
	for _, p := range ppms {
		d.PPMs = append(d.PPMs, &draft.PPM{
			Asset:    p.Asset,
			TaskID:   p.TaskID,
			Status:   p.Status,
			Comments: p.Comments,
		})
	}
	for _, sp := range spares {
		d.Spares = append(d.Spares, &draft.Spare{
			PartNumber:   sp.PartNumber,
			Description:  sp.Description,
			Location:     sp.Location,
			CategoryCode: sp.CategoryCode,
			Quantity:     sp.Quantity,
			Decision:     sp.Decision,
		})
	}

	if err := s.drafts.Save(d); err != nil {
		return nil, err
	}
	return summarize(d), nil
}

// ShowDraft returns the current draft contents.
func (s *ReportServiceImpl) ShowDraft(ctx context.Context) (*primary.Draft, error) {
	d, err := s.drafts.Load()
	if err != nil {
		return nil, err
	}

	out := &primary.Draft{
		EditingReportID: d.EditingReportID,
		Date:            d.Date,
		Shift:           d.Shift,
		Engineer:        d.Engineer,
		SecondEngineer:  d.SecondEngineer,
		TeamMembers:     d.TeamMembers,
	}
	for _, t := range d.Reactives {
		out.Reactives = append(out.Reactives, &primary.ReactiveEntry{
			Asset:           t.Asset,
			TimeCalled:      t.TimeCalled,
			TimeBack:        t.TimeBack,
			Fault:           t.Fault,
			Engineers:       t.Engineers,
			Description:     t.Description,
			DowntimeMinutes: t.DowntimeMinutes,
			Status:          t.Status,
		})
	}
	for _, p := range d.PPMs {
		out.PPMs = append(out.PPMs, &primary.PPMEntry{
			Asset:    p.Asset,
			TaskID:   p.TaskID,
			Status:   p.Status,
			Comments: p.Comments,
		})
	}
	for _, sp := range d.Spares {
		out.Spares = append(out.Spares, &primary.SpareEntry{
			PartNumber:   sp.PartNumber,
			Description:  sp.Description,
			Location:     sp.Location,
			CategoryCode: sp.CategoryCode,
			Quantity:     sp.Quantity,
			Decision:     sp.Decision,
		})
	}
	return out, nil
}

// DiscardDraft deletes the current draft without saving.
func (s *ReportServiceImpl) DiscardDraft(ctx context.Context) error {
	return s.drafts.Discard()
}

// Commit persists the draft, decrements inventory for new reports, renders
// both documents and clears the draft. Persistence is the only hard-fail
// step; render and archive failures are reported in the result.
func (s *ReportServiceImpl) Commit(ctx context.Context, req primary.CommitRequest) (*primary.CommitResult, error) {
	d, err := s.drafts.Load()
	if err != nil {
		return nil, err
	}

	aggregate := s.buildAggregate(d, req)

	reportID, err := s.reports.Save(ctx, aggregate)
	if err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	aggregate.Header.ID = reportID

	result := &primary.CommitResult{
		ReportID: reportID,
		Created:  d.EditingReportID == 0,
	}

	generatedAt := s.now()
	var workbookBytes, pdfBytes []byte
	if workbookBytes, err = s.workbook.Render(aggregate, generatedAt); err != nil {
		result.WorkbookError = err.Error()
		s.log.Warn("workbook render failed", zap.Int64("report_id", reportID), zap.Error(err))
	}
	if pdfBytes, err = s.pdf.Render(aggregate, generatedAt); err != nil {
		result.PDFError = err.Error()
		s.log.Warn("pdf render failed", zap.Int64("report_id", reportID), zap.Error(err))
	}

	paths, err := s.archive.Store(&aggregate.Header, workbookBytes, pdfBytes)
	if err != nil {
		s.log.Warn("document archive failed", zap.Int64("report_id", reportID), zap.Error(err))
		if result.WorkbookError == "" {
			result.WorkbookError = err.Error()
		}
		if result.PDFError == "" {
			result.PDFError = err.Error()
		}
	} else {
		if result.WorkbookError == "" {
			result.WorkbookPath = paths.WorkbookPath
		}
		if result.PDFError == "" {
			result.PDFPath = paths.PDFPath
		}
	}

	if err := s.drafts.Discard(); err != nil {
		return nil, err
	}

	s.log.Info("report committed",
		zap.Int64("report_id", reportID),
		zap.Bool("created", result.Created),
		zap.String("date", aggregate.Header.Date),
		zap.String("shift", aggregate.Header.Shift))

	return result, nil
}

func (s *ReportServiceImpl) buildAggregate(d *draft.Draft, req primary.CommitRequest) *secondary.ReportAggregate {
	aggregate := &secondary.ReportAggregate{
		Header: secondary.ReportHeaderRecord{
			ID:             d.EditingReportID,
			Date:           d.Date,
			Shift:          d.Shift,
			Engineer:       d.Engineer,
			SecondEngineer: d.SecondEngineer,
			TeamMembers:    d.TeamMembers,
			HandoverNotes:  req.HandoverNotes,
			RadiosCharged:  req.RadiosCharged,
			PhonesWorking:  req.PhonesWorking,
			KeysHanded:     req.KeysHanded,
			SafetyCheck:    req.SafetyCheck,
			SubmittedAt:    s.now().UTC().Format(time.RFC3339),
		},
		DecrementInventory: d.EditingReportID == 0,
	}
	for _, t := range d.Reactives {
		aggregate.Reactives = append(aggregate.Reactives, &secondary.ReactiveRecord{
			Asset:           t.Asset,
			TimeCalled:      t.TimeCalled,
			TimeBack:        t.TimeBack,
			Fault:           t.Fault,
			Engineers:       t.Engineers,
			Description:     t.Description,
			DowntimeMinutes: t.DowntimeMinutes,
			Status:          t.Status,
		})
	}
	for _, p := range d.PPMs {
		aggregate.PPMs = append(aggregate.PPMs, &secondary.PPMRecord{
			Asset:    p.Asset,
			TaskID:   p.TaskID,
			Status:   p.Status,
			Comments: p.Comments,
		})
	}
	for _, sp := range d.Spares {
		aggregate.Spares = append(aggregate.Spares, &secondary.SpareUsageRecord{
			PartNumber:   sp.PartNumber,
			Description:  sp.Description,
			Location:     sp.Location,
			CategoryCode: sp.CategoryCode,
			Quantity:     sp.Quantity,
			Decision:     sp.Decision,
		})
	}
	return aggregate
}

// GetReport retrieves a stored report with its children.
func (s *ReportServiceImpl) GetReport(ctx context.Context, id int64) (*primary.Report, error) {
	header, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reactives, ppms, spares, err := s.reports.GetChildren(ctx, id)
	if err != nil {
		return nil, err
	}

	report := &primary.Report{
		ID:             header.ID,
		Date:           header.Date,
		Shift:          header.Shift,
		Engineer:       header.Engineer,
		SecondEngineer: header.SecondEngineer,
		TeamMembers:    header.TeamMembers,
		HandoverNotes:  header.HandoverNotes,
		RadiosCharged:  header.RadiosCharged,
		PhonesWorking:  header.PhonesWorking,
		KeysHanded:     header.KeysHanded,
		SafetyCheck:    header.SafetyCheck,
		SubmittedAt:    header.SubmittedAt,
	}
	for _, t := range reactives {
		report.Reactives = append(report.Reactives, &primary.ReactiveEntry{
			Asset:           t.Asset,
			TimeCalled:      t.TimeCalled,
			TimeBack:        t.TimeBack,
			Fault:           t.Fault,
			Engineers:       t.Engineers,
			Description:     t.Description,
			DowntimeMinutes: t.DowntimeMinutes,
			Status:          t.Status,
		})
	}
	for _, p := range ppms {
		report.PPMs = append(report.PPMs, &primary.PPMEntry{
			Asset:    p.Asset,
			TaskID:   p.TaskID,
			Status:   p.Status,
			Comments: p.Comments,
		})
	}
	for _, sp := range spares {
		report.Spares = append(report.Spares, &primary.SpareEntry{
			PartNumber:   sp.PartNumber,
			Description:  sp.Description,
			Location:     sp.Location,
			CategoryCode: sp.CategoryCode,
			Quantity:     sp.Quantity,
			Decision:     sp.Decision,
		})
	}
	return report, nil
}

// ListReports lists stored report headers, newest first.
func (s *ReportServiceImpl) ListReports(ctx context.Context, filters primary.ReportFilters) ([]*primary.ReportSummary, error) {
	headers, err := s.reports.List(ctx, secondary.ReportFilters{
		Engineer: filters.Engineer,
		Shift:    filters.Shift,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]*primary.ReportSummary, 0, len(headers))
	for _, h := range headers {
		summaries = append(summaries, &primary.ReportSummary{
			ID:          h.ID,
			Date:        h.Date,
			Shift:       h.Shift,
			Engineer:    h.Engineer,
			SubmittedAt: h.SubmittedAt,
		})
	}
	return summaries, nil
}

// AssetHistory lists an asset's reactive history across all reports.
func (s *ReportServiceImpl) AssetHistory(ctx context.Context, asset string) ([]*primary.AssetEvent, error) {
	records, err := s.reports.ReactiveHistoryByAsset(ctx, asset)
	if err != nil {
		return nil, err
	}

	events := make([]*primary.AssetEvent, 0, len(records))
	for _, r := range records {
		events = append(events, &primary.AssetEvent{
			Date:            r.Date,
			Shift:           r.Shift,
			Engineer:        r.Engineer,
			Fault:           r.Fault,
			Description:     r.Description,
			DowntimeMinutes: r.DowntimeMinutes,
			Status:          r.Status,
		})
	}
	return events, nil
}

func summarize(d *draft.Draft) *primary.DraftSummary {
	return &primary.DraftSummary{
		EditingReportID: d.EditingReportID,
		Date:            d.Date,
		Shift:           d.Shift,
		Engineer:        d.Engineer,
		Reactives:       len(d.Reactives),
		PPMs:            len(d.PPMs),
		Spares:          len(d.Spares),
		CarriedOver:     d.CarriedOver,
		Scheduled:       d.Scheduled,
	}
}

var _ primary.ReportService = (*ReportServiceImpl)(nil)
