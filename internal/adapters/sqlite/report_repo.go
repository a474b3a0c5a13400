// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/shiftops/internal/ports/secondary"
)

// ReportRepository implements secondary.ReportRepository with SQLite.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new SQLite report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const reportSelectCols = "id, date, shift, engineer, second_engineer, team_members, handover_notes, radios_charged, phones_working, keys_handed, safety_check, submitted_at"

// scanReport scans a report header row into a ReportHeaderRecord.
func scanReport(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ReportHeaderRecord, error) {
	var (
		secondEngineer sql.NullString
		teamMembers    sql.NullString
		handoverNotes  sql.NullString
		submittedAt    sql.NullTime
	)

	record := &secondary.ReportHeaderRecord{}
	err := scanner.Scan(
		&record.ID, &record.Date, &record.Shift, &record.Engineer, &secondEngineer,
		&teamMembers, &handoverNotes, &record.RadiosCharged, &record.PhonesWorking,
		&record.KeysHanded, &record.SafetyCheck, &submittedAt,
	)
	if err != nil {
		return nil, err
	}

	record.SecondEngineer = secondEngineer.String
	record.TeamMembers = teamMembers.String
	record.HandoverNotes = handoverNotes.String
	if submittedAt.Valid {
		record.SubmittedAt = submittedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// scanReactive scans a reactive task row into a ReactiveRecord.
func scanReactive(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ReactiveRecord, error) {
	var (
		timeCalled  sql.NullString
		timeBack    sql.NullString
		fault       sql.NullString
		description sql.NullString
	)

	record := &secondary.ReactiveRecord{}
	err := scanner.Scan(
		&record.ID, &record.ReportID, &record.Asset, &timeCalled, &timeBack,
		&fault, &record.Engineers, &description, &record.DowntimeMinutes, &record.Status,
	)
	if err != nil {
		return nil, err
	}

	record.TimeCalled = timeCalled.String
	record.TimeBack = timeBack.String
	record.Fault = fault.String
	record.Description = description.String

	return record, nil
}

// Create persists a new report header.
func (r *ReportRepository) Create(ctx context.Context, header *secondary.ReportHeaderRecord) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	id, err := insertHeader(ctx, tx, header)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit report: %w", err)
	}
	return id, nil
}

// UpdateHeader replaces the header fields of an existing report.
func (r *ReportRepository) UpdateHeader(ctx context.Context, id int64, header *secondary.ReportHeaderRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := updateHeader(ctx, tx, id, header); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit header update: %w", err)
	}
	return nil
}

// ReplaceChildren deletes all child rows for the report and inserts the given
// sets in a single transaction.
func (r *ReportRepository) ReplaceChildren(ctx context.Context, reportID int64, reactives []*secondary.ReactiveRecord, ppms []*secondary.PPMRecord, spares []*secondary.SpareUsageRecord) error {
	exists, err := r.reportExists(ctx, reportID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("report %d: %w", reportID, secondary.ErrNotFound)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := replaceChildren(ctx, tx, reportID, reactives, ppms, spares); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit child replacement: %w", err)
	}
	return nil
}

// Save persists the whole aggregate atomically: header create-or-update,
// child replacement, and inventory decrements for every spare used.
func (r *ReportRepository) Save(ctx context.Context, aggregate *secondary.ReportAggregate) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	id := aggregate.Header.ID
	if id == 0 {
		id, err = insertHeader(ctx, tx, &aggregate.Header)
	} else {
		err = updateHeader(ctx, tx, id, &aggregate.Header)
	}
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := replaceChildren(ctx, tx, id, aggregate.Reactives, aggregate.PPMs, aggregate.Spares); err != nil {
		tx.Rollback()
		return 0, err
	}

	if aggregate.DecrementInventory {
		for _, s := range aggregate.Spares {
			// Missing part numbers are a deliberate no-op.
			_, err := tx.ExecContext(ctx,
				"UPDATE spares_inventory SET stock_level = stock_level - ? WHERE art_number = ?",
				s.Quantity, s.PartNumber,
			)
			if err != nil {
				tx.Rollback()
				return 0, fmt.Errorf("failed to decrement stock for %s: %w", s.PartNumber, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit report save: %w", err)
	}
	return id, nil
}

// GetByID retrieves a report header by its id.
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*secondary.ReportHeaderRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reportSelectCols+" FROM reports WHERE id = ?",
		id,
	)

	record, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return record, nil
}

// GetChildren retrieves all child rows for a report.
func (r *ReportRepository) GetChildren(ctx context.Context, reportID int64) ([]*secondary.ReactiveRecord, []*secondary.PPMRecord, []*secondary.SpareUsageRecord, error) {
	reactives, err := r.queryReactives(ctx,
		"SELECT id, report_id, asset, time_called, time_back, fault, engineers, description, downtime, status FROM reactives WHERE report_id = ? ORDER BY id ASC",
		reportID,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, report_id, asset, ppm_id, status, comments FROM ppms WHERE report_id = ? ORDER BY id ASC",
		reportID,
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get ppms: %w", err)
	}
	defer rows.Close()

	var ppms []*secondary.PPMRecord
	for rows.Next() {
		var taskID, comments sql.NullString
		record := &secondary.PPMRecord{}
		if err := rows.Scan(&record.ID, &record.ReportID, &record.Asset, &taskID, &record.Status, &comments); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to scan ppm: %w", err)
		}
		record.TaskID = taskID.String
		record.Comments = comments.String
		ppms = append(ppms, record)
	}

	spareRows, err := r.db.QueryContext(ctx,
		"SELECT id, report_id, art_number, description, location, category_code, quantity, decision FROM spares_used WHERE report_id = ? ORDER BY id ASC",
		reportID,
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get spares: %w", err)
	}
	defer spareRows.Close()

	var spares []*secondary.SpareUsageRecord
	for spareRows.Next() {
		var desc, loc, decision sql.NullString
		var categoryCode sql.NullInt64
		record := &secondary.SpareUsageRecord{}
		if err := spareRows.Scan(&record.ID, &record.ReportID, &record.PartNumber, &desc, &loc, &categoryCode, &record.Quantity, &decision); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to scan spare usage: %w", err)
		}
		record.Description = desc.String
		record.Location = loc.String
		record.CategoryCode = int(categoryCode.Int64)
		record.Decision = decision.String
		spares = append(spares, record)
	}

	return reactives, ppms, spares, nil
}

// List retrieves report headers matching the given filters, newest first.
func (r *ReportRepository) List(ctx context.Context, filters secondary.ReportFilters) ([]*secondary.ReportHeaderRecord, error) {
	query := "SELECT " + reportSelectCols + " FROM reports WHERE 1=1"
	args := []any{}

	if filters.Engineer != "" {
		query += " AND engineer = ?"
		args = append(args, filters.Engineer)
	}

	if filters.Shift != "" {
		query += " AND shift = ?"
		args = append(args, filters.Shift)
	}

	query += " ORDER BY id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*secondary.ReportHeaderRecord
	for rows.Next() {
		record, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, record)
	}

	return reports, nil
}

// OpenReactives retrieves reactive tasks whose status is not Complete, across
// all historical reports.
func (r *ReportRepository) OpenReactives(ctx context.Context) ([]*secondary.ReactiveRecord, error) {
	return r.queryReactives(ctx,
		"SELECT id, report_id, asset, time_called, time_back, fault, engineers, description, downtime, status FROM reactives WHERE status != ? ORDER BY id ASC",
		"Complete",
	)
}

// ReactiveHistoryByAsset retrieves an asset's reactive history joined with
// the owning report's date, shift and engineer, newest first.
func (r *ReportRepository) ReactiveHistoryByAsset(ctx context.Context, asset string) ([]*secondary.AssetEventRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rep.date, rep.shift, rep.engineer, t.asset, t.fault, t.description, t.downtime, t.status
		FROM reactives t
		INNER JOIN reports rep ON t.report_id = rep.id
		WHERE t.asset = ?
		ORDER BY rep.date DESC, t.id DESC
	`, asset)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset history: %w", err)
	}
	defer rows.Close()

	var events []*secondary.AssetEventRecord
	for rows.Next() {
		var fault, description sql.NullString
		record := &secondary.AssetEventRecord{}
		if err := rows.Scan(&record.Date, &record.Shift, &record.Engineer, &record.Asset, &fault, &description, &record.DowntimeMinutes, &record.Status); err != nil {
			return nil, fmt.Errorf("failed to scan asset event: %w", err)
		}
		record.Fault = fault.String
		record.Description = description.String
		events = append(events, record)
	}

	return events, nil
}

func (r *ReportRepository) reportExists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check report existence: %w", err)
	}
	return count > 0, nil
}

func (r *ReportRepository) queryReactives(ctx context.Context, query string, args ...any) ([]*secondary.ReactiveRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reactives: %w", err)
	}
	defer rows.Close()

	var reactives []*secondary.ReactiveRecord
	for rows.Next() {
		record, err := scanReactive(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reactive: %w", err)
		}
		reactives = append(reactives, record)
	}

	return reactives, nil
}

func insertHeader(ctx context.Context, tx *sql.Tx, header *secondary.ReportHeaderRecord) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO reports (date, shift, engineer, second_engineer, team_members, handover_notes,
			radios_charged, phones_working, keys_handed, safety_check, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, header.Date, header.Shift, header.Engineer, nullable(header.SecondEngineer),
		nullable(header.TeamMembers), nullable(header.HandoverNotes),
		header.RadiosCharged, header.PhonesWorking, header.KeysHanded, header.SafetyCheck)
	if err != nil {
		return 0, fmt.Errorf("failed to create report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get report id: %w", err)
	}
	return id, nil
}

func updateHeader(ctx context.Context, tx *sql.Tx, id int64, header *secondary.ReportHeaderRecord) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE reports SET date = ?, shift = ?, engineer = ?, second_engineer = ?, team_members = ?,
			handover_notes = ?, radios_charged = ?, phones_working = ?, keys_handed = ?,
			safety_check = ?, submitted_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, header.Date, header.Shift, header.Engineer, nullable(header.SecondEngineer),
		nullable(header.TeamMembers), nullable(header.HandoverNotes),
		header.RadiosCharged, header.PhonesWorking, header.KeysHanded, header.SafetyCheck, id)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("report %d: %w", id, secondary.ErrNotFound)
	}
	return nil
}

func replaceChildren(ctx context.Context, tx *sql.Tx, reportID int64, reactives []*secondary.ReactiveRecord, ppms []*secondary.PPMRecord, spares []*secondary.SpareUsageRecord) error {
	for _, table := range []string{"reactives", "ppms", "spares_used"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE report_id = ?", reportID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, t := range reactives {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO reactives (report_id, asset, time_called, time_back, fault, engineers, description, downtime, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			reportID, t.Asset, nullable(t.TimeCalled), nullable(t.TimeBack), nullable(t.Fault),
			t.Engineers, nullable(t.Description), t.DowntimeMinutes, t.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert reactive: %w", err)
		}
	}

	for _, p := range ppms {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO ppms (report_id, asset, ppm_id, status, comments) VALUES (?, ?, ?, ?, ?)",
			reportID, p.Asset, nullable(p.TaskID), p.Status, nullable(p.Comments),
		)
		if err != nil {
			return fmt.Errorf("failed to insert ppm: %w", err)
		}
	}

	for _, s := range spares {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO spares_used (report_id, art_number, description, location, category_code, quantity, decision) VALUES (?, ?, ?, ?, ?, ?, ?)",
			reportID, s.PartNumber, nullable(s.Description), nullable(s.Location),
			s.CategoryCode, s.Quantity, nullable(s.Decision),
		)
		if err != nil {
			return fmt.Errorf("failed to insert spare usage: %w", err)
		}
	}

	return nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure ReportRepository implements the interface
var _ secondary.ReportRepository = (*ReportRepository)(nil)
