package masterdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/example/shiftops/internal/ports/secondary"
)

// PPMScheduleSource reads the weekday-keyed maintenance schedule CSV with
// Asset, Day and Task Description columns.
type PPMScheduleSource struct {
	path string
}

// NewPPMScheduleSource creates a schedule source backed by the given CSV path.
func NewPPMScheduleSource(path string) *PPMScheduleSource {
	return &PPMScheduleSource{path: path}
}

// TasksForDay returns schedule rows whose Day matches the given weekday or is
// "Daily". Matching is case-insensitive.
func (s *PPMScheduleSource) TasksForDay(day time.Weekday) ([]*secondary.ScheduledPPM, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("ppm schedule %s: %w", s.path, secondary.ErrDataSourceMissing)
		}
		return nil, fmt.Errorf("failed to open ppm schedule: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse ppm schedule: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := mapScheduleColumns(rows[0])
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(day.String())
	var tasks []*secondary.ScheduledPPM
	for _, row := range rows[1:] {
		asset := fieldAt(row, cols.asset)
		if asset == "" {
			continue
		}
		rowDay := strings.ToLower(fieldAt(row, cols.day))
		if rowDay != want && rowDay != "daily" {
			continue
		}
		tasks = append(tasks, &secondary.ScheduledPPM{
			Asset:       asset,
			Description: fieldAt(row, cols.task),
		})
	}
	return tasks, nil
}

type scheduleColumns struct {
	asset int
	day   int
	task  int
}

func mapScheduleColumns(header []string) (*scheduleColumns, error) {
	cols := &scheduleColumns{asset: -1, day: -1, task: -1}
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case cols.asset == -1 && strings.Contains(name, "asset"):
			cols.asset = i
		case cols.day == -1 && strings.Contains(name, "day"):
			cols.day = i
		case cols.task == -1 && (strings.Contains(name, "task") || strings.Contains(name, "desc")):
			cols.task = i
		}
	}
	if cols.asset == -1 || cols.day == -1 {
		return nil, fmt.Errorf("ppm schedule missing asset or day column: %v", header)
	}
	return cols, nil
}

var _ secondary.PPMScheduleSource = (*PPMScheduleSource)(nil)
