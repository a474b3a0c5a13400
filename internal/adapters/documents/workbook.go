// Package documents renders shift report aggregates into downloadable
// artifacts. Renderers are pure functions of the aggregate and the supplied
// generation timestamp; they never re-query the store.
package documents

import (
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/shiftops/internal/ports/secondary"
)

const sheetName = "Shift Report"

// WorkbookRenderer renders the fixed-layout multi-section workbook.
type WorkbookRenderer struct{}

// NewWorkbookRenderer creates a workbook renderer.
func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

// Render produces the workbook bytes for a report aggregate.
func (r *WorkbookRenderer) Render(aggregate *secondary.ReportAggregate, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	// Pin document properties so output is deterministic for a given input.
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:  "shiftops",
		Created:  generatedAt.UTC().Format(time.RFC3339),
		Modified: generatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}

	header := aggregate.Header
	if err := r.writeHeaderBlock(f, styles, &header); err != nil {
		return nil, err
	}

	row := 8
	if len(aggregate.Reactives) > 0 {
		row, err = r.writeReactiveSection(f, styles, aggregate.Reactives, row)
		if err != nil {
			return nil, err
		}
		row++
	}

	if len(aggregate.PPMs) > 0 {
		row, err = r.writePPMSection(f, styles, aggregate.PPMs, row)
		if err != nil {
			return nil, err
		}
		row++
	}

	if len(aggregate.Spares) > 0 {
		if _, err := r.writeSparesSection(f, styles, &header, aggregate.Spares, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// workbookStyles holds the style ids shared across sections.
type workbookStyles struct {
	banner     int
	tableHead  int
	blueHead   int
	bordered   int
	notesBlock int
}

func newWorkbookStyles(f *excelize.File) (*workbookStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}

	banner, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFD100"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create banner style: %w", err)
	}

	tableHead, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create table header style: %w", err)
	}

	blueHead, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#0070C0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blue header style: %w", err)
	}

	bordered, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, fmt.Errorf("failed to create bordered style: %w", err)
	}

	notesBlock, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notes style: %w", err)
	}

	return &workbookStyles{
		banner:     banner,
		tableHead:  tableHead,
		blueHead:   blueHead,
		bordered:   bordered,
		notesBlock: notesBlock,
	}, nil
}

func (r *WorkbookRenderer) writeHeaderBlock(f *excelize.File, styles *workbookStyles, header *secondary.ReportHeaderRecord) error {
	if err := f.SetCellValue(sheetName, "A1", "Engineer:"); err != nil {
		return fmt.Errorf("failed to write header block: %w", err)
	}
	f.SetCellValue(sheetName, "B1", header.Engineer)
	f.SetCellValue(sheetName, "C1", header.SecondEngineer)

	if err := f.MergeCell(sheetName, "E1", "L6"); err != nil {
		return fmt.Errorf("failed to merge notes block: %w", err)
	}
	f.SetCellValue(sheetName, "E1", "HANDOVER NOTES:\n"+header.HandoverNotes)
	f.SetCellStyle(sheetName, "E1", "E1", styles.notesBlock)

	checks := []struct {
		label string
		value bool
	}{
		{"RADIO CHECK", header.RadiosCharged},
		{"PHONES HANDED", header.PhonesWorking},
		{"KEYS HANDED", header.KeysHanded},
		{"SAFETY OK", header.SafetyCheck},
	}
	for i, check := range checks {
		row := 3 + i
		mark := "☐"
		if check.value {
			mark = "☑"
		}
		labelCell := fmt.Sprintf("A%d", row)
		markCell := fmt.Sprintf("B%d", row)
		f.SetCellValue(sheetName, labelCell, check.label)
		f.SetCellValue(sheetName, markCell, mark)
		f.SetCellStyle(sheetName, labelCell, markCell, styles.bordered)
	}

	return nil
}

func (r *WorkbookRenderer) writeReactiveSection(f *excelize.File, styles *workbookStyles, reactives []*secondary.ReactiveRecord, row int) (int, error) {
	if err := r.writeBanner(f, styles, "Reactive Tasks", row, "L"); err != nil {
		return 0, err
	}
	row++

	headers := []string{"Time Called", "Time Back", "Asset", "Fault", "Comment", "Engs", "Man Hrs", "DT Hrs"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return 0, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, styles.tableHead)
	}
	row++

	for _, t := range reactives {
		dtHours := t.DowntimeMinutes / 60
		labourHours := dtHours * float64(t.Engineers)
		values := []any{
			t.TimeCalled, t.TimeBack, t.Asset, t.Fault, t.Description,
			t.Engineers, round2(labourHours), round2(dtHours),
		}
		if err := r.writeBorderedRow(f, styles, row, 1, values); err != nil {
			return 0, err
		}
		row++
	}

	return row, nil
}

func (r *WorkbookRenderer) writePPMSection(f *excelize.File, styles *workbookStyles, ppms []*secondary.PPMRecord, row int) (int, error) {
	if err := r.writeBanner(f, styles, "PPM Tasks", row, "D"); err != nil {
		return 0, err
	}
	row++

	for _, p := range ppms {
		if err := r.writeBorderedRow(f, styles, row, 1, []any{p.Asset, p.TaskID, p.Status, p.Comments}); err != nil {
			return 0, err
		}
		row++
	}

	return row, nil
}

// writeSparesSection lays out the two stacked header/value row groups the
// warehouse team expects: catalog fields on the first row of each pair,
// usage fields on the second.
func (r *WorkbookRenderer) writeSparesSection(f *excelize.File, styles *workbookStyles, header *secondary.ReportHeaderRecord, spares []*secondary.SpareUsageRecord, row int) (int, error) {
	if err := r.writeBanner(f, styles, "Spares Used", row, "L"); err != nil {
		return 0, err
	}
	row++

	for col, h := range []string{"ART #", "LOCATION", "DESC", "CATEGORY", "REASON"} {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return 0, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, styles.blueHead)
	}
	row++

	for col, h := range []string{"QTY", "NAME", "DATE", "DECISION"} {
		cell, err := excelize.CoordinatesToCellName(col+6, row)
		if err != nil {
			return 0, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, styles.blueHead)
	}
	row++

	for _, s := range spares {
		catalogRow := []any{s.PartNumber, s.Location, s.Description, s.CategoryCode, "Wear Part"}
		if err := r.writeBorderedRow(f, styles, row, 1, catalogRow); err != nil {
			return 0, err
		}
		usageRow := []any{s.Quantity, header.Engineer, header.Date, s.Decision}
		if err := r.writeBorderedRow(f, styles, row+1, 6, usageRow); err != nil {
			return 0, err
		}
		row += 2
	}

	return row, nil
}

func (r *WorkbookRenderer) writeBanner(f *excelize.File, styles *workbookStyles, title string, row int, lastCol string) error {
	start := fmt.Sprintf("A%d", row)
	end := fmt.Sprintf("%s%d", lastCol, row)
	f.SetCellValue(sheetName, start, title)
	if err := f.MergeCell(sheetName, start, end); err != nil {
		return fmt.Errorf("failed to merge %s banner: %w", title, err)
	}
	f.SetCellStyle(sheetName, start, start, styles.banner)
	return nil
}

func (r *WorkbookRenderer) writeBorderedRow(f *excelize.File, styles *workbookStyles, row, startCol int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(startCol+i, row)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
		f.SetCellStyle(sheetName, cell, cell, styles.bordered)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ensure WorkbookRenderer implements the interface
var _ secondary.WorkbookRenderer = (*WorkbookRenderer)(nil)
