package documents

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/example/shiftops/internal/ports/secondary"
)

// PDFRenderer renders the print-friendly summary document: a title page with
// the header fields and handover notes, then one page per populated section.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF bytes for a report aggregate.
func (r *PDFRenderer) Render(aggregate *secondary.ReportAggregate, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt.UTC())
	pdf.SetModificationDate(generatedAt.UTC())
	pdf.SetTitle(fmt.Sprintf("Shift Report #%d", aggregate.Header.ID), true)

	r.writeTitlePage(pdf, &aggregate.Header)

	if len(aggregate.Reactives) > 0 {
		r.writeReactivePage(pdf, aggregate.Reactives)
	}
	if len(aggregate.PPMs) > 0 {
		r.writePPMPage(pdf, aggregate.PPMs)
	}
	if len(aggregate.Spares) > 0 {
		r.writeSparesPage(pdf, aggregate.Spares)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) writeTitlePage(pdf *fpdf.Fpdf, header *secondary.ReportHeaderRecord) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 14, fmt.Sprintf("SHIFT REPORT #%d", header.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	engineer := header.Engineer
	if header.SecondEngineer != "" {
		engineer += " / " + header.SecondEngineer
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Engineer: %s", engineer), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Date: %s    Shift: %s", header.Date, header.Shift), "", 1, "L", false, 0, "")
	if header.TeamMembers != "" {
		pdf.CellFormat(0, 8, fmt.Sprintf("Team: %s", header.TeamMembers), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "HANDOVER NOTES", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, header.HandoverNotes, "1", "L", false)
}

func (r *PDFRenderer) writeReactivePage(pdf *fpdf.Fpdf, reactives []*secondary.ReactiveRecord) {
	pdf.AddPage()
	r.sectionTitle(pdf, "Reactive Tasks")

	widths := []float64{40, 55, 45, 25}
	r.tableHeader(pdf, widths, []string{"Asset", "Fault", "Time", "DT (m)"})

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range reactives {
		window := fmt.Sprintf("%s - %s", t.TimeCalled, t.TimeBack)
		pdf.CellFormat(widths[0], 7, t.Asset, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, t.Fault, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, window, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.1f", t.DowntimeMinutes), "1", 1, "R", false, 0, "")
	}
}

func (r *PDFRenderer) writePPMPage(pdf *fpdf.Fpdf, ppms []*secondary.PPMRecord) {
	pdf.AddPage()
	r.sectionTitle(pdf, "PPM Tasks")

	widths := []float64{50, 35, 35, 45}
	r.tableHeader(pdf, widths, []string{"Asset", "Task", "Status", "Comments"})

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range ppms {
		pdf.CellFormat(widths[0], 7, p.Asset, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, p.TaskID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, p.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, p.Comments, "1", 1, "L", false, 0, "")
	}
}

func (r *PDFRenderer) writeSparesPage(pdf *fpdf.Fpdf, spares []*secondary.SpareUsageRecord) {
	pdf.AddPage()
	r.sectionTitle(pdf, "Spares Used")

	widths := []float64{35, 65, 20, 45}
	r.tableHeader(pdf, widths, []string{"ART #", "Description", "Qty", "Decision"})

	pdf.SetFont("Helvetica", "", 10)
	for _, s := range spares {
		pdf.CellFormat(widths[0], 7, s.PartNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, s.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d", s.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, s.Decision, "1", 1, "L", false, 0, "")
	}
}

func (r *PDFRenderer) sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (r *PDFRenderer) tableHeader(pdf *fpdf.Fpdf, widths []float64, headers []string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(224, 224, 224)
	for i, h := range headers {
		last := 0
		if i == len(headers)-1 {
			last = 1
		}
		pdf.CellFormat(widths[i], 7, h, "1", last, "C", true, 0, "")
	}
}

var _ secondary.PDFRenderer = (*PDFRenderer)(nil)
