package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	projectapimodels "freelance-tracker-backend/models/api/project"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type Provider interface {
	ProjectReport(project projectapimodels.ProjectView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ProjectReport renders a one-page pipeline summary for a project. Core
// fonts only, step titles are French so everything goes through the
// cp1252 translator.
func (i impl) ProjectReport(project projectapimodels.ProjectView) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("Pipeline - %s", project.Role)), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(project.Role), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if project.ClientName != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Client: %s", project.ClientName)), "", 1, "L", false, 0, "")
	}
	if project.SourceName != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Source: %s", project.SourceName)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Daily rate: %d EUR", project.DailyRate)), "", 1, "L", false, 0, "")
	if project.WorkMode != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Work mode: %s", project.WorkMode)), "", 1, "L", false, 0, "")
	}
	if len(project.TechStack) > 0 {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Tech stack: %s", strings.Join(project.TechStack, ", "))), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Status: %s", project.Status)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeStepsTable(pdf, tr, project.Steps)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "failed to render project report pdf")
	}
	return buf, nil
}

func writeStepsTable(pdf *fpdf.Fpdf, tr func(string) string, steps []projectapimodels.StepView) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Interview steps"), "", 1, "L", false, 0, "")

	widths := []float64{60, 40, 40, 50}
	headers := []string{"Step", "Date", "Status", "Notes"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for idx, header := range headers {
		pdf.CellFormat(widths[idx], 7, tr(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, step := range steps {
		date := ""
		if step.Date != nil {
			date = step.Date.Format("02.01.2006 15:04")
		}
		pdf.CellFormat(widths[0], 7, tr(step.Title), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, string(step.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, tr(truncate(step.Notes, 40)), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	if len(steps) == 0 {
		pdf.CellFormat(0, 7, tr("No steps yet"), "1", 1, "L", false, 0, "")
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
