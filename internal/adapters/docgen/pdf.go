package docgen

import (
	"fmt"
	"io"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFormat     = "pdf"
	pdfMargin     = 10.0
	pdfLineHeight = 6.0
)

// pdfColumns are the grid columns rendered in field tables, with widths in mm.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"Name", 60},
	{"Type", 60},
	{"Min", 35},
	{"Max", 35},
}

// PDFExporter renders schema documentation as PDF.
type PDFExporter struct {
	pdf *gofpdf.Fpdf
}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Format returns the output format name.
func (e *PDFExporter) Format() string {
	return pdfFormat
}

// Export renders the schema document to PDF.
func (e *PDFExporter) Export(doc *domain.SchemaDocument, output io.Writer) error {
	if doc == nil {
		return fmt.Errorf("no schema document provided")
	}

	e.pdf = gofpdf.New("P", "mm", "A4", "")
	e.pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	e.pdf.SetDrawColor(180, 180, 180)
	e.pdf.AddPage()

	e.addTitle(doc)

	for _, name := range complexTypes(doc) {
		e.addSection("Complex Type: "+name, childRows(doc, name))
	}

	if rows := childRows(doc, ""); len(rows) > 0 {
		e.addSection("Top-Level Elements", rows)
	}

	return e.pdf.Output(output)
}

func (e *PDFExporter) addTitle(doc *domain.SchemaDocument) {
	e.pdf.SetFont("Helvetica", "B", 18)
	e.pdf.CellFormat(0, 10, doc.RootName, "", 1, "L", false, 0, "")

	e.pdf.SetFont("Helvetica", "", 10)

	if doc.TargetNamespace != "" {
		e.pdf.CellFormat(0, pdfLineHeight, "Namespace: "+doc.TargetNamespace, "", 1, "L", false, 0, "")
	}

	if doc.MessageType != "" {
		e.pdf.CellFormat(0, pdfLineHeight, "Message type: "+doc.MessageType, "", 1, "L", false, 0, "")
	}

	e.pdf.Ln(4)
}

func (e *PDFExporter) addSection(title string, rows []domain.GridRow) {
	e.pdf.SetFont("Helvetica", "B", 12)
	e.pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	e.pdf.SetFont("Helvetica", "B", 9)
	e.pdf.SetFillColor(235, 235, 235)

	for _, col := range pdfColumns {
		e.pdf.CellFormat(col.width, pdfLineHeight, col.title, "1", 0, "L", true, 0, "")
	}
	e.pdf.Ln(pdfLineHeight)

	e.pdf.SetFont("Helvetica", "", 9)

	for _, row := range rows {
		cells := []string{
			row.Name,
			orDefault(row.Type, "-"),
			orDefault(row.MinOccurs, "1"),
			orDefault(row.MaxOccurs, "1"),
		}

		for i, cell := range cells {
			e.pdf.CellFormat(pdfColumns[i].width, pdfLineHeight, cell, "1", 0, "L", false, 0, "")
		}
		e.pdf.Ln(pdfLineHeight)
	}

	e.pdf.Ln(4)
}
