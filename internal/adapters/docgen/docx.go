package docgen

import (
	"fmt"
	"io"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const docxFormat = "docx"

// DocxExporter renders schema documentation as a Word (DOCX) document.
type DocxExporter struct{}

// NewDocxExporter creates a new DOCX exporter.
func NewDocxExporter() *DocxExporter {
	return &DocxExporter{}
}

// Format returns the output format name.
func (e *DocxExporter) Format() string {
	return docxFormat
}

// Export renders the schema document to DOCX.
func (e *DocxExporter) Export(doc *domain.SchemaDocument, output io.Writer) error {
	if doc == nil {
		return fmt.Errorf("no schema document provided")
	}

	document, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	e.addTitle(document, doc)

	for _, name := range complexTypes(doc) {
		e.addSection(document, "Complex Type: "+name, childRows(doc, name))
	}

	if rows := childRows(doc, ""); len(rows) > 0 {
		e.addSection(document, "Top-Level Elements", rows)
	}

	if err := document.Write(output); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (e *DocxExporter) addTitle(document *docx.RootDoc, doc *domain.SchemaDocument) {
	_, _ = document.AddHeading(doc.RootName, 0)

	if doc.TargetNamespace != "" {
		document.AddParagraph(fmt.Sprintf("Namespace: %s", doc.TargetNamespace))
	}

	if doc.MessageType != "" {
		document.AddParagraph(fmt.Sprintf("Message type: %s", doc.MessageType))
	}

	document.AddEmptyParagraph()
}

func (e *DocxExporter) addSection(document *docx.RootDoc, title string, rows []domain.GridRow) {
	_, _ = document.AddHeading(title, 1)

	for _, row := range rows {
		document.AddParagraph(fmt.Sprintf("• %s: %s (min %s, max %s)",
			row.Name,
			orDefault(row.Type, "-"),
			orDefault(row.MinOccurs, "1"),
			orDefault(row.MaxOccurs, "1"),
		))
	}

	document.AddEmptyParagraph()
}
