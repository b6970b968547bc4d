// Package docgen renders human-readable schema documentation from the grid
// model, for hand-off to integration partners.
package docgen

import (
	"io"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
)

// Exporter defines the interface for documentation exporters.
type Exporter interface {
	// Export renders the schema document to the target format.
	Export(doc *domain.SchemaDocument, output io.Writer) error

	// Format returns the output format name (e.g. "pdf", "docx").
	Format() string
}

// complexTypes returns the names of complex type definition rows, in grid
// order.
func complexTypes(doc *domain.SchemaDocument) []string {
	var names []string

	for _, row := range doc.GridData {
		if row.Type == "complexType" && row.Name != "" {
			names = append(names, row.Name)
		}
	}

	return names
}

// childRows returns the rows belonging to the named structure. An empty
// structure name selects the top-level element rows.
func childRows(doc *domain.SchemaDocument, structure string) []domain.GridRow {
	var rows []domain.GridRow

	for _, row := range doc.GridData {
		if row.IsEmpty() || row.Type == "complexType" {
			continue
		}

		if row.Structure == structure {
			rows = append(rows, row)
		}
	}

	return rows
}

// orDefault substitutes a placeholder for blank table cells.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
