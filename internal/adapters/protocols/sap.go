package protocols

import (
	"strings"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
)

// SAPProtocol converts grids to SAP IDoc XML. The grid's root name is the
// IDoc type (e.g. "ORDERS05"). Parsing IDoc XML back to a grid is not yet
// implemented; ParseInput reports that instead of guessing.
type SAPProtocol struct{}

// NewSAPProtocol creates a SAP IDoc protocol instance.
func NewSAPProtocol() *SAPProtocol {
	return &SAPProtocol{}
}

// Name returns the canonical protocol name.
func (p *SAPProtocol) Name() string {
	return "SAP IDoc"
}

// Version returns the IDoc record version.
func (p *SAPProtocol) Version() string {
	return "3.0"
}

// SupportedFeatures returns the capability list.
func (p *SAPProtocol) SupportedFeatures() []string {
	return []string{
		"IDocDefinition",
		"ControlRecord",
		"SegmentDefinition",
	}
}

// ValidateStructure requires only the IDoc type.
func (p *SAPProtocol) ValidateStructure(doc *domain.SchemaDocument) domain.ValidationResult {
	if doc == nil {
		return domain.Invalid("No schema document provided")
	}

	if strings.TrimSpace(doc.RootName) == "" {
		return domain.Invalid("Root name is required")
	}

	return domain.Valid()
}

// GenerateOutput emits IDoc XML: an EDI_DC40 control record populated from
// the IDoc type and optional message type, then one data segment whose name
// drops the IDoc type's last two characters and takes an E1 prefix
// ("ORDERS05" becomes "E1ORDERS"). Each named grid row becomes an
// upper-cased tag holding the row's type token as placeholder content. On
// validation failure a descriptive error string is returned in place of XML.
func (p *SAPProtocol) GenerateOutput(doc *domain.SchemaDocument) string {
	validation := p.ValidateStructure(doc)
	if !validation.IsValid {
		return "Error generating SAP IDoc: " + strings.Join(validation.Errors, "; ")
	}

	idocType := doc.RootName
	segment := dataSegmentName(idocType)

	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<` + idocType + `>` + "\n")
	b.WriteString(`  <IDOC BEGIN="1">` + "\n")
	b.WriteString(`    <EDI_DC40 SEGMENT="1">` + "\n")
	b.WriteString(`      <TABNAM>EDI_DC40</TABNAM>` + "\n")
	b.WriteString(`      <IDOCTYP>` + idocType + `</IDOCTYP>` + "\n")

	if doc.MessageType != "" {
		b.WriteString(`      <MESTYP>` + doc.MessageType + `</MESTYP>` + "\n")
	}

	b.WriteString(`      <SNDPRT>LS</SNDPRT>` + "\n")
	b.WriteString(`      <RCVPRT>LS</RCVPRT>` + "\n")
	b.WriteString(`    </EDI_DC40>` + "\n")
	b.WriteString(`    <` + segment + ` SEGMENT="1">` + "\n")

	for _, row := range filterEmptyRows(doc.GridData) {
		if row.Name == "" {
			continue
		}

		tag := strings.ToUpper(row.Name)
		b.WriteString(`      <` + tag + `>` + row.Type + `</` + tag + `>` + "\n")
	}

	b.WriteString(`    </` + segment + `>` + "\n")
	b.WriteString(`  </IDOC>` + "\n")
	b.WriteString(`</` + idocType + `>` + "\n")

	return b.String()
}

// dataSegmentName derives the E1 data segment name from the IDoc type.
func dataSegmentName(idocType string) string {
	base := idocType
	if len(base) > 2 {
		base = base[:len(base)-2]
	}

	return "E1" + strings.ToUpper(base)
}

// ParseInput is a deliberate stub: IDoc extraction back into the grid has
// no reference behavior to match yet.
func (p *SAPProtocol) ParseInput(input string) domain.ParseResult {
	return domain.ParseResult{
		GridData: []domain.GridRow{},
		Error:    "SAP IDoc parsing is not yet implemented",
	}
}
