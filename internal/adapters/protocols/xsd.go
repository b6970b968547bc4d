package protocols

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
)

// XSDProtocol converts grids to and from standalone XML Schema documents.
// It is a single-level converter: one root element wrapping a sequence of
// child elements, no named complex types.
type XSDProtocol struct{}

// NewXSDProtocol creates an XSD protocol instance.
func NewXSDProtocol() *XSDProtocol {
	return &XSDProtocol{}
}

// Name returns the canonical protocol name.
func (p *XSDProtocol) Name() string {
	return "XSD"
}

// Version returns the XML Schema version.
func (p *XSDProtocol) Version() string {
	return "1.0"
}

// SupportedFeatures returns the capability list.
func (p *XSDProtocol) SupportedFeatures() []string {
	return []string{
		"ElementDeclaration",
		"ComplexTypeDefinition",
		"SimpleTypeDefinition",
		"SequenceDefinition",
		"AttributeDeclaration",
	}
}

// ValidateStructure checks required document fields and that name and type
// are present together on every row.
func (p *XSDProtocol) ValidateStructure(doc *domain.SchemaDocument) domain.ValidationResult {
	if doc == nil {
		return domain.Invalid("No schema document provided")
	}

	var errs []string

	if strings.TrimSpace(doc.RootName) == "" {
		errs = append(errs, "Root name is required")
	}

	if strings.TrimSpace(doc.TargetNamespace) == "" {
		errs = append(errs, "Target namespace is required for XSD")
	}

	for i, row := range doc.GridData {
		rowNum := i + 1

		if row.Name != "" && row.Type == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Type is required when name is specified", rowNum))
		}

		if row.Type != "" && row.Name == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Name is required when type is specified", rowNum))
		}
	}

	if len(errs) > 0 {
		return domain.Invalid(errs...)
	}

	return domain.Valid()
}

// GenerateOutput produces an XSD document, or a descriptive error string in
// place of XML when validation fails. Occurrence attributes default to "1"
// and are omitted at that default.
func (p *XSDProtocol) GenerateOutput(doc *domain.SchemaDocument) string {
	validation := p.ValidateStructure(doc)
	if !validation.IsValid {
		return "Error generating XSD: " + strings.Join(validation.Errors, "; ")
	}

	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<xsd:schema xmlns:xsd="` + xsdNamespace + `"` + "\n")
	b.WriteString(`            targetNamespace="` + doc.TargetNamespace + `"` + "\n")
	b.WriteString(`            xmlns:tns="` + doc.TargetNamespace + `"` + "\n")
	b.WriteString(`            elementFormDefault="qualified">` + "\n")
	b.WriteString(`  <xsd:element name="` + doc.RootName + `">` + "\n")
	b.WriteString(`    <xsd:complexType>` + "\n")
	b.WriteString(`      <xsd:sequence>` + "\n")

	for _, row := range filterEmptyRows(doc.GridData) {
		if row.Name == "" {
			continue
		}

		typ := row.Type
		if !strings.Contains(typ, ":") {
			typ = "xsd:" + typ
		}

		minOccurs := row.MinOccurs
		if minOccurs == "" {
			minOccurs = "1"
		}

		maxOccurs := row.MaxOccurs
		if maxOccurs == "" {
			maxOccurs = "1"
		}

		b.WriteString(`        <xsd:element name="` + row.Name + `" type="` + typ + `"` +
			occursAttrs(minOccurs, maxOccurs) + `/>` + "\n")
	}

	b.WriteString(`      </xsd:sequence>` + "\n")
	b.WriteString(`    </xsd:complexType>` + "\n")
	b.WriteString(`  </xsd:element>` + "\n")
	b.WriteString(`</xsd:schema>` + "\n")

	return b.String()
}

var xsdRootElement = regexp.MustCompile(`<(?:xsd?:)?element\s+name="([^"]*)"\s*>`)

// ParseInput extracts the root element name, target namespace, and sequence
// elements via independent pattern passes. Stored type names have the xsd:
// prefix stripped, matching how the grid editor displays them.
func (p *XSDProtocol) ParseInput(input string) domain.ParseResult {
	result := domain.ParseResult{GridData: []domain.GridRow{}}

	if strings.TrimSpace(input) == "" {
		result.Error = "No XSD input provided"
		return result
	}

	if m := xsdRootElement.FindStringSubmatch(input); m != nil {
		result.RootName = m[1]
	} else {
		result.Error = "Unable to extract root element from XSD"
	}

	result.TargetNamespace = extractAttr(targetNSAttr, input)

	for _, row := range elementRowsFromTags(input, "") {
		if row.Name == result.RootName {
			continue
		}

		row.Type = strings.TrimPrefix(row.Type, "xsd:")
		result.GridData = append(result.GridData, row)
	}

	result.GridData = renumberRows(result.GridData)

	return result
}
