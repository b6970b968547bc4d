package protocols

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
)

const (
	wsdl11Namespace = "http://schemas.xmlsoap.org/wsdl/"
	wsdl20Namespace = "http://www.w3.org/ns/wsdl"
	soap11Namespace = "http://schemas.xmlsoap.org/wsdl/soap/"
	wsoapNamespace  = "http://www.w3.org/ns/wsdl/soap"
	xsdNamespace    = "http://www.w3.org/2001/XMLSchema"
)

// xsdPrimitives holds the built-in XML Schema types accepted without a
// prefix. A bare token outside this set is treated as a reference to a
// complex type defined elsewhere in the grid.
var xsdPrimitives = map[string]bool{
	"string": true, "boolean": true, "decimal": true, "float": true,
	"double": true, "duration": true, "dateTime": true, "time": true,
	"date": true, "gYearMonth": true, "gYear": true, "gMonthDay": true,
	"gDay": true, "gMonth": true, "hexBinary": true, "base64Binary": true,
	"anyURI": true, "QName": true, "normalizedString": true, "token": true,
	"integer": true, "int": true, "long": true, "short": true, "byte": true,
	"nonNegativeInteger": true, "positiveInteger": true, "unsignedInt": true,
}

// complexTypeMarker is the type token that declares a row as a complex type
// definition rather than an element.
const complexTypeMarker = "complexType"

// WSDLProtocol converts grids to and from WSDL 1.1 / 2.0 service
// descriptions. The version is fixed at construction.
type WSDLProtocol struct {
	version string
}

// NewWSDLProtocol creates a WSDL protocol for the given version ("1.1" or
// "2.0"). An empty version defaults to "2.0".
func NewWSDLProtocol(version string) *WSDLProtocol {
	if version == "" {
		version = "2.0"
	}

	return &WSDLProtocol{version: version}
}

// Name returns the canonical protocol name.
func (p *WSDLProtocol) Name() string {
	return "WSDL"
}

// Version returns the configured WSDL version.
func (p *WSDLProtocol) Version() string {
	return p.version
}

// SupportedFeatures returns the capability list for the configured version.
func (p *WSDLProtocol) SupportedFeatures() []string {
	features := []string{"ServiceDefinition"}

	if p.version == "1.1" {
		features = append(features, "PortTypeDefinition")
	} else {
		features = append(features, "InterfaceDefinition")
	}

	return append(features,
		"BindingDefinition",
		"MessageDefinition",
		"TypesDefinition",
		"ComplexTypeDefinition",
		"SimpleTypeDefinition",
		"ElementDeclaration",
		"AttributeDeclaration",
	)
}

// ValidateStructure checks required document fields and per-row type rules,
// including resolution of bare-name complex type references against the
// grid itself.
func (p *WSDLProtocol) ValidateStructure(doc *domain.SchemaDocument) domain.ValidationResult {
	if doc == nil {
		return domain.Invalid("No schema document provided")
	}

	var errs []string

	if strings.TrimSpace(doc.RootName) == "" {
		errs = append(errs, "Root name is required")
	}

	if strings.TrimSpace(doc.TargetNamespace) == "" {
		errs = append(errs, "Target namespace is required for WSDL")
	}

	for i, row := range doc.GridData {
		rowNum := i + 1

		if row.Name != "" && row.Type == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Type is required when name is specified", rowNum))
			continue
		}

		if row.Type == "" || row.Type == complexTypeMarker {
			continue
		}

		if err := checkWSDLType(row.Type, doc.GridData, rowNum); err != "" {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return domain.Invalid(errs...)
	}

	return domain.Valid()
}

// checkWSDLType validates a single type token. Returns "" when valid.
func checkWSDLType(token string, grid []domain.GridRow, rowNum int) string {
	if xsdPrimitives[token] {
		return ""
	}

	if strings.HasPrefix(token, "xsd:") || strings.HasPrefix(token, "tns:") {
		return ""
	}

	if strings.Contains(token, ":") {
		return fmt.Sprintf("Row %d: Invalid WSDL type '%s'", rowNum, token)
	}

	// Bare non-primitive name: must resolve to a complex type defined in
	// the same grid.
	for _, row := range grid {
		if row.Name == token && row.Type == complexTypeMarker {
			return ""
		}
	}

	return fmt.Sprintf("Row %d: Complex type '%s' is not defined in the grid", rowNum, token)
}

// GenerateOutput produces WSDL text for the configured version. Generation
// is best-effort: blank optional fields fall back to defaults rather than
// aborting, so a caller that needs a hard failure signal must run
// ValidateStructure first.
func (p *WSDLProtocol) GenerateOutput(doc *domain.SchemaDocument) string {
	if doc == nil {
		doc = &domain.SchemaDocument{}
	}

	if p.version == "1.1" {
		return p.generate11(doc)
	}

	return p.generate20(doc)
}

func (p *WSDLProtocol) generate20(doc *domain.SchemaDocument) string {
	root := doc.RootName
	tns := doc.TargetNamespace

	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<description xmlns="` + wsdl20Namespace + `"` + "\n")
	b.WriteString(`             targetNamespace="` + tns + `"` + "\n")
	b.WriteString(`             xmlns:tns="` + tns + `"` + "\n")
	b.WriteString(`             xmlns:xsd="` + xsdNamespace + `"` + "\n")
	b.WriteString(`             xmlns:wsoap="` + wsoapNamespace + `">` + "\n")

	p.writeTypes(&b, doc)

	b.WriteString(`  <interface name="` + root + `Interface">` + "\n")
	b.WriteString(`    <operation name="` + root + `Operation" pattern="http://www.w3.org/ns/wsdl/in-out">` + "\n")
	b.WriteString(`      <input messageLabel="In" element="tns:` + root + `Request"/>` + "\n")
	b.WriteString(`      <output messageLabel="Out" element="tns:` + root + `Response"/>` + "\n")
	b.WriteString(`    </operation>` + "\n")
	b.WriteString(`  </interface>` + "\n")

	b.WriteString(`  <binding name="` + root + `Binding" interface="tns:` + root + `Interface"` + "\n")
	b.WriteString(`           type="` + wsoapNamespace + `"` + "\n")
	b.WriteString(`           wsoap:protocol="http://www.w3.org/2003/05/soap/bindings/HTTP/">` + "\n")
	b.WriteString(`    <operation ref="tns:` + root + `Operation"/>` + "\n")
	b.WriteString(`  </binding>` + "\n")

	b.WriteString(`  <service name="` + root + `" interface="tns:` + root + `Interface">` + "\n")
	b.WriteString(`    <endpoint name="` + root + `Endpoint" binding="tns:` + root + `Binding" address="http://example.com/` + root + `"/>` + "\n")
	b.WriteString(`  </service>` + "\n")
	b.WriteString(`</description>` + "\n")

	return b.String()
}

func (p *WSDLProtocol) generate11(doc *domain.SchemaDocument) string {
	root := doc.RootName
	tns := doc.TargetNamespace

	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<definitions xmlns="` + wsdl11Namespace + `"` + "\n")
	b.WriteString(`             name="` + root + `"` + "\n")
	b.WriteString(`             targetNamespace="` + tns + `"` + "\n")
	b.WriteString(`             xmlns:tns="` + tns + `"` + "\n")
	b.WriteString(`             xmlns:xsd="` + xsdNamespace + `"` + "\n")
	b.WriteString(`             xmlns:soap="` + soap11Namespace + `">` + "\n")

	p.writeTypes(&b, doc)

	b.WriteString(`  <message name="` + root + `Request">` + "\n")
	b.WriteString(`    <part name="parameters" element="tns:` + root + `Request"/>` + "\n")
	b.WriteString(`  </message>` + "\n")
	b.WriteString(`  <message name="` + root + `Response">` + "\n")
	b.WriteString(`    <part name="parameters" element="tns:` + root + `Response"/>` + "\n")
	b.WriteString(`  </message>` + "\n")

	b.WriteString(`  <portType name="` + root + `PortType">` + "\n")
	b.WriteString(`    <operation name="` + root + `Operation">` + "\n")
	b.WriteString(`      <input message="tns:` + root + `Request"/>` + "\n")
	b.WriteString(`      <output message="tns:` + root + `Response"/>` + "\n")
	b.WriteString(`    </operation>` + "\n")
	b.WriteString(`  </portType>` + "\n")

	b.WriteString(`  <binding name="` + root + `Binding" type="tns:` + root + `PortType">` + "\n")
	b.WriteString(`    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>` + "\n")
	b.WriteString(`    <operation name="` + root + `Operation">` + "\n")
	b.WriteString(`      <soap:operation soapAction="` + tns + `/` + root + `Operation"/>` + "\n")
	b.WriteString(`      <input><soap:body use="literal"/></input>` + "\n")
	b.WriteString(`      <output><soap:body use="literal"/></output>` + "\n")
	b.WriteString(`    </operation>` + "\n")
	b.WriteString(`  </binding>` + "\n")

	b.WriteString(`  <service name="` + root + `">` + "\n")
	b.WriteString(`    <port name="` + root + `Port" binding="tns:` + root + `Binding">` + "\n")
	b.WriteString(`      <soap:address location="http://example.com/` + root + `"/>` + "\n")
	b.WriteString(`    </port>` + "\n")
	b.WriteString(`  </service>` + "\n")
	b.WriteString(`</definitions>` + "\n")

	return b.String()
}

// writeTypes emits the shared <types> section: complex type definitions
// first, then the remaining top-level rows as global element declarations.
func (p *WSDLProtocol) writeTypes(b *strings.Builder, doc *domain.SchemaDocument) {
	rows := filterEmptyRows(doc.GridData)

	b.WriteString(`  <types>` + "\n")
	b.WriteString(`    <xsd:schema targetNamespace="` + doc.TargetNamespace + `" elementFormDefault="qualified">` + "\n")

	for _, row := range rows {
		if row.Type != complexTypeMarker {
			continue
		}

		b.WriteString(`      <xsd:complexType name="` + row.Name + `">` + "\n")
		b.WriteString(`        <xsd:sequence>` + "\n")

		for _, child := range rows {
			if child.Structure == row.Name && child.Type != complexTypeMarker {
				b.WriteString(`          ` + wsdlElement(child) + "\n")
			}
		}

		b.WriteString(`        </xsd:sequence>` + "\n")
		b.WriteString(`      </xsd:complexType>` + "\n")
	}

	for _, row := range rows {
		if row.Structure == "" && row.Type != complexTypeMarker {
			b.WriteString(`      ` + wsdlElement(row) + "\n")
		}
	}

	b.WriteString(`    </xsd:schema>` + "\n")
	b.WriteString(`  </types>` + "\n")
}

// wsdlElement renders one element declaration, applying the WSDL defaults
// (type "xsd:string", minOccurs "0", maxOccurs "1") and omitting occurrence
// attributes equal to "1".
func wsdlElement(row domain.GridRow) string {
	typ := row.Type
	if typ == "" {
		typ = "xsd:string"
	}

	minOccurs := row.MinOccurs
	if minOccurs == "" {
		minOccurs = "0"
	}

	maxOccurs := row.MaxOccurs
	if maxOccurs == "" {
		maxOccurs = "1"
	}

	return `<xsd:element name="` + row.Name + `" type="` + typ + `"` +
		occursAttrs(minOccurs, maxOccurs) + `/>`
}

var (
	serviceNamePattern = regexp.MustCompile(`<(?:\w+:)?service[^<>]*?name="([^"]*)"`)
	complexTypeBlock   = regexp.MustCompile(`(?s)<(?:xsd?:)?complexType[^<>]*?name="([^"]*)"[^<>]*>(.*?)</(?:xsd?:)?complexType>`)
)

// ParseInput extracts a grid from WSDL text. The extraction is pattern
// based: complex type blocks become definition rows plus structure-tagged
// children, remaining element declarations become top-level rows, and the
// root name is read from the service element.
func (p *WSDLProtocol) ParseInput(input string) domain.ParseResult {
	result := domain.ParseResult{GridData: []domain.GridRow{}}

	if strings.TrimSpace(input) == "" {
		result.Error = "No WSDL input provided"
		return result
	}

	if m := serviceNamePattern.FindStringSubmatch(input); m != nil {
		result.RootName = m[1]
	}

	result.TargetNamespace = extractAttr(targetNSAttr, input)

	remainder := input

	for _, m := range complexTypeBlock.FindAllStringSubmatch(input, -1) {
		ctName, body := m[1], m[2]

		result.GridData = append(result.GridData, domain.GridRow{
			Name: ctName,
			Type: complexTypeMarker,
		})
		result.GridData = append(result.GridData, elementRowsFromTags(body, ctName)...)
	}

	remainder = complexTypeBlock.ReplaceAllString(remainder, "")

	for _, row := range elementRowsFromTags(remainder, "") {
		if row.Name == result.RootName {
			continue
		}

		result.GridData = append(result.GridData, row)
	}

	result.GridData = renumberRows(result.GridData)

	if result.RootName == "" && result.TargetNamespace == "" && len(result.GridData) == 0 {
		result.Error = "No recognizable WSDL content found"
	}

	return result
}

// DetectVersion infers the WSDL version of a document from its root
// namespace. Returns "" when neither namespace is present.
func (p *WSDLProtocol) DetectVersion(input string) string {
	if strings.Contains(input, wsdl20Namespace) {
		return "2.0"
	}

	if strings.Contains(input, wsdl11Namespace) {
		return "1.1"
	}

	return ""
}

// ValidateAgainstSchema is a structural sanity check over WSDL text,
// independent of the grid model: it verifies the mandatory sections for the
// configured version are present.
func (p *WSDLProtocol) ValidateAgainstSchema(wsdlText string) domain.ValidationResult {
	var errs []string

	if !strings.Contains(wsdlText, "types") {
		errs = append(errs, "Missing required section: types")
	}

	if p.version == "1.1" {
		if !strings.Contains(wsdlText, "message") {
			errs = append(errs, "Missing required section: message")
		}

		if !strings.Contains(wsdlText, "portType") {
			errs = append(errs, "Missing required section: portType")
		}
	}

	if len(errs) > 0 {
		return domain.Invalid(errs...)
	}

	return domain.Valid()
}
