// Package importers hydrates the grid model from external artifacts the
// engine's own parsers do not cover.
package importers

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIImporter converts OpenAPI 3.x component schemas into a
// SchemaDocument: one complex-type definition row per component, one child
// row per property.
type OpenAPIImporter struct{}

// NewOpenAPIImporter creates a new OpenAPI importer.
func NewOpenAPIImporter() *OpenAPIImporter {
	return &OpenAPIImporter{}
}

// ImportFile loads an OpenAPI specification from disk and converts it.
func (i *OpenAPIImporter) ImportFile(path string) (*domain.SchemaDocument, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	spec, err := loader.LoadFromFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI file: %w", err)
	}

	return i.convert(spec)
}

// ImportData converts an in-memory OpenAPI specification.
func (i *OpenAPIImporter) ImportData(data []byte) (*domain.SchemaDocument, error) {
	loader := openapi3.NewLoader()

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI data: %w", err)
	}

	return i.convert(spec)
}

func (i *OpenAPIImporter) convert(spec *openapi3.T) (*domain.SchemaDocument, error) {
	if spec.Info == nil {
		return nil, fmt.Errorf("OpenAPI specification has no info section")
	}

	doc := &domain.SchemaDocument{
		RootName: rootNameFromTitle(spec.Info.Title),
	}

	if len(spec.Servers) > 0 {
		doc.TargetNamespace = spec.Servers[0].URL
	}

	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return doc, nil
	}

	// Map iteration order is randomized; sort for a stable grid.
	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		doc.GridData = append(doc.GridData, domain.GridRow{
			Name: name,
			Type: "complexType",
		})

		doc.GridData = append(doc.GridData, propertyRows(name, spec.Components.Schemas[name])...)
	}

	for idx := range doc.GridData {
		doc.GridData[idx].ID = idx + 1
	}

	return doc, nil
}

// propertyRows converts a component schema's properties to grid rows tagged
// with the component as their structure.
func propertyRows(component string, ref *openapi3.SchemaRef) []domain.GridRow {
	if ref == nil || ref.Value == nil {
		return nil
	}

	required := make(map[string]bool)
	for _, name := range ref.Value.Required {
		required[name] = true
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows []domain.GridRow

	for _, name := range names {
		prop := ref.Value.Properties[name]

		row := domain.GridRow{
			Structure: component,
			Name:      name,
			Type:      gridType(prop),
			MinOccurs: "0",
			MaxOccurs: "1",
		}

		if required[name] {
			row.MinOccurs = "1"
		}

		if prop != nil && prop.Value != nil && prop.Value.Type.Is("array") {
			row.MaxOccurs = "unbounded"
		}

		rows = append(rows, row)
	}

	return rows
}

// gridType maps an OpenAPI property schema to a grid type token: xsd
// primitives for scalars, the bare component name for references.
func gridType(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return "xsd:string"
	}

	if ref.Ref != "" {
		return componentName(ref.Ref)
	}

	if ref.Value == nil {
		return "xsd:string"
	}

	if ref.Value.Type.Is("array") {
		return gridType(ref.Value.Items)
	}

	switch {
	case ref.Value.Type.Is("integer"):
		if ref.Value.Format == "int64" {
			return "xsd:long"
		}
		return "xsd:int"
	case ref.Value.Type.Is("number"):
		return "xsd:double"
	case ref.Value.Type.Is("boolean"):
		return "xsd:boolean"
	case ref.Value.Type.Is("string"):
		if ref.Value.Format == "date-time" {
			return "xsd:dateTime"
		}
		return "xsd:string"
	}

	return "xsd:string"
}

// componentName extracts the schema name from a "#/components/schemas/X" ref.
func componentName(ref string) string {
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// rootNameFromTitle turns an API title into a usable root name by dropping
// whitespace ("User Service" becomes "UserService").
func rootNameFromTitle(title string) string {
	return strings.ReplaceAll(title, " ", "")
}
