package protocols

import (
	"strings"
	"testing"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userServiceDoc() *domain.SchemaDocument {
	return &domain.SchemaDocument{
		RootName:        "UserService",
		TargetNamespace: "http://example.com/userservice",
		GridData: []domain.GridRow{
			{ID: 1, Name: "userId", Type: "xsd:int", MinOccurs: "1"},
			{ID: 2, Name: "userName", Type: "xsd:string", MinOccurs: "0"},
		},
	}
}

func TestWSDLDescriptor(t *testing.T) {
	p := NewWSDLProtocol("")
	assert.Equal(t, "WSDL", p.Name())
	assert.Equal(t, "2.0", p.Version())
	assert.Contains(t, p.SupportedFeatures(), "InterfaceDefinition")
	assert.Contains(t, p.SupportedFeatures(), "ComplexTypeDefinition")

	p11 := NewWSDLProtocol("1.1")
	assert.Equal(t, "1.1", p11.Version())
	assert.Contains(t, p11.SupportedFeatures(), "PortTypeDefinition")
	assert.NotContains(t, p11.SupportedFeatures(), "InterfaceDefinition")
}

func TestWSDLValidateNilDocument(t *testing.T) {
	result := NewWSDLProtocol("").ValidateStructure(nil)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Errors)
}

func TestWSDLValidateRequiredFields(t *testing.T) {
	p := NewWSDLProtocol("")

	result := p.ValidateStructure(&domain.SchemaDocument{RootName: "", TargetNamespace: "x"})
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Root name is required")

	result = p.ValidateStructure(&domain.SchemaDocument{RootName: "Svc"})
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Target namespace is required for WSDL")
}

func TestWSDLValidateRowRequiresType(t *testing.T) {
	p := NewWSDLProtocol("")

	result := p.ValidateStructure(&domain.SchemaDocument{
		RootName:        "Svc",
		TargetNamespace: "http://example.com/svc",
		GridData:        []domain.GridRow{{Name: "userId", Type: ""}},
	})

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Row 1: Type is required when name is specified")
}

func TestWSDLValidateTypeTokens(t *testing.T) {
	p := NewWSDLProtocol("")

	tests := []struct {
		name  string
		typ   string
		valid bool
	}{
		{"bare primitive", "string", true},
		{"xsd prefixed", "xsd:dateTime", true},
		{"tns prefixed", "tns:Address", true},
		{"foreign prefix", "foo:Bar", false},
		{"unresolved bare name", "Address", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.ValidateStructure(&domain.SchemaDocument{
				RootName:        "Svc",
				TargetNamespace: "http://example.com/svc",
				GridData:        []domain.GridRow{{Name: "field", Type: tt.typ}},
			})
			assert.Equal(t, tt.valid, result.IsValid, result.Errors)
		})
	}
}

func TestWSDLValidateComplexTypeReference(t *testing.T) {
	p := NewWSDLProtocol("")

	doc := &domain.SchemaDocument{
		RootName:        "Svc",
		TargetNamespace: "http://example.com/svc",
		GridData: []domain.GridRow{
			{Name: "Address", Type: "complexType"},
			{Structure: "Address", Name: "street", Type: "xsd:string"},
			{Name: "homeAddress", Type: "Address"},
		},
	}

	assert.True(t, p.ValidateStructure(doc).IsValid)

	// Remove the definition: the bare-name reference no longer resolves.
	doc.GridData = doc.GridData[2:]
	result := p.ValidateStructure(doc)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Row 1: Complex type 'Address' is not defined in the grid")
}

func TestWSDLGenerateFiltersEmptyRows(t *testing.T) {
	doc := userServiceDoc()
	doc.GridData = append(doc.GridData, domain.GridRow{ID: 3})

	out := NewWSDLProtocol("").GenerateOutput(doc)
	assert.Equal(t, 2, strings.Count(out, `<xsd:element name=`))
}

func TestWSDLGenerate20(t *testing.T) {
	out := NewWSDLProtocol("2.0").GenerateOutput(userServiceDoc())

	assert.Contains(t, out, `<description xmlns="http://www.w3.org/ns/wsdl"`)
	assert.Contains(t, out, `targetNamespace="http://example.com/userservice"`)
	assert.Contains(t, out, `<xsd:element name="userId" type="xsd:int"`)
	assert.NotContains(t, out, `name="userId" type="xsd:int" minOccurs`)
	assert.Contains(t, out, `<xsd:element name="userName" type="xsd:string" minOccurs="0"`)
	assert.Contains(t, out, `<interface name="UserServiceInterface">`)
	assert.Contains(t, out, `<service name="UserService"`)
	assert.Contains(t, out, "wsoap:")
}

func TestWSDLGenerate11(t *testing.T) {
	out := NewWSDLProtocol("1.1").GenerateOutput(userServiceDoc())

	assert.Contains(t, out, `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"`)
	assert.Contains(t, out, `<message name="UserServiceRequest">`)
	assert.Contains(t, out, `<portType name="UserServicePortType">`)
	assert.Contains(t, out, `<soap:binding style="document"`)
	assert.NotContains(t, out, "<interface")
}

func TestWSDLGenerateComplexTypesFirst(t *testing.T) {
	doc := &domain.SchemaDocument{
		RootName:        "OrderService",
		TargetNamespace: "http://example.com/orders",
		GridData: []domain.GridRow{
			{Name: "orderId", Type: "xsd:int"},
			{Name: "Address", Type: "complexType"},
			{Structure: "Address", Name: "street", Type: "xsd:string"},
			{Structure: "Address", Name: "city", Type: "xsd:string", MinOccurs: "1"},
		},
	}

	out := NewWSDLProtocol("").GenerateOutput(doc)

	ctPos := strings.Index(out, `<xsd:complexType name="Address">`)
	elPos := strings.Index(out, `<xsd:element name="orderId"`)
	require.True(t, ctPos >= 0)
	require.True(t, elPos >= 0)
	assert.Less(t, ctPos, elPos)

	assert.Contains(t, out, `<xsd:element name="street" type="xsd:string" minOccurs="0"/>`)
	assert.Contains(t, out, `<xsd:element name="city" type="xsd:string"/>`)
}

func TestWSDLGenerateDefaultsBlankType(t *testing.T) {
	doc := &domain.SchemaDocument{
		RootName:        "Svc",
		TargetNamespace: "http://example.com/svc",
		GridData:        []domain.GridRow{{Name: "note"}},
	}

	out := NewWSDLProtocol("").GenerateOutput(doc)
	assert.Contains(t, out, `<xsd:element name="note" type="xsd:string" minOccurs="0"/>`)
}

func TestWSDLRoundTrip(t *testing.T) {
	p := NewWSDLProtocol("2.0")

	doc := &domain.SchemaDocument{
		RootName:        "OrderService",
		TargetNamespace: "http://example.com/orders",
		GridData: []domain.GridRow{
			{Name: "Address", Type: "complexType"},
			{Structure: "Address", Name: "street", Type: "xsd:string"},
			{Name: "orderId", Type: "xsd:int", MinOccurs: "1"},
		},
	}

	result := p.ParseInput(p.GenerateOutput(doc))

	require.Empty(t, result.Error)
	assert.Equal(t, "OrderService", result.RootName)
	assert.Equal(t, "http://example.com/orders", result.TargetNamespace)

	byName := map[string]domain.GridRow{}
	for _, row := range result.GridData {
		byName[row.Name] = row
	}

	require.Len(t, byName, 3)
	assert.Equal(t, "complexType", byName["Address"].Type)
	assert.Equal(t, "Address", byName["street"].Structure)
	assert.Equal(t, "xsd:string", byName["street"].Type)
	assert.Equal(t, "xsd:int", byName["orderId"].Type)
	assert.Equal(t, "", byName["orderId"].Structure)
}

func TestWSDLParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n"} {
		result := NewWSDLProtocol("").ParseInput(input)
		assert.Equal(t, "", result.RootName)
		assert.Equal(t, "", result.TargetNamespace)
		assert.Empty(t, result.GridData)
		assert.NotEmpty(t, result.Error)
	}
}

func TestWSDLParseUnrecognizedInput(t *testing.T) {
	result := NewWSDLProtocol("").ParseInput("just some text, no markup")
	assert.Empty(t, result.GridData)
	assert.NotEmpty(t, result.Error)
}

func TestWSDLParseRowIDsAreSequential(t *testing.T) {
	p := NewWSDLProtocol("")
	result := p.ParseInput(p.GenerateOutput(userServiceDoc()))

	require.Len(t, result.GridData, 2)
	assert.Equal(t, 1, result.GridData[0].ID)
	assert.Equal(t, 2, result.GridData[1].ID)
}

func TestWSDLDetectVersion(t *testing.T) {
	p := NewWSDLProtocol("")

	assert.Equal(t, "2.0", p.DetectVersion(p.GenerateOutput(userServiceDoc())))
	assert.Equal(t, "1.1", p.DetectVersion(NewWSDLProtocol("1.1").GenerateOutput(userServiceDoc())))
	assert.Equal(t, "", p.DetectVersion("<html/>"))
}

func TestWSDLValidateAgainstSchema(t *testing.T) {
	doc := userServiceDoc()

	p20 := NewWSDLProtocol("2.0")
	assert.True(t, p20.ValidateAgainstSchema(p20.GenerateOutput(doc)).IsValid)

	p11 := NewWSDLProtocol("1.1")
	assert.True(t, p11.ValidateAgainstSchema(p11.GenerateOutput(doc)).IsValid)

	result := p11.ValidateAgainstSchema("<definitions></definitions>")
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Missing required section: types")
	assert.Contains(t, result.Errors, "Missing required section: message")
	assert.Contains(t, result.Errors, "Missing required section: portType")
}
