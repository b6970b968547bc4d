package protocols

import (
	"strings"
	"testing"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSAPDescriptor(t *testing.T) {
	p := NewSAPProtocol()
	assert.Equal(t, "SAP IDoc", p.Name())
	assert.Contains(t, p.SupportedFeatures(), "ControlRecord")
}

func TestSAPValidate(t *testing.T) {
	p := NewSAPProtocol()

	assert.False(t, p.ValidateStructure(nil).IsValid)

	result := p.ValidateStructure(&domain.SchemaDocument{})
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Root name is required")

	// Only the IDoc type is required; rows are unconstrained.
	result = p.ValidateStructure(&domain.SchemaDocument{
		RootName: "ORDERS05",
		GridData: []domain.GridRow{{Type: "orphan type"}},
	})
	assert.True(t, result.IsValid)
}

func TestSAPGenerate(t *testing.T) {
	out := NewSAPProtocol().GenerateOutput(&domain.SchemaDocument{
		RootName:    "ORDERS05",
		MessageType: "ORDERS",
		GridData: []domain.GridRow{
			{Name: "E1EDK01", Type: "SegmentData"},
			{Name: "belnr", Type: "4711"},
		},
	})

	assert.Contains(t, out, "<IDOCTYP>ORDERS05</IDOCTYP>")
	assert.Contains(t, out, "<MESTYP>ORDERS</MESTYP>")
	assert.Contains(t, out, "<TABNAM>EDI_DC40</TABNAM>")

	// Data segment name: IDoc type minus its last two characters, E1 prefixed.
	assert.Contains(t, out, `<E1ORDERS SEGMENT="1">`)

	assert.Contains(t, out, "<E1EDK01>SegmentData</E1EDK01>")
	assert.Contains(t, out, "<BELNR>4711</BELNR>") // row names are upper-cased
}

func TestSAPGenerateWithoutMessageType(t *testing.T) {
	out := NewSAPProtocol().GenerateOutput(&domain.SchemaDocument{RootName: "MATMAS05"})

	assert.Contains(t, out, "<IDOCTYP>MATMAS05</IDOCTYP>")
	assert.NotContains(t, out, "<MESTYP>")
	assert.Contains(t, out, `<E1MATMAS SEGMENT="1">`)
}

func TestSAPGenerateReturnsErrorString(t *testing.T) {
	out := NewSAPProtocol().GenerateOutput(&domain.SchemaDocument{})

	assert.True(t, strings.HasPrefix(out, "Error generating SAP IDoc: "), out)
	assert.Contains(t, out, "Root name is required")
}

func TestSAPParseIsStub(t *testing.T) {
	p := NewSAPProtocol()

	for _, input := range []string{"", "<IDOC/>", "anything at all"} {
		result := p.ParseInput(input)
		assert.Contains(t, result.Error, "not yet implemented")
		assert.Empty(t, result.GridData)
		assert.Equal(t, "", result.RootName)
	}
}
