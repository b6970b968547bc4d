package protocols

import (
	"encoding/json"
	"testing"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRPCDescriptor(t *testing.T) {
	p := NewJSONRPCProtocol()
	assert.Equal(t, "JSON-RPC", p.Name())
	assert.Equal(t, "2.0", p.Version())
	assert.Contains(t, p.SupportedFeatures(), "MethodDefinition")
}

func TestJSONRPCValidate(t *testing.T) {
	p := NewJSONRPCProtocol()

	assert.False(t, p.ValidateStructure(nil).IsValid)

	result := p.ValidateStructure(&domain.SchemaDocument{})
	assert.Contains(t, result.Errors, "Root name is required")

	result = p.ValidateStructure(&domain.SchemaDocument{
		RootName: "getUser",
		GridData: []domain.GridRow{{Type: "string"}},
	})
	assert.Contains(t, result.Errors, "Row 1: Name is required when type is specified")

	// A name without a type is fine for JSON-RPC; it falls back to "any".
	result = p.ValidateStructure(&domain.SchemaDocument{
		RootName: "getUser",
		GridData: []domain.GridRow{{Name: "userId"}},
	})
	assert.True(t, result.IsValid)
}

func TestJSONRPCGenerate(t *testing.T) {
	out := NewJSONRPCProtocol().GenerateOutput(&domain.SchemaDocument{
		RootName: "getUser",
		GridData: []domain.GridRow{
			{Name: "userId", Type: "int"},
			{Name: "verbose"},
		},
	})

	var request struct {
		JSONRPC string            `json:"jsonrpc"`
		Method  string            `json:"method"`
		Params  map[string]string `json:"params"`
		ID      int               `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &request))

	assert.Equal(t, "2.0", request.JSONRPC)
	assert.Equal(t, "getUser", request.Method)
	assert.Equal(t, 1, request.ID)
	assert.Equal(t, map[string]string{"userId": "int", "verbose": "any"}, request.Params)
}

func TestJSONRPCGenerateMissingMethod(t *testing.T) {
	out := NewJSONRPCProtocol().GenerateOutput(&domain.SchemaDocument{RootName: ""})

	var envelope struct {
		JSONRPC string `json:"jsonrpc"`
		Error   struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))

	assert.Equal(t, "2.0", envelope.JSONRPC)
	assert.Equal(t, -32600, envelope.Error.Code)
	assert.NotEmpty(t, envelope.Error.Message)
}

func TestJSONRPCParse(t *testing.T) {
	result := NewJSONRPCProtocol().ParseInput(
		`{"jsonrpc":"2.0","method":"getUser","params":{"userId":"int","name":"string"},"id":7}`)

	require.Empty(t, result.Error)
	assert.Equal(t, "getUser", result.RootName)

	// Rows are sorted by parameter name for a stable grid.
	require.Len(t, result.GridData, 2)
	assert.Equal(t, "name", result.GridData[0].Name)
	assert.Equal(t, "string", result.GridData[0].Type)
	assert.Equal(t, "userId", result.GridData[1].Name)
	assert.Equal(t, "int", result.GridData[1].Type)
}

func TestJSONRPCParseErrors(t *testing.T) {
	p := NewJSONRPCProtocol()

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty input", "", "No JSON-RPC input provided"},
		{"syntax error", `{"jsonrpc":`, "Invalid JSON-RPC syntax"},
		{"missing method", `{"jsonrpc":"2.0","params":{}}`, "method is required"},
		{"array params", `{"jsonrpc":"2.0","method":"m","params":[1,2]}`, "params must be an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.ParseInput(tt.input)
			assert.Contains(t, result.Error, tt.contains)
			assert.Empty(t, result.GridData)
		})
	}
}

func TestJSONRPCRoundTrip(t *testing.T) {
	p := NewJSONRPCProtocol()

	doc := &domain.SchemaDocument{
		RootName: "createOrder",
		GridData: []domain.GridRow{
			{Name: "orderId", Type: "int"},
			{Name: "customer", Type: "string"},
		},
	}

	result := p.ParseInput(p.GenerateOutput(doc))

	require.Empty(t, result.Error)
	assert.Equal(t, "createOrder", result.RootName)
	require.Len(t, result.GridData, 2)
}
