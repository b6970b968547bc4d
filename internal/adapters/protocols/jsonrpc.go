package protocols

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
)

// JSONRPCProtocol converts grids to and from JSON-RPC 2.0 request
// templates. The grid's root name is used as the RPC method name and each
// named row becomes a params entry whose value is the row's type token,
// kept as a human-readable placeholder.
type JSONRPCProtocol struct{}

// NewJSONRPCProtocol creates a JSON-RPC protocol instance.
func NewJSONRPCProtocol() *JSONRPCProtocol {
	return &JSONRPCProtocol{}
}

// Name returns the canonical protocol name.
func (p *JSONRPCProtocol) Name() string {
	return "JSON-RPC"
}

// Version returns the JSON-RPC version.
func (p *JSONRPCProtocol) Version() string {
	return "2.0"
}

// SupportedFeatures returns the capability list.
func (p *JSONRPCProtocol) SupportedFeatures() []string {
	return []string{
		"MethodDefinition",
		"ParameterDefinition",
		"RequestGeneration",
	}
}

// ValidateStructure checks that a method name is present and that no row
// declares a type without a name.
func (p *JSONRPCProtocol) ValidateStructure(doc *domain.SchemaDocument) domain.ValidationResult {
	if doc == nil {
		return domain.Invalid("No schema document provided")
	}

	var errs []string

	if strings.TrimSpace(doc.RootName) == "" {
		errs = append(errs, "Root name is required")
	}

	for i, row := range doc.GridData {
		if row.Type != "" && row.Name == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Name is required when type is specified", i+1))
		}
	}

	if len(errs) > 0 {
		return domain.Invalid(errs...)
	}

	return domain.Valid()
}

type jsonrpcRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
	ID      int            `json:"id"`
}

type jsonrpcError struct {
	JSONRPC string          `json:"jsonrpc"`
	Error   jsonrpcErrorObj `json:"error"`
	ID      any             `json:"id"`
}

type jsonrpcErrorObj struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GenerateOutput builds a sample JSON-RPC 2.0 request envelope. A missing
// method name yields an Invalid Request error envelope (code -32600)
// instead of a request.
func (p *JSONRPCProtocol) GenerateOutput(doc *domain.SchemaDocument) string {
	if doc == nil || strings.TrimSpace(doc.RootName) == "" {
		envelope := jsonrpcError{
			JSONRPC: "2.0",
			Error: jsonrpcErrorObj{
				Code:    -32600,
				Message: "Invalid Request: method name is required",
			},
			ID: nil,
		}

		out, _ := json.MarshalIndent(envelope, "", "  ")
		return string(out)
	}

	params := make(map[string]any)

	for _, row := range filterEmptyRows(doc.GridData) {
		if row.Name == "" {
			continue
		}

		if row.Type == "" {
			params[row.Name] = "any"
		} else {
			params[row.Name] = row.Type
		}
	}

	request := jsonrpcRequest{
		JSONRPC: "2.0",
		Method:  doc.RootName,
		Params:  params,
		ID:      1,
	}

	out, _ := json.MarshalIndent(request, "", "  ")
	return string(out)
}

// ParseInput recovers a grid from a JSON-RPC request. Only object-shaped
// params are accepted; a syntax error and a structurally invalid request
// are both surfaced through the error field, distinguished by message.
func (p *JSONRPCProtocol) ParseInput(input string) domain.ParseResult {
	result := domain.ParseResult{GridData: []domain.GridRow{}}

	if strings.TrimSpace(input) == "" {
		result.Error = "No JSON-RPC input provided"
		return result
	}

	var request struct {
		JSONRPC string          `json:"jsonrpc"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}

	if err := json.Unmarshal([]byte(input), &request); err != nil {
		result.Error = "Invalid JSON-RPC syntax: " + err.Error()
		return result
	}

	if request.Method == "" {
		result.Error = "Invalid JSON-RPC request: method is required"
		return result
	}

	result.RootName = request.Method

	if len(request.Params) == 0 {
		return result
	}

	var params map[string]any
	if err := json.Unmarshal(request.Params, &params); err != nil {
		result.Error = "Invalid JSON-RPC request: params must be an object"
		return result
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result.GridData = append(result.GridData, domain.GridRow{
			Name: name,
			Type: fmt.Sprintf("%v", params[name]),
		})
	}

	result.GridData = renumberRows(result.GridData)

	return result
}
