// Package domain provides core business models and interfaces for the schema grid converter.
package domain

// GridRow represents one row of the tabular schema model. Every wire-format
// protocol reads and writes this shape; it is the tool's universal
// intermediate representation, independent of any concrete format.
type GridRow struct {
	ID        int    `json:"id"`
	Structure string `json:"structure"` // parent complex type this row belongs to; empty = top level
	Field     string `json:"field"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	MinOccurs string `json:"minOccurs"`
	MaxOccurs string `json:"maxOccurs"`
}

// IsEmpty reports whether the row carries no schema content at all.
// Empty rows are filtered out of generation by every protocol.
func (r GridRow) IsEmpty() bool {
	return r.Name == "" && r.Type == "" && r.Field == "" && r.Structure == ""
}

// SchemaDocument is the caller-level unit passed to a protocol. The engine
// never stores it; a result is returned synchronously and the document is
// discarded.
type SchemaDocument struct {
	RootName        string    `json:"rootName"`
	TargetNamespace string    `json:"targetNamespace"`
	XMLNamespace    string    `json:"xmlNamespace,omitempty"`
	GridData        []GridRow `json:"gridData"`
	MessageType     string    `json:"messageType,omitempty"`
}

// ValidationResult carries the outcome of a structural validation pass.
// Errors are human-readable and ordered by row then check.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Valid returns a passing ValidationResult.
func Valid() ValidationResult {
	return ValidationResult{IsValid: true, Errors: []string{}}
}

// Invalid returns a failing ValidationResult with the given errors.
func Invalid(errors ...string) ValidationResult {
	return ValidationResult{IsValid: false, Errors: errors}
}

// ParseResult is the outcome of extracting a grid from wire-format text.
// Parsing never fails hard: unparseable input yields zero values plus an
// Error description, so callers can render a "nothing recognized" state
// without additional nil checks.
type ParseResult struct {
	RootName        string    `json:"rootName"`
	TargetNamespace string    `json:"targetNamespace"`
	GridData        []GridRow `json:"gridData"`
	Error           string    `json:"error,omitempty"`
}

// ProtocolDescriptor is the identity metadata a protocol exposes.
type ProtocolDescriptor struct {
	Name              string   `json:"name"`
	Version           string   `json:"version"`
	SupportedFeatures []string `json:"supportedFeatures"`
}
