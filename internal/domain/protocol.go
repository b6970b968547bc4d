package domain

// Protocol defines the contract every wire-format converter implements.
//
// All methods are pure functions over their arguments: they never panic on
// nil or malformed input, hold no state across calls, and an instance may be
// used concurrently once constructed.
type Protocol interface {
	// Name returns the canonical display name (e.g. "WSDL").
	Name() string

	// Version returns the format-specific version string (e.g. "1.1", "2.0").
	Version() string

	// SupportedFeatures returns the static capability list, order-stable.
	SupportedFeatures() []string

	// ValidateStructure checks the grid for structural problems: presence,
	// cross-field consistency, type-name membership. It does not attempt
	// full schema semantics. A nil document is invalid, not a panic.
	ValidateStructure(doc *SchemaDocument) ValidationResult

	// GenerateOutput produces the wire-format text for the document.
	// Behavior on an invalid document is format-specific: some protocols
	// return a descriptive error string in place of output, others proceed
	// best-effort with defaults. It never returns an error value.
	GenerateOutput(doc *SchemaDocument) string

	// ParseInput recovers a grid from existing wire-format text. Failures
	// are reported via ParseResult.Error alongside a best-effort partial
	// result; it never returns an error value.
	ParseInput(input string) ParseResult
}

// Describe assembles the identity metadata for a protocol.
func Describe(p Protocol) ProtocolDescriptor {
	return ProtocolDescriptor{
		Name:              p.Name(),
		Version:           p.Version(),
		SupportedFeatures: p.SupportedFeatures(),
	}
}
