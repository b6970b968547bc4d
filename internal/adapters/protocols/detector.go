package protocols

import "strings"

// DetectProtocol guesses the wire format of a text fragment from marker
// substrings. It returns a factory key, or "" when nothing matches. The
// heuristics are ordered from most to least specific: WSDL documents also
// contain schema markup, so they are checked before XSD.
func DetectProtocol(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}

	switch {
	case strings.Contains(trimmed, wsdl20Namespace),
		strings.Contains(trimmed, wsdl11Namespace),
		strings.Contains(trimmed, "<definitions"),
		strings.Contains(trimmed, "<description"):
		return "wsdl"

	case strings.Contains(trimmed, "Envelope") && strings.Contains(trimmed, "soap"):
		return "soap"

	case strings.Contains(trimmed, "<xsd:schema"),
		strings.Contains(trimmed, "<xs:schema"):
		return "xsd"

	case strings.Contains(trimmed, "EDI_DC40"),
		strings.Contains(trimmed, "<IDOC"):
		return "sap"

	case strings.Contains(trimmed, `"jsonrpc"`):
		return "jsonrpc"
	}

	return ""
}
