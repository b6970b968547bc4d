// Package protocols provides the per-wire-format protocol implementations
// and the factory that selects among them.
package protocols

import (
	"regexp"
	"strings"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
)

// filterEmptyRows drops rows that carry no schema content.
func filterEmptyRows(rows []domain.GridRow) []domain.GridRow {
	var result []domain.GridRow

	for _, row := range rows {
		if !row.IsEmpty() {
			result = append(result, row)
		}
	}

	return result
}

// attrPattern matches a single attribute inside an already-isolated XML tag.
// Parsing here is deliberately pattern-based, not a validating XML parser.
func attrPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(name + `="([^"]*)"`)
}

var (
	nameAttr      = attrPattern("name")
	typeAttr      = attrPattern("type")
	minOccursAttr = attrPattern("minOccurs")
	maxOccursAttr = attrPattern("maxOccurs")
	targetNSAttr  = attrPattern("targetNamespace")
)

// extractAttr returns the attribute value from a tag body, or "" when absent.
func extractAttr(re *regexp.Regexp, tag string) string {
	if m := re.FindStringSubmatch(tag); m != nil {
		return m[1]
	}

	return ""
}

// elementTag matches the start tag of an xsd:element (or xs:element)
// declaration and captures its attribute body.
var elementTag = regexp.MustCompile(`<(?:xsd?:)?element\s+([^<>]*?)/?>`)

// elementRowsFromTags extracts one GridRow per element start tag found in
// the fragment, tagging each with the given parent structure name. IDs are
// assigned by the caller.
func elementRowsFromTags(fragment, structure string) []domain.GridRow {
	var rows []domain.GridRow

	for _, m := range elementTag.FindAllStringSubmatch(fragment, -1) {
		attrs := m[1]

		name := extractAttr(nameAttr, attrs)
		if name == "" {
			continue
		}

		rows = append(rows, domain.GridRow{
			Structure: structure,
			Name:      name,
			Type:      extractAttr(typeAttr, attrs),
			MinOccurs: extractAttr(minOccursAttr, attrs),
			MaxOccurs: extractAttr(maxOccursAttr, attrs),
		})
	}

	return rows
}

// renumberRows assigns sequential 1-based IDs, the order callers and the
// grid UI expect after a parse.
func renumberRows(rows []domain.GridRow) []domain.GridRow {
	for i := range rows {
		rows[i].ID = i + 1
	}

	return rows
}

// occursAttrs renders minOccurs/maxOccurs attributes, omitting each when it
// equals the format's default of "1" to keep output minimal.
func occursAttrs(minOccurs, maxOccurs string) string {
	var b strings.Builder

	if minOccurs != "" && minOccurs != "1" {
		b.WriteString(` minOccurs="` + minOccurs + `"`)
	}

	if maxOccurs != "" && maxOccurs != "1" {
		b.WriteString(` maxOccurs="` + maxOccurs + `"`)
	}

	return b.String()
}
