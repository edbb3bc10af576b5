package model

import "encoding/json"

// FieldMetadata carries provenance for one extracted field.
type FieldMetadata struct {
	// References lists the chunk identifiers the value was read from, most
	// relevant first.
	References []string `json:"references"`
	// Confidence is the service's confidence in the value (0-1), when given.
	Confidence float64 `json:"confidence,omitempty"`
}

// ExtractResult is the outcome of schema-guided extraction.
type ExtractResult struct {
	// Fields maps field name to the extracted value.
	Fields map[string]json.RawMessage `json:"extraction"`
	// Metadata maps field name to provenance, parallel to Fields. May be
	// empty when the service does not return references.
	Metadata map[string]FieldMetadata `json:"extraction_metadata,omitempty"`
}

// String returns the extracted value for a field as a plain string, or
// ("", false) when the field is absent or not a JSON string.
func (e *ExtractResult) String(field string) (string, bool) {
	raw, ok := e.Fields[field]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Number returns the extracted value for a field as a float64, or (0, false)
// when the field is absent or not numeric.
func (e *ExtractResult) Number(field string) (float64, bool) {
	raw, ok := e.Fields[field]
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// References returns the source chunk identifiers recorded for a field, or
// nil when no provenance is available.
func (e *ExtractResult) References(field string) []string {
	return e.Metadata[field].References
}

// SourceChunks resolves a field's references against a parse result,
// preserving reference order and skipping identifiers that do not match any
// chunk.
func (e *ExtractResult) SourceChunks(field string, parsed *ParseResult) []Chunk {
	refs := e.References(field)
	if len(refs) == 0 {
		return nil
	}

	byID := make(map[string]Chunk, len(parsed.Chunks))
	for _, c := range parsed.Chunks {
		byID[c.ID] = c
	}

	var out []Chunk
	for _, ref := range refs {
		if c, ok := byID[ref]; ok {
			out = append(out, c)
		}
	}
	return out
}
