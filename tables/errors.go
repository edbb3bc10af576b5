package tables

import (
	"fmt"
	"strings"
)

// IntegrityErrorKind classifies data-integrity problems found while
// assembling a grid.
type IntegrityErrorKind int

const (
	// OverlappingSpan means two distinct cells claim the same grid position.
	OverlappingSpan IntegrityErrorKind = iota
)

func (k IntegrityErrorKind) String() string {
	switch k {
	case OverlappingSpan:
		return "OverlappingSpan"
	default:
		return "Unknown"
	}
}

// IntegrityError reports a data-integrity problem in the parser's cell
// records. These are recoverable: the grid is still built with the first
// writer winning each contested position.
type IntegrityError struct {
	Kind IntegrityErrorKind
	// Row, Col is the first contested position for the cell pair.
	Row, Col int
	// Owners holds the ids of the two cells claiming the position, first
	// writer first.
	Owners [2]string
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("%s at (%d,%d): cells %s and %s", e.Kind, e.Row, e.Col, e.Owners[0], e.Owners[1])
}

// maxIDSample bounds the number of known identifiers included in lookup
// errors, enough to orient without flooding output.
const maxIDSample = 10

// CellNotFoundError reports a lookup of an unknown cell identifier. Available
// holds a bounded sample of known identifiers.
type CellNotFoundError struct {
	ID        string
	Available []string
}

func (e *CellNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("cell %q not found (no cell ids in document)", e.ID)
	}
	return fmt.Sprintf("cell %q not found, known ids include: %s", e.ID, strings.Join(e.Available, ", "))
}

// PositionNotFoundError reports a lookup at a grid position no cell occupies.
// Available holds a bounded sample of occupied positions.
type PositionNotFoundError struct {
	Row, Col  int
	Available []Coord
}

func (e *PositionNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no cell at (%d,%d) (table has no cells)", e.Row, e.Col)
	}
	parts := make([]string, len(e.Available))
	for i, c := range e.Available {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("no cell at (%d,%d), occupied positions include: %s", e.Row, e.Col, strings.Join(parts, ", "))
}

// TableIndexError reports a table selection index that exceeds the number of
// tables detected in the document.
type TableIndexError struct {
	Requested int
	Available int
}

func (e *TableIndexError) Error() string {
	return fmt.Sprintf("table index %d out of range (%d tables found)", e.Requested, e.Available)
}
