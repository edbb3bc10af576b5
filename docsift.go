// Package docsift provides a fluent API over document-intelligence parse
// results: table reconstruction, cell lookup, and grounding geometry.
//
// Basic usage, starting from a saved parse result:
//
//	doc, err := docsift.FromFile("invoice_parse_output.json")
//	if err != nil {
//	    // handle error
//	}
//	value, err := doc.CellValue(0, 2, 1)
//
// Or straight from the service:
//
//	client := ade.NewClient(nil)
//	parsed, err := client.Parse(ctx, ade.ParseRequest{Document: "invoice.pdf"})
//	if err != nil {
//	    // handle error
//	}
//	doc := docsift.FromParse(parsed)
//
// For lower-level control, the model, tables, ade, render, segments, and
// spreadsheet packages are also available.
package docsift

import (
	"io"
	"os"

	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/tables"
)

// Analysis wraps one document's parse result for table and cell lookups.
type Analysis struct {
	parsed *model.ParseResult
}

// FromFile loads a saved parse-result JSON file, such as one written with
// the client's save-to option.
func FromFile(filename string) (*Analysis, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader decodes a parse result from r.
func FromReader(r io.Reader) (*Analysis, error) {
	parsed, err := model.DecodeParseResult(r)
	if err != nil {
		return nil, err
	}
	return &Analysis{parsed: parsed}, nil
}

// FromParse wraps an already-decoded parse result.
func FromParse(parsed *model.ParseResult) *Analysis {
	return &Analysis{parsed: parsed}
}

// Parse returns the underlying parse result.
func (a *Analysis) Parse() *model.ParseResult { return a.parsed }

// Markdown returns the document's full markdown serialization.
func (a *Analysis) Markdown() string { return a.parsed.Markdown }

// Tables returns the document's table chunks in document order.
func (a *Analysis) Tables() []model.Chunk {
	return tables.Tables(a.parsed)
}

// Table selects a table by zero-based document-order index.
func (a *Analysis) Table(index int) (model.Chunk, error) {
	return tables.Table(a.parsed, index)
}

// Grid reconstructs the dense grid of the table at the given index,
// alongside any data-integrity problems found in its cell records.
func (a *Analysis) Grid(index int) (*tables.Grid, []tables.IntegrityError, error) {
	return tables.GridFor(a.parsed, index)
}

// CellValue returns the content at (row, col) of the table with the given
// index. Positions covered by a merged cell resolve to the merged cell's
// content.
func (a *Analysis) CellValue(tableIndex, row, col int) (string, error) {
	return tables.CellAt(a.parsed, tableIndex, row, col)
}

// CellByID resolves a named cell identifier, such as a spreadsheet-style
// "Sheet 1-B2", against every table in the document.
func (a *Analysis) CellByID(id string) (string, error) {
	return tables.CellByID(a.parsed, id)
}

// NestedTables reports table groundings whose regions contain one another,
// usually a table detected inside another table's cell.
func (a *Analysis) NestedTables() []tables.NestedPair {
	return tables.NestedTables(a.parsed)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := docsift.Must(docsift.FromFile("parse_output.json"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
