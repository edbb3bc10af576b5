package tables

import (
	"github.com/docsift/docsift/model"
)

// Tables returns the document's table chunks in document order.
func Tables(parsed *model.ParseResult) []model.Chunk {
	var out []model.Chunk
	for _, c := range parsed.Chunks {
		if c.Kind == model.KindTable {
			out = append(out, c)
		}
	}
	return out
}

// Table selects a table chunk by zero-based index over the document-order
// sequence of detected tables. An out-of-range index fails with
// TableIndexError.
func Table(parsed *model.ParseResult, index int) (model.Chunk, error) {
	all := Tables(parsed)
	if index < 0 || index >= len(all) {
		return model.Chunk{}, &TableIndexError{Requested: index, Available: len(all)}
	}
	return all[index], nil
}

// CellAt returns the content at (row, col) of the table with the given
// index, resolving covered positions to their anchor's content. A position
// no cell occupies fails with PositionNotFoundError carrying a bounded
// sample of occupied positions.
func CellAt(parsed *model.ParseResult, tableIndex, row, col int) (string, error) {
	grid, _, err := GridFor(parsed, tableIndex)
	if err != nil {
		return "", err
	}

	content, ok := grid.At(row, col)
	if !ok {
		occupied := grid.Occupied()
		if len(occupied) > maxIDSample {
			occupied = occupied[:maxIDSample]
		}
		return "", &PositionNotFoundError{Row: row, Col: col, Available: occupied}
	}
	return content, nil
}

// CellByID resolves a named cell identifier (such as a spreadsheet-style
// "Sheet 1-B2") against every table in the document, in document order. A
// miss fails with CellNotFoundError carrying a bounded sample of the
// identifiers that do exist.
func CellByID(parsed *model.ParseResult, id string) (string, error) {
	var available []string
	for _, chunk := range Tables(parsed) {
		scan, err := ScanChunk(chunk)
		if err != nil {
			return "", err
		}
		if text, ok := scan.CellText(id); ok {
			return text, nil
		}
		for _, known := range scan.IDs() {
			if len(available) < maxIDSample {
				available = append(available, known)
			}
		}
	}
	return "", &CellNotFoundError{ID: id, Available: available}
}
