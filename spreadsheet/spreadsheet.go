// Package spreadsheet resolves "Sheet-Cell" references against workbook
// files directly, the same identifiers the parsing service stamps on
// spreadsheet table cells. Merged ranges resolve to their anchor cell's
// value, matching how the parser reports merged content.
package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxRefSample bounds the reference sample carried by lookup errors.
const maxRefSample = 10

// Ref is a parsed cell reference, such as sheet "Sheet 1" cell "B2".
type Ref struct {
	Sheet string
	Cell  string
}

// String formats the reference back to its "Sheet-Cell" form.
func (r Ref) String() string { return r.Sheet + "-" + r.Cell }

// ParseRef splits a "Sheet-Cell" reference on its last dash, so sheet names
// containing dashes survive.
func ParseRef(id string) (Ref, error) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return Ref{}, fmt.Errorf("malformed cell reference %q: want \"Sheet-Cell\"", id)
	}
	ref := Ref{Sheet: id[:i], Cell: id[i+1:]}
	if _, _, err := excelize.CellNameToCoordinates(ref.Cell); err != nil {
		return Ref{}, fmt.Errorf("malformed cell reference %q: %w", id, err)
	}
	return ref, nil
}

// RefNotFoundError reports a reference naming a sheet or cell the workbook
// does not have. Available holds a bounded sample of valid references.
type RefNotFoundError struct {
	Ref       Ref
	Available []string
}

func (e *RefNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("cell %s not found", e.Ref)
	}
	return fmt.Sprintf("cell %s not found, valid references include: %s", e.Ref, strings.Join(e.Available, ", "))
}

// Cell returns the value at a "Sheet-Cell" reference in a workbook file.
// A reference inside a merged range resolves to the range's anchor value.
func Cell(path, id string) (string, error) {
	ref, err := ParseRef(id)
	if err != nil {
		return "", err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if !hasSheet(f, ref.Sheet) {
		return "", &RefNotFoundError{Ref: ref, Available: sampleRefs(f)}
	}

	cell := ref.Cell
	if anchor, ok, err := mergeAnchor(f, ref.Sheet, cell); err != nil {
		return "", err
	} else if ok {
		cell = anchor
	}

	value, err := f.GetCellValue(ref.Sheet, cell)
	if err != nil {
		return "", fmt.Errorf("reading cell %s: %w", ref, err)
	}
	if value == "" && !cellExists(f, ref.Sheet, cell) {
		return "", &RefNotFoundError{Ref: ref, Available: sampleRefs(f)}
	}
	return value, nil
}

// mergeAnchor returns the top-left cell of the merged range containing the
// given cell, if any.
func mergeAnchor(f *excelize.File, sheet, cell string) (string, bool, error) {
	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		return "", false, fmt.Errorf("reading merged ranges: %w", err)
	}
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return "", false, err
	}

	for _, m := range merged {
		sc, sr, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			continue
		}
		ec, er, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			continue
		}
		if col >= sc && col <= ec && row >= sr && row <= er {
			return m.GetStartAxis(), true, nil
		}
	}
	return "", false, nil
}

func hasSheet(f *excelize.File, sheet string) bool {
	for _, name := range f.GetSheetList() {
		if name == sheet {
			return true
		}
	}
	return false
}

// cellExists reports whether the cell lies within the sheet's used range.
func cellExists(f *excelize.File, sheet, cell string) bool {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return false
	}
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return false
	}
	if row > len(rows) {
		return false
	}
	return col <= len(rows[row-1])
}

// sampleRefs collects a bounded sample of populated cell references across
// the workbook, for lookup error messages.
func sampleRefs(f *excelize.File) []string {
	var out []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for r, row := range rows {
			for c, value := range row {
				if value == "" {
					continue
				}
				name, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					continue
				}
				out = append(out, Ref{Sheet: sheet, Cell: name}.String())
				if len(out) >= maxRefSample {
					return out
				}
			}
		}
	}
	return out
}
