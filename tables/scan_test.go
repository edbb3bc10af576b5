package tables

import (
	"strings"
	"testing"

	"github.com/docsift/docsift/model"
)

const sampleTableHTML = `<table>
<tr><td id="Sheet 1-A1" rowspan="2">Region</td><td id="Sheet 1-B1">Q1</td><td id="Sheet 1-C1">Q2</td></tr>
<tr><td id="Sheet 1-B2">10</td><td id="Sheet 1-C2">20</td></tr>
<tr><td id="Sheet 1-A3" colspan="3">Totals: 30</td></tr>
</table>`

func TestScanHTML_SpansShiftLaterCells(t *testing.T) {
	scan, err := ScanHTML(strings.NewReader(sampleTableHTML))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Row 0 lays out normally.
	cell, ok := scan.At(0, 0)
	if !ok || cell.Text != "Region" {
		t.Errorf("At(0,0) = %+v, %v, want Region", cell, ok)
	}
	if cell.RowSpan != 2 {
		t.Errorf("Expected rowspan 2 at (0,0), got %d", cell.RowSpan)
	}

	// Row 1's first td lands at column 1 because (1,0) is covered by the
	// rowspan above it.
	cell, ok = scan.At(1, 1)
	if !ok || cell.Text != "10" {
		t.Errorf("At(1,1) = %+v, %v, want 10", cell, ok)
	}
	if _, ok := scan.At(1, 0); ok {
		t.Error("Expected no anchor at (1,0); it is covered by the rowspan")
	}

	cell, ok = scan.At(2, 0)
	if !ok || cell.ColSpan != 3 {
		t.Errorf("At(2,0) = %+v, %v, want colspan 3", cell, ok)
	}
}

func TestScanHTML_CellIDs(t *testing.T) {
	scan, err := ScanHTML(strings.NewReader(sampleTableHTML))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	text, ok := scan.CellText("Sheet 1-B2")
	if !ok || text != "10" {
		t.Errorf("CellText(Sheet 1-B2) = %q, %v, want 10", text, ok)
	}

	if _, ok := scan.CellText("Sheet 1-Z9"); ok {
		t.Error("Expected miss for unknown id")
	}

	ids := scan.IDs()
	if len(ids) != 6 {
		t.Fatalf("Expected 6 ids, got %d: %v", len(ids), ids)
	}
	if ids[0] != "Sheet 1-A1" || ids[5] != "Sheet 1-A3" {
		t.Errorf("Expected document-order ids, got %v", ids)
	}
}

func TestScanHTML_GridRoundTrip(t *testing.T) {
	scan, err := ScanHTML(strings.NewReader(sampleTableHTML))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	grid, errs := scan.Grid()
	if len(errs) != 0 {
		t.Fatalf("Expected no integrity errors, got %v", errs)
	}
	if grid.Rows() != 3 || grid.Cols() != 3 {
		t.Fatalf("Expected 3x3 grid, got %dx%d", grid.Rows(), grid.Cols())
	}

	// The covered position under the rowspan resolves to the anchor's text.
	content, ok := grid.At(1, 0)
	if !ok || content != "Region" {
		t.Errorf("At(1,0) = %q, %v, want Region", content, ok)
	}
	content, ok = grid.At(2, 2)
	if !ok || content != "Totals: 30" {
		t.Errorf("At(2,2) = %q, %v, want Totals: 30", content, ok)
	}
}

func TestScanHTML_CollapsesWhitespace(t *testing.T) {
	scan, err := ScanHTML(strings.NewReader("<table><tr><td>  a\n  <b>b</b>  c </td></tr></table>"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	cell, ok := scan.At(0, 0)
	if !ok || cell.Text != "a b c" {
		t.Errorf("At(0,0) = %q, %v, want collapsed text", cell.Text, ok)
	}
}

func TestScanMarkdown(t *testing.T) {
	src := []byte("| Name | Amount |\n| --- | --- |\n| Alice | 100 |\n| Total | ^^ |\n")

	scan, err := ScanMarkdown(src)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cell, ok := scan.At(0, 1)
	if !ok || cell.Text != "Amount" {
		t.Errorf("At(0,1) = %q, %v, want Amount", cell.Text, ok)
	}
	cell, ok = scan.At(1, 0)
	if !ok || cell.Text != "Alice" {
		t.Errorf("At(1,0) = %q, %v, want Alice", cell.Text, ok)
	}

	// Placeholders pass through untouched; pipe tables carry no span data.
	cell, ok = scan.At(2, 1)
	if !ok || cell.Text != CoveredPlaceholder {
		t.Errorf("At(2,1) = %q, %v, want placeholder", cell.Text, ok)
	}
	if cell.RowSpan != 1 || cell.ColSpan != 1 {
		t.Errorf("Expected 1x1 spans, got %dx%d", cell.RowSpan, cell.ColSpan)
	}

	if len(scan.IDs()) != 0 {
		t.Errorf("Expected no ids from markdown, got %v", scan.IDs())
	}
}

func TestScanChunk_SniffsFormat(t *testing.T) {
	htmlChunk := model.Chunk{
		ID:      "c1",
		Kind:    model.KindTable,
		Content: "<table><tr><td>x</td></tr></table>",
	}
	scan, err := ScanChunk(htmlChunk)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cell, ok := scan.At(0, 0); !ok || cell.Text != "x" {
		t.Errorf("Expected HTML scan to find x at (0,0), got %+v, %v", cell, ok)
	}

	mdChunk := model.Chunk{
		ID:      "c2",
		Kind:    model.KindTable,
		Content: "| a |\n| --- |\n| b |\n",
	}
	scan, err = ScanChunk(mdChunk)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cell, ok := scan.At(1, 0); !ok || cell.Text != "b" {
		t.Errorf("Expected markdown scan to find b at (1,0), got %+v, %v", cell, ok)
	}
}
