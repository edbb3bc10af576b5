package tables

import (
	"strings"
	"testing"
)

func TestBuildGrid_Empty(t *testing.T) {
	grid, errs := BuildGrid(nil)
	if len(errs) != 0 {
		t.Errorf("Expected no errors for empty input, got %d", len(errs))
	}
	if grid.Rows() != 0 || grid.Cols() != 0 {
		t.Errorf("Expected 0x0 grid, got %dx%d", grid.Rows(), grid.Cols())
	}
	if _, ok := grid.At(0, 0); ok {
		t.Error("Expected no cell at (0,0) in empty grid")
	}
}

func TestBuildGrid_DimensionsIncludeSpans(t *testing.T) {
	// An anchor at row 5 with rowspan 3 extends coverage to row 7.
	grid, errs := BuildGrid([]SpannedCell{
		{ID: "a", Row: 5, Col: 0, RowSpan: 3, ColSpan: 1, Content: "tall"},
		{ID: "b", Row: 0, Col: 2, RowSpan: 1, ColSpan: 2, Content: "wide"},
	})
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	if grid.Rows() != 8 {
		t.Errorf("Expected 8 rows (max row 7), got %d", grid.Rows())
	}
	if grid.Cols() != 4 {
		t.Errorf("Expected 4 cols (max col 3), got %d", grid.Cols())
	}
}

func TestBuildGrid_CoveredPositionsResolveToAnchor(t *testing.T) {
	grid, errs := BuildGrid([]SpannedCell{
		{ID: "m", Row: 1, Col: 1, RowSpan: 2, ColSpan: 3, Content: "merged"},
	})
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	for r := 1; r <= 2; r++ {
		for c := 1; c <= 3; c++ {
			content, ok := grid.At(r, c)
			if !ok {
				t.Errorf("Expected position (%d,%d) to be occupied", r, c)
				continue
			}
			if content != "merged" {
				t.Errorf("At(%d,%d) = %q, want %q", r, c, content, "merged")
			}
		}
	}

	if !grid.IsAnchor(1, 1) {
		t.Error("Expected (1,1) to be the anchor")
	}
	if grid.IsAnchor(1, 2) {
		t.Error("Expected (1,2) to be covered, not an anchor")
	}
	if _, ok := grid.At(0, 0); ok {
		t.Error("Expected (0,0) to be unoccupied")
	}
}

func TestBuildGrid_EmptyStringDistinctFromMissing(t *testing.T) {
	grid, _ := BuildGrid([]SpannedCell{
		{ID: "e", Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Content: ""},
	})

	content, ok := grid.At(0, 0)
	if !ok {
		t.Fatal("Expected (0,0) to be occupied")
	}
	if content != "" {
		t.Errorf("Expected empty content, got %q", content)
	}
	if _, ok := grid.At(0, 1); ok {
		t.Error("Expected (0,1) to be unoccupied")
	}
}

func TestBuildGrid_OverlappingSpans(t *testing.T) {
	// Both cells claim (2,2). Exactly one error referencing both ids, and
	// the first writer keeps the position.
	grid, errs := BuildGrid([]SpannedCell{
		{ID: "first", Row: 2, Col: 1, RowSpan: 1, ColSpan: 2, Content: "one"},
		{ID: "second", Row: 2, Col: 2, RowSpan: 1, ColSpan: 2, Content: "two"},
	})

	if len(errs) != 1 {
		t.Fatalf("Expected exactly 1 integrity error, got %d: %v", len(errs), errs)
	}

	e := errs[0]
	if e.Kind != OverlappingSpan {
		t.Errorf("Expected OverlappingSpan, got %v", e.Kind)
	}
	if e.Row != 2 || e.Col != 2 {
		t.Errorf("Expected conflict at (2,2), got (%d,%d)", e.Row, e.Col)
	}
	if e.Owners[0] != "first" || e.Owners[1] != "second" {
		t.Errorf("Expected owners [first second], got %v", e.Owners)
	}

	content, ok := grid.At(2, 2)
	if !ok || content != "one" {
		t.Errorf("Expected first writer to keep (2,2), got %q, %v", content, ok)
	}

	// The second cell still occupies its uncontested positions.
	content, ok = grid.At(2, 3)
	if !ok || content != "two" {
		t.Errorf("Expected second cell at (2,3), got %q, %v", content, ok)
	}
}

func TestBuildGrid_LookupEveryOccupiedCoordinate(t *testing.T) {
	cells := []SpannedCell{
		{ID: "a", Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Content: "A"},
		{ID: "b", Row: 0, Col: 1, RowSpan: 2, ColSpan: 1, Content: "B"},
		{ID: "c", Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, Content: "C"},
		{ID: "d", Row: 2, Col: 0, RowSpan: 1, ColSpan: 2, Content: "D"},
	}
	grid, errs := BuildGrid(cells)
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	for _, at := range grid.Occupied() {
		anchor, ok := grid.AnchorAt(at.Row, at.Col)
		if !ok {
			t.Fatalf("Occupied position (%d,%d) has no anchor", at.Row, at.Col)
		}
		content, _ := grid.At(at.Row, at.Col)
		if content != anchor.Content {
			t.Errorf("At(%d,%d) = %q, want anchor content %q", at.Row, at.Col, content, anchor.Content)
		}
	}

	if len(grid.Occupied()) != 6 {
		t.Errorf("Expected 6 occupied positions, got %d", len(grid.Occupied()))
	}
}

func TestGridMarkdown_EndToEnd(t *testing.T) {
	// Header row, one data row, and a merged total row spanning two columns.
	grid, errs := BuildGrid([]SpannedCell{
		{ID: "h1", Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Content: "Name"},
		{ID: "h2", Row: 0, Col: 1, RowSpan: 1, ColSpan: 1, Content: "Amount"},
		{ID: "d1", Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, Content: "Alice"},
		{ID: "d2", Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Content: "100"},
		{ID: "t1", Row: 2, Col: 0, RowSpan: 1, ColSpan: 2, Content: "Total"},
	})
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	if grid.Rows() != 3 {
		t.Fatalf("Expected 3 logical rows, got %d", grid.Rows())
	}

	// The covered position resolves to the merged cell's content.
	content, ok := grid.At(2, 1)
	if !ok || content != "Total" {
		t.Errorf("At(2,1) = %q, %v, want Total", content, ok)
	}

	md := grid.Markdown()
	lines := strings.Split(strings.TrimRight(md, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 markdown lines (3 rows + separator), got %d:\n%s", len(lines), md)
	}

	// Separator directly after logical row 0.
	if lines[1] != "| --- | --- |" {
		t.Errorf("Expected separator after header row, got %q", lines[1])
	}

	// Covered positions render the placeholder, never the anchor content.
	if lines[3] != "| Total | ^^ |" {
		t.Errorf("Expected merged row with placeholder, got %q", lines[3])
	}
}

func TestGridMarkdown_UnoccupiedRendersEmpty(t *testing.T) {
	grid, _ := BuildGrid([]SpannedCell{
		{ID: "a", Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Content: "only"},
		{ID: "b", Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Content: "corner"},
	})

	lines := strings.Split(strings.TrimRight(grid.Markdown(), "\n"), "\n")
	if lines[0] != "| only |  |" {
		t.Errorf("Expected sparse header row, got %q", lines[0])
	}
	if lines[2] != "|  | corner |" {
		t.Errorf("Expected sparse data row, got %q", lines[2])
	}
}

func TestGridCSV(t *testing.T) {
	grid, _ := BuildGrid([]SpannedCell{
		{ID: "a", Row: 0, Col: 0, RowSpan: 1, ColSpan: 2, Content: "wide, cell"},
		{ID: "b", Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, Content: "x"},
		{ID: "c", Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Content: "y"},
	})

	got := grid.CSV()
	want := "\"wide, cell\",\nx,y\n"
	if got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}
}
