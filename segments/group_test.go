package segments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docsift/docsift/model"
)

func sampleSegments() []model.Segment {
	return []model.Segment{
		{Class: "Invoice", Identifier: "INV-1", Pages: []int{0, 1}, Markdowns: []string{"# Invoice 1"}},
		{Class: "Receipt", Identifier: "R-9", Pages: []int{2}, Markdowns: []string{"# Receipt"}},
		{Class: "Invoice", Identifier: "INV-2", Pages: []int{4}, Markdowns: []string{"# Invoice 2"}},
	}
}

func TestByClass(t *testing.T) {
	groups := ByClass(sampleSegments())
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "Invoice" || len(groups[0].Segments) != 2 {
		t.Errorf("Expected Invoice group with 2 segments first, got %q with %d", groups[0].Key, len(groups[0].Segments))
	}
	if groups[1].Key != "Receipt" || len(groups[1].Segments) != 1 {
		t.Errorf("Expected Receipt group second, got %q", groups[1].Key)
	}
}

func TestByIdentifier(t *testing.T) {
	groups := ByIdentifier(sampleSegments())
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}
	if groups[0].Key != "Invoice-INV-1" {
		t.Errorf("Expected first group Invoice-INV-1, got %q", groups[0].Key)
	}
}

func TestUnclassifiedPages(t *testing.T) {
	got := UnclassifiedPages(6, sampleSegments())
	if len(got) != 2 || got[0] != 3 || got[1] != 5 {
		t.Errorf("Expected unclassified pages [3 5], got %v", got)
	}

	if got := UnclassifiedPages(5, []model.Segment{{Pages: []int{0, 1, 2, 3, 4}}}); got != nil {
		t.Errorf("Expected no unclassified pages, got %v", got)
	}
}

func TestPageRanges(t *testing.T) {
	tests := []struct {
		pages []int
		want  string
	}{
		{nil, ""},
		{[]int{0}, "1"},
		{[]int{0, 1, 2}, "1-3"},
		{[]int{0, 1, 2, 4}, "1-3,5"},
		{[]int{4, 0, 2, 1}, "1-3,5"},
		{[]int{2, 2, 3}, "3-4"},
	}
	for _, tt := range tests {
		if got := PageRanges(tt.pages); got != tt.want {
			t.Errorf("PageRanges(%v) = %q, want %q", tt.pages, got, tt.want)
		}
	}
}

func TestWriteMarkdownFiles(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteMarkdownFiles(dir, []model.Segment{
		{Class: "Invoice", Identifier: "INV/1 A", Markdowns: []string{"part one", "part two"}},
		{Class: "Invoice", Identifier: "INV/1 A", Markdowns: []string{"duplicate name"}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(paths))
	}

	if filepath.Base(paths[0]) != "Invoice_INV-1_A.md" {
		t.Errorf("Expected sanitized filename, got %q", filepath.Base(paths[0]))
	}
	if filepath.Base(paths[1]) != "Invoice_INV-1_A_2.md" {
		t.Errorf("Expected suffixed duplicate, got %q", filepath.Base(paths[1]))
	}

	content, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "part one\npart two" {
		t.Errorf("Expected joined markdowns, got %q", content)
	}
}
