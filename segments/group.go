package segments

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docsift/docsift/model"
)

// Group is a set of segments sharing a key, in first-seen order.
type Group struct {
	Key      string
	Segments []model.Segment
}

// ByClass groups segments by classification label. Groups appear in the
// order their class is first seen, so output tracks document order.
func ByClass(segs []model.Segment) []Group {
	return groupBy(segs, func(s model.Segment) string { return s.Class })
}

// ByIdentifier groups segments by "class-identifier", the grouping the
// split service's identifier fields exist for.
func ByIdentifier(segs []model.Segment) []Group {
	return groupBy(segs, func(s model.Segment) string {
		return s.Class + "-" + s.Identifier
	})
}

func groupBy(segs []model.Segment, key func(model.Segment) string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, s := range segs {
		k := key(s)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Segments = append(groups[i].Segments, s)
	}
	return groups
}

// UnclassifiedPages returns the zero-based pages of a document no segment
// claims, in ascending order. A non-empty result usually means the split
// classes did not cover everything in the document.
func UnclassifiedPages(pageCount int, segs []model.Segment) []int {
	claimed := make(map[int]bool)
	for _, s := range segs {
		for _, p := range s.Pages {
			claimed[p] = true
		}
	}

	var out []int
	for p := 0; p < pageCount; p++ {
		if !claimed[p] {
			out = append(out, p)
		}
	}
	return out
}

// PageRanges formats zero-based pages as compact one-based ranges, such as
// "1-3,5". The result is suitable for page-selection arguments.
func PageRanges(pages []int) string {
	if len(pages) == 0 {
		return ""
	}
	sorted := make([]int, len(pages))
	copy(sorted, pages)
	sort.Ints(sorted)

	var parts []string
	start := sorted[0]
	prev := sorted[0]
	flush := func() {
		if start == prev {
			parts = append(parts, fmt.Sprintf("%d", start+1))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start+1, prev+1))
		}
	}
	for _, p := range sorted[1:] {
		if p == prev {
			continue
		}
		if p != prev+1 {
			flush()
			start = p
		}
		prev = p
	}
	flush()
	return strings.Join(parts, ",")
}
