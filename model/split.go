package model

// Segment is one classified section of a split document.
type Segment struct {
	// Class is the classification label assigned to the segment.
	Class string `json:"classification"`
	// Identifier is the grouping key extracted for the segment, such as an
	// invoice number.
	Identifier string `json:"identifier"`
	// Pages lists the zero-based page numbers the segment covers.
	Pages []int `json:"pages"`
	// Markdowns holds the segment's content fragments in document order.
	Markdowns []string `json:"markdowns"`
}

// Markdown returns the segment's content fragments joined into one document.
func (s Segment) Markdown() string {
	switch len(s.Markdowns) {
	case 0:
		return ""
	case 1:
		return s.Markdowns[0]
	}
	out := s.Markdowns[0]
	for _, m := range s.Markdowns[1:] {
		out += "\n" + m
	}
	return out
}

// SplitResult is the outcome of classifying and splitting one document.
type SplitResult struct {
	Segments []Segment `json:"splits"`
}
