package model

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Chunk is a contiguous content unit identified by the parser: a paragraph,
// table, figure, and so on. Chunks carry their serialized content and the
// region they were detected at.
type Chunk struct {
	ID      string
	Kind    Kind
	Region  Region
	Content string // markdown or HTML serialization of the chunk
}

// Metadata contains document-level information about a parse.
type Metadata struct {
	Filename    string `json:"filename"`
	PageCount   int    `json:"page_count"`
	DurationMS  int    `json:"duration_ms"`
	FailedPages []int  `json:"failed_pages,omitempty"`
}

// ParseResult is the outcome of parsing one document. Chunks is an explicit
// ordered slice in document order; callers must never infer document order
// from Grounding, which is an unordered map keyed by record identifier.
type ParseResult struct {
	Markdown  string
	Chunks    []Chunk
	Grounding map[string]Grounding
	Splits    []Segment
	Metadata  Metadata
}

// wire-format records, resolved into the concrete model types during decode

type chunkRecord struct {
	ID        string `json:"id"`
	Type      Kind   `json:"type"`
	Markdown  string `json:"markdown"`
	Grounding Region `json:"grounding"`
}

type groundingRecord struct {
	Type     Kind          `json:"type"`
	Page     int           `json:"page"`
	Box      Box           `json:"box"`
	Position *CellPosition `json:"position,omitempty"`
}

type parseResultRecord struct {
	Markdown  string                     `json:"markdown"`
	Chunks    []chunkRecord              `json:"chunks"`
	Grounding map[string]groundingRecord `json:"grounding"`
	Splits    []Segment                  `json:"splits,omitempty"`
	Metadata  Metadata                   `json:"metadata"`
}

// UnmarshalJSON decodes a parse result, resolving each grounding record to
// its concrete type exactly once. A tableCell record without position
// metadata degrades to a GenericGrounding rather than failing the decode.
func (p *ParseResult) UnmarshalJSON(data []byte) error {
	var rec parseResultRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	p.Markdown = rec.Markdown
	p.Splits = rec.Splits
	p.Metadata = rec.Metadata

	p.Chunks = make([]Chunk, len(rec.Chunks))
	for i, c := range rec.Chunks {
		p.Chunks[i] = Chunk{
			ID:      c.ID,
			Kind:    c.Type,
			Region:  c.Grounding,
			Content: c.Markdown,
		}
	}

	p.Grounding = make(map[string]Grounding, len(rec.Grounding))
	for id, g := range rec.Grounding {
		resolved, err := resolveGrounding(id, g)
		if err != nil {
			return err
		}
		p.Grounding[id] = resolved
	}

	return nil
}

func resolveGrounding(id string, g groundingRecord) (Grounding, error) {
	loc := Region{Page: g.Page, Box: g.Box}
	if g.Page < 0 {
		return nil, fmt.Errorf("grounding %s: negative page %d", id, g.Page)
	}

	switch {
	case g.Type == KindTable:
		return TableGrounding{GID: id, Loc: loc}, nil
	case g.Type == KindTableCell && g.Position != nil:
		pos := *g.Position
		if pos.RowSpan < 1 {
			pos.RowSpan = 1
		}
		if pos.ColSpan < 1 {
			pos.ColSpan = 1
		}
		if pos.Row < 0 || pos.Col < 0 {
			return nil, fmt.Errorf("grounding %s: negative cell position (%d,%d)", id, pos.Row, pos.Col)
		}
		return CellGrounding{GID: id, Loc: loc, Position: pos}, nil
	default:
		return GenericGrounding{GID: id, Type: g.Type, Loc: loc}, nil
	}
}

// DecodeParseResult reads a JSON-encoded parse result, such as one saved with
// the service's save-to option.
func DecodeParseResult(r io.Reader) (*ParseResult, error) {
	var result ParseResult
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding parse result: %w", err)
	}
	return &result, nil
}

// TableGroundings returns all table anchor records, sorted by identifier for
// deterministic iteration.
func (p *ParseResult) TableGroundings() []TableGrounding {
	return groundingsOf[TableGrounding](p)
}

// CellGroundings returns all positioned table cell records, sorted by
// identifier for deterministic iteration.
func (p *ParseResult) CellGroundings() []CellGrounding {
	return groundingsOf[CellGrounding](p)
}

func groundingsOf[T Grounding](p *ParseResult) []T {
	var out []T
	for _, g := range p.Grounding {
		if t, ok := g.(T); ok {
			out = append(out, t)
		}
	}
	sortByID(out)
	return out
}

func sortByID[T Grounding](gs []T) {
	sort.Slice(gs, func(i, j int) bool { return gs[i].ID() < gs[j].ID() })
}
