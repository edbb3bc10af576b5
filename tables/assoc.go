package tables

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/docsift/docsift/model"
)

// CellIndex is a per-page spatial index over positioned cell groundings,
// used to resolve table membership geometrically when cells carry no
// explicit table linkage.
type CellIndex struct {
	pages map[int]*rtree.RTreeG[model.CellGrounding]
}

// NewCellIndex indexes the given cell groundings by page and position.
func NewCellIndex(cells []model.CellGrounding) *CellIndex {
	ix := &CellIndex{pages: make(map[int]*rtree.RTreeG[model.CellGrounding])}
	for _, c := range cells {
		tr, ok := ix.pages[c.Loc.Page]
		if !ok {
			tr = &rtree.RTreeG[model.CellGrounding]{}
			ix.pages[c.Loc.Page] = tr
		}
		b := c.Loc.Box
		tr.Insert([2]float64{b.Left, b.Top}, [2]float64{b.Right, b.Bottom}, c)
	}
	return ix
}

// Within returns the cells contained in the given table region, applying the
// standard containment tolerance. Results are sorted by identifier.
func (ix *CellIndex) Within(table model.Region) []model.CellGrounding {
	tr, ok := ix.pages[table.Page]
	if !ok {
		return nil
	}

	// Search with the tolerance folded into the window, then confirm with
	// the exact containment test.
	b := table.Box
	tol := model.ContainmentTolerance
	var out []model.CellGrounding
	tr.Search(
		[2]float64{b.Left - tol, b.Top - tol},
		[2]float64{b.Right + tol, b.Bottom + tol},
		func(_, _ [2]float64, c model.CellGrounding) bool {
			if table.Box.Contains(c.Loc.Box) {
				out = append(out, c)
			}
			return true
		},
	)

	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// CellsFor returns the cell groundings belonging to the given table chunk.
// Cells that name the table through their position metadata are matched by
// that linkage; when no cell names the table, membership falls back to
// geometric containment within the chunk's region.
func CellsFor(table model.Chunk, parsed *model.ParseResult) []model.CellGrounding {
	all := parsed.CellGroundings()

	var linked []model.CellGrounding
	for _, c := range all {
		if c.Position.TableID == table.ID {
			linked = append(linked, c)
		}
	}
	if len(linked) > 0 {
		return linked
	}

	return NewCellIndex(all).Within(table.Region)
}

// NestedPair records one table grounding nested inside another.
type NestedPair struct {
	Outer, Inner string
}

// NestedTables reports every pair of table groundings where one table's
// region contains the other's. Duplicate detections of the same region are
// not reported; they need upstream dedup, not a containment direction. Pairs
// are produced in sorted-identifier order so output is deterministic.
func NestedTables(parsed *model.ParseResult) []NestedPair {
	groundings := parsed.TableGroundings()

	var pairs []NestedPair
	for i := 0; i < len(groundings); i++ {
		for j := i + 1; j < len(groundings); j++ {
			a, b := groundings[i], groundings[j]
			if a.Loc.Page != b.Loc.Page {
				continue
			}
			ord, err := model.Nested(a.Loc, b.Loc)
			if err != nil {
				continue
			}
			switch ord {
			case model.AContainsB:
				pairs = append(pairs, NestedPair{Outer: a.ID(), Inner: b.ID()})
			case model.BContainsA:
				pairs = append(pairs, NestedPair{Outer: b.ID(), Inner: a.ID()})
			}
		}
	}
	return pairs
}

// GridFor reconstructs the dense grid of the table at the given zero-based
// index. Cell positions come from the table's cell groundings and content
// comes from the chunk's serialized form; when the parse carries no
// positioned cells for the table, the grid is built from the serialized form
// alone.
func GridFor(parsed *model.ParseResult, tableIndex int) (*Grid, []IntegrityError, error) {
	chunk, err := Table(parsed, tableIndex)
	if err != nil {
		return nil, nil, err
	}

	scan, scanErr := ScanChunk(chunk)

	cells := CellsFor(chunk, parsed)
	if len(cells) == 0 {
		if scanErr != nil {
			return nil, nil, scanErr
		}
		grid, errs := scan.Grid()
		return grid, errs, nil
	}

	spanned := make([]SpannedCell, len(cells))
	for i, c := range cells {
		content := ""
		if scan != nil {
			if sc, ok := scan.At(c.Position.Row, c.Position.Col); ok {
				content = sc.Text
			}
		}
		spanned[i] = SpannedCell{
			ID:      c.ID(),
			Row:     c.Position.Row,
			Col:     c.Position.Col,
			RowSpan: c.Position.RowSpan,
			ColSpan: c.Position.ColSpan,
			Content: content,
		}
	}

	grid, errs := BuildGrid(spanned)
	return grid, errs, nil
}
