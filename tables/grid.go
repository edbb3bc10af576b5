package tables

import (
	"sort"
	"strings"
)

// CoveredPlaceholder is emitted when rendering a grid position that is
// occupied by a spanned cell but is not the cell's anchor.
const CoveredPlaceholder = "^^"

// Coord is a zero-based (row, column) grid position.
type Coord struct {
	Row, Col int
}

// SpannedCell is one table cell as reported by the parser: an anchor position,
// the number of rows and columns it spans, and its content.
type SpannedCell struct {
	ID      string
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	Content string
}

// Grid is a dense logical table reconstructed from sparse spanned cells. A
// cell with rowspan r and colspan c occupies every position (row+i, col+j)
// for i < r, j < c; the top-left position is the anchor and all others are
// covered positions that resolve to the anchor's content.
//
// Grids are built per table on demand and are not meant to be persisted.
type Grid struct {
	rows, cols int
	anchors    []SpannedCell
	occupied   map[Coord]int // position -> index into anchors
}

// BuildGrid assembles a grid from the given cells. Dimensions are derived
// from anchor position plus span, so a cell at row 5 with rowspan 3 extends
// the grid to row 7 even if no other cell reaches that far.
//
// Overlapping spans are a data-integrity problem in the input: the first
// writer (in input order) keeps every contested position, and one
// [IntegrityError] per conflicting cell pair is returned alongside the grid.
// An empty input produces an empty grid and no errors.
func BuildGrid(cells []SpannedCell) (*Grid, []IntegrityError) {
	g := &Grid{occupied: make(map[Coord]int)}

	for _, c := range cells {
		if c.RowSpan < 1 {
			c.RowSpan = 1
		}
		if c.ColSpan < 1 {
			c.ColSpan = 1
		}
		if r := c.Row + c.RowSpan; r > g.rows {
			g.rows = r
		}
		if col := c.Col + c.ColSpan; col > g.cols {
			g.cols = col
		}
		g.anchors = append(g.anchors, c)
	}

	var errs []IntegrityError
	for idx, c := range g.anchors {
		reported := make(map[int]bool)
		for i := 0; i < c.RowSpan; i++ {
			for j := 0; j < c.ColSpan; j++ {
				at := Coord{Row: c.Row + i, Col: c.Col + j}
				prev, taken := g.occupied[at]
				if !taken {
					g.occupied[at] = idx
					continue
				}
				if prev != idx && !reported[prev] {
					reported[prev] = true
					errs = append(errs, IntegrityError{
						Kind:   OverlappingSpan,
						Row:    at.Row,
						Col:    at.Col,
						Owners: [2]string{g.anchors[prev].ID, c.ID},
					})
				}
			}
		}
	}

	return g, errs
}

// Rows returns the number of logical rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of logical columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the content at position (row, col). Covered positions resolve
// to their anchor's content. The second return value is false when no cell
// occupies the position, which is distinct from a cell holding an empty
// string.
func (g *Grid) At(row, col int) (string, bool) {
	idx, ok := g.occupied[Coord{Row: row, Col: col}]
	if !ok {
		return "", false
	}
	return g.anchors[idx].Content, true
}

// AnchorAt returns the cell whose span occupies position (row, col).
func (g *Grid) AnchorAt(row, col int) (SpannedCell, bool) {
	idx, ok := g.occupied[Coord{Row: row, Col: col}]
	if !ok {
		return SpannedCell{}, false
	}
	return g.anchors[idx], true
}

// IsAnchor reports whether (row, col) is the anchor position of a cell, as
// opposed to covered or unoccupied.
func (g *Grid) IsAnchor(row, col int) bool {
	cell, ok := g.AnchorAt(row, col)
	return ok && cell.Row == row && cell.Col == col
}

// Occupied returns all occupied positions in row-major order.
func (g *Grid) Occupied() []Coord {
	out := make([]Coord, 0, len(g.occupied))
	for at := range g.occupied {
		out = append(out, at)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Markdown renders the grid as a markdown table. Covered positions are
// rendered as the placeholder token rather than repeating their anchor's
// content, unoccupied positions as empty cells, and a header separator row
// follows logical row 0.
func (g *Grid) Markdown() string {
	if g.rows == 0 || g.cols == 0 {
		return ""
	}

	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(g.renderAt(row, col), "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")

		if row == 0 {
			for col := 0; col < g.cols; col++ {
				sb.WriteString("| --- ")
			}
			sb.WriteString("|\n")
		}
	}
	return sb.String()
}

// CSV renders the grid as CSV. Covered positions are left empty so spanned
// content is never double-counted by downstream consumers.
func (g *Grid) CSV() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			text := ""
			if g.IsAnchor(row, col) {
				text = g.anchors[g.occupied[Coord{Row: row, Col: col}]].Content
			}
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if col < g.cols-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (g *Grid) renderAt(row, col int) string {
	cell, ok := g.AnchorAt(row, col)
	if !ok {
		return ""
	}
	if cell.Row == row && cell.Col == col {
		return cell.Content
	}
	return CoveredPlaceholder
}
