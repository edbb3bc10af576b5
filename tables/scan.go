package tables

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/docsift/docsift/model"
)

// ScannedCell is one cell read out of a table's serialized form.
type ScannedCell struct {
	// ID is the cell's id attribute, when the serialization carries one
	// (spreadsheet-style identifiers such as "Sheet 1-B2").
	ID      string
	Text    string
	RowSpan int
	ColSpan int
}

// TableScan holds the cell layout recovered from a table's serialized form.
// Rows and cells are recorded in document order; spanned cells are recorded
// once, at their anchor position.
type TableScan struct {
	cells map[Coord]ScannedCell
	ids   []string          // document order
	byID  map[string]string // id -> text
}

// At returns the cell anchored at (row, col).
func (s *TableScan) At(row, col int) (ScannedCell, bool) {
	c, ok := s.cells[Coord{Row: row, Col: col}]
	return c, ok
}

// CellText returns the text of the cell with the given id attribute.
func (s *TableScan) CellText(id string) (string, bool) {
	text, ok := s.byID[id]
	return text, ok
}

// IDs returns all cell id attributes in document order.
func (s *TableScan) IDs() []string {
	return s.ids
}

// Grid assembles the scanned cells into a dense grid.
func (s *TableScan) Grid() (*Grid, []IntegrityError) {
	coords := make([]Coord, 0, len(s.cells))
	for at := range s.cells {
		coords = append(coords, at)
	}
	// Deterministic build order: row-major over anchors.
	sortCoords(coords)

	cells := make([]SpannedCell, len(coords))
	for i, at := range coords {
		sc := s.cells[at]
		id := sc.ID
		if id == "" {
			id = fmt.Sprintf("r%dc%d", at.Row, at.Col)
		}
		cells[i] = SpannedCell{
			ID:      id,
			Row:     at.Row,
			Col:     at.Col,
			RowSpan: sc.RowSpan,
			ColSpan: sc.ColSpan,
			Content: sc.Text,
		}
	}
	return BuildGrid(cells)
}

func sortCoords(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
}

// ScanChunk scans a table chunk's serialized content. HTML tables are
// detected by the presence of a table or row tag; anything else is treated
// as a markdown pipe table.
func ScanChunk(chunk model.Chunk) (*TableScan, error) {
	content := chunk.Content
	if strings.Contains(content, "<table") || strings.Contains(content, "<tr") {
		return ScanHTML(strings.NewReader(content))
	}
	return ScanMarkdown([]byte(content))
}

// ScanHTML scans an HTML-serialized table into its cell layout. Row and
// column spans are honored: a spanned cell is anchored at its top-left
// position and the positions it covers are skipped when placing later cells,
// so scan positions agree with the parser's cell position metadata.
func ScanHTML(r io.Reader) (*TableScan, error) {
	decoded, err := charset.NewReader(r, "text/html; charset=utf-8")
	if err != nil {
		return nil, fmt.Errorf("decoding table html: %w", err)
	}
	doc, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing table html: %w", err)
	}

	scan := &TableScan{
		cells: make(map[Coord]ScannedCell),
		byID:  make(map[string]string),
	}

	occupied := make(map[Coord]bool)
	row := -1
	var walkRows func(*html.Node)
	walkRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			row++
			scan.scanRow(n, row, occupied)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(doc)

	return scan, nil
}

func (s *TableScan) scanRow(tr *html.Node, row int, occupied map[Coord]bool) {
	col := 0
	var walkCells func(*html.Node)
	walkCells = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
			for occupied[Coord{Row: row, Col: col}] {
				col++
			}
			cell := ScannedCell{
				ID:      attr(n, "id"),
				Text:    collapseText(n),
				RowSpan: spanAttr(n, "rowspan"),
				ColSpan: spanAttr(n, "colspan"),
			}
			at := Coord{Row: row, Col: col}
			s.cells[at] = cell
			for i := 0; i < cell.RowSpan; i++ {
				for j := 0; j < cell.ColSpan; j++ {
					occupied[Coord{Row: row + i, Col: col + j}] = true
				}
			}
			if cell.ID != "" {
				if _, dup := s.byID[cell.ID]; !dup {
					s.ids = append(s.ids, cell.ID)
				}
				s.byID[cell.ID] = cell.Text
			}
			col += cell.ColSpan
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkCells(c)
		}
	}
	walkCells(tr)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func spanAttr(n *html.Node, key string) int {
	v, err := strconv.Atoi(attr(n, key))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// collapseText returns the node's text content with whitespace collapsed.
func collapseText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// mdTable is shared across ScanMarkdown calls; goldmark parsers are
// stateless and safe for concurrent use.
var mdTable = goldmark.New(goldmark.WithExtensions(extension.Table))

// ScanMarkdown scans a markdown pipe table into its cell layout. Pipe tables
// carry no spans or cell ids, so every cell spans 1x1. A covered-position
// placeholder produced by [Grid.Markdown] is kept verbatim.
func ScanMarkdown(src []byte) (*TableScan, error) {
	doc := mdTable.Parser().Parse(gtext.NewReader(src))

	scan := &TableScan{
		cells: make(map[Coord]ScannedCell),
		byID:  make(map[string]string),
	}

	row := 0
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.TableHeader, *east.TableRow:
			col := 0
			for cell := n.FirstChild(); cell != nil; cell = cell.NextSibling() {
				scan.cells[Coord{Row: row, Col: col}] = ScannedCell{
					Text:    inlineText(cell, src),
					RowSpan: 1,
					ColSpan: 1,
				}
				col++
			}
			row++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing markdown table: %w", err)
	}

	return scan, nil
}

func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(src))
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}
