package model

// Kind identifies the type of a chunk or grounding record, using the type
// tags the parsing service emits.
type Kind string

const (
	KindText        Kind = "text"
	KindTable       Kind = "table"
	KindTableCell   Kind = "tableCell"
	KindFigure      Kind = "figure"
	KindMarginalia  Kind = "marginalia"
	KindLogo        Kind = "logo"
	KindCard        Kind = "card"
	KindAttestation Kind = "attestation"
	KindScanCode    Kind = "scanCode"
	KindForm        Kind = "form"
)

// Grounding is a record linking extracted content to a physical location in
// the source document. The concrete type is resolved once, when a parse
// result is decoded: table anchors become [TableGrounding], positioned table
// cells become [CellGrounding], and everything else (including malformed cell
// records without position metadata) becomes [GenericGrounding].
type Grounding interface {
	// ID returns the identifier the parse result keys this record by.
	ID() string
	// Kind returns the record's type tag.
	Kind() Kind
	// Region returns the page and bounding box of the record.
	Region() Region
}

// CellPosition is the grid position metadata carried by a table cell
// grounding. Row and Col are zero-based anchor coordinates; RowSpan and
// ColSpan are at least 1.
type CellPosition struct {
	// TableID identifies the table chunk this cell belongs to. May be empty,
	// in which case membership is resolved geometrically.
	TableID string `json:"chunk_id"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	RowSpan int    `json:"rowspan"`
	ColSpan int    `json:"colspan"`
}

// TableGrounding is the positioned anchor record of a detected table.
type TableGrounding struct {
	GID string
	Loc Region
}

func (g TableGrounding) ID() string     { return g.GID }
func (g TableGrounding) Kind() Kind     { return KindTable }
func (g TableGrounding) Region() Region { return g.Loc }

// CellGrounding is a positioned table cell with grid position metadata.
type CellGrounding struct {
	GID      string
	Loc      Region
	Position CellPosition
}

func (g CellGrounding) ID() string     { return g.GID }
func (g CellGrounding) Kind() Kind     { return KindTableCell }
func (g CellGrounding) Region() Region { return g.Loc }

// GenericGrounding is any grounding record without table-specific structure.
type GenericGrounding struct {
	GID  string
	Type Kind
	Loc  Region
}

func (g GenericGrounding) ID() string     { return g.GID }
func (g GenericGrounding) Kind() Kind     { return g.Type }
func (g GenericGrounding) Region() Region { return g.Loc }
