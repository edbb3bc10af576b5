// Package tables reconstructs dense table grids from the sparse positioned
// cell records a document-intelligence parse produces, and resolves lookups
// against them.
//
// # Grid Reconstruction
//
// [BuildGrid] assembles a [Grid] from [SpannedCell] values. A cell with a
// row or column span occupies every position it covers, not just its anchor;
// covered positions resolve back to the anchor's content and are never
// double-counted. Overlapping spans are reported as [IntegrityError] values
// with the first writer kept, so a damaged parse still yields a usable grid.
//
// # Table Membership
//
// [CellsFor] associates cell groundings with their owning table, preferring
// the explicit table linkage in the cell's position metadata and falling
// back to geometric containment (through a [CellIndex] spatial index) when
// the linkage is absent. [NestedTables] reports tables whose regions contain
// one another.
//
// # Serialized Forms
//
// [ScanHTML] and [ScanMarkdown] recover cell layout from a table chunk's
// serialized content, honoring row/column spans and id attributes in HTML.
// [Grid.Markdown] and [Grid.CSV] render grids back out.
//
// # Lookup
//
// [Table] selects a table by document-order index, [CellAt] resolves a
// (row, col) position, and [CellByID] resolves spreadsheet-style cell
// identifiers. Lookup misses fail with typed errors carrying bounded samples
// of what does exist.
package tables
