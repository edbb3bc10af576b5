// Package model provides the data model for document-intelligence parse
// results: positioned content chunks, grounding records, and normalized
// bounding-box geometry.
//
// # Parse Results
//
// A [ParseResult] holds everything one parse call produced: the document
// markdown, an ordered slice of [Chunk] values in document order, and a map
// of [Grounding] records keyed by identifier. Results saved as JSON can be
// reloaded with [DecodeParseResult].
//
// # Groundings
//
// All positioned records implement the [Grounding] interface. The concrete
// type is resolved once at decode time:
//
//   - [TableGrounding] - a detected table's anchor record
//   - [CellGrounding] - a table cell carrying [CellPosition] metadata
//   - [GenericGrounding] - text, figures, and everything else
//
// # Geometry
//
// [Box] is an axis-aligned bounding box in normalized [0,1] page coordinates
// with a top-left origin. [Region] pairs a box with its page; comparisons
// between regions on different pages fail with [InvalidComparisonError].
// Containment tests apply the fixed [ContainmentTolerance]; the [Nested]
// relationship between two regions is reported as an [Ordering].
//
// # Extraction and Splitting
//
// [ExtractResult] holds schema-guided extraction output with per-field
// provenance, and [SplitResult] holds classified document segments.
package model
