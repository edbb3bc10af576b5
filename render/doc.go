// Package render draws parse results onto page images: bounding-box
// overlays colored by chunk kind, per-chunk crops, a palette legend, and a
// chunk-count summary chart. Coordinates in parse results are normalized;
// everything here scales them to the target image's pixel bounds.
package render
