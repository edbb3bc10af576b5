// Package segments organizes the classified sub-documents a split produces:
// grouping by class or identifier, detecting pages the split left
// unclassified, and writing each segment out as a markdown file or as pages
// trimmed from the source PDF.
package segments
