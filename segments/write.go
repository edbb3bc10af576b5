package segments

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/docsift/docsift/model"
)

// WriteMarkdownFiles writes each segment's markdown to
// <dir>/<class>_<identifier>.md and returns the written paths in segment
// order. Names are sanitized for the filesystem; colliding names get a
// numeric suffix.
func WriteMarkdownFiles(dir string, segs []model.Segment) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	seen := make(map[string]int)
	paths := make([]string, 0, len(segs))
	for _, s := range segs {
		name := segmentFilename(s)
		if n := seen[name]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[segmentFilename(s)]++

		path := filepath.Join(dir, name+".md")
		if err := os.WriteFile(path, []byte(s.Markdown()), 0o644); err != nil {
			return paths, fmt.Errorf("writing segment %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WritePDFs cuts each segment's pages out of the source PDF into
// <dir>/<class>_<identifier>.pdf and returns the written paths. Segments
// with no pages are skipped.
func WritePDFs(sourcePDF, dir string, segs []model.Segment) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	seen := make(map[string]int)
	var paths []string
	for _, s := range segs {
		if len(s.Pages) == 0 {
			continue
		}
		name := segmentFilename(s)
		if n := seen[name]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[segmentFilename(s)]++

		out := filepath.Join(dir, name+".pdf")
		if err := api.TrimFile(sourcePDF, out, []string{PageRanges(s.Pages)}, nil); err != nil {
			return paths, fmt.Errorf("extracting pages for %s: %w", name, err)
		}
		paths = append(paths, out)
	}
	return paths, nil
}

// PageCount returns the number of pages in a PDF, for unclassified-page
// checks against a split.
func PageCount(sourcePDF string) (int, error) {
	n, err := api.PageCountFile(sourcePDF)
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}

// segmentFilename builds a filesystem-safe stem from a segment's class and
// identifier.
func segmentFilename(s model.Segment) string {
	name := s.Class
	if s.Identifier != "" {
		name += "_" + s.Identifier
	}
	if name == "" {
		name = "segment"
	}
	return sanitize(name)
}

func sanitize(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	return sb.String()
}
