package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/docsift/docsift/model"
)

// Legend renders a key of every kind color used in overlays.
func Legend() *image.RGBA {
	kinds := make([]model.Kind, 0, len(kindColors))
	for k := range kindColors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	const (
		rowHeight = 35
		swatchW   = 30
		swatchH   = 25
	)
	img := image.NewRGBA(image.Rect(0, 0, 400, len(kinds)*rowHeight+60))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	black := color.RGBA{A: 255}
	drawText(img, 10, 20, "Grounding Kind Colors", black)

	y := 40
	for _, k := range kinds {
		swatch := image.Rect(10, y, 10+swatchW, y+swatchH)
		draw.Draw(img, swatch, &image.Uniform{C: kindColors[k]}, image.Point{}, draw.Src)
		strokeRect(img, swatch, black, 1)
		drawText(img, 50, y+17, string(k), black)
		y += rowHeight
	}
	return img
}

// Summary renders a horizontal bar chart of chunk counts by kind, largest
// first, colored with the overlay palette.
func Summary(parsed *model.ParseResult) *image.RGBA {
	counts := make(map[model.Kind]int)
	for _, c := range parsed.Chunks {
		counts[c.Kind]++
	}

	type kindCount struct {
		kind  model.Kind
		count int
	}
	ordered := make([]kindCount, 0, len(counts))
	for k, n := range counts {
		ordered = append(ordered, kindCount{kind: k, count: n})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].kind < ordered[j].kind
	})

	const (
		barHeight = 30
		barGap    = 10
		maxBarW   = 400
	)
	img := image.NewRGBA(image.Rect(0, 0, 600, len(ordered)*(barHeight+barGap)+100))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	black := color.RGBA{A: 255}
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	drawText(img, 10, 20, "Document Chunk Analysis", black)
	drawText(img, 10, 40, fmt.Sprintf("Total chunks: %d", len(parsed.Chunks)), gray)
	drawText(img, 10, 60, fmt.Sprintf("Pages: %d", parsed.Metadata.PageCount), gray)

	if len(ordered) == 0 {
		return img
	}

	maxCount := ordered[0].count
	y := 80
	for _, kc := range ordered {
		w := kc.count * maxBarW / maxCount
		bar := image.Rect(10, y, 10+w, y+barHeight)
		draw.Draw(img, bar, &image.Uniform{C: ColorFor(kc.kind)}, image.Point{}, draw.Src)
		strokeRect(img, bar, black, 1)
		drawText(img, 20+w, y+20, fmt.Sprintf("%s: %d", kc.kind, kc.count), black)
		y += barHeight + barGap
	}
	return img
}
