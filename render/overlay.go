package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/docsift/docsift/model"
)

// Outline widths by record role, in pixels.
const (
	cellStroke    = 1
	defaultStroke = 2
	tableStroke   = 4
)

// labelHeight is the height of the filled label strip above each box.
const labelHeight = 16

// Overlay draws the bounding boxes of every chunk on the given page over a
// rendered page image. Normalized coordinates are scaled to the image
// bounds. Each box carries a filled label strip naming the chunk's kind and
// a truncated identifier.
func Overlay(page image.Image, parsed *model.ParseResult, pageNum int) *image.RGBA {
	out := cloneImage(page)

	for _, chunk := range parsed.Chunks {
		if chunk.Region.Page != pageNum {
			continue
		}
		c := ColorFor(chunk.Kind)
		r := pixelRect(chunk.Region.Box, out.Bounds())
		strokeRect(out, r, c, defaultStroke)
		drawLabel(out, r.Min.X, r.Min.Y, fmt.Sprintf("%s:%s", chunk.Kind, shortID(chunk.ID)), c)
	}
	return out
}

// OverlayGroundings draws every grounding record on the given page: thick
// outlines for table anchors, thin unlabeled outlines for cells, and labeled
// boxes for everything else. Records are drawn in sorted-identifier order so
// output is deterministic.
func OverlayGroundings(page image.Image, parsed *model.ParseResult, pageNum int) *image.RGBA {
	out := cloneImage(page)

	ids := make([]string, 0, len(parsed.Grounding))
	for id := range parsed.Grounding {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		g := parsed.Grounding[id]
		loc := g.Region()
		if loc.Page != pageNum {
			continue
		}
		r := pixelRect(loc.Box, out.Bounds())

		switch g.Kind() {
		case model.KindTableCell:
			strokeRect(out, r, ColorFor(model.KindTableCell), cellStroke)
			if cell, ok := g.(model.CellGrounding); ok {
				drawText(out, r.Min.X+2, r.Min.Y+12, cellLabel(cell.Position), ColorFor(model.KindTableCell))
			}
		case model.KindTable:
			strokeRect(out, r, tableOutline, tableStroke)
			drawLabel(out, r.Min.X, r.Min.Y, "table:"+shortID(id), tableOutline)
		default:
			c := ColorFor(g.Kind())
			strokeRect(out, r, c, defaultStroke)
			drawLabel(out, r.Min.X, r.Min.Y, fmt.Sprintf("%s:%s", g.Kind(), shortID(id)), c)
		}
	}
	return out
}

func cellLabel(pos model.CellPosition) string {
	label := fmt.Sprintf("R%dC%d", pos.Row, pos.Col)
	if pos.RowSpan > 1 || pos.ColSpan > 1 {
		label += fmt.Sprintf(" (%dx%d)", pos.RowSpan, pos.ColSpan)
	}
	return label
}

// CropChunks cuts each chunk on the given page out of a rendered page image,
// keyed by chunk identifier.
func CropChunks(page image.Image, parsed *model.ParseResult, pageNum int) map[string]image.Image {
	out := make(map[string]image.Image)
	bounds := page.Bounds()

	for _, chunk := range parsed.Chunks {
		if chunk.Region.Page != pageNum {
			continue
		}
		r := pixelRect(chunk.Region.Box, bounds)
		crop := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(crop, crop.Bounds(), page, r.Min, draw.Src)
		out[chunk.ID] = crop
	}
	return out
}

// pixelRect scales a normalized box to pixel coordinates within bounds.
func pixelRect(b model.Box, bounds image.Rectangle) image.Rectangle {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	return image.Rect(
		bounds.Min.X+int(b.Left*w),
		bounds.Min.Y+int(b.Top*h),
		bounds.Min.X+int(b.Right*w),
		bounds.Min.Y+int(b.Bottom*h),
	)
}

func cloneImage(src image.Image) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}

// strokeRect outlines r with the given stroke width, clipped to the image.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA, width int) {
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width)
	bottom := image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y)
	left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y)
	right := image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y)

	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(img, edge.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
}

// drawLabel draws a filled strip above (x, y) with white text on it.
func drawLabel(img *image.RGBA, x, y int, text string, c color.RGBA) {
	w := len(text)*7 + 4
	strip := image.Rect(x, y-labelHeight, x+w, y).Intersect(img.Bounds())
	draw.Draw(img, strip, &image.Uniform{C: c}, image.Point{}, draw.Src)
	drawText(img, x+2, y-4, text, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func drawText(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: c},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
