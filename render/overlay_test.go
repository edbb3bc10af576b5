package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/docsift/docsift/model"
)

func whitePage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func singleChunkDoc() *model.ParseResult {
	return &model.ParseResult{
		Chunks: []model.Chunk{{
			ID:     "chunk-abc12345",
			Kind:   model.KindTable,
			Region: model.Region{Page: 0, Box: model.NewBox(0.25, 0.25, 0.75, 0.75)},
		}},
		Metadata: model.Metadata{PageCount: 1},
	}
}

func TestColorFor(t *testing.T) {
	if got := ColorFor(model.KindText); got != (color.RGBA{R: 40, G: 167, B: 69, A: 255}) {
		t.Errorf("ColorFor(text) = %v", got)
	}
	if got := ColorFor(model.Kind("bogus")); got != defaultColor {
		t.Errorf("Expected gray fallback for unknown kind, got %v", got)
	}
}

func TestOverlay_DrawsBoxEdges(t *testing.T) {
	page := whitePage(200, 200)
	out := Overlay(page, singleChunkDoc(), 0)

	// The source image is untouched.
	if page.RGBAAt(50, 100) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Error("Expected Overlay to leave the source image unmodified")
	}

	want := ColorFor(model.KindTable)
	// Left edge of the box at x=50, vertical middle.
	if got := out.RGBAAt(50, 100); got != want {
		t.Errorf("Expected table color on left edge, got %v", got)
	}
	// Interior stays white.
	if got := out.RGBAAt(100, 100); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Expected white interior, got %v", got)
	}
	// Label strip above the top edge is filled.
	if got := out.RGBAAt(52, 45); got != want {
		t.Errorf("Expected filled label strip, got %v", got)
	}
}

func TestOverlay_SkipsOtherPages(t *testing.T) {
	out := Overlay(whitePage(100, 100), singleChunkDoc(), 3)
	if got := out.RGBAAt(25, 50); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Expected untouched page for non-matching page number, got %v", got)
	}
}

func TestOverlayGroundings_StrokeWidths(t *testing.T) {
	parsed := &model.ParseResult{
		Grounding: map[string]model.Grounding{
			"g-table": model.TableGrounding{
				GID: "g-table",
				Loc: model.Region{Page: 0, Box: model.NewBox(0.1, 0.1, 0.9, 0.9)},
			},
			"g-cell": model.CellGrounding{
				GID:      "g-cell",
				Loc:      model.Region{Page: 0, Box: model.NewBox(0.2, 0.2, 0.4, 0.4)},
				Position: model.CellPosition{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1},
			},
		},
	}
	out := OverlayGroundings(whitePage(100, 100), parsed, 0)

	// Table outline is 4px: pixels at x=10..13 on the left edge.
	for x := 10; x < 14; x++ {
		if got := out.RGBAAt(x, 50); got != tableOutline {
			t.Errorf("Expected table outline at x=%d, got %v", x, got)
		}
	}
	// Cell outline is 1px.
	cellColor := ColorFor(model.KindTableCell)
	if got := out.RGBAAt(20, 30); got != cellColor {
		t.Errorf("Expected cell outline at x=20, got %v", got)
	}
	if got := out.RGBAAt(21, 30); got == cellColor {
		t.Error("Expected 1px cell outline, found color at x=21")
	}
}

func TestCropChunks(t *testing.T) {
	crops := CropChunks(whitePage(200, 100), singleChunkDoc(), 0)

	crop, ok := crops["chunk-abc12345"]
	if !ok {
		t.Fatalf("Expected crop for chunk, got %v", crops)
	}
	if crop.Bounds().Dx() != 100 || crop.Bounds().Dy() != 50 {
		t.Errorf("Expected 100x50 crop, got %dx%d", crop.Bounds().Dx(), crop.Bounds().Dy())
	}

	if len(CropChunks(whitePage(200, 100), singleChunkDoc(), 1)) != 0 {
		t.Error("Expected no crops for a page without chunks")
	}
}

func TestLegend(t *testing.T) {
	img := Legend()
	if img.Bounds().Dx() != 400 {
		t.Errorf("Expected 400px wide legend, got %d", img.Bounds().Dx())
	}
	wantH := len(kindColors)*35 + 60
	if img.Bounds().Dy() != wantH {
		t.Errorf("Expected height %d, got %d", wantH, img.Bounds().Dy())
	}
	// First swatch is filled with some palette color.
	got := img.RGBAAt(20, 50)
	found := false
	for _, c := range kindColors {
		if got == c {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected a palette color in the first swatch, got %v", got)
	}
}

func TestSummary(t *testing.T) {
	parsed := &model.ParseResult{
		Chunks: []model.Chunk{
			{ID: "a", Kind: model.KindText},
			{ID: "b", Kind: model.KindText},
			{ID: "c", Kind: model.KindTable},
		},
		Metadata: model.Metadata{PageCount: 1},
	}

	img := Summary(parsed)
	// Two kinds: two bars.
	wantH := 2*(30+10) + 100
	if img.Bounds().Dy() != wantH {
		t.Errorf("Expected height %d, got %d", wantH, img.Bounds().Dy())
	}
	// The longest bar belongs to text and is drawn first.
	if got := img.RGBAAt(50, 95); got != ColorFor(model.KindText) {
		t.Errorf("Expected text bar color, got %v", got)
	}

	if img := Summary(&model.ParseResult{}); img.Bounds().Dy() != 100 {
		t.Errorf("Expected empty summary height 100, got %d", img.Bounds().Dy())
	}
}
