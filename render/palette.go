package render

import (
	"image/color"

	"github.com/docsift/docsift/model"
)

// Colors assigned to chunk and grounding kinds in overlays and legends.
var kindColors = map[model.Kind]color.RGBA{
	model.KindText:        {R: 40, G: 167, B: 69, A: 255},
	model.KindTable:       {R: 0, G: 123, B: 255, A: 255},
	model.KindMarginalia:  {R: 111, G: 66, B: 193, A: 255},
	model.KindFigure:      {R: 255, G: 0, B: 255, A: 255},
	model.KindLogo:        {R: 144, G: 238, B: 144, A: 255},
	model.KindCard:        {R: 255, G: 165, B: 0, A: 255},
	model.KindAttestation: {R: 0, G: 255, B: 255, A: 255},
	model.KindScanCode:    {R: 255, G: 193, B: 7, A: 255},
	model.KindForm:        {R: 220, G: 20, B: 60, A: 255},
	model.KindTableCell:   {R: 173, G: 216, B: 230, A: 255},
}

// tableOutline distinguishes table anchor groundings from table chunks.
var tableOutline = color.RGBA{R: 70, G: 130, B: 180, A: 255}

// defaultColor marks kinds without an assigned color.
var defaultColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// ColorFor returns the color assigned to a kind, falling back to gray for
// kinds without one.
func ColorFor(kind model.Kind) color.RGBA {
	if c, ok := kindColors[kind]; ok {
		return c
	}
	return defaultColor
}
