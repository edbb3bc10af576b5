package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/render"
)

func visualizeCmd() *cobra.Command {
	var (
		pageImage  string
		outPath    string
		groundings bool
		crops      bool
		legend     bool
		summary    bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [parse-output.json] [page]",
		Short: "Draw parse results over a rendered page image",
		Long: `Overlay bounding boxes from a saved parse result onto a page image
(--page-image, a PNG or JPEG render of that page). --groundings draws
grounding records instead of chunks, --crops saves each chunk as its own
image, and --legend/--summary render standalone reference images.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if legend {
				return writePNG(outPath, render.Legend())
			}

			if len(args) < 1 {
				return fmt.Errorf("a saved parse result is required")
			}
			parsed, err := loadSavedParse(args[0])
			if err != nil {
				return err
			}

			if summary {
				return writePNG(outPath, render.Summary(parsed))
			}

			if len(args) < 2 {
				return fmt.Errorf("a page number is required")
			}
			page, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("page: %w", err)
			}

			img, err := loadImage(pageImage)
			if err != nil {
				return err
			}

			if crops {
				for id, crop := range render.CropChunks(img, parsed, page) {
					if err := writePNG(fmt.Sprintf("chunk_%s.png", id), crop); err != nil {
						return err
					}
				}
				return nil
			}

			var out image.Image
			if groundings {
				out = render.OverlayGroundings(img, parsed, page)
			} else {
				out = render.Overlay(img, parsed, page)
			}
			return writePNG(outPath, out)
		},
	}

	cmd.Flags().StringVar(&pageImage, "page-image", "", "Rendered page image to draw over")
	cmd.Flags().StringVar(&outPath, "out", "annotated.png", "Output image path")
	cmd.Flags().BoolVar(&groundings, "groundings", false, "Draw grounding records instead of chunks")
	cmd.Flags().BoolVar(&crops, "crops", false, "Save each chunk as its own image")
	cmd.Flags().BoolVar(&legend, "legend", false, "Render the color legend")
	cmd.Flags().BoolVar(&summary, "summary", false, "Render a chunk-count summary chart")
	return cmd
}

func loadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("--page-image is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding page image: %w", err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
