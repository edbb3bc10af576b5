package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/ade"
	"github.com/docsift/docsift/segments"
)

func splitCmd() *cobra.Command {
	var (
		classesPath string
		outDir      string
		writePDFs   bool
	)

	cmd := &cobra.Command{
		Use:   "split [document]",
		Short: "Classify a document into logical sub-documents",
		Long: `Parse a document, classify its pages into the classes described by the
--classes JSON file, and write each segment out as markdown (and optionally
as pages trimmed from the source PDF).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(classesPath)
			if err != nil {
				return fmt.Errorf("reading classes: %w", err)
			}
			var classes []ade.SplitClass
			if err := json.Unmarshal(data, &classes); err != nil {
				return fmt.Errorf("parsing classes: %w", err)
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			parsed, err := client.ParseAuto(ctx, ade.ParseRequest{Document: args[0]})
			if err != nil {
				return err
			}
			result, err := client.Split(ctx, parsed.Markdown, classes, "")
			if err != nil {
				return err
			}

			fmt.Printf("%d segments\n", len(result.Segments))
			for _, group := range segments.ByClass(result.Segments) {
				fmt.Printf("%s: %d segment(s)\n", group.Key, len(group.Segments))
				for _, s := range group.Segments {
					fmt.Printf("  - %s (pages %s)\n", s.Identifier, segments.PageRanges(s.Pages))
				}
			}

			if unclaimed := segments.UnclassifiedPages(parsed.Metadata.PageCount, result.Segments); len(unclaimed) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: unclassified pages %s\n", segments.PageRanges(unclaimed))
			}

			paths, err := segments.WriteMarkdownFiles(outDir, result.Segments)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Printf("wrote %s\n", p)
			}

			if writePDFs {
				pdfPaths, err := segments.WritePDFs(args[0], outDir, result.Segments)
				if err != nil {
					return err
				}
				for _, p := range pdfPaths {
					fmt.Printf("wrote %s\n", p)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&classesPath, "classes", "", "JSON file describing split classes")
	cmd.Flags().StringVar(&outDir, "out", "splits", "Output directory")
	cmd.Flags().BoolVar(&writePDFs, "pdf", false, "Also write each segment's pages as a PDF")
	_ = cmd.MarkFlagRequired("classes")
	return cmd
}
