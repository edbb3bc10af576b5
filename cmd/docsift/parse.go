package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	var (
		model  string
		split  string
		saveTo string
		jobs   bool
	)

	cmd := &cobra.Command{
		Use:   "parse [document...]",
		Short: "Parse one or more documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if len(args) > 1 {
				results, err := client.ParseAll(ctx, args, 4)
				if err != nil {
					return err
				}
				for i, r := range results {
					fmt.Printf("%s: %d pages, %d chunks, %dms\n",
						args[i], r.Metadata.PageCount, len(r.Chunks), r.Metadata.DurationMS)
				}
				return nil
			}

			req := parseRequest(args[0], model, split, saveTo)
			result, err := parseOne(ctx, client, req, jobs)
			if err != nil {
				return err
			}

			fmt.Printf("Pages: %d\n", result.Metadata.PageCount)
			fmt.Printf("Chunks: %d\n", len(result.Chunks))
			fmt.Printf("Duration: %dms\n", result.Metadata.DurationMS)
			if len(result.Metadata.FailedPages) > 0 {
				fmt.Printf("Failed pages: %v\n", result.Metadata.FailedPages)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Parse model override")
	cmd.Flags().StringVar(&split, "split", "", "Service-side split mode, such as \"page\"")
	cmd.Flags().StringVar(&saveTo, "save-to", "", "Directory to save the raw response JSON to")
	cmd.Flags().BoolVar(&jobs, "jobs", false, "Use a parse job even for small files")
	return cmd
}
