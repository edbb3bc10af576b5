package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/ade"
)

func extractCmd() *cobra.Command {
	var (
		schemaPath string
		references bool
	)

	cmd := &cobra.Command{
		Use:   "extract [document]",
		Short: "Extract structured fields from a document",
		Long: `Parse a document and extract the fields described by a JSON Schema file.
With --references, each field is annotated with the chunks its value was
read from.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := os.ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("reading schema: %w", err)
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
			result, err := client.Extract(ctx, ade.ExtractRequest{
				Markdown: parsed.Markdown,
				Schema:   schema,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result.Fields, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			if references {
				for field := range result.Fields {
					refs := result.References(field)
					if len(refs) == 0 {
						continue
					}
					fmt.Printf("%s <- %v\n", field, refs)
					for _, chunk := range result.SourceChunks(field, parsed) {
						fmt.Printf("  page %d: %.60s\n", chunk.Region.Page, chunk.Content)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "JSON Schema file describing fields to extract")
	cmd.Flags().BoolVar(&references, "references", false, "Show source chunks for each field")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
