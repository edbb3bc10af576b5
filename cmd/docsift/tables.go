package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/tables"
)

func tablesCmd() *cobra.Command {
	var (
		index  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "tables [document]",
		Short: "List or render the tables in a document",
		Long: `Without --index, lists every detected table. With --index, reconstructs
that table's dense grid and renders it as markdown or CSV. The document may
be a file to parse or a saved parse-result JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := loadAnalysisSource(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if index < 0 {
				all := tables.Tables(parsed)
				fmt.Printf("%d tables found\n", len(all))
				for i, t := range all {
					fmt.Printf("  [%d] %s (page %d)\n", i, t.ID, t.Region.Page)
				}
				if nested := tables.NestedTables(parsed); len(nested) > 0 {
					fmt.Println("Nested tables:")
					for _, p := range nested {
						fmt.Printf("  %s contains %s\n", p.Outer, p.Inner)
					}
				}
				return nil
			}

			grid, integrity, err := tables.GridFor(parsed, index)
			if err != nil {
				return err
			}
			for _, ie := range integrity {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", ie.Error())
			}

			switch format {
			case "markdown", "md":
				fmt.Print(grid.Markdown())
			case "csv":
				fmt.Print(grid.CSV())
			default:
				return fmt.Errorf("unknown format %q (want markdown or csv)", format)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", -1, "Table index to render")
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format: markdown or csv")
	return cmd
}
