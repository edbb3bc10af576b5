package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/spreadsheet"
	"github.com/docsift/docsift/tables"
)

func loadSavedParse(path string) (*model.ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return model.DecodeParseResult(f)
}

func cellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cell [document] [table-index] [row] [col]",
		Short: "Look up a table cell by position",
		Long: `Look up the content at (row, col) of the Nth table in a document.
Positions covered by a merged cell resolve to the merged cell's content.
The document may be a file to parse or a saved parse-result JSON.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("table index: %w", err)
			}
			row, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("row: %w", err)
			}
			col, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("col: %w", err)
			}

			parsed, err := loadAnalysisSource(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			value, err := tables.CellAt(parsed, index, row, col)
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
	return cmd
}

func sheetCellCmd() *cobra.Command {
	var direct bool

	cmd := &cobra.Command{
		Use:   "sheetcell [file] [cell-id]",
		Short: "Look up a spreadsheet cell by \"Sheet-Cell\" reference",
		Long: `Look up a cell such as "Sheet 1-B2". By default the file is parsed
through the service and the reference is resolved against cell id attributes
in the parsed tables; with --direct the workbook file is read locally.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, id := args[0], args[1]

			if direct {
				value, err := spreadsheet.Cell(file, id)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %s\n", id, value)
				return nil
			}

			parsed, err := loadAnalysisSource(cmd.Context(), file)
			if err != nil {
				return err
			}
			value, err := tables.CellByID(parsed, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", id, value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&direct, "direct", false, "Read the workbook locally instead of parsing")
	return cmd
}
