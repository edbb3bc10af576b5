// Package main provides the docsift CLI: parse documents through the
// document-intelligence service and work with the results locally.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/docsift/docsift/ade"
)

var (
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docsift",
		Short: "Parse documents and query their tables, cells, and structure",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		parseCmd(),
		tablesCmd(),
		cellCmd(),
		sheetCellCmd(),
		splitCmd(),
		extractCmd(),
		visualizeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*ade.Config, error) {
	if configPath == "" {
		return ade.DefaultConfig(), nil
	}
	return ade.LoadConfig(configPath)
}

func newClient() (*ade.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return ade.NewClient(cfg, ade.WithLogger(log.Logger)), nil
}
