package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rolodex/rolo/internal/book"
	"github.com/rolodex/rolo/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export contacts to a file",
	Long: `Export all contacts to a file without entering the menu.

The default format is CSV with a Name,Phone,Email,Note header, matching
the menu's E action. JSON and YAML are also available:

  rolo export
  rolo export --format yaml
  rolo export --format json --out backup.json`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		out := exportOut
		if out == "" {
			out = cfg.ExportPath
			if format != export.FormatCSV {
				out = strings.TrimSuffix(out, filepath.Ext(out)) + "." + string(format)
			}
		}

		store := book.Open(cfg.StorePath)
		contacts := store.ListAll()
		if err := export.Write(contacts, format, out); err != nil {
			logger.Errorw("export failed", "path", out, "error", err)
			fmt.Fprintf(os.Stderr, "Error exporting contacts: %v\n", err)
			os.Exit(1)
		}

		logger.Infow("contacts exported", "path", out, "count", len(contacts), "format", format)
		fmt.Printf("Exported %d contacts to %s\n", len(contacts), out)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format: csv, json, or yaml")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "destination file (default derives from config)")
	rootCmd.AddCommand(exportCmd)
}
