package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/analyzer"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/export"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export \"<query>\"",
	Short: "Export a query's table rows to a .csv or .xlsx file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		ds, err := loadDataset(s)
		if err != nil {
			return err
		}

		rows, err := analyzer.New(cfg.Analysis.FlatTolerance).TableRows(query, ds)
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		defer f.Close()

		switch strings.ToLower(filepath.Ext(exportOut)) {
		case ".csv":
			err = export.WriteCSV(f, rows)
		case ".xlsx":
			err = export.WriteExcel(f, rows)
		default:
			return fmt.Errorf("unsupported output type %q (want .csv or .xlsx)", filepath.Ext(exportOut))
		}
		if err != nil {
			return fmt.Errorf("exporting to %s: %w", exportOut, err)
		}

		fmt.Printf("Exported %d rows to %s\n", len(rows), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "real_estate_data.csv", "Output file (.csv or .xlsx)")
	rootCmd.AddCommand(exportCmd)
}
