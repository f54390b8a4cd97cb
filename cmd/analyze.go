package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/analyzer"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/store"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze \"<query>\"",
	Short: "Answer a natural-language query against the loaded dataset",
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

		result := analyzer.New(cfg.Analysis.FlatTolerance).Analyze(query, ds)

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		switch r := result.(type) {
		case *model.AnalysisResult:
			fmt.Println(r.Summary)
		case *model.ComparisonResult:
			fmt.Println(r.Area1.Summary)
			fmt.Println()
			fmt.Println(r.Area2.Summary)
			fmt.Println()
			fmt.Println(r.ComparisonSummary)
		case *model.ErrorResult:
			return fmt.Errorf("%s", r.Error)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}
