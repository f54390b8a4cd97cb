package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what data the record store holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		total := s.RecordCount()

		fmt.Printf("Record Store Status\n")
		fmt.Printf("===================\n")
		fmt.Printf("Records: %d\n", total)
		if total == 0 {
			fmt.Println("No dataset loaded; queries will use the builtin sample data.")
			return nil
		}

		fmt.Printf("Source:  %s\n", s.SourceFile())
		fmt.Printf("Loaded:  %s\n", s.LoadedAt())

		areas, err := s.StatsByArea()
		if err != nil {
			return fmt.Errorf("reading area stats: %w", err)
		}

		fmt.Printf("\nPer-Area Breakdown\n")
		fmt.Printf("------------------\n")
		for _, a := range areas {
			fmt.Printf("  %-16s  records: %3d  years: %d-%d\n", a.Area, a.Records, a.FirstYear, a.LastYear)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
