package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/ingest"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/store"
)

var loadSample bool

var loadCmd = &cobra.Command{
	Use:   "load [file.csv|file.xlsx]",
	Short: "Ingest a real-estate data file into the record store",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			records []model.Record
			source  string
			err     error
		)

		switch {
		case loadSample:
			records = dataset.SampleRecords()
			source = "builtin sample"
		case len(args) == 1:
			records, err = ingest.ReadFile(args[0])
			if err != nil {
				return err
			}
			source = args[0]
		default:
			return fmt.Errorf("provide a data file or pass --sample")
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.WriteRecords(records, source); err != nil {
			return fmt.Errorf("saving records: %w", err)
		}

		ds := dataset.New(records, model.SourceDataset)
		fmt.Printf("Loaded %d records across %d areas from %s\n", ds.Len(), len(ds.Areas()), source)
		return nil
	},
}

func init() {
	loadCmd.Flags().BoolVar(&loadSample, "sample", false, "Seed the store with the builtin sample dataset")
	rootCmd.AddCommand(loadCmd)
}
