package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/config"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/store"
)

var (
	dataDir    string
	verbose    bool
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "realestate-chatbot",
	Short: "Answer natural-language real-estate queries from historical price/demand data",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if !cmd.Flags().Changed("data-dir") {
			dataDir = cfg.Data.Dir
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Directory for the record store")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func Execute() error {
	return rootCmd.Execute()
}

func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// loadDataset builds the immutable dataset snapshot from the store,
// falling back to the builtin sample data when nothing has been loaded.
func loadDataset(s *store.Store) (*dataset.Dataset, error) {
	records, err := s.ReadRecords()
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	if len(records) == 0 {
		logVerbose("no dataset loaded; using builtin sample data")
		return dataset.Sample(), nil
	}
	return dataset.New(records, model.SourceDataset), nil
}
