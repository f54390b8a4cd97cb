package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/analyzer"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/store"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/web"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		// The dataset snapshot is taken once at startup and shared
		// read-only across requests; reload by restarting the server.
		ds, err := loadDataset(s)
		if err != nil {
			return err
		}

		srv := &web.Server{
			Dataset:   ds,
			Analyzer:  analyzer.New(cfg.Analysis.FlatTolerance),
			Addr:      fmt.Sprintf("%s:%d", serveHost, servePort),
			RateLimit: cfg.Server.RateLimit,
		}
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
