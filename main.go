package main

import (
	"os"

	"github.com/hindavishewale/realestate-analysis-chatbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
