package ingest

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

// ReadCSV ingests a CSV data file.
func ReadCSV(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; parseRows validates cells
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	records, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
