package ingest

import (
	"fmt"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
	"github.com/xuri/excelize/v2"
)

// ReadExcel ingests the first sheet of an .xlsx workbook.
func ReadExcel(path string) ([]model.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	records, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
