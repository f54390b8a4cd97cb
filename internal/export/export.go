// Package export serializes analysis table rows as CSV or Excel files.
// The analyzer computes the rows; this package only encodes them.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
	"github.com/xuri/excelize/v2"
)

var header = []string{"year", "area", "price", "demand", "size"}

// WriteCSV encodes rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []model.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range rows {
		fields := []string{
			strconv.Itoa(rec.Year),
			rec.Area,
			strconv.FormatFloat(rec.Price, 'f', -1, 64),
			strconv.FormatFloat(rec.Demand, 'f', -1, 64),
			strconv.FormatFloat(rec.Size, 'f', -1, 64),
		}
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("writing row %s/%d: %w", rec.Area, rec.Year, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteExcel encodes rows as a single-sheet .xlsx workbook with a bold
// header row.
func WriteExcel(w io.Writer, rows []model.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Real Estate Data"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for col, name := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "E1", style)
	}

	for i, rec := range rows {
		values := []any{rec.Year, rec.Area, rec.Price, rec.Demand, rec.Size}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", i+2, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
