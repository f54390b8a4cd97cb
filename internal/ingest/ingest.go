// Package ingest parses real-estate data files (.csv and .xlsx) into
// records. Files must carry a header row naming the year, area, price,
// demand, and size columns; column order does not matter.
package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

// ReadFile ingests a data file, dispatching on extension.
func ReadFile(path string) ([]model.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadExcel(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// columnIndex maps required column names to their position in the header.
type columnIndex struct {
	year, area, price, demand, size int
}

func indexHeader(header []string) (columnIndex, error) {
	idx := columnIndex{year: -1, area: -1, price: -1, demand: -1, size: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "year":
			idx.year = i
		case "area", "locality", "location":
			idx.area = i
		case "price", "avg_price", "average price":
			idx.price = i
		case "demand", "demand (%)":
			idx.demand = i
		case "size", "avg_size", "average size":
			idx.size = i
		}
	}

	missing := func(name string, i int) error {
		if i < 0 {
			return fmt.Errorf("missing %q column in header", name)
		}
		return nil
	}
	for name, i := range map[string]int{
		"year": idx.year, "area": idx.area, "price": idx.price,
		"demand": idx.demand, "size": idx.size,
	} {
		if err := missing(name, i); err != nil {
			return idx, err
		}
	}
	return idx, nil
}

// parseRows converts raw cell rows (header first) into records. Blank
// rows are skipped; malformed cells fail with the 1-based row number.
func parseRows(rows [][]string) ([]model.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	idx, err := indexHeader(rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var records []model.Record
	for n, row := range rows[1:] {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		rowNum := n + 2 // 1-based, after the header

		year, err := strconv.Atoi(cell(row, idx.year))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad year %q", rowNum, cell(row, idx.year))
		}
		area := cell(row, idx.area)
		if area == "" {
			return nil, fmt.Errorf("row %d: empty area", rowNum)
		}
		price, err := parseNumber(cell(row, idx.price))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price %q", rowNum, cell(row, idx.price))
		}
		demand, err := parseNumber(cell(row, idx.demand))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad demand %q", rowNum, cell(row, idx.demand))
		}
		size, err := parseNumber(cell(row, idx.size))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad size %q", rowNum, cell(row, idx.size))
		}

		records = append(records, model.Record{
			Year: year, Area: area, Price: price, Demand: demand, Size: size,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no data rows found")
	}
	return records, nil
}

// parseNumber accepts plain floats plus the separators spreadsheet
// exports tend to carry (thousands commas, currency marks, percent).
func parseNumber(s string) (float64, error) {
	s = strings.NewReplacer(",", "", "₹", "", "%", "").Replace(s)
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
