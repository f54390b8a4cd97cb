package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

var testRows = []model.Record{
	{Year: 2020, Area: "Wakad", Price: 500000, Demand: 75, Size: 1000},
	{Year: 2021, Area: "Wakad", Price: 550000, Demand: 80, Size: 1100},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testRows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "year,area,price,demand,size\n" +
		"2020,Wakad,500000,75,1000\n" +
		"2021,Wakad,550000,80,1100\n"
	if buf.String() != want {
		t.Errorf("csv output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "year,area,price,demand,size") {
		t.Errorf("header missing: %q", buf.String())
	}
}

func TestWriteExcelRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(&buf, testRows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reading workbook back: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Real Estate Data")
	if err != nil {
		t.Fatalf("reading sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "year" || rows[0][4] != "size" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Wakad" || rows[1][2] != "500000" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
}
