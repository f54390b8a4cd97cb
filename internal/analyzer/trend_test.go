package analyzer

import (
	"strings"
	"testing"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

func TestComputeSortsAndBuildsSeries(t *testing.T) {
	// Out-of-order years must come back sorted ascending.
	ds := dataset.New([]model.Record{
		{Year: 2022, Area: "Wakad", Price: 600000, Demand: 85, Size: 1200},
		{Year: 2020, Area: "Wakad", Price: 500000, Demand: 75, Size: 1000},
		{Year: 2021, Area: "Wakad", Price: 550000, Demand: 80, Size: 1100},
		{Year: 2020, Area: "Aundh", Price: 900000, Demand: 10, Size: 100},
	}, model.SourceDataset)

	chart, rows, stats, err := Compute("Wakad", ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantYears := []int{2020, 2021, 2022}
	for i, y := range wantYears {
		if chart.PriceTrend.Labels[i] != y {
			t.Errorf("price label %d = %d, want %d", i, chart.PriceTrend.Labels[i], y)
		}
		if chart.DemandTrend.Labels[i] != y {
			t.Errorf("demand label %d = %d, want %d", i, chart.DemandTrend.Labels[i], y)
		}
		if rows[i].Year != y {
			t.Errorf("row %d year = %d, want %d", i, rows[i].Year, y)
		}
	}
	if chart.PriceTrend.Data[0] != 500000 || chart.PriceTrend.Data[2] != 600000 {
		t.Errorf("price data = %v", chart.PriceTrend.Data)
	}
	if chart.DemandTrend.Data[0] != 75 || chart.DemandTrend.Data[2] != 85 {
		t.Errorf("demand data = %v", chart.DemandTrend.Data)
	}

	if stats.MinPrice != 500000 || stats.MaxPrice != 600000 {
		t.Errorf("price range = %v-%v, want 500000-600000", stats.MinPrice, stats.MaxPrice)
	}
	if stats.FirstDemand != 75 || stats.LatestDemand != 85 {
		t.Errorf("demand endpoints = %v/%v", stats.FirstDemand, stats.LatestDemand)
	}
}

func TestComputeGrowthPercent(t *testing.T) {
	ds := dataset.New([]model.Record{
		{Year: 2020, Area: "X", Price: 100, Demand: 50, Size: 500},
		{Year: 2023, Area: "X", Price: 150, Demand: 60, Size: 600},
	}, model.SourceDataset)

	_, _, stats, err := Compute("X", ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stats.GrowthDefined {
		t.Fatal("growth should be defined")
	}
	if stats.GrowthPercent != 50.0 {
		t.Errorf("growth = %v, want exactly 50.0", stats.GrowthPercent)
	}
}

func TestComputeZeroBaselineUndefined(t *testing.T) {
	ds := dataset.New([]model.Record{
		{Year: 2020, Area: "X", Price: 0, Demand: 50, Size: 500},
		{Year: 2021, Area: "X", Price: 100, Demand: 60, Size: 600},
	}, model.SourceDataset)

	_, _, stats, err := Compute("X", ds)
	if err != nil {
		t.Fatalf("zero baseline must not fail: %v", err)
	}
	if stats.GrowthDefined {
		t.Error("growth should be undefined for a zero baseline")
	}
	if stats.GrowthPercent != 0 {
		t.Errorf("undefined growth should stay zero-valued, got %v", stats.GrowthPercent)
	}
}

func TestComputeNoData(t *testing.T) {
	ds := dataset.New([]model.Record{
		{Year: 2020, Area: "Wakad", Price: 100, Demand: 50, Size: 500},
	}, model.SourceDataset)

	_, _, _, err := Compute("Aundh", ds)
	if err == nil {
		t.Fatal("expected error for area with no records")
	}
	if !strings.Contains(err.Error(), "Aundh") {
		t.Errorf("error %q should name the area", err)
	}
}

func TestComputeDoesNotMutateDataset(t *testing.T) {
	ds := dataset.New([]model.Record{
		{Year: 2022, Area: "X", Price: 3, Demand: 3, Size: 3},
		{Year: 2020, Area: "X", Price: 1, Demand: 1, Size: 1},
	}, model.SourceDataset)

	if _, _, _, err := Compute("X", ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.ForArea("X")[0].Year != 2022 {
		t.Error("Compute reordered the dataset's backing slice")
	}
}
