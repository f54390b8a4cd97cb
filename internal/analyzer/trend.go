package analyzer

import (
	"fmt"
	"sort"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

// Compute filters the dataset to one canonical area, sorts its records by
// year ascending, and derives the price/demand trend series plus summary
// statistics. It fails when the area has no records.
func Compute(area string, ds *dataset.Dataset) (model.ChartData, []model.Record, model.Stats, error) {
	src := ds.ForArea(area)
	if len(src) == 0 {
		return model.ChartData{}, nil, model.Stats{}, fmt.Errorf("no data found for %s", area)
	}

	rows := make([]model.Record, len(src))
	copy(rows, src)
	// Years are unique per area, so sort order is total.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })

	chart := model.ChartData{
		PriceTrend:  model.Trend{Labels: make([]int, len(rows)), Data: make([]float64, len(rows))},
		DemandTrend: model.Trend{Labels: make([]int, len(rows)), Data: make([]float64, len(rows))},
	}
	for i, r := range rows {
		chart.PriceTrend.Labels[i] = r.Year
		chart.PriceTrend.Data[i] = r.Price
		chart.DemandTrend.Labels[i] = r.Year
		chart.DemandTrend.Data[i] = r.Demand
	}

	first, last := rows[0], rows[len(rows)-1]
	stats := model.Stats{
		FirstYear:    first.Year,
		LatestYear:   last.Year,
		FirstPrice:   first.Price,
		LatestPrice:  last.Price,
		MinPrice:     first.Price,
		MaxPrice:     first.Price,
		FirstDemand:  first.Demand,
		LatestDemand: last.Demand,
	}
	for _, r := range rows[1:] {
		if r.Price < stats.MinPrice {
			stats.MinPrice = r.Price
		}
		if r.Price > stats.MaxPrice {
			stats.MaxPrice = r.Price
		}
	}

	// A zero baseline leaves growth undefined rather than dividing by zero.
	if first.Price != 0 {
		stats.GrowthPercent = (last.Price - first.Price) / first.Price * 100
		stats.GrowthDefined = true
	}

	return chart, rows, stats, nil
}
