package dataset

import "github.com/hindavishewale/realestate-analysis-chatbot/internal/model"

// SampleRecords returns the builtin demo data used when no real dataset
// has been loaded: three Pune localities over 2020-2023.
func SampleRecords() []model.Record {
	return []model.Record{
		{Year: 2020, Area: "Wakad", Price: 500000, Demand: 75, Size: 1000},
		{Year: 2021, Area: "Wakad", Price: 550000, Demand: 80, Size: 1100},
		{Year: 2022, Area: "Wakad", Price: 600000, Demand: 85, Size: 1200},
		{Year: 2023, Area: "Wakad", Price: 650000, Demand: 82, Size: 1250},
		{Year: 2020, Area: "Aundh", Price: 600000, Demand: 70, Size: 1100},
		{Year: 2021, Area: "Aundh", Price: 650000, Demand: 75, Size: 1150},
		{Year: 2022, Area: "Aundh", Price: 700000, Demand: 80, Size: 1200},
		{Year: 2023, Area: "Aundh", Price: 750000, Demand: 78, Size: 1250},
		{Year: 2020, Area: "Akurdi", Price: 450000, Demand: 65, Size: 950},
		{Year: 2021, Area: "Akurdi", Price: 480000, Demand: 70, Size: 1000},
		{Year: 2022, Area: "Akurdi", Price: 520000, Demand: 75, Size: 1050},
		{Year: 2023, Area: "Akurdi", Price: 560000, Demand: 77, Size: 1100},
	}
}

// Sample builds the builtin fallback Dataset.
func Sample() *Dataset {
	return New(SampleRecords(), model.SourceSample)
}
