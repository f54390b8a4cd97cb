package model

// Record is one historical observation for an area.
type Record struct {
	Year   int     `json:"year"`
	Area   string  `json:"area"`
	Price  float64 `json:"price"`
	Demand float64 `json:"demand"`
	Size   float64 `json:"size"`
}

// DataSource tags where a dataset's records came from.
type DataSource string

const (
	// SourceDataset means records were ingested from a real data file.
	SourceDataset DataSource = "dataset"
	// SourceSample means the builtin sample data is being used.
	SourceSample DataSource = "sample"
)

// IntentKind classifies what a query is asking for.
type IntentKind string

const (
	IntentAnalyze   IntentKind = "analyze"
	IntentCompare   IntentKind = "compare"
	IntentTrendOnly IntentKind = "trend"
)

// Intent is the parsed purpose of a free-text query plus the raw area
// tokens extracted from it (one for analyze/trend, two for compare).
type Intent struct {
	Kind  IntentKind
	Areas []string
}

// Trend is a year-indexed numeric series for one area.
type Trend struct {
	Labels []int     `json:"labels"`
	Data   []float64 `json:"data"`
}

// ChartData bundles the two per-area trend series.
type ChartData struct {
	PriceTrend  Trend `json:"price_trend"`
	DemandTrend Trend `json:"demand_trend"`
}

// Stats holds the summary statistics derived from an area's sorted records.
type Stats struct {
	FirstYear    int
	LatestYear   int
	FirstPrice   float64
	LatestPrice  float64
	MinPrice     float64
	MaxPrice     float64
	FirstDemand  float64
	LatestDemand float64
	// GrowthPercent is (latest-first)/first*100. It is only meaningful
	// when GrowthDefined is true; a zero first-year price leaves growth
	// undefined rather than dividing by zero.
	GrowthPercent float64
	GrowthDefined bool
}

// Result is one of the three response shapes produced by the analyzer:
// AnalysisResult, ComparisonResult, or ErrorResult.
type Result interface {
	isResult()
}

// AnalysisResult is the full analysis for a single area.
type AnalysisResult struct {
	Area       string     `json:"area"`
	Summary    string     `json:"summary"`
	ChartData  ChartData  `json:"chart_data"`
	TableData  []Record   `json:"table_data"`
	DataSource DataSource `json:"data_source"`
}

// ComparisonResult pairs two area analyses with a cross-area narrative.
type ComparisonResult struct {
	Area1             AnalysisResult `json:"area1"`
	Area2             AnalysisResult `json:"area2"`
	ComparisonSummary string         `json:"comparison_summary"`
}

// ErrorResult is the uniform failure shape for classification, resolution,
// and no-data errors.
type ErrorResult struct {
	Error string `json:"error"`
}

func (*AnalysisResult) isResult()   {}
func (*ComparisonResult) isResult() {}
func (*ErrorResult) isResult()      {}
