// Package analyzer turns free-text real-estate queries into structured
// analysis results: classify the query, resolve area names against the
// dataset, compute trends, and compose a plain-text summary. Every
// failure surfaces as a structured ErrorResult; nothing panics and no
// partial results are returned.
package analyzer

import (
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

// Analyzer runs the classify -> resolve -> compute -> compose pipeline
// against an immutable dataset snapshot. It is stateless and safe for
// concurrent use.
type Analyzer struct {
	composer Composer
}

// New creates an Analyzer. flatTolerance is the percent-point band within
// which demand changes read as flat and comparisons as ties.
func New(flatTolerance float64) *Analyzer {
	return &Analyzer{composer: Composer{FlatTolerance: flatTolerance}}
}

// Analyze answers a query against the dataset. The result is always one
// of *model.AnalysisResult, *model.ComparisonResult, or
// *model.ErrorResult; any stage failure short-circuits to the error
// shape. For comparisons both areas must resolve and have data.
func (a *Analyzer) Analyze(query string, ds *dataset.Dataset) model.Result {
	intent, err := Classify(query)
	if err != nil {
		return &model.ErrorResult{Error: err.Error()}
	}

	switch intent.Kind {
	case model.IntentCompare:
		r1, s1, err := a.analyzeArea(intent.Areas[0], ds)
		if err != nil {
			return &model.ErrorResult{Error: err.Error()}
		}
		r2, s2, err := a.analyzeArea(intent.Areas[1], ds)
		if err != nil {
			return &model.ErrorResult{Error: err.Error()}
		}
		return &model.ComparisonResult{
			Area1:             *r1,
			Area2:             *r2,
			ComparisonSummary: a.composer.Comparison(r1.Area, r2.Area, s1, s2),
		}

	case model.IntentTrendOnly:
		result, stats, err := a.analyzeArea(intent.Areas[0], ds)
		if err != nil {
			return &model.ErrorResult{Error: err.Error()}
		}
		result.Summary += "\n\n" + a.composer.TrendDetail(stats, len(result.TableData))
		return result

	default:
		result, _, err := a.analyzeArea(intent.Areas[0], ds)
		if err != nil {
			return &model.ErrorResult{Error: err.Error()}
		}
		return result
	}
}

// TableRows returns the flattened year-sorted rows for a query, for file
// exporters to serialize. Comparison queries yield both areas' rows in
// query order.
func (a *Analyzer) TableRows(query string, ds *dataset.Dataset) ([]model.Record, error) {
	intent, err := Classify(query)
	if err != nil {
		return nil, err
	}

	var rows []model.Record
	for _, token := range intent.Areas {
		area, err := Resolve(token, ds)
		if err != nil {
			return nil, err
		}
		_, areaRows, _, err := Compute(area, ds)
		if err != nil {
			return nil, err
		}
		rows = append(rows, areaRows...)
	}
	return rows, nil
}

func (a *Analyzer) analyzeArea(token string, ds *dataset.Dataset) (*model.AnalysisResult, model.Stats, error) {
	area, err := Resolve(token, ds)
	if err != nil {
		return nil, model.Stats{}, err
	}

	chart, rows, stats, err := Compute(area, ds)
	if err != nil {
		return nil, model.Stats{}, err
	}

	return &model.AnalysisResult{
		Area:       area,
		Summary:    a.composer.Summary(area, stats, len(rows)),
		ChartData:  chart,
		TableData:  rows,
		DataSource: ds.Source(),
	}, stats, nil
}
