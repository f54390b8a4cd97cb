// Package dataset provides an immutable in-memory snapshot of historical
// real-estate records. A Dataset is built once from ingested records and
// then shared read-only across concurrent requests.
package dataset

import (
	"strconv"
	"strings"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

// Dataset is a read-only collection of records plus the canonical area
// list in first-encountered order. Construct with New; do not mutate.
type Dataset struct {
	records []model.Record
	areas   []string
	byArea  map[string][]model.Record
	source  model.DataSource
}

// New builds a Dataset from raw records. Area names are case-normalized:
// the first-encountered spelling becomes canonical and case-variant rows
// are folded onto it. Duplicate (year, area) pairs are collapsed
// last-write-wins, matching load order. The canonical area list preserves
// the order areas first appear in the input.
func New(records []model.Record, source model.DataSource) *Dataset {
	ds := &Dataset{
		byArea: make(map[string][]model.Record),
		source: source,
	}

	canon := make(map[string]string) // lowercased name -> canonical spelling
	seen := make(map[string]int)     // "area|year" -> index into ds.records
	for _, rec := range records {
		low := strings.ToLower(rec.Area)
		name, ok := canon[low]
		if !ok {
			name = rec.Area
			canon[low] = name
			ds.areas = append(ds.areas, name)
		}
		rec.Area = name

		key := low + "|" + strconv.Itoa(rec.Year)
		if idx, ok := seen[key]; ok {
			ds.records[idx] = rec
			continue
		}
		seen[key] = len(ds.records)
		ds.records = append(ds.records, rec)
	}

	for _, rec := range ds.records {
		ds.byArea[rec.Area] = append(ds.byArea[rec.Area], rec)
	}

	return ds
}

// Areas returns the canonical area names in first-encountered order.
// Callers must not modify the returned slice.
func (ds *Dataset) Areas() []string {
	return ds.areas
}

// ForArea returns all records for a canonical area name. The area must be
// the exact canonical spelling (use the resolver for fuzzy lookups).
func (ds *Dataset) ForArea(area string) []model.Record {
	return ds.byArea[area]
}

// Records returns every record in load order.
func (ds *Dataset) Records() []model.Record {
	return ds.records
}

// Len returns the total record count.
func (ds *Dataset) Len() int {
	return len(ds.records)
}

// Source reports whether the records came from ingested data or the
// builtin sample.
func (ds *Dataset) Source() model.DataSource {
	return ds.source
}
