package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/export"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

type analyzeRequest struct {
	Query string `json:"query"`
}

// handleAnalyze answers POST {"query": "..."} with an analysis,
// comparison, or structured error body. Analysis failures are part of
// the API contract and return 200 with an error field; only transport
// problems get non-200 statuses.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		writeJSONStatus(w, http.StatusBadRequest, &model.ErrorResult{Error: "query cannot be empty"})
		return
	}

	writeJSON(w, s.Analyzer.Analyze(req.Query, s.Dataset))
}

// handleAreas lists the canonical area names the dataset knows about.
func (s *Server) handleAreas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"areas":       s.Dataset.Areas(),
		"data_source": s.Dataset.Source(),
	})
}

// handleDownload serves the table rows for a query (or the full dataset
// when no query is given) as a CSV or Excel attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	rows := s.Dataset.Records()
	if query := r.URL.Query().Get("query"); query != "" {
		var err error
		rows, err = s.Analyzer.TableRows(query, s.Dataset)
		if err != nil {
			writeJSONStatus(w, http.StatusNotFound, &model.ErrorResult{Error: err.Error()})
			return
		}
	}

	serveRows(w, r, rows, "real_estate_data")
}

// handleDownloadSample serves the builtin sample dataset, which doubles
// as the upload template.
func (s *Server) handleDownloadSample(w http.ResponseWriter, r *http.Request) {
	serveRows(w, r, dataset.SampleRecords(), "real_estate_sample")
}

func serveRows(w http.ResponseWriter, r *http.Request, rows []model.Record, name string) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))
		if err := export.WriteCSV(w, rows); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", name))
		if err := export.WriteExcel(w, rows); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	default:
		http.Error(w, fmt.Sprintf("unknown format %q (want csv or xlsx)", format), http.StatusBadRequest)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
