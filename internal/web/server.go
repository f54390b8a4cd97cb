package web

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/analyzer"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
)

// Server exposes the query analysis engine over HTTP.
type Server struct {
	Dataset  *dataset.Dataset
	Analyzer *analyzer.Analyzer
	Addr     string
	// RateLimit caps API requests per second; 0 disables limiting.
	RateLimit float64

	limiter *rate.Limiter
}

// Handler builds the API routing table.
func (s *Server) Handler() http.Handler {
	if s.RateLimit > 0 && s.limiter == nil {
		s.limiter = rate.NewLimiter(rate.Limit(s.RateLimit), int(s.RateLimit)+1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", s.wrap(s.handleAnalyze))
	mux.HandleFunc("/api/areas", s.wrap(s.handleAreas))
	mux.HandleFunc("/api/download", s.wrap(s.handleDownload))
	mux.HandleFunc("/api/download-sample", s.wrap(s.handleDownloadSample))
	return mux
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, s.Handler())
}

// wrap applies the concerns every response needs: CORS (the React
// frontend is served from a different origin, and error bodies must be
// readable cross-origin too) and rate limiting.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if s.limiter != nil && !s.limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
