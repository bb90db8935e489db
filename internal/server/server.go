// Package server exposes the checker as a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"paracheck/internal/checker"
	"paracheck/internal/corrector"
)

// Processor is the part of checker.Checker the handler needs.
type Processor interface {
	Process(paragraph string) (*checker.Result, error)
}

// NewHandler returns the API mux:
//
//	POST /api/v1/process  {"text": "..."}
//	GET  /metrics
func NewHandler(p Processor) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/process", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			requestsTotal.WithLabelValues("invalid").Inc()
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}

		start := time.Now()
		res, err := p.Process(req.Text)
		processDuration.Observe(time.Since(start).Seconds())
		switch {
		case errors.Is(err, corrector.ErrEmptyInput):
			requestsTotal.WithLabelValues("rejected").Inc()
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		case err != nil:
			requestsTotal.WithLabelValues("error").Inc()
			gologger.Error().Msgf("process failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		requestsTotal.WithLabelValues("ok").Inc()
		correctionsTotal.Add(float64(len(res.Corrections)))
		categoriesTotal.WithLabelValues(res.Category).Inc()
		writeJSON(w, http.StatusOK, res)
	})

	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		gologger.Warning().Msgf("could not write response: %v", err)
	}
}
