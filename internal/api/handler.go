package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/contentaudit/contentaudit/internal/aggregator"
	"github.com/contentaudit/contentaudit/internal/models"
	"github.com/contentaudit/contentaudit/internal/report"
	"github.com/contentaudit/contentaudit/pkg/tracing"
)

// TextExtractor fetches a URL and returns its readable text.
type TextExtractor interface {
	ExtractText(ctx context.Context, url string) (string, error)
}

// Handler handles HTTP requests
type Handler struct {
	agg     *aggregator.Aggregator
	fetcher TextExtractor
	mux     *http.ServeMux
}

// NewHandler creates the API handler with CORS support and metrics
func NewHandler(agg *aggregator.Aggregator, fetcher TextExtractor) http.Handler {
	h := &Handler{
		agg:     agg,
		fetcher: fetcher,
		mux:     http.NewServeMux(),
	}

	h.setupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(h.mux)
}

// setupRoutes configures all API routes
func (h *Handler) setupRoutes() {
	h.mux.Handle("/metrics", promhttp.Handler())
	h.mux.HandleFunc("/api/analyze", h.handleAnalyze)
	h.mux.HandleFunc("/api/report", h.handleReport)
	h.mux.HandleFunc("/health", h.handleHealth)
}

// analyzeRequest is the body shared by the analyze and report endpoints.
// Content takes precedence; url is fetched only when content is empty.
type analyzeRequest struct {
	Content       string `json:"content"`
	URL           string `json:"url,omitempty"`
	TargetKeyword string `json:"target_keyword,omitempty"`
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleAnalyze runs the full analysis and returns the result record as JSON.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	results, ok := h.analyze(w, r)
	if !ok {
		return
	}
	respondJSON(w, results, http.StatusOK)
}

// handleReport runs the full analysis and returns the plain-text report.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	results, ok := h.analyze(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(report.Render(results)))
}

// analyze parses the shared request body, resolves the content and runs the
// aggregator. It writes the error response itself when the request cannot
// proceed.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) (*models.AnalysisResults, bool) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}

	if !h.agg.Configured() {
		respondError(w, "AI backend is not configured", http.StatusServiceUnavailable)
		return nil, false
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}

	content := req.Content
	if content == "" && req.URL != "" {
		fetched, err := h.fetcher.ExtractText(r.Context(), req.URL)
		if err != nil {
			respondError(w, "Failed to fetch content from url", http.StatusBadGateway)
			return nil, false
		}
		content = fetched
	}
	if content == "" {
		respondError(w, "Either content or url is required", http.StatusBadRequest)
		return nil, false
	}

	tracing.SetSpanAttributes(r.Context(),
		attribute.Int("content.length", len(content)),
		attribute.String("content.target_keyword", req.TargetKeyword))

	return h.agg.Analyze(r.Context(), aggregator.Request{
		Content:       content,
		TargetKeyword: req.TargetKeyword,
	}), true
}

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
