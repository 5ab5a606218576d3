// Package api implements the swinglab REST API.
// It provides stateless scoring endpoints plus ingest and read endpoints
// backed by blob storage and, when configured, Postgres.
package api

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/swinglab/swinglab/internal/ingestion"
	"github.com/swinglab/swinglab/pkg/analysis"
)

// maxBodyBytes bounds request bodies; a 100-sample capture is a few KB.
const maxBodyBytes = 4 << 20

var validate = validator.New()

// Handler is the top-level API handler for the swinglab service.
type Handler struct {
	analyzer     *analysis.Analyzer
	ingestionSvc *ingestion.Service
	cache        *ReportCache
	metrics      *Metrics
}

// NewHandler creates a new API handler. ingestionSvc may be nil, in which
// case only the stateless endpoints are served.
func NewHandler(analyzer *analysis.Analyzer, ingestionSvc *ingestion.Service, cache *ReportCache, metrics *Metrics) *Handler {
	if cache == nil {
		cache = NewReportCacheFromEnv()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Handler{
		analyzer:     analyzer,
		ingestionSvc: ingestionSvc,
		cache:        cache,
		metrics:      metrics,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Stateless scoring
	mux.HandleFunc("POST /api/v1/score", h.counted("score", h.handleScore))
	mux.HandleFunc("POST /api/v1/prescribe", h.counted("prescribe", h.handlePrescribe))
	mux.HandleFunc("POST /api/v1/compare", h.counted("compare", h.handleCompare))

	// Stored swings
	mux.HandleFunc("POST /api/v1/swings", h.counted("ingest", h.handleIngest))
	mux.HandleFunc("POST /api/v1/swings/{swingID}/rescore", h.counted("rescore", h.handleRescore))
	mux.HandleFunc("GET /api/swings/{swingID}", h.counted("get_swing", h.handleGetSwing))
	mux.HandleFunc("GET /api/athletes/{athleteID}/swings", h.counted("history", h.handleHistory))

	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(h.metrics.Registry(), promhttp.HandlerOpts{}))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusRecorder captures the response code for the request counter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) counted(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		h.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.status/100)+"xx").Inc()
	}
}

// decodeBody reads a JSON body, transparently handling gzip encoding, and
// runs struct validation on the result.
func decodeBody(r *http.Request, dst any) error {
	var body io.Reader = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if r.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(body)
		if err != nil {
			return fmt.Errorf("invalid gzip body: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return nil
		}
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
