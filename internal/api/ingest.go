package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/swinglab/swinglab/internal/ingestion"
	"github.com/swinglab/swinglab/pkg/kinematics"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

func (h *Handler) requireIngestion(w http.ResponseWriter) bool {
	if h.ingestionSvc == nil {
		writeError(w, http.StatusServiceUnavailable, "swing storage is not configured")
		return false
	}
	return true
}

// handleIngest handles POST /api/v1/swings: store, analyze and persist a capture.
func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	if !h.requireIngestion(w) {
		return
	}

	var c kinematics.Capture
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	out, err := h.ingestionSvc.Ingest(r.Context(), &c)
	if err != nil {
		h.metrics.observeError()
		writeError(w, analysisStatus(err), "failed to ingest swing: "+err.Error())
		return
	}
	h.metrics.observeResult(out.Result, time.Since(start))
	h.cache.Put(out.Result.AthleteID, out.Result.ID, out.Result)

	writeJSON(w, http.StatusCreated, out)
}

// handleRescore handles POST /api/v1/swings/{swingID}/rescore: re-run the
// pipeline over a stored capture, e.g. after a catalog change.
func (h *Handler) handleRescore(w http.ResponseWriter, r *http.Request) {
	if !h.requireIngestion(w) {
		return
	}
	swingID := r.PathValue("swingID")
	athleteID := r.URL.Query().Get("athlete_id")

	start := time.Now()
	out, err := h.ingestionSvc.ProcessSwing(r.Context(), athleteID, swingID)
	if errors.Is(err, ingestion.ErrNotFound) {
		writeError(w, http.StatusNotFound, "swing not found")
		return
	}
	if err != nil {
		h.metrics.observeError()
		writeError(w, analysisStatus(err), "failed to rescore swing: "+err.Error())
		return
	}
	h.metrics.observeResult(out.Result, time.Since(start))
	h.cache.Put(athleteID, swingID, out.Result)

	logrus.WithField("swing", swingID).Info("swing rescored")
	writeJSON(w, http.StatusOK, out)
}

// handleGetSwing handles GET /api/swings/{swingID}. Without athlete_id the
// owner is resolved from the database, so the cache is skipped.
func (h *Handler) handleGetSwing(w http.ResponseWriter, r *http.Request) {
	swingID := r.PathValue("swingID")
	athleteID := r.URL.Query().Get("athlete_id")
	if athleteID != "" {
		if res := h.cache.Get(athleteID, swingID); res != nil {
			writeJSON(w, http.StatusOK, res)
			return
		}
	}
	if !h.requireIngestion(w) {
		return
	}

	res, err := h.ingestionSvc.LoadResult(r.Context(), athleteID, swingID)
	if errors.Is(err, ingestion.ErrNotFound) {
		writeError(w, http.StatusNotFound, "swing not found")
		return
	}
	if errors.Is(err, ingestion.ErrAmbiguousSwing) {
		writeError(w, http.StatusConflict, "swing id is used by several athletes; pass athlete_id")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load swing: "+err.Error())
		return
	}
	h.cache.Put(res.AthleteID, swingID, res)
	writeJSON(w, http.StatusOK, res)
}

// handleHistory handles GET /api/athletes/{athleteID}/swings?limit=N.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if !h.requireIngestion(w) {
		return
	}

	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	rows, err := h.ingestionSvc.History(r.Context(), r.PathValue("athleteID"), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"swings": rows})
}
