package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/swinglab/swinglab/pkg/kinematics"
	"github.com/swinglab/swinglab/pkg/scoring"
)

type prescribeRequest struct {
	Swing  *scoring.SwingScore `json:"swing" validate:"required"`
	Pillar string              `json:"pillar" validate:"omitempty,oneof=anchor stability whip"`
}

type compareRequest struct {
	Before *scoring.SwingScore `json:"before" validate:"required"`
	After  *scoring.SwingScore `json:"after" validate:"required"`
}

type compareResponse struct {
	Deltas []scoring.MetricDelta `json:"deltas"`
}

// handleScore handles POST /api/v1/score: analyze a capture without storing it.
func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	var c kinematics.Capture
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	res, err := h.analyzer.Analyze(&c)
	if err != nil {
		h.metrics.observeError()
		writeError(w, analysisStatus(err), err.Error())
		return
	}
	h.metrics.observeResult(res, time.Since(start))

	writeJSON(w, http.StatusOK, res)
}

// handlePrescribe handles POST /api/v1/prescribe. With a pillar, it returns
// every drill for that pillar's weak metrics instead of the ranked top five.
func (h *Handler) handlePrescribe(w http.ResponseWriter, r *http.Request) {
	var req prescribeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Pillar != "" {
		recs := h.analyzer.ForPillar(*req.Swing, scoring.Pillar(req.Pillar))
		writeJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
		return
	}
	writeJSON(w, http.StatusOK, h.analyzer.Prescribe(*req.Swing))
}

// handleCompare handles POST /api/v1/compare.
func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, compareResponse{Deltas: scoring.Compare(*req.Before, *req.After)})
}

// analysisStatus maps an analysis error to an HTTP status.
func analysisStatus(err error) int {
	if errors.Is(err, kinematics.ErrCurveLengthMismatch) {
		return http.StatusUnprocessableEntity
	}
	logrus.WithError(err).Error("analysis failed")
	return http.StatusInternalServerError
}
