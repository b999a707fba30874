/*
handlers.go - HTTP handlers

PURPOSE:
  Exposes the report service over HTTP. Handles request/response, JSON
  serialization, and status mapping; all logic lives in the report
  package.

ENDPOINTS:
  GET /          Generate and return the top-up report
  GET /healthz   Liveness probe

ERROR HANDLING:
  Failures are returned as {"error": "..."}:
  - 502: the portal fetch or extraction failed (upstream problem)
  - 500: anything else
  A failed report is all-or-nothing; no partially filled body is ever
  written.
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/warp/lunch-engine/balance"
	"github.com/warp/lunch-engine/report"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service *report.Service

	// Clock is swappable in tests; defaults to time.Now.
	Clock func() time.Time
}

// NewHandler creates a handler around the report service.
func NewHandler(service *report.Service) *Handler {
	return &Handler{Service: service, Clock: time.Now}
}

// GetReport generates a fresh top-up report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Service.Generate(r.Context(), h.Clock())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, toReportDTO(rep))
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps a report-generation failure to an HTTP status.
func statusFor(err error) int {
	if errors.Is(err, report.ErrFetch) || errors.Is(err, balance.ErrExtraction) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorDTO{Error: err.Error()})
}
