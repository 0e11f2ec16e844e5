package handler

import (
	"net/http"

	"github.com/osse101/Stockroom_Go/internal/dashboard"
	"github.com/osse101/Stockroom_Go/internal/logger"
)

// HandleDashboard returns the store-wide summary: aggregate counts, the
// total inventory value and the most recently added items
func HandleDashboard(service dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to build dashboard summary", "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}
