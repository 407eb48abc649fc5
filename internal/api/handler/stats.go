package handler

import (
	"net/http"

	"hwidstore/internal/api/apierr"
	"hwidstore/internal/api/response"
	"hwidstore/internal/dependencies/clock"
	"hwidstore/internal/services/stats"
)

// StatsHandler handles the statistics endpoint
type StatsHandler struct {
	stats *stats.Service
	clock clock.Clock
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *stats.Service, clock clock.Clock) *StatsHandler {
	return &StatsHandler{
		stats: stats,
		clock: clock,
	}
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Compute(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsResponse{
		Summary:    *summary,
		SystemTime: h.clock.Now(),
	})
}
