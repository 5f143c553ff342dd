package handlers

import (
	"FarmKeeper/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// DashboardHandler serves the read-only aggregate statistics.
type DashboardHandler struct {
	Service *service.StatsService
	Logger  *zap.SugaredLogger
}

func NewDashboardHandler(s *service.StatsService, logger *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{Service: s, Logger: logger}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats(r.Context())
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
