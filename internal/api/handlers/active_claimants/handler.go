package active_claimants

import (
	"net/http"

	"github.com/m04kA/Mira-CourtBooking/internal/api/handlers"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/active-claimants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ActiveClaimants(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/active-claimants - Failed to get active claimants: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/active-claimants - Claimants retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
