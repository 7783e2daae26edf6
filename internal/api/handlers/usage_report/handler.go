package usage_report

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

// Handle GET /api/v1/reports/usage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Usage(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/usage - Failed to build usage report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/usage - Usage report retrieved successfully: hours=%d, weekdays=%d",
		len(result.ByHour), len(result.ByWeekday))
	handlers.RespondJSON(w, http.StatusOK, result)
}
