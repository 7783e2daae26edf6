package recent_activity

import (
	"net/http"
	"strconv"

	"github.com/m04kA/Mira-CourtBooking/internal/api/handlers"
)

const msgInvalidDays = "некорректное значение days"

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

// Handle GET /api/v1/activity
// Query params: days (optional, количество дней окна журнала)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем days из query параметров (опционально)
	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /activity - Invalid days value: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.service.RecentActivity(r.Context(), days)
	if err != nil {
		h.logger.Error("GET /activity - Failed to load activity log: days=%d, error=%v", days, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activity - Activity log retrieved successfully: days=%d, entries=%d",
		result.Days, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
