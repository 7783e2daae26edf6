package get_free_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Mira-CourtBooking/internal/api/handlers"
	getFreeHours "github.com/m04kA/Mira-CourtBooking/internal/usecase/get_free_hours"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourtNotFound   = "корт не найден"
	msgDateOutOfWindow = "дата вне окна бронирования"
)

type Handler struct {
	useCase GetFreeHoursUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{court}/free-hours
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	court := vars["court"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{court}/free-hours - Missing date: court=%s", court)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(court, dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{court}/free-hours - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeHours.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{court}/free-hours - Court not found: court=%s", court)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getFreeHours.ErrDateOutOfWindow):
			h.logger.Warn("GET /courts/{court}/free-hours - Date out of booking window: court=%s, date=%s", court, dateStr)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, getFreeHours.ErrInvalidInput):
			h.logger.Warn("GET /courts/{court}/free-hours - Invalid input: court=%s, error=%v", court, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /courts/{court}/free-hours - Failed to get free hours: court=%s, date=%s, error=%v",
				court, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /courts/{court}/free-hours - Free hours retrieved successfully: court=%s, date=%s, count=%d",
		court, dateStr, len(result.FreeHours))
	handlers.RespondJSON(w, http.StatusOK, response)
}
