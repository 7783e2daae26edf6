package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mira-CourtBooking/internal/api/handlers"
	"github.com/m04kA/Mira-CourtBooking/internal/api/middleware"
	bookSlot "github.com/m04kA/Mira-CourtBooking/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingIdentity    = "не удалось определить виллу заявителя"
	msgCourtNotFound      = "корт не найден"
	msgHourOutOfRange     = "час начала вне расписания кортов"
	msgDateOutOfWindow    = "дата вне окна бронирования"
	msgSlotExpired        = "слот уже прошел"
	msgSlotAlreadyBooked  = "слот уже занят"
	msgActiveQuota        = "превышен лимит активных бронирований"
	msgDailyQuota         = "превышен лимит бронирований на день"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claimant, ok := middleware.ClaimantFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing claimant in request context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(claimant)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, bookSlot.ErrCourtNotFound):
			h.logger.Warn("POST /reservations - Court not found: claimant=%s, court=%s", claimant, req.Court)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, bookSlot.ErrHourOutOfRange):
			h.logger.Warn("POST /reservations - Hour out of range: claimant=%s, hour=%d", claimant, req.StartHour)
			handlers.RespondBadRequest(w, msgHourOutOfRange)

		case errors.Is(err, bookSlot.ErrDateOutOfWindow):
			h.logger.Warn("POST /reservations - Date out of booking window: claimant=%s, date=%s", claimant, req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, bookSlot.ErrSlotExpired):
			h.logger.Warn("POST /reservations - Slot already elapsed: claimant=%s, date=%s, hour=%d",
				claimant, req.Date, req.StartHour)
			handlers.RespondBadRequest(w, msgSlotExpired)

		case errors.Is(err, bookSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /reservations - Slot already booked: court=%s, date=%s, hour=%d",
				req.Court, req.Date, req.StartHour)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, bookSlot.ErrActiveQuotaExceeded):
			h.logger.Warn("POST /reservations - Active quota exceeded: claimant=%s", claimant)
			handlers.RespondUnprocessable(w, msgActiveQuota)

		case errors.Is(err, bookSlot.ErrDailyQuotaExceeded):
			h.logger.Warn("POST /reservations - Daily quota exceeded: claimant=%s, date=%s", claimant, req.Date)
			handlers.RespondUnprocessable(w, msgDailyQuota)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: claimant=%s, error=%v", claimant, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to book slot: claimant=%s, court=%s, error=%v",
				claimant, req.Court, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Slot booked successfully: reservation_id=%d, claimant=%s, court=%s, date=%s, hour=%d",
		result.ID, claimant, result.Court, req.Date, result.StartHour)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
