package my_reservations

import (
	"net/http"

	"github.com/m04kA/Mira-CourtBooking/internal/api/handlers"
	"github.com/m04kA/Mira-CourtBooking/internal/api/middleware"
)

const msgMissingIdentity = "не удалось определить виллу заявителя"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claimant, ok := middleware.ClaimantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing claimant in request context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	result, err := h.service.ListByClaimant(r.Context(), claimant)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to get reservations: claimant=%s, error=%v", claimant, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: claimant=%s, count=%d",
		claimant, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
