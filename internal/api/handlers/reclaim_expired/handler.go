package reclaim_expired

import (
	"net/http"

	"github.com/m04kA/Mira-CourtBooking/internal/api/handlers"
)

type Handler struct {
	useCase ReclaimExpiredUseCase
	logger  Logger
}

func NewHandler(useCase ReclaimExpiredUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/maintenance/reclaim-expired
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /maintenance/reclaim-expired - Failed to reclaim slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /maintenance/reclaim-expired - Reclaim finished: deleted=%d", result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, response)
}
