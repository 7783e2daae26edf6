package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Прошедшие даты допустимы: сетка по ним целиком elapsed.
func validateRequest(req *Request, today time.Time, rules domain.Rules) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if rules.BeyondWindow(req.Date, today) {
		return fmt.Errorf("%w: can only view up to %d days ahead", ErrDateOutOfWindow, rules.WindowDays)
	}

	return nil
}
