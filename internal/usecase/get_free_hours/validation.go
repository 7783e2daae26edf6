package get_free_hours

import (
	"fmt"
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Прошедшие даты допустимы: свободных часов на них просто нет.
func validateRequest(req *Request, today time.Time, rules domain.Rules) error {
	if req.Court == "" {
		return fmt.Errorf("%w: court is required", ErrInvalidInput)
	}

	if !rules.CourtExists(req.Court) {
		return ErrCourtNotFound
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if rules.BeyondWindow(req.Date, today) {
		return fmt.Errorf("%w: can only view up to %d days ahead", ErrDateOutOfWindow, rules.WindowDays)
	}

	return nil
}
