package book_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, rules domain.Rules) error {
	if !req.Claimant.Valid() {
		return fmt.Errorf("%w: community and villa are required", ErrInvalidInput)
	}

	if req.Court == "" {
		return fmt.Errorf("%w: court is required", ErrInvalidInput)
	}

	if !rules.CourtExists(req.Court) {
		return ErrCourtNotFound
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !rules.HourInRange(req.StartHour) {
		return fmt.Errorf("%w: bookable hours are %02d:00-%02d:00",
			ErrHourOutOfRange, rules.FirstHour, rules.LastHour)
	}

	return nil
}

// validateWindow проверяет, что дата не дальше горизонта бронирования.
// Прошедшие даты здесь проходят: их отсекает проверка истекшего слота.
func validateWindow(date, today time.Time, rules domain.Rules) error {
	if rules.BeyondWindow(date, today) {
		return fmt.Errorf("%w: can only book up to %d days ahead", ErrDateOutOfWindow, rules.WindowDays)
	}
	return nil
}
