package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/Mira-CourtBooking/internal/api/handlers"
	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// Заголовки, идентифицирующие виллу сообщества
const (
	HeaderCommunity = "X-Community"
	HeaderVilla     = "X-Villa"
)

const msgMissingIdentity = "требуются заголовки X-Community и X-Villa"

type contextKey int

const claimantKey contextKey = iota

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Identity извлекает виллу заявителя из заголовков запроса.
// Запросы без обоих заголовков отклоняются с кодом 401.
func Identity(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claimant := domain.NewClaimant(r.Header.Get(HeaderCommunity), r.Header.Get(HeaderVilla))
			if !claimant.Valid() {
				logger.Warn("%s %s - Missing claimant identity headers", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingIdentity)
				return
			}

			ctx := context.WithValue(r.Context(), claimantKey, claimant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimantFromContext возвращает виллу заявителя, сохраненную middleware
func ClaimantFromContext(ctx context.Context) (domain.Claimant, bool) {
	claimant, ok := ctx.Value(claimantKey).(domain.Claimant)
	return claimant, ok
}
