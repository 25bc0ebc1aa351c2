package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
)

// SessionState доступ к состоянию аутентификации сессии
type SessionState interface {
	State(r *http.Request) auth.State
	Touch(w http.ResponseWriter, r *http.Request) error
}

// RequireState пропускает запрос только при состоянии сессии не ниже
// min; иначе редирект на более ранний шаг аутентификации (не ошибка).
// Прошедший запрос сдвигает окно idle-таймаута вперед.
func RequireState(sessions SessionState, min auth.State, redirectTo string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions.State(r) < min {
				http.Redirect(w, r, redirectTo, http.StatusSeeOther)
				return
			}

			_ = sessions.Touch(w, r)
			next.ServeHTTP(w, r)
		})
	}
}
