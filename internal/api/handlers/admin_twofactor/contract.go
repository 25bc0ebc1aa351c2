package admin_twofactor

import (
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
)

// Gate машина состояний аутентификации администратора
type Gate interface {
	SubmitCode(current auth.State, code string) auth.State
}

// Sessions доступ к состоянию сессии
type Sessions interface {
	State(r *http.Request) auth.State
	SetState(w http.ResponseWriter, r *http.Request, state auth.State) error
	Flashes(w http.ResponseWriter, r *http.Request) []auth.Flash
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
