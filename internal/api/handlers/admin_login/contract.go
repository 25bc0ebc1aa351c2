package admin_login

import (
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
)

// Gate машина состояний аутентификации администратора
type Gate interface {
	SubmitPassword(current auth.State, password string) auth.State
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
