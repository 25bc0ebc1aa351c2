package admin_login

import (
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/api/handlers"
	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
)

type Handler struct {
	gate     Gate
	sessions Sessions
	renderer *handlers.Renderer
	logger   Logger
}

func NewHandler(gate Gate, sessions Sessions, renderer *handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		gate:     gate,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// View данные формы логина
type View struct {
	Flashes []auth.Flash
}

// HandleForm GET /admin_login
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	view := View{Flashes: h.sessions.Flashes(w, r)}
	if err := h.renderer.Render(w, "admin_login.html", view); err != nil {
		h.logger.Error("GET /admin_login - Failed to render page: %v", err)
	}
}

// HandleSubmit POST /admin_login
// Неверный пароль — не ошибка, а несостоявшийся переход: форма
// показывается заново без сообщения
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	current := h.sessions.State(r)
	next := h.gate.SubmitPassword(current, r.FormValue("password"))

	if err := h.sessions.SetState(w, r, next); err != nil {
		h.logger.Error("POST /admin_login - Failed to save session: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if next >= auth.StatePasswordVerified {
		h.logger.Info("POST /admin_login - Password accepted, state=%s", next)
		handlers.Redirect(w, r, "/admin_2fa")
		return
	}

	h.logger.Warn("POST /admin_login - Wrong password, state stays %s", next)
	h.HandleForm(w, r)
}
