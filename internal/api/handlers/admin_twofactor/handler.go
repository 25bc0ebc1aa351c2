package admin_twofactor

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

// View данные формы второго фактора
type View struct {
	Flashes []auth.Flash
}

// HandleForm GET /admin_2fa
// Доступ анонимной сессии отрезается guard-middleware до хендлера
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	view := View{Flashes: h.sessions.Flashes(w, r)}
	if err := h.renderer.Render(w, "admin_2fa.html", view); err != nil {
		h.logger.Error("GET /admin_2fa - Failed to render page: %v", err)
	}
}

// HandleSubmit POST /admin_2fa
// Неверный код оставляет состояние password_verified и показывает форму заново
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	current := h.sessions.State(r)
	next := h.gate.SubmitCode(current, r.FormValue("code"))

	if err := h.sessions.SetState(w, r, next); err != nil {
		h.logger.Error("POST /admin_2fa - Failed to save session: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if next == auth.StateAuthenticated {
		h.logger.Info("POST /admin_2fa - One-time code accepted")
		handlers.Redirect(w, r, "/booking_admin")
		return
	}

	h.logger.Warn("POST /admin_2fa - Invalid one-time code, state stays %s", next)
	h.HandleForm(w, r)
}
