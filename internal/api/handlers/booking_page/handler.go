package booking_page

import (
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/api/handlers"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	sessions Sessions
	renderer *handlers.Renderer
	logger   Logger
}

func NewHandler(useCase GetAvailabilityUseCase, sessions Sessions, renderer *handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /booking
// Доступность пересчитывается заново на каждый запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flashes := h.sessions.Flashes(w, r)

	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /booking - Failed to compute availability: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := View{
		Flashes: flashes,
		Days:    result.Days,
	}

	if err := h.renderer.Render(w, "booking.html", view); err != nil {
		h.logger.Error("GET /booking - Failed to render page: %v", err)
	}
}
