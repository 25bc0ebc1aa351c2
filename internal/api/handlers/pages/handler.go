package pages

import (
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/api/handlers"
)

// Handler отдает статические информационные страницы
type Handler struct {
	renderer *handlers.Renderer
	logger   Logger
}

func NewHandler(renderer *handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
	}
}

// Home GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html")
}

// About GET /about
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about.html")
}

// Contact GET /contact
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, "contact.html")
}

// Services GET /services
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	h.render(w, "services.html")
}

func (h *Handler) render(w http.ResponseWriter, name string) {
	if err := h.renderer.Render(w, name, nil); err != nil {
		h.logger.Error("pages - Failed to render %s: %v", name, err)
	}
}
