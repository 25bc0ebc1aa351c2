package admin_bookings

import (
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/api/handlers"
	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
	"github.com/lc-autoel/LCA-BookingSite/internal/service/reservations/models"
)

type Handler struct {
	service      ReservationsService
	availability GetAvailabilityUseCase
	renderer     *handlers.Renderer
	logger       Logger
}

func NewHandler(service ReservationsService, availability GetAvailabilityUseCase, renderer *handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		service:      service,
		availability: availability,
		renderer:     renderer,
		logger:       logger,
	}
}

// View данные админской страницы
type View struct {
	Reservations *models.ReservationListView
	Days         []domain.DayAvailability
}

// Handle GET /booking_admin
// Маршрут закрыт guard-middleware: сюда попадают только
// аутентифицированные сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /booking_admin - Failed to list reservations: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	avail, err := h.availability.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /booking_admin - Failed to compute availability: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := View{
		Reservations: list,
		Days:         avail.Days,
	}

	if err := h.renderer.Render(w, "booking_admin.html", view); err != nil {
		h.logger.Error("GET /booking_admin - Failed to render page: %v", err)
	}
}
