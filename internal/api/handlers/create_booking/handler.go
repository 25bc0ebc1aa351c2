package create_booking

import (
	"errors"
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/api/handlers"
	createReservation "github.com/lc-autoel/LCA-BookingSite/internal/usecase/create_reservation"
)

// Пользователю все отказы показываются одинаково, внутренняя
// классификация (валидация / занятый слот / хранилище) остается в логах
const (
	msgBookingCreated = "Din booking blev gennemført!"
	msgBookingFailed  = "Noget gik galt. Prøv venligst igen."
)

type Handler struct {
	useCase  CreateReservationUseCase
	sessions Sessions
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, sessions Sessions, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /booking
// Любой исход — редирект обратно на форму: последующий GET идемпотентно
// показывает обновленную доступность
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /booking - Failed to parse form: %v", err)
		h.fail(w, r)
		return
	}

	req := FromForm(r)

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput),
			errors.Is(err, createReservation.ErrInvalidSelection),
			errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /booking - Validation failure: %v", err)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /booking - Slot already taken: selection=%q", req.Selection)

		default:
			h.logger.Error("POST /booking - Storage failure: %v", err)
		}

		h.fail(w, r)
		return
	}

	h.logger.Info("POST /booking - Reservation created: id=%d", result.ID)

	if err := h.sessions.AddFlash(w, r, handlers.FlashSuccess, msgBookingCreated); err != nil {
		h.logger.Warn("POST /booking - Failed to store flash: %v", err)
	}
	handlers.Redirect(w, r, "/booking")
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.AddFlash(w, r, handlers.FlashError, msgBookingFailed); err != nil {
		h.logger.Warn("POST /booking - Failed to store flash: %v", err)
	}
	handlers.Redirect(w, r, "/booking")
}
