package create_booking

import (
	"context"
	"net/http"

	createReservation "github.com/lc-autoel/LCA-BookingSite/internal/usecase/create_reservation"
)

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

// Sessions доступ к flash-сообщениям сессии
type Sessions interface {
	AddFlash(w http.ResponseWriter, r *http.Request, category, message string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
