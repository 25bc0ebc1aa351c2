package booking_page

import (
	"context"
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
	getAvailability "github.com/lc-autoel/LCA-BookingSite/internal/usecase/get_availability"
)

type GetAvailabilityUseCase interface {
	Execute(ctx context.Context) (*getAvailability.Response, error)
}

// Sessions доступ к flash-сообщениям сессии
type Sessions interface {
	Flashes(w http.ResponseWriter, r *http.Request) []auth.Flash
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
