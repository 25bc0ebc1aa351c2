package reservations

import (
	"context"

	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
