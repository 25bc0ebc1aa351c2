package create_reservation

import (
	"context"

	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// Create сохраняет бронирование; занятый слот возвращает ошибку уникальности
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
