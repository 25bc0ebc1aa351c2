package get_availability

import (
	"context"
	"time"

	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// Exists проверяет, занят ли слот (date, timeslot)
	Exists(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
