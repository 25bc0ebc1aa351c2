package admin_bookings

import (
	"context"

	"github.com/lc-autoel/LCA-BookingSite/internal/service/reservations/models"
	getAvailability "github.com/lc-autoel/LCA-BookingSite/internal/usecase/get_availability"
)

// ReservationsService read-side сервис бронирований
type ReservationsService interface {
	ListAll(ctx context.Context) (*models.ReservationListView, error)
}

// Тот же экземпляр usecase, что и у публичной страницы: горизонт и
// сетка слотов обоих потоков обязаны совпадать
type GetAvailabilityUseCase interface {
	Execute(ctx context.Context) (*getAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
