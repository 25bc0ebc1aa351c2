package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/lc-autoel/LCA-BookingSite/internal/infra/storage/reservation"
	"github.com/lc-autoel/LCA-BookingSite/internal/service/reservations/models"
)

// Service read-side сервис бронирований для админского просмотра.
// Бронирования из этого потока только читаются, запись идет
// исключительно через публичный intake.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ListAll возвращает все бронирования, отсортированные по дате
func (s *Service) ListAll(ctx context.Context) (*models.ReservationListView, error) {
	reservations, err := s.reservationRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// GetByID возвращает одно бронирование
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationView, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	view := models.FromDomainReservation(res)
	return &view, nil
}
