package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
	reservationRepo "github.com/lc-autoel/LCA-BookingSite/internal/infra/storage/reservation"
)

// UseCase use case создания бронирования из публичной формы
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет создание бронирования.
// Шаги: валидация полей, разбор строки выбора слота, сохранение.
// Проверка доступности и вставка — одна атомарная операция за счет
// уникального индекса (date, timeslot) в хранилище.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: selection=%q, plate_len=%d", req.Selection, len(req.LicensePlate))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	date, slot, err := parseSelection(req.Selection)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to parse selection: %v", err)
		return nil, err
	}

	res := &domain.Reservation{
		Name:         req.Name,
		Email:        req.Email,
		LicensePlate: req.LicensePlate,
		Phone:        req.Phone,
		TimeSlot:     slot,
		Date:         date,
	}

	created, err := uc.reservationRepo.Create(ctx, res)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: slot %s %s already taken",
				date.Format(domain.DateFormat), slot)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d for %s %s",
		created.ID, created.Date.Format(domain.DateFormat), created.TimeSlot)

	return &Response{
		ID:           created.ID,
		Name:         created.Name,
		Email:        created.Email,
		LicensePlate: created.LicensePlate,
		Phone:        created.Phone,
		TimeSlot:     created.TimeSlot,
		Date:         created.Date,
		CreatedAt:    created.CreatedAt,
	}, nil
}
