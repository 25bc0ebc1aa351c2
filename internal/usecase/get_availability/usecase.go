package get_availability

import (
	"context"
	"fmt"

	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
)

// UseCase use case расчета доступности слотов по дням горизонта.
// Результат пересчитывается заново на каждый запрос, без кеширования.
type UseCase struct {
	reservationRepo ReservationRepository
	schedule        domain.SlotSchedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	schedule domain.SlotSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет расчет доступности.
// Для каждой пары (день, слот) делается независимая индексированная
// проверка существования бронирования; дни без свободных слотов
// полностью исключаются из результата.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	slots, err := generateTimeSlots(uc.schedule.DayStart, uc.schedule.DayEnd, uc.schedule.IntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate time slots: %v", err)
		return nil, err
	}

	days := horizonDates(now, uc.schedule.HorizonDays)

	result := make([]domain.DayAvailability, 0, len(days))

	for _, day := range days {
		open := make([]domain.OpenSlot, 0, len(slots))

		for _, slot := range slots {
			taken, err := uc.reservationRepo.Exists(ctx, day, slot)
			if err != nil {
				uc.logger.Error("GetAvailability: failed to check slot %s %s: %v",
					day.Format(domain.DateFormat), slot, err)
				return nil, fmt.Errorf("%w: check slot: %v", ErrInternal, err)
			}

			if !taken {
				open = append(open, domain.OpenSlot{Date: day, TimeSlot: slot})
			}
		}

		// День без свободных слотов не попадает в ответ
		if len(open) > 0 {
			result = append(result, domain.DayAvailability{
				Date:  day,
				Label: day.Format(domain.DayLabelFormat),
				Slots: open,
			})
		}
	}

	uc.logger.Info("GetAvailability: %d of %d horizon days have open slots", len(result), len(days))

	return &Response{Days: result}, nil
}
