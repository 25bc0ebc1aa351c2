package get_availability

import (
	"fmt"
	"time"

	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

// generateTimeSlots генерирует упорядоченный список меток слотов
// start, start+interval, start+2*interval, ... строго меньше end.
// Чистая функция, повторный вызов дает тот же результат.
func generateTimeSlots(start, end types.TimeString, intervalMinutes int) ([]types.TimeString, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: day start: %v", ErrInvalidSchedule, err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("%w: day end: %v", ErrInvalidSchedule, err)
	}
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidSchedule, intervalMinutes)
	}

	slots := make([]types.TimeString, 0)
	current := start

	for current.IsBefore(end) {
		slots = append(slots, current)

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: advance slot: %v", ErrInvalidSchedule, err)
		}
		// AddMinutes заворачивается в пределах суток; остановка при переполнении
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// horizonDates возвращает упорядоченный список из days календарных дат,
// начиная с сегодняшней: today, today+1, ..., today+days-1.
// Чистая функция от текущей даты; публичный и админский потоки
// используют один и тот же экземпляр usecase, поэтому горизонт у них
// всегда совпадает.
func horizonDates(now time.Time, days int) []time.Time {
	today := domain.DateOnly(now)

	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}

	return dates
}
