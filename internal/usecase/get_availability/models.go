package get_availability

import (
	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
)

// Response модель ответа с доступными слотами, сгруппированными по дням.
// Порядок дней совпадает с порядком горизонта бронирования, а не с
// алфавитным порядком меток.
type Response struct {
	Days []domain.DayAvailability
}

// IsEmpty проверяет, что в горизонте нет ни одного свободного слота
func (r *Response) IsEmpty() bool {
	return len(r.Days) == 0
}
