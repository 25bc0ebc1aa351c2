package booking_page

import (
	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
)

// View данные страницы бронирования
type View struct {
	Flashes []auth.Flash
	Days    []domain.DayAvailability
}
