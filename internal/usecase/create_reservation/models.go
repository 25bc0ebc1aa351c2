package create_reservation

import (
	"time"

	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

// Request модель запроса на создание бронирования.
// Selection — закодированный выбор слота из формы: "<ISO date>|<HH:MM>".
type Request struct {
	Name         string
	Email        string
	LicensePlate string
	Phone        string
	Selection    string
}

// Response модель созданного бронирования
type Response struct {
	ID           int64
	Name         string
	Email        string
	LicensePlate string
	Phone        string
	TimeSlot     types.TimeString
	Date         time.Time
	CreatedAt    time.Time
}
