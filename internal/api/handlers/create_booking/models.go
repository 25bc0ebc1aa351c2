package create_booking

import (
	"net/http"

	createReservation "github.com/lc-autoel/LCA-BookingSite/internal/usecase/create_reservation"
)

// FromForm собирает запрос use case из полей публичной формы.
// Имена полей (nummerplade, telefon, datetime_slot) — часть публичного
// контракта формы.
func FromForm(r *http.Request) *createReservation.Request {
	return &createReservation.Request{
		Name:         r.FormValue("name"),
		Email:        r.FormValue("email"),
		LicensePlate: r.FormValue("nummerplade"),
		Phone:        r.FormValue("telefon"),
		Selection:    r.FormValue("datetime_slot"),
	}
}
