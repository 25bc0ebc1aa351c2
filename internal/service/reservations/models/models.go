package models

import (
	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
)

// ReservationView представление бронирования для админского списка
type ReservationView struct {
	ID           int64
	Name         string
	Email        string
	LicensePlate string
	Phone        string
	TimeSlot     string
	Date         string // YYYY-MM-DD
	DayLabel     string // например "Monday, 05 May"
}

// ReservationListView список бронирований
type ReservationListView struct {
	Reservations []ReservationView
	Total        int
}

// FromDomainReservation конвертирует доменную модель в представление
func FromDomainReservation(res *domain.Reservation) ReservationView {
	return ReservationView{
		ID:           res.ID,
		Name:         res.Name,
		Email:        res.Email,
		LicensePlate: res.LicensePlate,
		Phone:        res.Phone,
		TimeSlot:     res.TimeSlot.String(),
		Date:         res.Date.Format(domain.DateFormat),
		DayLabel:     res.Date.Format(domain.DayLabelFormat),
	}
}

// FromDomainReservationList конвертирует список доменных моделей
func FromDomainReservationList(list []*domain.Reservation) *ReservationListView {
	views := make([]ReservationView, len(list))
	for i, res := range list {
		views[i] = FromDomainReservation(res)
	}
	return &ReservationListView{
		Reservations: views,
		Total:        len(views),
	}
}
