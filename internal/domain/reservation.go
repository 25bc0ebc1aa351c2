package domain

import (
	"time"

	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

// Reservation represents one confirmed workshop appointment.
// Reservations are append-only: they are never updated or deleted,
// there is no cancellation flow.
type Reservation struct {
	ID           int64
	Name         string
	Email        string
	LicensePlate string
	Phone        string
	TimeSlot     types.TimeString
	Date         time.Time // calendar date, no time component

	CreatedAt time.Time
}

// Occupies reports whether the reservation takes the given (date, slot) pair.
func (r *Reservation) Occupies(date time.Time, slot types.TimeString) bool {
	return r.TimeSlot == slot && SameDate(r.Date, date)
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly strips the time component, keeping the calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
