package domain

import (
	"fmt"
	"time"

	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

// SlotSchedule describes how bookable slots are laid out: the working
// day boundaries, the slot interval and the forward booking horizon.
type SlotSchedule struct {
	DayStart        types.TimeString
	DayEnd          types.TimeString
	IntervalMinutes int
	HorizonDays     int
}

// DefaultSlotSchedule returns the stock schedule (08:00-16:00, 60-minute
// slots, five-day horizon).
func DefaultSlotSchedule() SlotSchedule {
	return SlotSchedule{
		DayStart:        types.TimeString(DefaultDayStart),
		DayEnd:          types.TimeString(DefaultDayEnd),
		IntervalMinutes: DefaultSlotIntervalMinutes,
		HorizonDays:     DefaultHorizonDays,
	}
}

// OpenSlot is one still-bookable (date, time) pair. Ephemeral, never persisted.
type OpenSlot struct {
	Date     time.Time
	TimeSlot types.TimeString
}

// FormValue encodes the slot as the booking form submits it: "<ISO date>|<HH:MM>".
func (s OpenSlot) FormValue() string {
	return fmt.Sprintf("%s%s%s", s.Date.Format(DateFormat), SelectionSeparator, s.TimeSlot)
}

// DayAvailability groups the open slots of one horizon date under its
// display label. Days without open slots are never materialized.
type DayAvailability struct {
	Date  time.Time
	Label string // e.g. "Monday, 05 May"
	Slots []OpenSlot
}
