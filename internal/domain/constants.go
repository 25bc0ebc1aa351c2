package domain

// Default slot schedule: 08:00-16:00 with 60-minute slots over the
// next five days. The public and admin views always share one schedule.
const (
	DefaultDayStart            = "08:00"
	DefaultDayEnd              = "16:00"
	DefaultSlotIntervalMinutes = 60
	DefaultHorizonDays         = 5
)

// Field length limits for the public booking form
const (
	MaxNameLength         = 100
	MaxEmailLength        = 100
	MaxLicensePlateLength = 7
	MaxPhoneLength        = 11
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DayLabelFormat is the human-readable day heading used to group
	// availability, e.g. "Monday, 05 May".
	DayLabelFormat = "Monday, 02 Jan"
)

// SelectionSeparator separates date and time in the encoded form value
// "<ISO date>|<HH:MM>" submitted by the booking form.
const SelectionSeparator = "|"
