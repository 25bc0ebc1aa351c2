package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 5, 1, 14, 45, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:45"), ts)
}

func TestTimeStringOrdering(t *testing.T) {
	early := TimeString("08:00")
	late := TimeString("16:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("08:00")

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), next)

	next, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), next)

	// сутки заворачиваются без переноса даты
	late := TimeString("23:30")
	next, err = late.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), next)
}

func TestTimeStringValidate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.Error(t, TimeString("").Validate())
	assert.Error(t, TimeString("24:00").Validate())
}
