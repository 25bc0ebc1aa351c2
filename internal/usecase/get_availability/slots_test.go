package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

func TestGenerateTimeSlotsDefaultSchedule(t *testing.T) {
	slots, err := generateTimeSlots("08:00", "16:00", 60)
	require.NoError(t, err)

	expected := []types.TimeString{
		"08:00", "09:00", "10:00", "11:00",
		"12:00", "13:00", "14:00", "15:00",
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateTimeSlotsEndExcluded(t *testing.T) {
	slots, err := generateTimeSlots("08:00", "09:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "08:30"}, slots)
}

func TestGenerateTimeSlotsIsReinvocable(t *testing.T) {
	first, err := generateTimeSlots("08:00", "16:00", 60)
	require.NoError(t, err)

	second, err := generateTimeSlots("08:00", "16:00", 60)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTimeSlotsInvalidSchedule(t *testing.T) {
	_, err := generateTimeSlots("8am", "16:00", 60)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = generateTimeSlots("08:00", "16:00", 0)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestHorizonDates(t *testing.T) {
	now := time.Date(2024, 5, 1, 13, 37, 0, 0, time.UTC)

	dates := horizonDates(now, 5)
	require.Len(t, dates, 5)

	for i, expected := range []string{
		"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-05-05",
	} {
		assert.Equal(t, expected, dates[i].Format("2006-01-02"))
		// компонент времени отброшен
		assert.Equal(t, 0, dates[i].Hour())
	}
}
