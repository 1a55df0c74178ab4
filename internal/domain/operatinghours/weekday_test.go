package operatinghours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	_, err = ParseWeekday("holiday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestWeekday_Labels(t *testing.T) {
	assert.Equal(t, "sunday", Sunday.String())
	assert.Equal(t, "Wed", Wednesday.Abbrev())
	assert.Equal(t, "Segunda-feira", Monday.LabelPT())
	assert.Equal(t, "", Weekday(9).Abbrev())
}

func TestWeekday_Next(t *testing.T) {
	assert.Equal(t, Sunday, Saturday.Next(1))
	assert.Equal(t, Saturday, Sunday.Next(6))
	assert.Equal(t, Monday, Monday.Next(7))
}

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 was a Monday.
	assert.Equal(t, Monday, WeekdayOf(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)))
}
