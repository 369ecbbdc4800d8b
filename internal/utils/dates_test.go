package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := ParseDate("2024-02-15")
		assert.NoError(t, err)
		assert.Equal(t, Date{Year: 2024, Month: 2, Day: 15}, d)
	})

	t.Run("WrongSeparatorCount", func(t *testing.T) {
		_, err := ParseDate("2024/02/15")
		assert.Error(t, err)
	})

	t.Run("NonNumericMonth", func(t *testing.T) {
		_, err := ParseDate("2024-xx-15")
		assert.Error(t, err)
	})

	t.Run("MonthOutOfRange", func(t *testing.T) {
		_, err := ParseDate("2024-13-01")
		assert.Error(t, err)
	})

	t.Run("DayOutOfRange", func(t *testing.T) {
		_, err := ParseDate("2024-01-32")
		assert.Error(t, err)
	})
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2024, Month: 3, Day: 5}
	assert.Equal(t, "2024-03-05", d.String())
}

func TestDateBefore(t *testing.T) {
	assert.True(t, Date{2023, 12, 31}.Before(Date{2024, 1, 1}))
	assert.True(t, Date{2024, 1, 31}.Before(Date{2024, 2, 1}))
	assert.True(t, Date{2024, 2, 1}.Before(Date{2024, 2, 2}))
	assert.False(t, Date{2024, 2, 2}.Before(Date{2024, 2, 2}))
	assert.False(t, Date{2024, 2, 3}.Before(Date{2024, 2, 2}))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, 1))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2)) // century, not a leap year
	assert.Equal(t, 29, DaysInMonth(2000, 2)) // divisible by 400
	assert.Equal(t, 30, DaysInMonth(2024, 4))
	assert.Equal(t, 30, DaysInMonth(2024, 11))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}
