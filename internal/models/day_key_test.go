package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Time
		expected DayKey
	}{
		{
			name:     "single digit day is zero padded",
			input:    time.Date(2015, 9, 4, 10, 0, 0, 0, time.UTC),
			expected: "Sep 04",
		},
		{
			name:     "two digit day",
			input:    time.Date(2015, 9, 30, 23, 59, 59, 0, time.UTC),
			expected: "Sep 30",
		},
		{
			name:     "uses the recorded offset, not UTC",
			input:    time.Date(2015, 9, 30, 23, 30, 0, 0, time.FixedZone("", -7*3600)),
			expected: "Sep 30",
		},
		{
			name:     "year is ignored",
			input:    time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "Jan 01",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DayKeyOf(tt.input))
		})
	}
}

func TestDateKeyOf(t *testing.T) {
	t.Parallel()

	input := time.Date(2015, 9, 30, 23, 30, 0, 0, time.FixedZone("", -7*3600))
	assert.Equal(t, DateKey("2015-09-30"), DateKeyOf(input))
}

func TestParseDayKey_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Sep 14", "Jan 01", "Feb 29", "Dec 31"} {
		t.Run(s, func(t *testing.T) {
			day, err := ParseDayKey(s)
			require.NoError(t, err)
			assert.Equal(t, DayKey(s), day)
		})
	}
}

func TestParseDayKey_Invalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"Sep 4",
		"Sep  4",
		"sep 14",
		"Sept 14",
		"Sep-14",
		"Sep 00",
		"Sep 31",
		"Feb 30",
		"Sep +1",
		"Sep xx",
	}

	for _, s := range invalid {
		t.Run(s, func(t *testing.T) {
			_, err := ParseDayKey(s)
			assert.Error(t, err, "day key %q should be invalid", s)
		})
	}
}

func TestMonthFromAbbrev(t *testing.T) {
	t.Parallel()

	month, ok := MonthFromAbbrev("Oct")
	assert.True(t, ok)
	assert.Equal(t, time.October, month)

	_, ok = MonthFromAbbrev("OCT")
	assert.False(t, ok, "abbreviations are case-sensitive")
}

func TestDaysIn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 29, DaysIn(time.February, 2016))
	assert.Equal(t, 28, DaysIn(time.February, 2015))
	assert.Equal(t, 30, DaysIn(time.September, 2015))
	assert.Equal(t, 31, DaysIn(time.December, 2015))
}
