package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDayHeader(t *testing.T) {
	d, err := ParseDate("2026-01-01")
	require.NoError(t, err)

	assert.Equal(t, "Day 1 - Thursday, 01 January 2026", FormatDayHeader(1, d))
	assert.Equal(t, "", FormatLongDate(time.Time{}))
}

func TestDaysInclusive(t *testing.T) {
	start := time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysInclusive(start, start))
	assert.Equal(t, 4, DaysInclusive(start, start.AddDate(0, 0, 3)))
	// wall-clock components are ignored
	assert.Equal(t, 2, DaysInclusive(start.Add(23*time.Hour), start.AddDate(0, 0, 1)))
}

func TestDaysInclusive_BeyondDurationRange(t *testing.T) {
	first := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3652059, DaysInclusive(first, last))
	assert.Equal(t, 136601, DaysInclusive(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC)))
}
