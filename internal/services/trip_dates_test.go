package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ait/pkg/utils"
)

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantDays  int
		wantField string
		wantMsg   string
	}{
		{name: "single day", start: "2026-01-01", end: "2026-01-01", wantDays: 1},
		{name: "three days", start: "2026-01-01", end: "2026-01-03", wantDays: 3},
		{name: "across a month and leap day", start: "2028-02-27", end: "2028-03-01", wantDays: 4},
		{name: "surrounding spaces", start: " 2026-05-10 ", end: "2026-05-11\n", wantDays: 2},
		{name: "bad start", start: "01/01/2026", end: "2026-01-03", wantField: "start_date", wantMsg: msgInvalidDateFormat},
		{name: "bad end", start: "2026-01-01", end: "", wantField: "end_date", wantMsg: msgInvalidDateFormat},
		{name: "impossible date", start: "2026-02-30", end: "2026-03-01", wantField: "start_date", wantMsg: msgInvalidDateFormat},
		{name: "inverted", start: "2026-01-03", end: "2026-01-01", wantField: "end_date", wantMsg: msgEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ValidateDateRange(tt.start, tt.end)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, utils.ErrValidation)

				var verr *utils.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Equal(t, tt.wantMsg, verr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, r.TotalDays)
			assert.GreaterOrEqual(t, r.TotalDays, 1)
			assert.True(t, r.End.Equal(r.Day(r.TotalDays-1)))
		})
	}
}

func TestValidateDateRange_CenturiesApart(t *testing.T) {
	r, err := ValidateDateRange("0001-01-01", "9999-12-31")
	require.NoError(t, err)
	assert.Equal(t, 3652059, r.TotalDays)

	r, err = ValidateDateRange("2026-01-01", "2400-01-01")
	require.NoError(t, err)
	assert.Equal(t, 136601, r.TotalDays)
}

func TestValidateTripLength(t *testing.T) {
	month, err := ValidateDateRange("2026-01-01", "2026-01-30")
	require.NoError(t, err)
	longer, err := ValidateDateRange("2026-01-01", "2026-01-31")
	require.NoError(t, err)

	assert.NoError(t, ValidateTripLength(month, DefaultMaxTripDays))
	assert.NoError(t, ValidateTripLength(longer, 0), "non-positive limit disables the check")

	err = ValidateTripLength(longer, DefaultMaxTripDays)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "Trips can be at most 30 days long.", utils.UserMessage(err))
}
