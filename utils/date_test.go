package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		format   string
		expected string
	}{
		{"full", "2024-01-05T10:00:00", "full", "Friday January, 5, 2024 at 10:00AM"},
		{"medium", "2024-01-05T10:00:00", "medium", "Fri 01, 05, 2024 10:00AM"},
		{"full afternoon", "2019-05-21T21:30:00.000Z", "full", "Tuesday May, 21, 2019 at 9:30PM"},
		{"postgres timestamp", "2019-06-15 23:00:00", "medium", "Sat 06, 15, 2019 11:00PM"},
		{"midnight", "2024-03-10T00:05:00Z", "h:mm a", "12:05 AM"},
		{"custom pattern", "2024-03-10T13:05:09Z", "yy-MMM-dd HH:mm:ss", "24-Mar-10 13:05:09"},
		{"quoted literal", "2024-03-10T13:00:00Z", "h 'o''clock'", "1 o'clock"},
		{"unknown letters pass through", "2024-03-10T13:00:00Z", "Q y", "Q 2024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatDateTime(tc.value, tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatDateTime_invalid_value(t *testing.T) {
	_, err := FormatDateTime("next tuesday", "full")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	for _, value := range []string{
		"2035-04-01T20:00:00Z",
		"2035-04-01T20:00:00",
		"2035-04-01 20:00:00",
		"2035-04-01 20:00",
		"2035-04-01T20:00",
		" 2035-04-01T20:00:00+00:00 ",
	} {
		got, err := ParseDateTime(value)
		require.NoError(t, err, value)
		assert.True(t, want.Equal(got), "%s parsed as %s", value, got)
	}

	day, err := ParseDateTime("2035-04-01")
	require.NoError(t, err)
	assert.Equal(t, 0, day.Hour())
}
