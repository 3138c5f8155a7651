package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShows(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	shows := []Show{
		{ArtistID: 1, VenueID: 1, StartTime: now.Add(-time.Hour), Artist: Artist{Name: "Guns N Petals"}},
		{ArtistID: 2, VenueID: 1, StartTime: now, Artist: Artist{Name: "Matt Quevedo"}},
		{ArtistID: 3, VenueID: 1, StartTime: now.Add(time.Hour), Artist: Artist{Name: "The Wild Sax Band"}},
	}

	past, upcoming := SplitShows(shows, now)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "The Wild Sax Band", upcoming[0].ArtistName)
	assert.Equal(t, "2030-01-01T13:00:00Z", upcoming[0].StartTime)

	past, upcoming = SplitShows(nil, now)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
}
