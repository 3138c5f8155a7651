package database

import (
	"testing"

	"fyyur/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedData(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedData(db))
	require.NoError(t, SeedData(db))

	var venues, artists, shows int64
	require.NoError(t, db.Model(&model.Venue{}).Count(&venues).Error)
	require.NoError(t, db.Model(&model.Artist{}).Count(&artists).Error)
	require.NoError(t, db.Model(&model.Show{}).Count(&shows).Error)
	assert.EqualValues(t, 3, venues)
	assert.EqualValues(t, 3, artists)
	assert.EqualValues(t, 5, shows)

	var venue model.Venue
	require.NoError(t, db.Where("name = ?", "Park Square Live Music & Coffee").First(&venue).Error)
	assert.Equal(t, "park-square-live-music-and-coffee", venue.Slug)
	assert.Equal(t, model.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"}, venue.Genres)

	var parkSquareShows int64
	require.NoError(t, db.Model(&model.Show{}).Where("venue_id = ?", venue.ID).Count(&parkSquareShows).Error)
	assert.EqualValues(t, 4, parkSquareShows)

	var zero int64
	require.NoError(t, db.Model(&model.Show{}).Where("start_time < ?", mustParseTime("2000-01-01T00:00:00")).Count(&zero).Error)
	assert.Zero(t, zero)
}

func TestMustParseTime(t *testing.T) {
	assert.Equal(t, 2035, mustParseTime("2035-04-01T20:00:00").Year())
	assert.Panics(t, func() { mustParseTime("2035-04-01 8pm") })

	for _, s := range seedShows {
		assert.False(t, s.StartTime.IsZero(), "%s @ %s", s.Artist, s.Venue)
	}
}
