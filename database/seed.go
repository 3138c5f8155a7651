package database

import (
	"errors"
	"fmt"
	"time"

	"fyyur/helper"
	"fyyur/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mustParseTime panics on a malformed literal.
func mustParseTime(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(fmt.Sprintf("seed: bad start time %q: %v", value, err))
	}
	return t
}

var seedVenues = []model.Venue{
	{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             model.Genres{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		WebsiteLink:        "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		Genres:       model.Genres{"Classical", "R&B", "Hip-Hop"},
		WebsiteLink:  "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		Genres:       model.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
		WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
	},
}

var seedArtists = []model.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             model.Genres{"Rock n Roll"},
		WebsiteLink:        "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       model.Genres{"Jazz"},
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		Genres:    model.Genres{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
	},
}

// seedShows references venues and artists by name.
var seedShows = []struct {
	Venue     string
	Artist    string
	StartTime time.Time
}{
	{"The Musical Hop", "Guns N Petals", mustParseTime("2019-05-21T21:30:00")},
	{"Park Square Live Music & Coffee", "Matt Quevedo", mustParseTime("2019-06-15T23:00:00")},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", mustParseTime("2035-04-01T20:00:00")},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", mustParseTime("2035-04-08T20:00:00")},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", mustParseTime("2035-04-15T20:00:00")},
}

// SeedData inserts the sample listings. Rows are matched by name, so running
// it twice leaves the data unchanged.
func SeedData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		venueIDs := map[string]uint{}
		for _, venue := range seedVenues {
			venue := venue
			if err := seedOne(tx, &venue, venue.Name); err != nil {
				return fmt.Errorf("seed venue %q: %w", venue.Name, err)
			}
			venueIDs[venue.Name] = venue.ID
		}

		artistIDs := map[string]uint{}
		for _, artist := range seedArtists {
			artist := artist
			if err := seedOne(tx, &artist, artist.Name); err != nil {
				return fmt.Errorf("seed artist %q: %w", artist.Name, err)
			}
			artistIDs[artist.Name] = artist.ID
		}

		for _, s := range seedShows {
			show := model.Show{
				VenueID:   venueIDs[s.Venue],
				ArtistID:  artistIDs[s.Artist],
				StartTime: s.StartTime,
			}
			err := tx.Omit(clause.Associations).
				Where("venue_id = ? AND artist_id = ? AND start_time = ?", show.VenueID, show.ArtistID, show.StartTime).
				FirstOrCreate(&show).Error
			if err != nil {
				return fmt.Errorf("seed show %s @ %s: %w", s.Artist, s.Venue, err)
			}
		}

		log.Info().Int("venues", len(venueIDs)).Int("artists", len(artistIDs)).Msg("Seed data loaded")
		return nil
	})
}

func seedOne[T model.Venue | model.Artist](tx *gorm.DB, row *T, name string) error {
	err := tx.Where("name = ?", name).First(row).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	slugValue, err := helper.GenerateUniqueSlug(tx, row, name, 0)
	if err != nil {
		return err
	}
	switch r := any(row).(type) {
	case *model.Venue:
		r.Slug = slugValue
	case *model.Artist:
		r.Slug = slugValue
	}
	return tx.Omit(clause.Associations).Create(row).Error
}
