package model

import "time"

type Show struct {
	DTO
	ArtistID  uint      `gorm:"index;not null" json:"artist_id"`
	VenueID   uint      `gorm:"index;not null" json:"venue_id"`
	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	Artist    Artist    `gorm:"foreignKey:ArtistID" json:"-"`
	Venue     Venue     `gorm:"foreignKey:VenueID" json:"-"`
}

type CreateShowInput struct {
	ArtistID  uint   `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
	VenueID   uint   `json:"venue_id" form:"venue_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
}

// ShowRow is a show joined with its artist and venue for display.
// StartTime is kept as an RFC 3339 string so templates can pipe it
// through the datetime filter.
type ShowRow struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	ArtistState     string `json:"artist_state"`
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
	VenueState      string `json:"venue_state"`
	StartTime       string `json:"start_time"`
}

func NewShowRow(show Show) ShowRow {
	return ShowRow{
		ArtistID:        show.ArtistID,
		ArtistName:      show.Artist.Name,
		ArtistImageLink: show.Artist.ImageLink,
		ArtistState:     show.Artist.State,
		VenueID:         show.VenueID,
		VenueName:       show.Venue.Name,
		VenueImageLink:  show.Venue.ImageLink,
		VenueState:      show.Venue.State,
		StartTime:       show.StartTime.Format(time.RFC3339),
	}
}

// SplitShows partitions shows into past and upcoming relative to now.
func SplitShows(shows []Show, now time.Time) (past, upcoming []ShowRow) {
	past, upcoming = []ShowRow{}, []ShowRow{}
	for _, show := range shows {
		if show.StartTime.After(now) {
			upcoming = append(upcoming, NewShowRow(show))
		} else {
			past = append(past, NewShowRow(show))
		}
	}
	return past, upcoming
}
