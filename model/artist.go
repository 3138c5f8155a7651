package model

type Artist struct {
	DTO
	Name               string `gorm:"size:120;not null" validate:"required,max=120" json:"name"`
	Slug               string `gorm:"size:160;uniqueIndex" json:"slug"`
	City               string `gorm:"size:120" validate:"max=120" json:"city"`
	State              string `gorm:"size:120" validate:"max=120" json:"state"`
	Phone              string `gorm:"size:120" validate:"max=120" json:"phone"`
	Genres             Genres `json:"genres"`
	ImageLink          string `gorm:"size:500" validate:"omitempty,url,max=500" json:"image_link"`
	FacebookLink       string `gorm:"size:120" validate:"omitempty,url,max=120" json:"facebook_link"`
	WebsiteLink        string `gorm:"size:120" validate:"omitempty,url,max=120" json:"website_link"`
	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `gorm:"type:text" json:"seeking_description"`
	Shows              []Show `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type CreateArtistInput struct {
	Name               string `json:"name" form:"name" validate:"required,max=120"`
	City               string `json:"city" form:"city" validate:"required,max=120"`
	State              string `json:"state" form:"state" validate:"omitempty,max=120"`
	Phone              string `json:"phone" form:"phone" validate:"omitempty,max=120"`
	Genres             Genres `json:"genres" form:"genres"`
	ImageLink          string `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string `json:"website_link" form:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       bool   `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string `json:"seeking_description" form:"seeking_description"`
}

type ArtistRow struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ArtistDetail struct {
	Artist
	PastShows          []ShowRow `json:"past_shows"`
	UpcomingShows      []ShowRow `json:"upcoming_shows"`
	PastShowsCount     int       `json:"past_shows_count"`
	UpcomingShowsCount int       `json:"upcoming_shows_count"`
}
