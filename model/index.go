package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SearchInput struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

type SearchResult struct {
	Count int         `json:"count"`
	Data  []SearchRow `json:"data"`
}

type SearchRow struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}
