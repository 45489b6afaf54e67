package response_models

import (
	"time"

	"gorm.io/datatypes"
)

type FavoriteResponse struct {
	SongID    string        `json:"songId"`
	Song      *SongResponse `json:"song,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type FollowResponse struct {
	ArtistID  string          `json:"artistId"`
	Artist    *ArtistResponse `json:"artist,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type PlaylistResponse struct {
	ID          string                 `json:"id"`
	OwnerID     string                 `json:"ownerId"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	IsPublic    bool                   `json:"isPublic"`
	Songs       []PlaylistSongResponse `json:"songs,omitempty"`
	CreatedAt   int64                  `json:"createdAt"`
}

type PlaylistSongResponse struct {
	SongID   string    `json:"songId"`
	Title    string    `json:"title,omitempty"`
	Position int       `json:"position"`
	AddedAt  time.Time `json:"addedAt"`
}

type NotificationResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Type      string         `json:"type"`
	IsRead    bool           `json:"isRead"`
	Data      datatypes.JSON `json:"data,omitempty"`
	CreatedAt int64          `json:"createdAt"`
}

type RatingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	SongID    string `json:"songId"`
	Score     int    `json:"score"`
	Comment   string `json:"comment,omitempty"`
	UpdatedAt int64  `json:"updatedAt"`
}

type RatingSummaryResponse struct {
	SongID  string  `json:"songId"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
