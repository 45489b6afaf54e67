package request_models

import "time"

type SongRequest struct {
	Title           string     `json:"title" binding:"required,max=200"`
	ArtistID        string     `json:"artistId" binding:"required,uuid"`
	AlbumName       string     `json:"albumName" binding:"max=200"`
	DurationSeconds int        `json:"durationSeconds" binding:"gte=0"`
	CoverURL        string     `json:"coverUrl" binding:"omitempty,url"`
	Genres          []string   `json:"genres" binding:"dive,required,max=50"`
	ReleaseDate     *time.Time `json:"releaseDate"`
}

type ArtistRequest struct {
	Name      string   `json:"name" binding:"required,max=200"`
	Bio       string   `json:"bio"`
	AvatarURL string   `json:"avatarUrl" binding:"omitempty,url"`
	Genres    []string `json:"genres" binding:"dive,required,max=50"`
}

type SongListQuery struct {
	Title    string `form:"title"`
	ArtistID string `form:"artistId" binding:"omitempty,uuid"`
	Genre    string `form:"genre"`
}

type ArtistListQuery struct {
	Name string `form:"name"`
}

type PlaybackQuery struct {
	Quality string `form:"quality" binding:"omitempty,oneof=hls 320 128"`
}
