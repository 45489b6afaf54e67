package response_models

import "time"

type ArtistResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Bio       string   `json:"bio,omitempty"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Genres    []string `json:"genres"`
}

type SongResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	ArtistID        string          `json:"artistId"`
	Artist          *ArtistResponse `json:"artist,omitempty"`
	AlbumName       string          `json:"albumName,omitempty"`
	DurationSeconds int             `json:"durationSeconds"`
	CoverURL        string          `json:"coverUrl,omitempty"`
	Genres          []string        `json:"genres"`
	PlayCount       int64           `json:"playCount"`
	ReleaseDate     *time.Time      `json:"releaseDate,omitempty"`
}

type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// PlaybackResponse is the public playback contract. OK=false carries a reason
// of "not_found" or "no_rendition".
type PlaybackResponse struct {
	OK      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
	URL     string `json:"url,omitempty"`
	Type    string `json:"type,omitempty"`
	Mime    string `json:"mime,omitempty"`
	Quality string `json:"quality,omitempty"`
}

type RecommendationResponse struct {
	SongID    string   `json:"songId"`
	Title     string   `json:"title"`
	ArtistID  string   `json:"artistId"`
	CoverURL  string   `json:"coverUrl,omitempty"`
	Genres    []string `json:"genres"`
	PlayCount int64    `json:"playCount"`
	AvgRating float64  `json:"avgRating"`
	Score     float64  `json:"score"`
}
