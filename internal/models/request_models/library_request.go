package request_models

type PlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	IsPublic    bool   `json:"isPublic"`
}

type AddPlaylistSongRequest struct {
	SongID string `json:"songId" binding:"required,uuid"`
}

type RatingRequest struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

type RecommendationQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}
