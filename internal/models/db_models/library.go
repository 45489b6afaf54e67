package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorite_user_song"`
	SongID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorite_user_song;index"`
	CreatedAt time.Time

	Song *Song `gorm:"foreignKey:SongID"`
}

type Follow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follow_user_artist"`
	ArtistID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follow_user_artist;index"`
	CreatedAt time.Time

	Artist *Artist `gorm:"foreignKey:ArtistID"`
}

type Playlist struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	IsPublic    bool `gorm:"default:false"`

	Songs []PlaylistSong `gorm:"foreignKey:PlaylistID"`
}

type PlaylistSong struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PlaylistID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_playlist_song"`
	SongID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_playlist_song"`
	Position   int
	AddedAt    time.Time `gorm:"autoCreateTime"`

	Song *Song `gorm:"foreignKey:SongID"`
}
