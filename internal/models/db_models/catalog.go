package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Genre struct {
	BaseModel
	Name string `gorm:"uniqueIndex"`
	Icon string
}

type Artist struct {
	BaseModel
	Name      string `gorm:"index"`
	Bio       string `gorm:"type:text"`
	AvatarURL string
	Genres    pq.StringArray `gorm:"type:text[]"`

	Songs []Song `gorm:"foreignKey:ArtistID"`
}

type Song struct {
	BaseModel
	Title           string    `gorm:"index"`
	ArtistID        uuid.UUID `gorm:"type:uuid;index"`
	AlbumName       string
	DurationSeconds int
	CoverURL        string
	Genres          pq.StringArray `gorm:"type:text[]"`
	PlayCount       int64          `gorm:"default:0"`
	ReleaseDate     *time.Time

	Artist *Artist `gorm:"foreignKey:ArtistID"`
	Asset  *Asset  `gorm:"foreignKey:SongID"`
}
