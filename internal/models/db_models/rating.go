package db_models

import "github.com/google/uuid"

type Rating struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_song"`
	SongID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_song;index"`
	Score   int       `gorm:"type:int;not null;check:score >= 1 AND score <= 5"`
	Comment string    `gorm:"type:text"`
}
