package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is embedded by uuid-keyed entities. Timestamps are unix seconds.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// AllModels lists every table in foreign-key order for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Genre{},
		&Artist{},
		&Song{},
		&Asset{},
		&Rendition{},
		&SubscriptionPlan{},
		&PaymentMethod{},
		&Subscription{},
		&Transaction{},
		&Favorite{},
		&Follow{},
		&Playlist{},
		&PlaylistSong{},
		&Notification{},
		&Rating{},
	}
}
