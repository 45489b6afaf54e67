package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID uuid.UUID      `gorm:"type:uuid;index"`
	Title  string
	Body   string         `gorm:"type:text"`
	Type   string         `gorm:"size:32;default:'system'"`
	IsRead bool           `gorm:"default:false;index"`
	Data   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
