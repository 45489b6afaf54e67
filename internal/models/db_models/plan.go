package db_models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	BaseModel
	Code         string `gorm:"uniqueIndex"` // e.g. "premium_monthly"
	Name         string
	Description  *string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency     string          `gorm:"size:3;default:'VND'"`
	DurationDays int             `gorm:"default:30"`
	IsActive     bool            `gorm:"default:true"`
	Features     datatypes.JSON  `gorm:"type:jsonb;default:'{}'"`
}

type PaymentMethod struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Code     string `gorm:"uniqueIndex"` // "sepay"
	Name     string
	IsActive bool `gorm:"default:true"`
}
