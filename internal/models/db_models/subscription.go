package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is created inactive alongside its Pending transaction and
// activated by the payment webhook.
type Subscription struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	PlanID     uuid.UUID `gorm:"type:uuid;index"`
	IsActive   bool      `gorm:"default:false;index"`
	StartDate  time.Time
	EndDate    time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Plan *SubscriptionPlan `gorm:"foreignKey:PlanID"`
}
