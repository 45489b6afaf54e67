package db_models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "Pending"
	TxnStatusCompleted TransactionStatus = "Completed"
	TxnStatusFailed    TransactionStatus = "Failed"
	TxnStatusRefunded  TransactionStatus = "Refunded"
)

type Transaction struct {
	ID                   int64             `gorm:"primaryKey;autoIncrement"`
	UserID               uuid.UUID         `gorm:"type:uuid;index"`
	SubscriptionID       *int64            `gorm:"index"`
	Amount               decimal.Decimal   `gorm:"type:numeric(12,2)"`
	PaymentMethodID      int64             `gorm:"index"`
	TransactionStatus    TransactionStatus `gorm:"size:16;index;default:'Pending'"`
	TransactionReference *string           `gorm:"uniqueIndex"`
	InvoiceData          datatypes.JSON    `gorm:"type:jsonb;default:'{}'"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Subscription  *Subscription  `gorm:"foreignKey:SubscriptionID"`
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID"`
}

// ReferenceFor builds the bank-transfer memo TXN{id}_{createdAtMillis}.
func ReferenceFor(id int64, createdAt time.Time) string {
	return fmt.Sprintf("TXN%d_%d", id, createdAt.UnixMilli())
}

func (t *Transaction) Reference() string {
	if t.TransactionReference == nil {
		return ""
	}
	return *t.TransactionReference
}
