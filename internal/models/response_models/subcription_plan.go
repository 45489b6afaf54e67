package response_models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"soundwave/pkg/utils"
)

type SubscriptionPlan struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	DurationDays int             `json:"durationDays"`
	Features     datatypes.JSON  `json:"features,omitempty"`
}

type PaymentMethod struct {
	ID   utils.SafeInt64 `json:"id"`
	Code string          `json:"code"`
	Name string          `json:"name"`
}

type SubscriptionResponse struct {
	ID         utils.SafeInt64   `json:"id"`
	PlanID     string            `json:"planId"`
	Plan       *SubscriptionPlan `json:"plan,omitempty"`
	IsActive   bool              `json:"isActive"`
	StartDate  time.Time         `json:"startDate"`
	EndDate    time.Time         `json:"endDate"`
	CanceledAt *time.Time        `json:"canceledAt,omitempty"`
}

type TransactionResponse struct {
	ID                   utils.SafeInt64  `json:"id"`
	UserID               string           `json:"userId"`
	SubscriptionID       *utils.SafeInt64 `json:"subscriptionId,omitempty"`
	Amount               decimal.Decimal  `json:"amount"`
	PaymentMethodID      utils.SafeInt64  `json:"paymentMethodId"`
	TransactionStatus    string           `json:"transactionStatus"`
	TransactionReference string           `json:"transactionReference"`
	InvoiceData          datatypes.JSON   `json:"invoiceData,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
}

// WebhookResponse is the gateway-facing acknowledgement body.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
