package request_models

type CreateTransactionRequest struct {
	PlanID          string `json:"planId" binding:"required,uuid"`
	PaymentMethodID int64  `json:"paymentMethodId" binding:"required,gt=0"`
}

type RefundTransactionRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type TransactionListQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=Pending Completed Failed Refunded"`
	UserID    string `form:"userId" binding:"omitempty,uuid"`
	Reference string `form:"reference"`
}
