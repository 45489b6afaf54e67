package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"soundwave/internal/models/db_models"
	"soundwave/internal/models/request_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req request_models.CreateTransactionRequest) (*response_models.TransactionResponse, error)
	ListMyTransactions(ctx context.Context, userID uuid.UUID, q utils.PageQuery, status string) (utils.Page[response_models.TransactionResponse], error)
	ListTransactions(ctx context.Context, q utils.PageQuery, query request_models.TransactionListQuery) (utils.Page[response_models.TransactionResponse], error)
	GetTransaction(ctx context.Context, actor utils.Actor, id int64) (*response_models.TransactionResponse, error)
	RefundTransaction(ctx context.Context, actor utils.Actor, id int64, reason string) (*response_models.TransactionResponse, error)
}

type TransactionService struct {
	txnRepo  repositories.TransactionRepository
	planRepo repositories.PlanRepository
	log      *zap.Logger
	now      func() time.Time
}

func NewTransactionService(txnRepo repositories.TransactionRepository, planRepo repositories.PlanRepository, log *zap.Logger) TransactionServiceInterface {
	return &TransactionService{
		txnRepo:  txnRepo,
		planRepo: planRepo,
		log:      log.Named("transactions"),
		now:      time.Now,
	}
}

func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req request_models.CreateTransactionRequest) (*response_models.TransactionResponse, error) {
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := s.planRepo.FindActivePlan(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	method, err := s.planRepo.FindActivePaymentMethod(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if method == nil {
		return nil, utils.ErrPaymentMethodNotFound
	}

	now := s.now().UTC()
	sub := &db_models.Subscription{
		UserID:    userID,
		PlanID:    plan.ID,
		IsActive:  false,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, plan.DurationDays),
	}
	txn := &db_models.Transaction{
		UserID:            userID,
		Amount:            plan.Price,
		PaymentMethodID:   method.ID,
		TransactionStatus: db_models.TxnStatusPending,
		InvoiceData:       datatypes.JSON(`{}`),
		CreatedAt:         now,
	}

	if err := s.txnRepo.CreatePending(ctx, sub, txn); err != nil {
		s.log.Error("create pending transaction",
			zap.String("user_id", userID.String()),
			zap.String("plan_id", plan.ID.String()),
			zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.log.Info("pending transaction created",
		zap.Int64("transaction_id", txn.ID),
		zap.String("reference", txn.Reference()),
		zap.String("amount", txn.Amount.String()))

	res := toTransactionResponse(txn)
	return &res, nil
}

func (s *TransactionService) ListMyTransactions(ctx context.Context, userID uuid.UUID, q utils.PageQuery, status string) (utils.Page[response_models.TransactionResponse], error) {
	return s.list(ctx, q, repositories.TransactionFilter{UserID: &userID, Status: status})
}

func (s *TransactionService) ListTransactions(ctx context.Context, q utils.PageQuery, query request_models.TransactionListQuery) (utils.Page[response_models.TransactionResponse], error) {
	filter := repositories.TransactionFilter{Status: query.Status, Reference: query.Reference}
	if query.UserID != "" {
		id, err := uuid.Parse(query.UserID)
		if err != nil {
			return utils.Page[response_models.TransactionResponse]{}, utils.ErrAccountNotFound
		}
		filter.UserID = &id
	}
	return s.list(ctx, q, filter)
}

func (s *TransactionService) list(ctx context.Context, q utils.PageQuery, filter repositories.TransactionFilter) (utils.Page[response_models.TransactionResponse], error) {
	txns, total, err := s.txnRepo.List(ctx, q, filter)
	if err != nil {
		s.log.Error("list transactions", zap.Error(err))
		return utils.Page[response_models.TransactionResponse]{}, utils.ErrDatabaseError
	}
	return utils.NewPage(mapSlice(txns, toTransactionResponse), q, total), nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, actor utils.Actor, id int64) (*response_models.TransactionResponse, error) {
	txn, err := s.txnRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// Other users' transactions are reported as missing.
	if txn == nil || (!actor.IsAdmin() && txn.UserID != actor.UserID) {
		return nil, utils.ErrTransactionNotFound
	}
	res := toTransactionResponse(txn)
	return &res, nil
}

func (s *TransactionService) RefundTransaction(ctx context.Context, actor utils.Actor, id int64, reason string) (*response_models.TransactionResponse, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrForbidden
	}

	txn, err := s.txnRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	if txn.TransactionStatus != db_models.TxnStatusCompleted {
		return nil, utils.ErrInvalidTransactionState
	}

	now := s.now().UTC()
	invoice, err := mergeRefund(txn.InvoiceData, reason, now, actor.UserID)
	if err != nil {
		return nil, err
	}

	ok, err := s.txnRepo.Refund(ctx, txn.ID, invoice, txn.SubscriptionID, now)
	if err != nil {
		s.log.Error("refund transaction", zap.Int64("transaction_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if !ok {
		return nil, utils.ErrInvalidTransactionState
	}

	txn.TransactionStatus = db_models.TxnStatusRefunded
	txn.InvoiceData = invoice
	s.log.Info("transaction refunded",
		zap.Int64("transaction_id", id),
		zap.String("refunded_by", actor.UserID.String()))

	res := toTransactionResponse(txn)
	return &res, nil
}

// mergeRefund adds a refund entry to the existing invoice data, keeping
// whatever the gateway stored there.
func mergeRefund(existing datatypes.JSON, reason string, at time.Time, by uuid.UUID) (datatypes.JSON, error) {
	doc := map[string]interface{}{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &doc); err != nil || doc == nil {
			doc = map[string]interface{}{}
		}
	}
	doc["refund"] = map[string]interface{}{
		"reason":     reason,
		"refundedAt": at.Format(time.RFC3339),
		"refundedBy": by.String(),
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode invoice data: %w", err)
	}
	return datatypes.JSON(raw), nil
}
