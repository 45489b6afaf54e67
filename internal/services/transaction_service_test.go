package services

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"soundwave/internal/models/db_models"
	"soundwave/internal/models/request_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

func newTestTransactionService(txnRepo *MockTransactionRepository, planRepo *MockPlanRepository, now time.Time) *TransactionService {
	svc := NewTransactionService(txnRepo, planRepo, testLogger).(*TransactionService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	plan := &db_models.SubscriptionPlan{Code: "premium_monthly", Price: decimal.NewFromInt(50000), DurationDays: 30}
	plan.ID = planID

	t.Run("creates pending transaction with reference", func(t *testing.T) {
		txnRepo := new(MockTransactionRepository)
		planRepo := new(MockPlanRepository)
		planRepo.On("FindActivePlan", ctx, planID).Return(plan, nil)
		planRepo.On("FindActivePaymentMethod", ctx, int64(1)).Return(&db_models.PaymentMethod{ID: 1, Code: "sepay"}, nil)

		txnRepo.On("CreatePending", ctx, mock.AnythingOfType("*db_models.Subscription"), mock.AnythingOfType("*db_models.Transaction")).
			Run(func(args mock.Arguments) {
				sub := args.Get(1).(*db_models.Subscription)
				txn := args.Get(2).(*db_models.Transaction)
				sub.ID = 7
				txn.ID = 42
				txn.SubscriptionID = &sub.ID
				ref := db_models.ReferenceFor(txn.ID, txn.CreatedAt)
				txn.TransactionReference = &ref
			}).
			Return(nil)

		svc := newTestTransactionService(txnRepo, planRepo, now)
		res, err := svc.CreateTransaction(ctx, userID, request_models.CreateTransactionRequest{PlanID: planID.String(), PaymentMethodID: 1})

		require.NoError(t, err)
		assert.Equal(t, "TXN42_1705312800000", res.TransactionReference)
		assert.Equal(t, "Pending", res.TransactionStatus)
		assert.True(t, decimal.NewFromInt(50000).Equal(res.Amount))
		require.NotNil(t, res.SubscriptionID)
		assert.Equal(t, utils.SafeInt64(7), *res.SubscriptionID)

		sub := txnRepo.Calls[0].Arguments.Get(1).(*db_models.Subscription)
		assert.False(t, sub.IsActive)
		assert.Equal(t, now.AddDate(0, 0, 30), sub.EndDate)
	})

	t.Run("inactive plan", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		planRepo.On("FindActivePlan", ctx, planID).Return(nil, nil)

		svc := newTestTransactionService(new(MockTransactionRepository), planRepo, now)
		_, err := svc.CreateTransaction(ctx, userID, request_models.CreateTransactionRequest{PlanID: planID.String(), PaymentMethodID: 1})

		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})

	t.Run("inactive payment method", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		planRepo.On("FindActivePlan", ctx, planID).Return(plan, nil)
		planRepo.On("FindActivePaymentMethod", ctx, int64(9)).Return(nil, nil)

		svc := newTestTransactionService(new(MockTransactionRepository), planRepo, now)
		_, err := svc.CreateTransaction(ctx, userID, request_models.CreateTransactionRequest{PlanID: planID.String(), PaymentMethodID: 9})

		assert.ErrorIs(t, err, utils.ErrPaymentMethodNotFound)
	})
}

func TestTransactionService_GetTransaction(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	txn := &db_models.Transaction{ID: 5, UserID: owner, TransactionStatus: db_models.TxnStatusPending}

	repo := new(MockTransactionRepository)
	repo.On("FindByID", ctx, int64(5)).Return(txn, nil)
	svc := newTestTransactionService(repo, new(MockPlanRepository), time.Now())

	res, err := svc.GetTransaction(ctx, utils.Actor{UserID: owner, Role: utils.RoleUser}, 5)
	require.NoError(t, err)
	assert.Equal(t, utils.SafeInt64(5), res.ID)

	_, err = svc.GetTransaction(ctx, utils.Actor{UserID: uuid.New(), Role: utils.RoleUser}, 5)
	assert.ErrorIs(t, err, utils.ErrTransactionNotFound)

	_, err = svc.GetTransaction(ctx, utils.Actor{UserID: uuid.New(), Role: utils.RoleAdmin}, 5)
	assert.NoError(t, err)
}

func TestTransactionService_ListMyTransactions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	q := utils.PageQuery{Page: 1, Limit: 20}

	repo := new(MockTransactionRepository)
	repo.On("List", ctx, q, repositories.TransactionFilter{UserID: &userID, Status: "Completed"}).
		Return([]db_models.Transaction{{ID: 1}, {ID: 2}}, int64(2), nil)

	svc := newTestTransactionService(repo, new(MockPlanRepository), time.Now())
	page, err := svc.ListMyTransactions(ctx, userID, q, "Completed")

	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

func TestTransactionService_RefundTransaction(t *testing.T) {
	ctx := context.Background()
	admin := utils.Actor{UserID: uuid.New(), Role: utils.RoleAdmin}
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	subID := int64(7)

	t.Run("completed transaction is refunded and invoice merged", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByID", ctx, int64(42)).Return(&db_models.Transaction{
			ID:                42,
			SubscriptionID:    &subID,
			TransactionStatus: db_models.TxnStatusCompleted,
			InvoiceData:       datatypes.JSON(`{"gateway":"sepay","amount":"50000"}`),
		}, nil)
		repo.On("Refund", ctx, int64(42), mock.Anything, &subID, now).Return(true, nil)

		svc := newTestTransactionService(repo, new(MockPlanRepository), now)
		res, err := svc.RefundTransaction(ctx, admin, 42, "duplicate payment")

		require.NoError(t, err)
		assert.Equal(t, "Refunded", res.TransactionStatus)

		var invoice map[string]interface{}
		require.NoError(t, json.Unmarshal(res.InvoiceData, &invoice))
		assert.Equal(t, "sepay", invoice["gateway"])
		refund := invoice["refund"].(map[string]interface{})
		assert.Equal(t, "duplicate payment", refund["reason"])
		assert.Equal(t, "2024-02-01T00:00:00Z", refund["refundedAt"])
		assert.Equal(t, admin.UserID.String(), refund["refundedBy"])
	})

	t.Run("pending transaction cannot be refunded", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByID", ctx, int64(42)).Return(&db_models.Transaction{ID: 42, TransactionStatus: db_models.TxnStatusPending}, nil)

		svc := newTestTransactionService(repo, new(MockPlanRepository), now)
		_, err := svc.RefundTransaction(ctx, admin, 42, "x")

		assert.ErrorIs(t, err, utils.ErrInvalidTransactionState)
		repo.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent refund loses", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByID", ctx, int64(42)).Return(&db_models.Transaction{ID: 42, TransactionStatus: db_models.TxnStatusCompleted}, nil)
		repo.On("Refund", ctx, int64(42), mock.Anything, (*int64)(nil), now).Return(false, nil)

		svc := newTestTransactionService(repo, new(MockPlanRepository), now)
		_, err := svc.RefundTransaction(ctx, admin, 42, "x")

		assert.ErrorIs(t, err, utils.ErrInvalidTransactionState)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		svc := newTestTransactionService(new(MockTransactionRepository), new(MockPlanRepository), now)
		_, err := svc.RefundTransaction(ctx, utils.Actor{UserID: uuid.New(), Role: utils.RoleUser}, 42, "x")

		assert.ErrorIs(t, err, utils.ErrForbidden)
	})
}
