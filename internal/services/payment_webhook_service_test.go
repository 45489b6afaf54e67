package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"soundwave/internal/config"
	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

const testReference = "TXN42_1700000000000"

func pendingTxn() *db_models.Transaction {
	ref := testReference
	subID := int64(7)
	return &db_models.Transaction{
		ID:                   42,
		SubscriptionID:       &subID,
		TransactionStatus:    db_models.TxnStatusPending,
		TransactionReference: &ref,
	}
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func sepayPayload(amount interface{}) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"id":              9001,
		"gateway":         "Vietcombank",
		"transactionDate": "2024-01-15 10:30:00",
		"transferContent": "NGUYEN VAN A chuyen tien TXN42_1700000000000 ND",
		"description":     "BankAPINotify NGUYEN VAN A chuyen tien",
		"transferAmount":  amount,
	})
	return body
}

func TestExtractReference(t *testing.T) {
	assert.Equal(t, testReference, ExtractReference("NGUYEN VAN A chuyen tien TXN42_1700000000000 ND"))
	assert.Equal(t, "TXN1_2", ExtractReference("TXN1_2 TXN3_4"))
	assert.Empty(t, ExtractReference("chuyen tien TXN_42"))
	assert.Empty(t, ExtractReference(""))
}

func TestPaymentWebhookService_ProcessCallback(t *testing.T) {
	ctx := context.Background()
	cfg := config.SepayConfig{WebhookSecret: "s3cret", GatewayName: "sepay"}

	t.Run("positive amount completes and activates subscription", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		txn := pendingTxn()
		repo.On("FindByReference", ctx, testReference).Return(txn, nil)
		repo.On("SettlePending", ctx, int64(42), db_models.TxnStatusCompleted, mock.AnythingOfType("datatypes.JSON"), txn.SubscriptionID).
			Return(true, nil)

		body := sepayPayload(50000)
		svc := NewPaymentWebhookService(repo, cfg, testLogger)
		res, err := svc.ProcessCallback(ctx, body, sign("s3cret", body))

		require.NoError(t, err)
		assert.True(t, res.Settled)
		assert.Equal(t, db_models.TxnStatusCompleted, res.Transaction.TransactionStatus)

		var invoice map[string]interface{}
		require.NoError(t, json.Unmarshal(res.Transaction.InvoiceData, &invoice))
		assert.Equal(t, "sepay", invoice["gateway"])
		assert.Equal(t, "9001", invoice["gatewayTransactionId"])
		assert.Equal(t, "2024-01-15 10:30:00", invoice["transferDate"])
		assert.Equal(t, "50000", invoice["amount"])
		repo.AssertExpectations(t)
	})

	t.Run("zero amount fails and leaves subscription untouched", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByReference", ctx, testReference).Return(pendingTxn(), nil)
		repo.On("SettlePending", ctx, int64(42), db_models.TxnStatusFailed, mock.Anything, (*int64)(nil)).
			Return(true, nil)

		body := sepayPayload(0)
		svc := NewPaymentWebhookService(repo, cfg, testLogger)
		res, err := svc.ProcessCallback(ctx, body, sign("s3cret", body))

		require.NoError(t, err)
		assert.Equal(t, db_models.TxnStatusFailed, res.Transaction.TransactionStatus)
		repo.AssertExpectations(t)
	})

	t.Run("string amount is parsed", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		txn := pendingTxn()
		repo.On("FindByReference", ctx, testReference).Return(txn, nil)
		repo.On("SettlePending", ctx, int64(42), db_models.TxnStatusCompleted, mock.Anything, txn.SubscriptionID).
			Return(true, nil)

		svc := NewPaymentWebhookService(repo, config.SepayConfig{}, testLogger)
		_, err := svc.ProcessCallback(ctx, sepayPayload("99000.50"), "")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("negative amount is treated as failed", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByReference", ctx, testReference).Return(pendingTxn(), nil)
		repo.On("SettlePending", ctx, int64(42), db_models.TxnStatusFailed, mock.Anything, (*int64)(nil)).
			Return(true, nil)

		svc := NewPaymentWebhookService(repo, config.SepayConfig{}, testLogger)
		res, err := svc.ProcessCallback(ctx, sepayPayload(-100), "")

		require.NoError(t, err)
		assert.Equal(t, db_models.TxnStatusFailed, res.Transaction.TransactionStatus)
	})

	t.Run("second delivery is a no-op", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		settled := pendingTxn()
		settled.TransactionStatus = db_models.TxnStatusCompleted
		settled.InvoiceData = datatypes.JSON(`{"gateway":"sepay"}`)
		repo.On("FindByReference", ctx, testReference).Return(settled, nil)

		body := sepayPayload(50000)
		svc := NewPaymentWebhookService(repo, cfg, testLogger)
		res, err := svc.ProcessCallback(ctx, body, sign("s3cret", body))

		require.NoError(t, err)
		assert.False(t, res.Settled)
		assert.Equal(t, db_models.TxnStatusCompleted, res.Transaction.TransactionStatus)
		assert.JSONEq(t, `{"gateway":"sepay"}`, string(res.Transaction.InvoiceData))
		repo.AssertNotCalled(t, "SettlePending", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("losing a concurrent settle returns the stored row", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByReference", ctx, testReference).Return(pendingTxn(), nil)
		repo.On("SettlePending", ctx, int64(42), db_models.TxnStatusCompleted, mock.Anything, mock.Anything).
			Return(false, nil)
		winner := pendingTxn()
		winner.TransactionStatus = db_models.TxnStatusCompleted
		repo.On("FindByID", ctx, int64(42)).Return(winner, nil)

		svc := NewPaymentWebhookService(repo, config.SepayConfig{}, testLogger)
		res, err := svc.ProcessCallback(ctx, sepayPayload(50000), "")

		require.NoError(t, err)
		assert.False(t, res.Settled)
		assert.Equal(t, db_models.TxnStatusCompleted, res.Transaction.TransactionStatus)
	})

	t.Run("signature mismatch rejects before lookup", func(t *testing.T) {
		repo := new(MockTransactionRepository)

		body := sepayPayload(50000)
		svc := NewPaymentWebhookService(repo, cfg, testLogger)
		_, err := svc.ProcessCallback(ctx, body, sign("other", body))

		assert.ErrorIs(t, err, utils.ErrInvalidSignature)
		repo.AssertNotCalled(t, "FindByReference", mock.Anything, mock.Anything)
	})

	t.Run("signature over different bytes is rejected", func(t *testing.T) {
		repo := new(MockTransactionRepository)

		body := sepayPayload(50000)
		svc := NewPaymentWebhookService(repo, cfg, testLogger)
		_, err := svc.ProcessCallback(ctx, append(body, ' '), sign("s3cret", body))

		assert.ErrorIs(t, err, utils.ErrInvalidSignature)
	})

	t.Run("no secret configured accepts any signature", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByReference", ctx, testReference).Return(pendingTxn(), nil)
		repo.On("SettlePending", ctx, int64(42), mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

		svc := NewPaymentWebhookService(repo, config.SepayConfig{}, testLogger)
		_, err := svc.ProcessCallback(ctx, sepayPayload(50000), "deadbeef")

		require.NoError(t, err)
	})

	t.Run("missing reference", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		body := []byte(`{"transferAmount":50000,"transferContent":"chuyen tien","description":"no memo"}`)

		svc := NewPaymentWebhookService(repo, config.SepayConfig{}, testLogger)
		_, err := svc.ProcessCallback(ctx, body, "")

		assert.ErrorIs(t, err, utils.ErrReferenceNotFound)
		repo.AssertNotCalled(t, "FindByReference", mock.Anything, mock.Anything)
	})

	t.Run("reference found in description when content has none", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByReference", ctx, "TXN5_123").Return(nil, nil)
		body := []byte(`{"amount":"10","content":"hello","description":"memo TXN5_123"}`)

		svc := NewPaymentWebhookService(repo, config.SepayConfig{}, testLogger)
		_, err := svc.ProcessCallback(ctx, body, "")

		assert.ErrorIs(t, err, utils.ErrTransactionNotFound)
		repo.AssertExpectations(t)
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := NewPaymentWebhookService(new(MockTransactionRepository), config.SepayConfig{}, testLogger)
		_, err := svc.ProcessCallback(ctx, []byte(`{not json`), "")

		assert.ErrorIs(t, err, utils.ErrInvalidWebhookPayload)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByReference", ctx, testReference).Return(nil, errors.New("timeout"))

		svc := NewPaymentWebhookService(repo, config.SepayConfig{}, testLogger)
		_, err := svc.ProcessCallback(ctx, sepayPayload(50000), "")

		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}
