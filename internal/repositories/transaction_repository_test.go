package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"soundwave/internal/models/db_models"
)

func TestTransactionRepository_FindByReference(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE transaction_reference = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_status", "transaction_reference"}).
				AddRow(42, "Pending", "TXN42_1700000000000"))

		txn, err := repo.FindByReference(ctx, "TXN42_1700000000000")
		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.Equal(t, int64(42), txn.ID)
		assert.Equal(t, db_models.TxnStatusPending, txn.TransactionStatus)
		assert.Equal(t, "TXN42_1700000000000", txn.Reference())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE transaction_reference = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		txn, err := repo.FindByReference(ctx, "TXN1_1")
		assert.NoError(t, err)
		assert.Nil(t, txn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "transactions"`).
			WillReturnError(errors.New("connection reset"))

		txn, err := repo.FindByReference(ctx, "TXN1_1")
		assert.Error(t, err)
		assert.Nil(t, txn)
	})
}

func TestTransactionRepository_SettlePending(t *testing.T) {
	ctx := context.Background()
	invoice := datatypes.JSON(`{"gateway":"sepay"}`)
	subID := int64(7)

	t.Run("SettlesAndActivatesSubscription", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "transactions" SET .* WHERE \(?id = \$\d+ AND transaction_status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "subscriptions" SET "is_active"=\$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		settled, err := repo.SettlePending(ctx, 42, db_models.TxnStatusCompleted, invoice, &subID)
		require.NoError(t, err)
		assert.True(t, settled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("LosingWriterIsNoop", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "transactions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		settled, err := repo.SettlePending(ctx, 42, db_models.TxnStatusCompleted, invoice, &subID)
		require.NoError(t, err)
		assert.False(t, settled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FailedDoesNotTouchSubscription", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "transactions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		settled, err := repo.SettlePending(ctx, 42, db_models.TxnStatusFailed, invoice, nil)
		require.NoError(t, err)
		assert.True(t, settled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnSubscriptionError", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "transactions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "subscriptions" SET`).
			WillReturnError(errors.New("deadlock detected"))
		mock.ExpectRollback()

		settled, err := repo.SettlePending(ctx, 42, db_models.TxnStatusCompleted, invoice, &subID)
		assert.Error(t, err)
		assert.False(t, settled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_CreatePendingAssignsReference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec(`UPDATE "transactions" SET "transaction_reference"=\$1.* WHERE id = \$\d+ AND transaction_reference IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	now := time.Now()
	sub := &db_models.Subscription{
		UserID:    uuid.New(),
		PlanID:    uuid.New(),
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 30),
	}
	txn := &db_models.Transaction{
		UserID:          sub.UserID,
		Amount:          decimal.NewFromInt(59000),
		PaymentMethodID: 1,
	}

	require.NoError(t, repo.CreatePending(context.Background(), sub, txn))

	require.NotNil(t, txn.SubscriptionID)
	assert.Equal(t, int64(7), *txn.SubscriptionID)
	assert.Equal(t, db_models.TxnStatusPending, txn.TransactionStatus)
	assert.Equal(t, db_models.ReferenceFor(42, txn.CreatedAt), txn.Reference())
	assert.True(t, strings.HasPrefix(txn.Reference(), "TXN42_"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_RefundOnlyFromCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET .* WHERE \(?id = \$\d+ AND transaction_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	subID := int64(7)
	refunded, err := repo.Refund(context.Background(), 42, datatypes.JSON(`{}`), &subID, time.Now())
	require.NoError(t, err)
	assert.False(t, refunded)
	assert.NoError(t, mock.ExpectationsWereMet())
}
