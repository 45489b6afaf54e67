package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

type TransactionFilter struct {
	UserID    *uuid.UUID
	Status    string
	Reference string
}

func (f TransactionFilter) filters() []Filter {
	var out []Filter
	if f.UserID != nil {
		out = append(out, Eq("user_id", *f.UserID))
	}
	if f.Status != "" {
		out = append(out, Eq("transaction_status", f.Status))
	}
	if f.Reference != "" {
		out = append(out, ILike("transaction_reference", f.Reference))
	}
	return out
}

type TransactionRepository interface {
	// CreatePending inserts the subscription and its Pending transaction in one
	// database transaction and assigns the reference exactly once.
	CreatePending(ctx context.Context, sub *db_models.Subscription, txn *db_models.Transaction) error
	FindByID(ctx context.Context, id int64) (*db_models.Transaction, error)
	FindByReference(ctx context.Context, reference string) (*db_models.Transaction, error)
	List(ctx context.Context, q utils.PageQuery, filter TransactionFilter) ([]db_models.Transaction, int64, error)
	// SettlePending moves a Pending transaction to status. settled is false when
	// another writer already moved it out of Pending.
	SettlePending(ctx context.Context, id int64, status db_models.TransactionStatus, invoice datatypes.JSON, activateSubscriptionID *int64) (settled bool, err error)
	// Refund moves a Completed transaction to Refunded and deactivates its subscription.
	Refund(ctx context.Context, id int64, invoice datatypes.JSON, subscriptionID *int64, at time.Time) (bool, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (t *transactionRepository) CreatePending(ctx context.Context, sub *db_models.Subscription, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Plan").Create(sub).Error; err != nil {
			return err
		}

		txn.SubscriptionID = &sub.ID
		txn.TransactionStatus = db_models.TxnStatusPending
		txn.TransactionReference = nil
		if err := tx.Omit("Subscription", "PaymentMethod").Create(txn).Error; err != nil {
			return err
		}

		ref := db_models.ReferenceFor(txn.ID, txn.CreatedAt)
		res := tx.Model(&db_models.Transaction{}).
			Where("id = ? AND transaction_reference IS NULL", txn.ID).
			Update("transaction_reference", ref)
		if res.Error != nil {
			return res.Error
		}
		txn.TransactionReference = &ref
		return nil
	})
}

func (t *transactionRepository) FindByID(ctx context.Context, id int64) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (t *transactionRepository) FindByReference(ctx context.Context, reference string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).
		Where("transaction_reference = ?", reference).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (t *transactionRepository) List(ctx context.Context, q utils.PageQuery, filter TransactionFilter) ([]db_models.Transaction, int64, error) {
	return paginate[db_models.Transaction](ctx, t.db, q, "created_at DESC", filter.filters())
}

func (t *transactionRepository) SettlePending(ctx context.Context, id int64, status db_models.TransactionStatus, invoice datatypes.JSON, activateSubscriptionID *int64) (bool, error) {
	settled := false
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Transaction{}).
			Where("id = ? AND transaction_status = ?", id, db_models.TxnStatusPending).
			Updates(map[string]interface{}{
				"transaction_status": status,
				"invoice_data":       invoice,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		settled = true

		if activateSubscriptionID == nil {
			return nil
		}
		return tx.Model(&db_models.Subscription{}).
			Where("id = ?", *activateSubscriptionID).
			Update("is_active", true).Error
	})
	if err != nil {
		return false, err
	}
	return settled, nil
}

func (t *transactionRepository) Refund(ctx context.Context, id int64, invoice datatypes.JSON, subscriptionID *int64, at time.Time) (bool, error) {
	refunded := false
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Transaction{}).
			Where("id = ? AND transaction_status = ?", id, db_models.TxnStatusCompleted).
			Updates(map[string]interface{}{
				"transaction_status": db_models.TxnStatusRefunded,
				"invoice_data":       invoice,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		refunded = true

		if subscriptionID == nil {
			return nil
		}
		return tx.Model(&db_models.Subscription{}).
			Where("id = ?", *subscriptionID).
			Updates(map[string]interface{}{
				"is_active":   false,
				"canceled_at": at,
			}).Error
	})
	if err != nil {
		return false, err
	}
	return refunded, nil
}
