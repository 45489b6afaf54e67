package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbm "soundwave/internal/models/db_models"
)

type StatisticsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountSongs(ctx context.Context) (int64, error)
	CountArtists(ctx context.Context) (int64, error)
	CountActiveSubscriptions(ctx context.Context, now time.Time) (int64, error)

	// RevenueSeries sums completed transactions per interval bucket (day|week|month).
	RevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]RevenueBucket, error)
	PlanMix(ctx context.Context, now time.Time) ([]PlanMixRow, error)
	TopFavoritedSongs(ctx context.Context, limit int) ([]TopSongRow, error)
	RecentCompletedPayments(ctx context.Context, limit int) ([]RecentPaymentRow, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

// ---------- Row helpers ----------
type RevenueBucket struct {
	Bucket time.Time       `gorm:"column:bucket"`
	Sum    decimal.Decimal `gorm:"column:sum"`
	Count  int64           `gorm:"column:count"`
}

type PlanMixRow struct {
	PlanID   string          `gorm:"column:plan_id"`
	PlanCode string          `gorm:"column:plan_code"`
	PlanName string          `gorm:"column:plan_name"`
	Price    decimal.Decimal `gorm:"column:price"`
	Count    int64           `gorm:"column:count"`
}

type TopSongRow struct {
	SongID    string `gorm:"column:song_id"`
	Title     string `gorm:"column:title"`
	Favorites int64  `gorm:"column:favorites"`
}

type RecentPaymentRow struct {
	ID                   int64           `gorm:"column:id"`
	TransactionReference string          `gorm:"column:transaction_reference"`
	Amount               decimal.Decimal `gorm:"column:amount"`
	UpdatedAt            time.Time       `gorm:"column:updated_at"`
	Email                string          `gorm:"column:email"`
}

// ---------- Counts ----------
func (r *statisticsRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.User{}).Count(&n).Error
	return n, err
}

func (r *statisticsRepository) CountSongs(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Song{}).Count(&n).Error
	return n, err
}

func (r *statisticsRepository) CountArtists(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Artist{}).Count(&n).Error
	return n, err
}

func (r *statisticsRepository) CountActiveSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Subscription{}).
		Where("is_active = ? AND end_date > ?", true, now).
		Count(&n).Error
	return n, err
}

// ---------- Series ----------
func (r *statisticsRepository) RevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]RevenueBucket, error) {
	var rows []RevenueBucket
	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("date_trunc(?, created_at) AS bucket, SUM(amount) AS sum, COUNT(*) AS count", interval).
		Where("transaction_status = ?", dbm.TxnStatusCompleted).
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}

// ---------- Plan mix ----------
func (r *statisticsRepository) PlanMix(ctx context.Context, now time.Time) ([]PlanMixRow, error) {
	var rows []PlanMixRow
	err := r.db.WithContext(ctx).
		Table("subscriptions s").
		Select("p.id AS plan_id, p.code AS plan_code, p.name AS plan_name, p.price, COUNT(*) AS count").
		Joins("JOIN subscription_plans p ON p.id = s.plan_id").
		Where("s.is_active = ? AND s.end_date > ?", true, now).
		Group("p.id, p.code, p.name, p.price").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}

// ---------- Top songs ----------
func (r *statisticsRepository) TopFavoritedSongs(ctx context.Context, limit int) ([]TopSongRow, error) {
	var rows []TopSongRow
	err := r.db.WithContext(ctx).
		Table("favorites f").
		Select("s.id AS song_id, s.title, COUNT(*) AS favorites").
		Joins("JOIN songs s ON s.id = f.song_id AND s.deleted_at IS NULL").
		Group("s.id, s.title").
		Order("favorites DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ---------- Recent payments ----------
func (r *statisticsRepository) RecentCompletedPayments(ctx context.Context, limit int) ([]RecentPaymentRow, error) {
	var rows []RecentPaymentRow
	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select("t.id, t.transaction_reference, t.amount, t.updated_at, u.email").
		Joins("LEFT JOIN users u ON u.id = t.user_id").
		Where("t.transaction_status = ?", dbm.TxnStatusCompleted).
		Order("t.updated_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
