package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"soundwave/internal/models/db_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

var testLogger = zap.NewNop()

type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) List(ctx context.Context, q utils.PageQuery, filter repositories.SongFilter) ([]db_models.Song, int64, error) {
	args := m.Called(ctx, q, filter)
	songs, _ := args.Get(0).([]db_models.Song)
	return songs, args.Get(1).(int64), args.Error(2)
}

func (m *MockSongRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Song, error) {
	args := m.Called(ctx, id)
	song, _ := args.Get(0).(*db_models.Song)
	return song, args.Error(1)
}

func (m *MockSongRepository) FindWithRenditions(ctx context.Context, id uuid.UUID) (*db_models.Song, error) {
	args := m.Called(ctx, id)
	song, _ := args.Get(0).(*db_models.Song)
	return song, args.Error(1)
}

func (m *MockSongRepository) Create(ctx context.Context, song *db_models.Song) error {
	return m.Called(ctx, song).Error(0)
}

func (m *MockSongRepository) Update(ctx context.Context, song *db_models.Song) error {
	return m.Called(ctx, song).Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreatePending(ctx context.Context, sub *db_models.Subscription, txn *db_models.Transaction) error {
	return m.Called(ctx, sub, txn).Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id int64) (*db_models.Transaction, error) {
	args := m.Called(ctx, id)
	txn, _ := args.Get(0).(*db_models.Transaction)
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindByReference(ctx context.Context, reference string) (*db_models.Transaction, error) {
	args := m.Called(ctx, reference)
	txn, _ := args.Get(0).(*db_models.Transaction)
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context, q utils.PageQuery, filter repositories.TransactionFilter) ([]db_models.Transaction, int64, error) {
	args := m.Called(ctx, q, filter)
	txns, _ := args.Get(0).([]db_models.Transaction)
	return txns, args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SettlePending(ctx context.Context, id int64, status db_models.TransactionStatus, invoice datatypes.JSON, activateSubscriptionID *int64) (bool, error) {
	args := m.Called(ctx, id, status, invoice, activateSubscriptionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) Refund(ctx context.Context, id int64, invoice datatypes.JSON, subscriptionID *int64, at time.Time) (bool, error) {
	args := m.Called(ctx, id, invoice, subscriptionID, at)
	return args.Bool(0), args.Error(1)
}

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindActivePlan(ctx context.Context, planID uuid.UUID) (*db_models.SubscriptionPlan, error) {
	args := m.Called(ctx, planID)
	plan, _ := args.Get(0).(*db_models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *MockPlanRepository) ListActivePlans(ctx context.Context) ([]db_models.SubscriptionPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]db_models.SubscriptionPlan)
	return plans, args.Error(1)
}

func (m *MockPlanRepository) FindActivePaymentMethod(ctx context.Context, id int64) (*db_models.PaymentMethod, error) {
	args := m.Called(ctx, id)
	method, _ := args.Get(0).(*db_models.PaymentMethod)
	return method, args.Error(1)
}

func (m *MockPlanRepository) ListActivePaymentMethods(ctx context.Context) ([]db_models.PaymentMethod, error) {
	args := m.Called(ctx)
	methods, _ := args.Get(0).([]db_models.PaymentMethod)
	return methods, args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindCurrent(ctx context.Context, userID uuid.UUID, now time.Time) (*db_models.Subscription, error) {
	args := m.Called(ctx, userID, now)
	sub, _ := args.Get(0).(*db_models.Subscription)
	return sub, args.Error(1)
}

func (m *MockSubscriptionRepository) FindByID(ctx context.Context, id int64) (*db_models.Subscription, error) {
	args := m.Called(ctx, id)
	sub, _ := args.Get(0).(*db_models.Subscription)
	return sub, args.Error(1)
}

func (m *MockSubscriptionRepository) Cancel(ctx context.Context, id int64, userID uuid.UUID, at time.Time) (bool, error) {
	args := m.Called(ctx, id, userID, at)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*db_models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*db_models.User)
	return user, args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *db_models.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Playlist, error) {
	args := m.Called(ctx, id)
	playlist, _ := args.Get(0).(*db_models.Playlist)
	return playlist, args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Playlist, int64, error) {
	args := m.Called(ctx, q, userID)
	playlists, _ := args.Get(0).([]db_models.Playlist)
	return playlists, args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, playlist *db_models.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPlaylistRepository) AddSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	return m.Called(ctx, playlistID, songID).Error(0)
}

func (m *MockPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) (bool, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *db_models.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) List(ctx context.Context, q utils.PageQuery, userID uuid.UUID, isRead *bool) ([]db_models.Notification, int64, error) {
	args := m.Called(ctx, q, userID, isRead)
	items, _ := args.Get(0).([]db_models.Notification)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockURLSigner struct {
	mock.Mock
}

func (m *MockURLSigner) SignURL(rawURL string, expiresIn time.Duration) (string, error) {
	args := m.Called(rawURL, expiresIn)
	return args.String(0), args.Error(1)
}

type MockObjectPresigner struct {
	mock.Mock
}

func (m *MockObjectPresigner) PresignGet(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, ttl)
	return args.String(0), args.Error(1)
}

type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) List(ctx context.Context, q utils.PageQuery, name string) ([]db_models.Artist, int64, error) {
	args := m.Called(ctx, q, name)
	artists, _ := args.Get(0).([]db_models.Artist)
	return artists, args.Get(1).(int64), args.Error(2)
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*db_models.Artist)
	return artist, args.Error(1)
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *db_models.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) ListAll(ctx context.Context) ([]db_models.Genre, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]db_models.Genre)
	return genres, args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, songID uuid.UUID) error {
	return m.Called(ctx, userID, songID).Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, songID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) List(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Favorite, int64, error) {
	args := m.Called(ctx, q, userID)
	favs, _ := args.Get(0).([]db_models.Favorite)
	return favs, args.Get(1).(int64), args.Error(2)
}

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Add(ctx context.Context, userID, artistID uuid.UUID) error {
	return m.Called(ctx, userID, artistID).Error(0)
}

func (m *MockFollowRepository) Remove(ctx context.Context, userID, artistID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, artistID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) List(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Follow, int64, error) {
	args := m.Called(ctx, q, userID)
	follows, _ := args.Get(0).([]db_models.Follow)
	return follows, args.Get(1).(int64), args.Error(2)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *db_models.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *MockRatingRepository) ListBySong(ctx context.Context, q utils.PageQuery, songID uuid.UUID) ([]db_models.Rating, int64, error) {
	args := m.Called(ctx, q, songID)
	ratings, _ := args.Get(0).([]db_models.Rating)
	return ratings, args.Get(1).(int64), args.Error(2)
}

func (m *MockRatingRepository) Summary(ctx context.Context, songID uuid.UUID) (repositories.RatingSummary, error) {
	args := m.Called(ctx, songID)
	return args.Get(0).(repositories.RatingSummary), args.Error(1)
}
