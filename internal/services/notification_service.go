package services

import (
	"context"
	"strings"
	"sync"
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

const defaultNotificationType = "system"

type NotificationServiceInterface interface {
	Send(ctx context.Context, req request_models.SendNotificationRequest) (*response_models.NotificationResponse, error)
	List(ctx context.Context, userID uuid.UUID, q utils.PageQuery, isRead *bool) (utils.Page[response_models.NotificationResponse], error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	// Cleanup hard-deletes read notifications older than the retention window.
	Cleanup(ctx context.Context) (int64, error)
}

type NotificationService struct {
	repo      repositories.NotificationRepository
	retention time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewNotificationService(repo repositories.NotificationRepository, retentionDays int, log *zap.Logger) NotificationServiceInterface {
	if retentionDays < 1 {
		retentionDays = 30
	}
	return &NotificationService{
		repo:      repo,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		log:       log.Named("notifications"),
		now:       time.Now,
	}
}

func (n *NotificationService) Send(ctx context.Context, req request_models.SendNotificationRequest) (*response_models.NotificationResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	data := datatypes.JSON(`{}`)
	if len(req.Data) > 0 {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			return nil, err
		}
		data = raw
	}

	kind := strings.TrimSpace(req.Type)
	if kind == "" {
		kind = defaultNotificationType
	}

	notification := &db_models.Notification{
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
		Type:   kind,
		Data:   data,
	}
	if err := n.repo.Create(ctx, notification); err != nil {
		n.log.Error("create notification", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	res := toNotificationResponse(notification)
	return &res, nil
}

func (n *NotificationService) List(ctx context.Context, userID uuid.UUID, q utils.PageQuery, isRead *bool) (utils.Page[response_models.NotificationResponse], error) {
	items, total, err := n.repo.List(ctx, q, userID, isRead)
	if err != nil {
		return utils.Page[response_models.NotificationResponse]{}, utils.ErrDatabaseError
	}
	return utils.NewPage(mapSlice(items, toNotificationResponse), q, total), nil
}

func (n *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	ok, err := n.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (n *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := n.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (n *NotificationService) Cleanup(ctx context.Context) (int64, error) {
	cutoff := n.now().Add(-n.retention)
	deleted, err := n.repo.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		n.log.Error("notification cleanup", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, utils.ErrDatabaseError
	}
	n.log.Info("notification cleanup", zap.Time("cutoff", cutoff), zap.Int64("deleted", deleted))
	return deleted, nil
}

// CleanupScheduler runs NotificationService.Cleanup on a fixed interval
// until stopped.
type CleanupScheduler struct {
	svc      NotificationServiceInterface
	interval time.Duration
	log      *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCleanupScheduler(svc NotificationServiceInterface, interval time.Duration, log *zap.Logger) *CleanupScheduler {
	return &CleanupScheduler{svc: svc, interval: interval, log: log.Named("notification_cleanup")}
}

func (s *CleanupScheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.svc.Cleanup(ctx); err != nil {
					s.log.Warn("scheduled cleanup failed", zap.Error(err))
				}
			}
		}
	}()
}

func (s *CleanupScheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
