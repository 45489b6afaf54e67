package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

type SubscriptionServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error)
	ListPaymentMethods(ctx context.Context) ([]response_models.PaymentMethod, error)
	// GetCurrent returns nil when the user has no active subscription.
	GetCurrent(ctx context.Context, userID uuid.UUID) (*response_models.SubscriptionResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, subscriptionID int64) error
	HasPremium(ctx context.Context, userID uuid.UUID) (bool, error)
}

type SubscriptionService struct {
	planRepo repositories.PlanRepository
	subRepo  repositories.SubscriptionRepository
	log      *zap.Logger
}

func NewSubscriptionService(planRepo repositories.PlanRepository, subRepo repositories.SubscriptionRepository, log *zap.Logger) SubscriptionServiceInterface {
	return &SubscriptionService{
		planRepo: planRepo,
		subRepo:  subRepo,
		log:      log.Named("subscriptions"),
	}
}

func (s *SubscriptionService) ListPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error) {
	plans, err := s.planRepo.ListActivePlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return mapSlice(plans, toPlanResponse), nil
}

func (s *SubscriptionService) ListPaymentMethods(ctx context.Context) ([]response_models.PaymentMethod, error) {
	methods, err := s.planRepo.ListActivePaymentMethods(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return mapSlice(methods, toPaymentMethodResponse), nil
}

func (s *SubscriptionService) GetCurrent(ctx context.Context, userID uuid.UUID) (*response_models.SubscriptionResponse, error) {
	sub, err := s.subRepo.FindCurrent(ctx, userID, time.Now())
	if err != nil {
		s.log.Error("find current subscription", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, nil
	}
	res := toSubscriptionResponse(sub)
	return &res, nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, userID uuid.UUID, subscriptionID int64) error {
	ok, err := s.subRepo.Cancel(ctx, subscriptionID, userID, time.Now())
	if err != nil {
		s.log.Error("cancel subscription", zap.Int64("subscription_id", subscriptionID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrSubscriptionNotFound
	}
	s.log.Info("subscription canceled", zap.Int64("subscription_id", subscriptionID), zap.String("user_id", userID.String()))
	return nil
}

func (s *SubscriptionService) HasPremium(ctx context.Context, userID uuid.UUID) (bool, error) {
	sub, err := s.subRepo.FindCurrent(ctx, userID, time.Now())
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return sub != nil, nil
}
