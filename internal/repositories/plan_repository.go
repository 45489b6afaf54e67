package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundwave/internal/models/db_models"
)

type PlanRepository interface {
	FindActivePlan(ctx context.Context, planID uuid.UUID) (*db_models.SubscriptionPlan, error)
	ListActivePlans(ctx context.Context) ([]db_models.SubscriptionPlan, error)
	FindActivePaymentMethod(ctx context.Context, id int64) (*db_models.PaymentMethod, error)
	ListActivePaymentMethods(ctx context.Context) ([]db_models.PaymentMethod, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) FindActivePlan(ctx context.Context, planID uuid.UUID) (*db_models.SubscriptionPlan, error) {
	var plan db_models.SubscriptionPlan
	err := p.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", planID, true).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (p *planRepository) ListActivePlans(ctx context.Context) ([]db_models.SubscriptionPlan, error) {
	var plans []db_models.SubscriptionPlan
	err := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *planRepository) FindActivePaymentMethod(ctx context.Context, id int64) (*db_models.PaymentMethod, error) {
	var method db_models.PaymentMethod
	err := p.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

func (p *planRepository) ListActivePaymentMethods(ctx context.Context) ([]db_models.PaymentMethod, error) {
	var methods []db_models.PaymentMethod
	err := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}
