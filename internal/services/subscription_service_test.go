package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

func TestSubscriptionService_Cancel(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	tests := []struct {
		name    string
		applied bool
		repoErr error
		wantErr error
	}{
		{name: "owner cancels active subscription", applied: true},
		{name: "not owned or already inactive", applied: false, wantErr: utils.ErrSubscriptionNotFound},
		{name: "database failure", repoErr: errors.New("timeout"), wantErr: utils.ErrDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := new(MockSubscriptionRepository)
			subs.On("Cancel", ctx, int64(7), owner, mock.AnythingOfType("time.Time")).Return(tt.applied, tt.repoErr)

			err := NewSubscriptionService(new(MockPlanRepository), subs, testLogger).Cancel(ctx, owner, 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			subs.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_GetCurrent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("none", func(t *testing.T) {
		subs := new(MockSubscriptionRepository)
		subs.On("FindCurrent", ctx, userID, mock.AnythingOfType("time.Time")).Return(nil, nil)
		svc := NewSubscriptionService(new(MockPlanRepository), subs, testLogger)

		res, err := svc.GetCurrent(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, res)

		premium, err := svc.HasPremium(ctx, userID)
		require.NoError(t, err)
		assert.False(t, premium)
	})

	t.Run("active", func(t *testing.T) {
		subs := new(MockSubscriptionRepository)
		subs.On("FindCurrent", ctx, userID, mock.AnythingOfType("time.Time")).
			Return(&db_models.Subscription{ID: 3, UserID: userID, IsActive: true}, nil)
		svc := NewSubscriptionService(new(MockPlanRepository), subs, testLogger)

		res, err := svc.GetCurrent(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, res)

		premium, err := svc.HasPremium(ctx, userID)
		require.NoError(t, err)
		assert.True(t, premium)
	})

	t.Run("lookup failure", func(t *testing.T) {
		subs := new(MockSubscriptionRepository)
		subs.On("FindCurrent", ctx, userID, mock.Anything).Return(nil, errors.New("boom"))

		_, err := NewSubscriptionService(new(MockPlanRepository), subs, testLogger).GetCurrent(ctx, userID)

		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}
