package controllers

import (
	"github.com/gin-gonic/gin"

	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// ListPlans godoc
// @Summary List subscription plans
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions/plans [get]
func (s *SubscriptionController) ListPlans(c *gin.Context) {
	plans, err := s.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// ListPaymentMethods godoc
// @Summary List payment methods
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payment-methods [get]
func (s *SubscriptionController) ListPaymentMethods(c *gin.Context) {
	methods, err := s.subscriptionService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, methods, "Payment methods fetched successfully")
}

// GetMySubscription godoc
// @Summary Current active subscription
// @Description data is null when the user has no active subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/me [get]
func (s *SubscriptionController) GetMySubscription(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	sub, err := s.subscriptionService.GetCurrent(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if sub == nil {
		utils.RespondSuccess(c, nil, "No active subscription")
		return
	}
	utils.RespondSuccess(c, sub, "Subscription fetched successfully")
}

// Cancel godoc
// @Summary Cancel a subscription
// @Tags Subscriptions
// @Param id path int true "Subscription id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{id}/cancel [post]
func (s *SubscriptionController) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := s.subscriptionService.Cancel(c.Request.Context(), actor.UserID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Subscription canceled")
}
