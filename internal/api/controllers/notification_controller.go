package controllers

import (
	"github.com/gin-gonic/gin"

	"soundwave/internal/config"
	"soundwave/internal/models/request_models"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
	maxLimit            int
}

func NewNotificationController(notificationService services.NotificationServiceInterface, cfg *config.Config) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		maxLimit:            cfg.PaginationMaxLimit,
	}
}

// List godoc
// @Summary List my notifications
// @Tags Notifications
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Param isRead query bool false "Filter by read state"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications [get]
func (n *NotificationController) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	q, ok := pageQuery(c, n.maxLimit)
	if !ok {
		return
	}
	var query request_models.NotificationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	page, err := n.notificationService.List(c.Request.Context(), actor.UserID, q, query.IsRead)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, page, "Notifications fetched successfully")
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Param id path string true "Notification id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (n *NotificationController) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := n.notificationService.MarkRead(c.Request.Context(), actor.UserID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notification marked as read")
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags Notifications
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/read-all [patch]
func (n *NotificationController) MarkAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	updated, err := n.notificationService.MarkAllRead(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"updated": updated}, "Notifications marked as read")
}

// Send godoc
// @Summary Send a notification to a user
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.SendNotificationRequest true "Notification"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications [post]
func (n *NotificationController) Send(c *gin.Context) {
	var req request_models.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	notification, err := n.notificationService.Send(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, notification, "Notification sent")
}

// Cleanup godoc
// @Summary Delete old read notifications
// @Tags Notifications
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/cleanup [post]
func (n *NotificationController) Cleanup(c *gin.Context) {
	deleted, err := n.notificationService.Cleanup(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"deleted": deleted}, "Cleanup completed")
}
