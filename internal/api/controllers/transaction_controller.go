package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"soundwave/internal/config"
	"soundwave/internal/models/request_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

const (
	signatureHeader = "X-Sepay-Signature"
	maxWebhookBody  = 1 << 20
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
	webhookService     services.PaymentWebhookServiceInterface
	maxLimit           int
}

func NewTransactionController(
	transactionService services.TransactionServiceInterface,
	webhookService services.PaymentWebhookServiceInterface,
	cfg *config.Config,
) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		webhookService:     webhookService,
		maxLimit:           cfg.PaginationMaxLimit,
	}
}

// CreateTransaction godoc
// @Summary Start a subscription purchase
// @Description Creates a pending transaction; its transactionReference is the bank-transfer memo.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body request_models.CreateTransactionRequest true "Plan and payment method"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transactions [post]
func (t *TransactionController) CreateTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req request_models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	txn, err := t.transactionService.CreateTransaction(c.Request.Context(), actor.UserID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, txn, "Transaction created successfully")
}

// ListMyTransactions godoc
// @Summary List my transactions
// @Tags Transactions
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Param status query string false "Pending | Completed | Failed | Refunded"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transactions/me [get]
func (t *TransactionController) ListMyTransactions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	q, ok := pageQuery(c, t.maxLimit)
	if !ok {
		return
	}
	var query request_models.TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	page, err := t.transactionService.ListMyTransactions(c.Request.Context(), actor.UserID, q, query.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Transactions fetched successfully")
}

// ListTransactions godoc
// @Summary List all transactions
// @Tags Transactions
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(20)
// @Param status query string false "Status"
// @Param userId query string false "User id"
// @Param reference query string false "Reference contains"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transactions [get]
func (t *TransactionController) ListTransactions(c *gin.Context) {
	q, ok := pageQuery(c, t.maxLimit)
	if !ok {
		return
	}
	var query request_models.TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	page, err := t.transactionService.ListTransactions(c.Request.Context(), q, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Transactions fetched successfully")
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (t *TransactionController) GetTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	txn, err := t.transactionService.GetTransaction(c.Request.Context(), actor, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaction fetched successfully")
}

// RefundTransaction godoc
// @Summary Refund a completed transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction id"
// @Param request body request_models.RefundTransactionRequest true "Reason"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /transactions/{id}/refund [post]
func (t *TransactionController) RefundTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req request_models.RefundTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	txn, err := t.transactionService.RefundTransaction(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaction refunded successfully")
}

// Webhook godoc
// @Summary Payment gateway callback
// @Description Reconciles a bank-transfer notification with its pending transaction.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param X-Sepay-Signature header string false "hex HMAC-SHA256 of the raw body"
// @Success 200 {object} response_models.WebhookResponse
// @Failure 400 {object} response_models.WebhookResponse
// @Router /transactions/webhook [post]
func (t *TransactionController) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, response_models.WebhookResponse{Success: false, Message: "cannot read body"})
		return
	}

	result, err := t.webhookService.ProcessCallback(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		status := http.StatusBadRequest
		message := err.Error()
		switch {
		case errors.Is(err, utils.ErrDatabaseError):
			// Lets the gateway retry the delivery.
			status = http.StatusInternalServerError
		case errors.Is(err, utils.ErrInvalidSignature):
			message = "invalid signature"
		}
		c.JSON(status, response_models.WebhookResponse{Success: false, Message: message})
		return
	}

	message := "transaction already processed"
	if result.Settled {
		message = "transaction " + string(result.Transaction.TransactionStatus)
	}
	c.JSON(http.StatusOK, response_models.WebhookResponse{Success: true, Message: message})
}
