package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"soundwave/internal/config"
	dbm "soundwave/internal/models/db_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/metrics"
	"soundwave/pkg/utils"
)

var referencePattern = regexp.MustCompile(`TXN\d+_\d+`)

// Field aliases seen across gateway payload versions, most specific first.
var (
	contentFields  = []string{"transferContent", "content", "description"}
	amountFields   = []string{"transferAmount", "amount"}
	gatewayIDField = []string{"transactionId", "id"}
	dateFields     = []string{"transferDate", "transactionDate", "when"}
)

type WebhookResult struct {
	Transaction *dbm.Transaction
	// Settled is false when the transaction had already left Pending.
	Settled bool
}

type PaymentWebhookServiceInterface interface {
	ProcessCallback(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

type PaymentWebhookService struct {
	txnRepo repositories.TransactionRepository
	cfg     config.SepayConfig
	log     *zap.Logger
}

func NewPaymentWebhookService(txnRepo repositories.TransactionRepository, cfg config.SepayConfig, log *zap.Logger) PaymentWebhookServiceInterface {
	return &PaymentWebhookService{
		txnRepo: txnRepo,
		cfg:     cfg,
		log:     log.Named("payment_webhook"),
	}
}

// gatewayEvent is the normalized view of one webhook delivery.
type gatewayEvent struct {
	Reference     string
	Amount        decimal.Decimal
	TransactionID string
	TransferDate  string
	Description   string
	Success       bool
}

func (s *PaymentWebhookService) ProcessCallback(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	if err := s.verifySignature(payload, signature); err != nil {
		metrics.WebhookEvents.WithLabelValues("rejected").Inc()
		s.log.Warn("webhook signature rejected")
		return nil, err
	}

	event, err := s.parseEvent(payload)
	if err != nil {
		metrics.WebhookEvents.WithLabelValues("failed").Inc()
		s.log.Warn("webhook payload rejected", zap.Error(err))
		return nil, err
	}
	log := s.log.With(zap.String("reference", event.Reference), zap.String("gateway_txn_id", event.TransactionID))

	txn, err := s.txnRepo.FindByReference(ctx, event.Reference)
	if err != nil {
		log.Error("lookup transaction", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		metrics.WebhookEvents.WithLabelValues("failed").Inc()
		log.Error("webhook references unknown transaction")
		return nil, utils.ErrTransactionNotFound
	}

	if txn.TransactionStatus != dbm.TxnStatusPending {
		metrics.WebhookEvents.WithLabelValues("noop").Inc()
		log.Info("transaction already settled", zap.String("status", string(txn.TransactionStatus)))
		return &WebhookResult{Transaction: txn}, nil
	}

	status := dbm.TxnStatusFailed
	var activate *int64
	if event.Success {
		status = dbm.TxnStatusCompleted
		activate = txn.SubscriptionID
	}

	invoice, err := s.invoiceData(event)
	if err != nil {
		return nil, err
	}

	settled, err := s.txnRepo.SettlePending(ctx, txn.ID, status, invoice, activate)
	if err != nil {
		log.Error("settle transaction", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if !settled {
		// A concurrent delivery won the conditional update.
		current, err := s.txnRepo.FindByID(ctx, txn.ID)
		if err != nil || current == nil {
			log.Error("reload transaction after lost update", zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		metrics.WebhookEvents.WithLabelValues("noop").Inc()
		return &WebhookResult{Transaction: current}, nil
	}

	txn.TransactionStatus = status
	txn.InvoiceData = invoice
	metrics.WebhookEvents.WithLabelValues("settled").Inc()
	log.Info("transaction settled",
		zap.String("status", string(status)),
		zap.String("amount", event.Amount.String()),
		zap.Bool("subscription_activated", activate != nil))

	return &WebhookResult{Transaction: txn, Settled: true}, nil
}

// verifySignature checks the hex HMAC-SHA256 of the raw body. Verification
// only runs when both a secret and a signature header are present.
func (s *PaymentWebhookService) verifySignature(payload []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	if s.cfg.WebhookSecret == "" {
		s.log.Warn("webhook secret not configured, accepting unverified callback")
		metrics.WebhookEvents.WithLabelValues("unverified").Inc()
		return nil
	}
	if signature == "" {
		s.log.Warn("webhook callback without signature header")
		metrics.WebhookEvents.WithLabelValues("unverified").Inc()
		return nil
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.WebhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return utils.ErrInvalidSignature
	}
	metrics.WebhookEvents.WithLabelValues("verified").Inc()
	return nil
}

func (s *PaymentWebhookService) parseEvent(payload []byte) (*gatewayEvent, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var body map[string]interface{}
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidWebhookPayload, err)
	}

	description := stringField(body, "description")
	reference := ""
	for _, key := range contentFields {
		if ref := ExtractReference(stringField(body, key)); ref != "" {
			reference = ref
			break
		}
	}
	if reference == "" {
		return nil, utils.ErrReferenceNotFound
	}

	amount, err := parseAmount(firstField(body, amountFields...))
	if err != nil {
		s.log.Warn("unparseable webhook amount, treating as failed payment",
			zap.String("reference", reference), zap.Error(err))
		amount = decimal.Zero
	}
	if amount.IsNegative() {
		s.log.Warn("negative webhook amount, treating as failed payment",
			zap.String("reference", reference),
			zap.String("amount", amount.String()),
			zap.Bool("negative_amount", true))
		metrics.WebhookEvents.WithLabelValues("negative_amount").Inc()
	}

	return &gatewayEvent{
		Reference:     reference,
		Amount:        amount,
		TransactionID: stringField(body, gatewayIDField...),
		TransferDate:  stringField(body, dateFields...),
		Description:   description,
		Success:       amount.IsPositive(),
	}, nil
}

func (s *PaymentWebhookService) invoiceData(event *gatewayEvent) (datatypes.JSON, error) {
	raw, err := json.Marshal(map[string]interface{}{
		"gateway":              s.cfg.GatewayName,
		"gatewayTransactionId": event.TransactionID,
		"transferDate":         event.TransferDate,
		"description":          event.Description,
		"amount":               event.Amount.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode invoice data: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// ExtractReference finds the first TXN<id>_<millis> token in free text.
func ExtractReference(text string) string {
	return referencePattern.FindString(text)
}

func firstField(body map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := body[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringField(body map[string]interface{}, keys ...string) string {
	switch v := firstField(body, keys...).(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func parseAmount(v interface{}) (decimal.Decimal, error) {
	switch a := v.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("amount missing")
	case json.Number:
		return decimal.NewFromString(a.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(a))
	case float64:
		return decimal.NewFromFloat(a), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %T", v)
	}
}
