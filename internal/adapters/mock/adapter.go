// Package mock provides an in-process gateway that never leaves the process.
// It is enabled with PAYMENT_GATEWAY_MOCK and is meant for local development
// and end-to-end tests of the HTTP surface.
package mock

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/logger"
)

// SignatureValue is the only webhook signature the mock accepts.
const SignatureValue = "mock-signature"

// Gateway implements ports.Gateway with synthetic data. Payments created
// through it are remembered so status lookups return what was created.
type Gateway struct {
	name    string
	baseURL string
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.RWMutex
	payments map[string]domain.PaymentStatusResult
}

// New creates a mock gateway registered under name.
func New(name, baseURL string, log *zap.Logger) *Gateway {
	if name == "" {
		name = domain.GatewayMock
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		name:     strings.ToLower(name),
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   log.Named(name),
		now:      time.Now,
		payments: make(map[string]domain.PaymentStatusResult),
	}
}

// Name implements ports.Gateway.
func (g *Gateway) Name() string { return g.name }

// CreatePayment records an open payment and returns a local checkout URL.
func (g *Gateway) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	id := g.name + "_pay_" + uuid.NewString()
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "brl"
	}

	g.mu.Lock()
	g.payments[id] = domain.PaymentStatusResult{
		Success:       true,
		Status:        "open",
		PaymentStatus: "unpaid",
		AmountTotal:   req.Amount.InexactFloat64(),
		Currency:      currency,
		CustomerEmail: req.CustomerEmail,
		Gateway:       g.name,
	}
	g.mu.Unlock()

	logger.WithContext(ctx, g.logger).Debug("mock payment created", zap.String("payment_id", id))

	return &domain.PaymentResult{
		Success:     true,
		PaymentID:   id,
		CheckoutURL: g.baseURL + "/mock/checkout/" + id,
		Amount:      req.Amount.InexactFloat64(),
		Currency:    currency,
		Status:      "open",
		Gateway:     g.name,
	}, nil
}

// CreateSubscription returns a synthetic checkout. A missing priceId gets a
// generated one when amount and interval are present.
func (g *Gateway) CreateSubscription(_ context.Context, req domain.SubscriptionRequest) (*domain.SubscriptionResult, error) {
	if !req.HasPriceReference() && !req.CanSynthesizePrice() {
		return &domain.SubscriptionResult{
			Success: false,
			Error:   "priceId OR amount + interval must be provided to create a subscription",
			Gateway: g.name,
		}, nil
	}

	priceID := req.PriceID
	if priceID == "" {
		priceID = g.name + "_price_" + uuid.NewString()
	}
	sessionID := g.name + "_cs_" + uuid.NewString()

	return &domain.SubscriptionResult{
		Success:        true,
		SubscriptionID: g.name + "_sub_" + uuid.NewString(),
		SessionID:      sessionID,
		CheckoutURL:    g.baseURL + "/mock/checkout/" + sessionID,
		PriceID:        priceID,
		Status:         "open",
		Gateway:        g.name,
	}, nil
}

// GetPaymentStatus returns what CreatePayment recorded for paymentID.
func (g *Gateway) GetPaymentStatus(_ context.Context, paymentID string) (*domain.PaymentStatusResult, error) {
	g.mu.RLock()
	status, ok := g.payments[paymentID]
	g.mu.RUnlock()

	if !ok {
		return &domain.PaymentStatusResult{
			Success: false,
			Error:   "No such payment: '" + paymentID + "'",
			Gateway: g.name,
		}, nil
	}
	return &status, nil
}

// CancelSubscription implements ports.Gateway. The period ends one month
// from now.
func (g *Gateway) CancelSubscription(_ context.Context, subscriptionID string) (*domain.CancellationResult, error) {
	periodEnd := g.now().UTC().AddDate(0, 1, 0).Truncate(time.Second)
	return &domain.CancellationResult{
		Success:           true,
		SubscriptionID:    subscriptionID,
		Status:            "active",
		CancelAtPeriodEnd: true,
		CurrentPeriodEnd:  &periodEnd,
		Gateway:           g.name,
	}, nil
}

// ValidateWebhook accepts payloads signed with SignatureValue. The body must
// be a JSON object with id and type; data.object is passed through.
func (g *Gateway) ValidateWebhook(_ context.Context, payload []byte, sig domain.WebhookSignature) (*domain.WebhookValidationResult, error) {
	if sig.Value != SignatureValue {
		return &domain.WebhookValidationResult{Valid: false, Error: "signature mismatch"}, nil
	}

	var body struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object json.RawMessage `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Type == "" {
		return &domain.WebhookValidationResult{Valid: false, Error: "invalid payload"}, nil
	}

	var obj struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body.Data.Object, &obj)

	return &domain.WebhookValidationResult{
		Valid: true,
		Event: &domain.WebhookEvent{
			ID:        body.ID,
			Type:      body.Type,
			Gateway:   g.name,
			ObjectID:  obj.ID,
			Object:    body.Data.Object,
			CreatedAt: g.now().UTC(),
		},
	}, nil
}
