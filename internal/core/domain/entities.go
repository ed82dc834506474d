// Package domain contains the core business entities for the payment service.
// This is the innermost layer - no framework or provider dependencies.
package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Gateway names known to this service.
const (
	GatewayStripe      = "stripe"
	GatewayMercadoPago = "mercadopago"
	GatewayMock        = "mock"
)

// Metadata types stamped on every upstream checkout.
const (
	MetadataTypePayment      = "payment"
	MetadataTypeSubscription = "subscription"
)

// PaymentRequest is a one-time checkout request, already stripped of the
// gateway selector.
type PaymentRequest struct {
	Amount        decimal.Decimal
	Currency      string
	Description   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]any
}

// PaymentResult is the normalized outcome of CreatePayment.
type PaymentResult struct {
	Success     bool    `json:"success"`
	PaymentID   string  `json:"paymentId,omitempty"`
	CheckoutURL string  `json:"checkoutUrl,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Status      string  `json:"status,omitempty"`
	Error       string  `json:"error,omitempty"`
	Gateway     string  `json:"gateway"`
}

// PaymentStatusResult is the normalized outcome of GetPaymentStatus.
type PaymentStatusResult struct {
	Success       bool    `json:"success"`
	Status        string  `json:"status,omitempty"`
	PaymentStatus string  `json:"paymentStatus,omitempty"`
	AmountTotal   float64 `json:"amountTotal"`
	Currency      string  `json:"currency,omitempty"`
	CustomerEmail string  `json:"customerEmail,omitempty"`
	Error         string  `json:"error,omitempty"`
	Gateway       string  `json:"gateway"`
}

// SubscriptionRequest creates a recurring checkout. Either PriceID is set, or
// Amount and Interval are, in which case the adapter creates the product and
// price on the fly.
type SubscriptionRequest struct {
	PriceID         string
	Amount          decimal.Decimal
	Currency        string
	Interval        string
	IntervalCount   int64
	ProductName     string
	Description     string
	CustomerEmail   string
	TrialPeriodDays int64
	SuccessURL      string
	CancelURL       string
	Metadata        map[string]any
}

// HasPriceReference reports whether an existing price can be used as is.
func (r SubscriptionRequest) HasPriceReference() bool {
	return r.PriceID != ""
}

// CanSynthesizePrice reports whether enough data is present to create a
// product and price upstream.
func (r SubscriptionRequest) CanSynthesizePrice() bool {
	return r.Amount.IsPositive() && r.Interval != ""
}

// SubscriptionResult is the normalized outcome of CreateSubscription.
type SubscriptionResult struct {
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	SessionID      string `json:"sessionId,omitempty"`
	CheckoutURL    string `json:"checkoutUrl,omitempty"`
	PriceID        string `json:"priceId,omitempty"`
	Status         string `json:"status,omitempty"`
	Error          string `json:"error,omitempty"`
	Gateway        string `json:"gateway"`
}

// CancellationResult is the normalized outcome of CancelSubscription.
// Cancellation always happens at period end.
type CancellationResult struct {
	Success           bool       `json:"success"`
	SubscriptionID    string     `json:"subscriptionId,omitempty"`
	Status            string     `json:"status,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancelAtPeriodEnd"`
	CurrentPeriodEnd  *time.Time `json:"currentPeriodEnd,omitempty"`
	Error             string     `json:"error,omitempty"`
	Gateway           string     `json:"gateway"`
}

// WebhookSignature carries the provider headers needed to authenticate a
// callback. Stripe only uses Value; Mercado Pago also needs RequestID.
type WebhookSignature struct {
	Value     string
	RequestID string
}

// WebhookEvent is a provider callback normalized for internal dispatch.
type WebhookEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Gateway   string          `json:"gateway"`
	ObjectID  string          `json:"objectId,omitempty"`
	Object    json.RawMessage `json:"object,omitempty"`
	LiveMode  bool            `json:"liveMode"`
	CreatedAt time.Time       `json:"createdAt"`
}

// WebhookValidationResult is the outcome of ValidateWebhook.
type WebhookValidationResult struct {
	Valid bool
	Event *WebhookEvent
	Error string
}

// EventNotification is what gets forwarded downstream once a webhook
// event has been handled.
type EventNotification struct {
	Event     string          `json:"event"`
	EventID   string          `json:"event_id"`
	Gateway   string          `json:"gateway"`
	ObjectID  string          `json:"object_id,omitempty"`
	Object    json.RawMessage `json:"object,omitempty"`
	LiveMode  bool            `json:"live_mode"`
	Timestamp string          `json:"timestamp"`
}
