package api

import (
	"reflect"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/salescode/salescode-payments/internal/core/domain"
)

const internalErrorMessage = "Internal server error"

// CreatePaymentRequest is the body of POST /payments.
type CreatePaymentRequest struct {
	Gateway       string          `json:"gateway" binding:"required" example:"stripe"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"99.90"`
	Currency      string          `json:"currency,omitempty" example:"brl"`
	Description   string          `json:"description" binding:"required" example:"Plano Pro"`
	CustomerEmail string          `json:"customerEmail,omitempty" binding:"omitempty,email"`
	SuccessURL    string          `json:"successUrl,omitempty" binding:"omitempty,url"`
	CancelURL     string          `json:"cancelUrl,omitempty" binding:"omitempty,url"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
}

// ToDomain strips the gateway selector.
func (r CreatePaymentRequest) ToDomain() domain.PaymentRequest {
	return domain.PaymentRequest{
		Amount:        r.Amount,
		Currency:      r.Currency,
		Description:   strings.TrimSpace(r.Description),
		CustomerEmail: r.CustomerEmail,
		SuccessURL:    r.SuccessURL,
		CancelURL:     r.CancelURL,
		Metadata:      r.Metadata,
	}
}

// CreateSubscriptionRequest is the body of POST /subscriptions. Either
// priceId or amount and interval must be present.
type CreateSubscriptionRequest struct {
	Gateway         string          `json:"gateway" binding:"required" example:"stripe"`
	PriceID         string          `json:"priceId,omitempty" example:"price_1PZ"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"number" example:"49.90"`
	Currency        string          `json:"currency,omitempty" example:"brl"`
	Interval        string          `json:"interval,omitempty" example:"month"`
	IntervalCount   int64           `json:"intervalCount,omitempty" binding:"omitempty,gte=1" example:"1"`
	ProductName     string          `json:"productName,omitempty"`
	Description     string          `json:"description,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty" binding:"omitempty,email"`
	TrialPeriodDays int64           `json:"trialPeriodDays,omitempty" binding:"omitempty,gte=0"`
	SuccessURL      string          `json:"successUrl,omitempty" binding:"omitempty,url"`
	CancelURL       string          `json:"cancelUrl,omitempty" binding:"omitempty,url"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
}

// ToDomain strips the gateway selector.
func (r CreateSubscriptionRequest) ToDomain() domain.SubscriptionRequest {
	return domain.SubscriptionRequest{
		PriceID:         strings.TrimSpace(r.PriceID),
		Amount:          r.Amount,
		Currency:        r.Currency,
		Interval:        strings.ToLower(r.Interval),
		IntervalCount:   r.IntervalCount,
		ProductName:     r.ProductName,
		Description:     r.Description,
		CustomerEmail:   r.CustomerEmail,
		TrialPeriodDays: r.TrialPeriodDays,
		SuccessURL:      r.SuccessURL,
		CancelURL:       r.CancelURL,
		Metadata:        r.Metadata,
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Gateway string `json:"gateway,omitempty"`
}

// GatewaysResponse lists the configured gateways.
type GatewaysResponse struct {
	Success  bool     `json:"success"`
	Gateways []string `json:"gateways"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status      string   `json:"status"`
	Timestamp   string   `json:"timestamp"`
	Uptime      float64  `json:"uptime"`
	Version     string   `json:"version"`
	Environment string   `json:"environment"`
	Gateways    []string `json:"gateways"`
}

// WebhookAck acknowledges a processed webhook.
type WebhookAck struct {
	Received bool `json:"received"`
}

// WebhookErrorResponse is returned when a webhook is rejected.
type WebhookErrorResponse struct {
	Error string `json:"error"`
}

// RateLimitResponse is returned with HTTP 429.
type RateLimitResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report json field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindingErrorMessage turns binding failures into a short client message.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body: " + err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "url":
		return fe.Field() + " must be an absolute URL"
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
