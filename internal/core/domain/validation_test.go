package domain

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   bool
	}{
		{"zero", "0", false},
		{"negative", "-10", false},
		{"smallest cent", "0.01", true},
		{"typical", "99.90", true},
		{"just below cap", "999999.99", true},
		{"cap", "1000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestIsValidCurrencyAndInterval(t *testing.T) {
	assert.True(t, IsValidCurrency("brl"))
	assert.True(t, IsValidCurrency("USD"))
	assert.False(t, IsValidCurrency("jpy"))
	assert.False(t, IsValidCurrency("ars"))

	assert.True(t, IsValidInterval("month"))
	assert.True(t, IsValidInterval("Year"))
	assert.False(t, IsValidInterval("fortnight"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("buyer@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("Buyer <buyer@example.com>"))
}

func TestSanitizeMetadata(t *testing.T) {
	longKey := strings.Repeat("k", MaxMetadataKeyLength+1)
	longValue := strings.Repeat("v", MaxMetadataValueLength+1)

	got := SanitizeMetadata(map[string]any{
		"order_id": "ord_1",
		"quantity": float64(3),
		"ratio":    1.5,
		"count":    7,
		"gift":     true,
		longKey:    "dropped",
		"note":     longValue,
		"nested":   map[string]any{"a": 1},
		"list":     []any{"a"},
		"nothing":  nil,
	})

	assert.Equal(t, map[string]string{
		"order_id": "ord_1",
		"quantity": "3",
		"ratio":    "1.5",
		"count":    "7",
		"gift":     "true",
	}, got)
}

func TestSanitizeMetadata_CountsCharacters(t *testing.T) {
	keyAtLimit := strings.Repeat("é", MaxMetadataKeyLength)
	keyOverLimit := strings.Repeat("é", MaxMetadataKeyLength+1)
	valueAtLimit := strings.Repeat("ã", MaxMetadataValueLength)
	valueOverLimit := strings.Repeat("ã", MaxMetadataValueLength+1)

	got := SanitizeMetadata(map[string]any{
		keyAtLimit:   "x",
		keyOverLimit: "x",
		"descricao":  valueAtLimit,
		"observação": strings.Repeat("ç", 300),
		"too_long":   valueOverLimit,
	})

	assert.Equal(t, map[string]string{
		keyAtLimit:   "x",
		"descricao":  valueAtLimit,
		"observação": strings.Repeat("ç", 300),
	}, got)
}

func TestSanitizeMetadata_Nil(t *testing.T) {
	assert.Empty(t, SanitizeMetadata(nil))
}

func TestPaymentRequest_Validate(t *testing.T) {
	valid := PaymentRequest{Amount: decimal.NewFromInt(10), Description: "Plano"}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*PaymentRequest)
		code   string
	}{
		{"zero amount", func(r *PaymentRequest) { r.Amount = decimal.Zero }, "INVALID_AMOUNT"},
		{"negative amount", func(r *PaymentRequest) { r.Amount = decimal.NewFromInt(-1) }, "INVALID_AMOUNT"},
		{"bad currency", func(r *PaymentRequest) { r.Currency = "xyz" }, "INVALID_CURRENCY"},
		{"blank description", func(r *PaymentRequest) { r.Description = "  " }, "VALIDATION_ERROR"},
		{"bad email", func(r *PaymentRequest) { r.CustomerEmail = "nope" }, "INVALID_EMAIL"},
		{"relative success url", func(r *PaymentRequest) { r.SuccessURL = "/ok" }, "INVALID_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))

			var svcErr *ServiceError
			require.True(t, errors.As(err, &svcErr))
			assert.Equal(t, tt.code, svcErr.Code)
		})
	}
}

func TestSubscriptionRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  SubscriptionRequest
		code string
	}{
		{"price reference", SubscriptionRequest{PriceID: "price_1"}, ""},
		{"amount and interval", SubscriptionRequest{Amount: decimal.NewFromInt(50), Interval: "month"}, ""},
		{"nothing", SubscriptionRequest{}, "MISSING_PRICE"},
		{"amount only", SubscriptionRequest{Amount: decimal.NewFromInt(50)}, "MISSING_PRICE"},
		{"interval only", SubscriptionRequest{Interval: "month"}, "MISSING_PRICE"},
		{"bad interval", SubscriptionRequest{Amount: decimal.NewFromInt(50), Interval: "decade"}, "INVALID_INTERVAL"},
		{"amount over cap", SubscriptionRequest{Amount: decimal.NewFromInt(2_000_000), Interval: "month"}, "INVALID_AMOUNT"},
		{"negative trial", SubscriptionRequest{PriceID: "price_1", TrialPeriodDays: -1}, "VALIDATION_ERROR"},
		{"bad email", SubscriptionRequest{PriceID: "price_1", CustomerEmail: "x"}, "INVALID_EMAIL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			var svcErr *ServiceError
			require.True(t, errors.As(err, &svcErr))
			assert.Equal(t, tt.code, svcErr.Code)
		})
	}
}

func TestServiceError(t *testing.T) {
	err := NewServiceError(ErrPaymentGatewayError, "stripe down", "GATEWAY_ERROR")
	assert.Equal(t, "stripe down: payment gateway error", err.Error())
	assert.True(t, errors.Is(err, ErrPaymentGatewayError))

	bare := &ServiceError{Err: ErrInvalidRequest}
	assert.Equal(t, "invalid request", bare.Error())

	ni := NotImplemented("mercadopago", "CancelSubscription")
	assert.True(t, errors.Is(ni, ErrNotImplemented))
}
