package mock

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescode/salescode-payments/internal/core/domain"
)

func TestGateway_Name(t *testing.T) {
	assert.Equal(t, "mock", New("", "", nil).Name())
	assert.Equal(t, "stub", New("Stub", "", nil).Name())
}

func TestGateway_PaymentRoundTrip(t *testing.T) {
	ctx := context.Background()
	gw := New("stub", "http://localhost:3000/", nil)

	res, err := gw.CreatePayment(ctx, domain.PaymentRequest{
		Amount:        decimal.RequireFromString("25.50"),
		Description:   "x",
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "stub", res.Gateway)
	assert.Equal(t, "brl", res.Currency)
	assert.Equal(t, 25.5, res.Amount)
	assert.Equal(t, "http://localhost:3000/mock/checkout/"+res.PaymentID, res.CheckoutURL)

	status, err := gw.GetPaymentStatus(ctx, res.PaymentID)
	require.NoError(t, err)
	assert.True(t, status.Success)
	assert.Equal(t, 25.5, status.AmountTotal)
	assert.Equal(t, "buyer@example.com", status.CustomerEmail)

	missing, err := gw.GetPaymentStatus(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, missing.Success)
	assert.Equal(t, "stub", missing.Gateway)
}

func TestGateway_CreateSubscription(t *testing.T) {
	ctx := context.Background()
	gw := New("mock", "", nil)

	res, err := gw.CreateSubscription(ctx, domain.SubscriptionRequest{PriceID: "price_1"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "price_1", res.PriceID)

	res, err = gw.CreateSubscription(ctx, domain.SubscriptionRequest{Amount: decimal.NewFromInt(10), Interval: "month"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.PriceID)

	res, err = gw.CreateSubscription(ctx, domain.SubscriptionRequest{})
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestGateway_CancelSubscription(t *testing.T) {
	gw := New("mock", "", nil)
	gw.now = func() time.Time { return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC) }

	res, err := gw.CancelSubscription(context.Background(), "sub_1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.CancelAtPeriodEnd)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), *res.CurrentPeriodEnd)
}

func TestGateway_ValidateWebhook(t *testing.T) {
	ctx := context.Background()
	gw := New("mock", "", nil)
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`)

	res, err := gw.ValidateWebhook(ctx, payload, domain.WebhookSignature{Value: SignatureValue})
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Equal(t, "evt_1", res.Event.ID)
	assert.Equal(t, "cs_1", res.Event.ObjectID)

	res, err = gw.ValidateWebhook(ctx, payload, domain.WebhookSignature{Value: "forged"})
	require.NoError(t, err)
	assert.False(t, res.Valid)

	res, err = gw.ValidateWebhook(ctx, []byte(`{}`), domain.WebhookSignature{Value: SignatureValue})
	require.NoError(t, err)
	assert.False(t, res.Valid)
}
