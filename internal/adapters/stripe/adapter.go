// Package stripe implements ports.Gateway on top of Stripe Checkout.
package stripe

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/logger"
)

const (
	defaultCurrency    = "brl"
	defaultPaymentName = "Pagamento"
	defaultProductName = "Assinatura"
)

// Config holds the Stripe credentials.
type Config struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
}

// Adapter implements ports.Gateway using the Stripe SDK.
type Adapter struct {
	api           api
	webhookSecret string
	baseURL       string
	logger        *zap.Logger
}

// NewAdapter creates a Stripe adapter. baseURL is used to build the default
// success and cancel URLs.
func NewAdapter(cfg Config, baseURL string, log *zap.Logger) *Adapter {
	return newAdapter(newSDKClient(cfg.SecretKey), cfg.WebhookSecret, baseURL, log)
}

func newAdapter(client api, webhookSecret, baseURL string, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		api:           client,
		webhookSecret: webhookSecret,
		baseURL:       strings.TrimRight(baseURL, "/"),
		logger:        log.Named(domain.GatewayStripe),
	}
}

// Name implements ports.Gateway.
func (a *Adapter) Name() string {
	return domain.GatewayStripe
}

// CreatePayment opens a one-time Checkout session with a single inline price.
func (a *Adapter) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	currency := normalizeCurrency(req.Currency)
	name := req.Description
	if name == "" {
		name = defaultPaymentName
	}

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
					UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(a.successURL(req.SuccessURL)),
		CancelURL:  stripe.String(a.cancelURL(req.CancelURL)),
		Metadata:   buildMetadata(req.Metadata, domain.MetadataTypePayment),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	session, err := a.api.CreateCheckoutSession(ctx, params)
	if err != nil {
		a.log(ctx).Error("failed to create checkout session", zap.Error(err))
		return &domain.PaymentResult{Success: false, Error: providerMessage(err), Gateway: a.Name()}, nil
	}

	a.log(ctx).Info("checkout session created",
		zap.String("session_id", session.ID),
		zap.String("amount", req.Amount.String()),
		zap.String("currency", currency),
	)

	return &domain.PaymentResult{
		Success:     true,
		PaymentID:   session.ID,
		CheckoutURL: session.URL,
		Amount:      req.Amount.InexactFloat64(),
		Currency:    currency,
		Status:      string(session.Status),
		Gateway:     a.Name(),
	}, nil
}

// CreateSubscription opens a subscription Checkout session. Without a price
// reference it first creates a product and a recurring price; the three calls
// run strictly in order and the first failure aborts the rest.
func (a *Adapter) CreateSubscription(ctx context.Context, req domain.SubscriptionRequest) (*domain.SubscriptionResult, error) {
	fail := func(err error) *domain.SubscriptionResult {
		return &domain.SubscriptionResult{Success: false, Error: providerMessage(err), Gateway: a.Name()}
	}

	priceID := req.PriceID
	if !req.HasPriceReference() {
		if !req.CanSynthesizePrice() {
			return &domain.SubscriptionResult{
				Success: false,
				Error:   "priceId OR amount + interval must be provided to create a subscription",
				Gateway: a.Name(),
			}, nil
		}

		var err error
		priceID, err = a.createRecurringPrice(ctx, req)
		if err != nil {
			return fail(err), nil
		}
	}

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(a.successURL(req.SuccessURL)),
		CancelURL:  stripe.String(a.cancelURL(req.CancelURL)),
		Metadata:   buildMetadata(req.Metadata, domain.MetadataTypeSubscription),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if req.TrialPeriodDays > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionCreateSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(req.TrialPeriodDays),
		}
	}

	session, err := a.api.CreateCheckoutSession(ctx, params)
	if err != nil {
		fields := []zap.Field{zap.Error(err), zap.String("price_id", priceID)}
		if !req.HasPriceReference() {
			// product and price stay behind upstream
			a.log(ctx).Warn("subscription checkout failed after price creation", fields...)
		} else {
			a.log(ctx).Error("failed to create subscription checkout session", fields...)
		}
		return fail(err), nil
	}

	result := &domain.SubscriptionResult{
		Success:     true,
		SessionID:   session.ID,
		CheckoutURL: session.URL,
		PriceID:     priceID,
		Status:      string(session.Status),
		Gateway:     a.Name(),
	}
	if session.Subscription != nil {
		result.SubscriptionID = session.Subscription.ID
	}

	a.log(ctx).Info("subscription checkout session created",
		zap.String("session_id", session.ID),
		zap.String("price_id", priceID),
	)
	return result, nil
}

func (a *Adapter) createRecurringPrice(ctx context.Context, req domain.SubscriptionRequest) (string, error) {
	name := req.ProductName
	if name == "" {
		name = defaultProductName
	}
	productParams := &stripe.ProductCreateParams{Name: stripe.String(name)}
	if req.Description != "" {
		productParams.Description = stripe.String(req.Description)
	}

	product, err := a.api.CreateProduct(ctx, productParams)
	if err != nil {
		a.log(ctx).Error("failed to create product", zap.Error(err))
		return "", err
	}

	intervalCount := req.IntervalCount
	if intervalCount < 1 {
		intervalCount = 1
	}

	price, err := a.api.CreatePrice(ctx, &stripe.PriceCreateParams{
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
		Currency:   stripe.String(normalizeCurrency(req.Currency)),
		Recurring: &stripe.PriceCreateRecurringParams{
			Interval:      stripe.String(strings.ToLower(req.Interval)),
			IntervalCount: stripe.Int64(intervalCount),
		},
	})
	if err != nil {
		// product stays behind upstream
		a.log(ctx).Warn("failed to create price", zap.Error(err), zap.String("product_id", product.ID))
		return "", err
	}

	return price.ID, nil
}

// GetPaymentStatus retrieves a Checkout session. paymentID is a session ID.
func (a *Adapter) GetPaymentStatus(ctx context.Context, paymentID string) (*domain.PaymentStatusResult, error) {
	session, err := a.api.RetrieveCheckoutSession(ctx, paymentID)
	if err != nil {
		a.log(ctx).Error("failed to retrieve checkout session", zap.Error(err), zap.String("session_id", paymentID))
		return &domain.PaymentStatusResult{Success: false, Error: providerMessage(err), Gateway: a.Name()}, nil
	}

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	return &domain.PaymentStatusResult{
		Success:       true,
		Status:        string(session.Status),
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   fromMinorUnits(session.AmountTotal).InexactFloat64(),
		Currency:      string(session.Currency),
		CustomerEmail: email,
		Gateway:       a.Name(),
	}, nil
}

// CancelSubscription marks the subscription to cancel at period end.
func (a *Adapter) CancelSubscription(ctx context.Context, subscriptionID string) (*domain.CancellationResult, error) {
	sub, err := a.api.UpdateSubscription(ctx, subscriptionID, &stripe.SubscriptionUpdateParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		a.log(ctx).Error("failed to cancel subscription", zap.Error(err), zap.String("subscription_id", subscriptionID))
		return &domain.CancellationResult{Success: false, Error: providerMessage(err), Gateway: a.Name()}, nil
	}

	a.log(ctx).Info("subscription set to cancel at period end", zap.String("subscription_id", sub.ID))

	return &domain.CancellationResult{
		Success:           true,
		SubscriptionID:    sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: true,
		CurrentPeriodEnd:  currentPeriodEnd(sub),
		Gateway:           a.Name(),
	}, nil
}

// ValidateWebhook verifies the Stripe-Signature header against the raw body.
// Without a webhook secret every payload is rejected as invalid.
func (a *Adapter) ValidateWebhook(ctx context.Context, payload []byte, sig domain.WebhookSignature) (*domain.WebhookValidationResult, error) {
	if a.webhookSecret == "" {
		a.log(ctx).Warn("webhook rejected, STRIPE_WEBHOOK_SECRET is not set")
		return &domain.WebhookValidationResult{Valid: false, Error: "webhook secret not configured"}, nil
	}

	event, err := webhook.ConstructEventWithOptions(payload, sig.Value, a.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		a.log(ctx).Warn("webhook signature verification failed", zap.Error(err))
		return &domain.WebhookValidationResult{Valid: false, Error: err.Error()}, nil
	}

	out := &domain.WebhookEvent{
		ID:        event.ID,
		Type:      string(event.Type),
		Gateway:   a.Name(),
		LiveMode:  event.Livemode,
		CreatedAt: time.Unix(event.Created, 0).UTC(),
	}
	if event.Data != nil {
		out.Object = event.Data.Raw
		out.ObjectID = objectID(event.Data.Raw)
	}

	return &domain.WebhookValidationResult{Valid: true, Event: out}, nil
}

func (a *Adapter) successURL(u string) string {
	if u != "" {
		return u
	}
	return a.baseURL + "/success?session_id={CHECKOUT_SESSION_ID}"
}

func (a *Adapter) cancelURL(u string) string {
	if u != "" {
		return u
	}
	return a.baseURL + "/cancel"
}

func (a *Adapter) log(ctx context.Context) *zap.Logger {
	return logger.WithContext(ctx, a.logger)
}

func buildMetadata(metadata map[string]any, kind string) map[string]string {
	out := domain.SanitizeMetadata(metadata)
	out["gateway"] = domain.GatewayStripe
	out["type"] = kind
	return out
}

func normalizeCurrency(currency string) string {
	if currency == "" {
		return defaultCurrency
	}
	return strings.ToLower(currency)
}

// toMinorUnits converts to cents, rounding half away from zero.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func fromMinorUnits(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}

func currentPeriodEnd(sub *stripe.Subscription) *time.Time {
	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].CurrentPeriodEnd == 0 {
		return nil
	}
	t := time.Unix(sub.Items.Data[0].CurrentPeriodEnd, 0).UTC()
	return &t
}

func objectID(raw json.RawMessage) string {
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	return obj.ID
}

// providerMessage extracts the human message from a Stripe API error.
func providerMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
