// Package mercadopago implements ports.Gateway using the official Mercado Pago SDK.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/logger"
)

const (
	defaultCurrency    = "BRL"
	defaultPaymentName = "Pagamento"

	// WebhookPath is where Mercado Pago is told to deliver notifications.
	WebhookPath = "/api/v1/webhooks/mercadopago"
)

// Config holds the Mercado Pago credentials.
type Config struct {
	AccessToken   string
	PublicKey     string
	WebhookSecret string
}

// api is the part of the SDK the adapter calls.
type api interface {
	CreatePreference(ctx context.Context, req preference.Request) (*preference.Response, error)
	GetPayment(ctx context.Context, id int) (*payment.Response, error)
}

type sdkClient struct {
	preferences preference.Client
	payments    payment.Client
}

func (c *sdkClient) CreatePreference(ctx context.Context, req preference.Request) (*preference.Response, error) {
	return c.preferences.Create(ctx, req)
}

func (c *sdkClient) GetPayment(ctx context.Context, id int) (*payment.Response, error) {
	return c.payments.Get(ctx, id)
}

// Adapter implements ports.Gateway for Checkout Pro. Recurring billing is
// not supported and reports domain.ErrNotImplemented.
type Adapter struct {
	api       api
	validator *SignatureValidator
	baseURL   string
	logger    *zap.Logger
}

// NewAdapter creates a new Mercado Pago adapter.
func NewAdapter(cfg Config, baseURL string, log *zap.Logger) (*Adapter, error) {
	mpCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		return nil, domain.NewServiceError(domain.ErrPaymentGatewayError,
			"failed to create MP config: "+err.Error(), "MP_CONFIG_ERROR")
	}

	client := &sdkClient{
		preferences: preference.NewClient(mpCfg),
		payments:    payment.NewClient(mpCfg),
	}
	return newAdapter(client, NewSignatureValidator(cfg.WebhookSecret), baseURL, log), nil
}

func newAdapter(client api, validator *SignatureValidator, baseURL string, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		api:       client,
		validator: validator,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    log.Named(domain.GatewayMercadoPago),
	}
}

// Name implements ports.Gateway.
func (a *Adapter) Name() string {
	return domain.GatewayMercadoPago
}

// CreatePayment creates a Checkout Pro preference.
func (a *Adapter) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	title := req.Description
	if title == "" {
		title = defaultPaymentName
	}

	metadata := domain.SanitizeMetadata(req.Metadata)
	externalRef := metadata["external_reference"]
	if externalRef == "" {
		externalRef = uuid.NewString()
	}

	prefRequest := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       title,
				Description: req.Description,
				Quantity:    1,
				UnitPrice:   req.Amount.InexactFloat64(),
				CurrencyID:  currency,
			},
		},
		ExternalReference: externalRef,
		AutoReturn:        "approved",
		BackURLs: &preference.BackURLsRequest{
			Success: a.orDefault(req.SuccessURL, "/success"),
			Failure: a.orDefault(req.CancelURL, "/cancel"),
			Pending: a.baseURL + "/pending",
		},
		Metadata: stampMetadata(metadata, domain.MetadataTypePayment),
	}
	if req.CustomerEmail != "" {
		prefRequest.Payer = &preference.PayerRequest{Email: req.CustomerEmail}
	}
	// Mercado Pago only delivers notifications to public https endpoints.
	if strings.HasPrefix(a.baseURL, "https://") {
		prefRequest.NotificationURL = a.baseURL + WebhookPath
	}

	result, err := a.api.CreatePreference(ctx, prefRequest)
	if err != nil {
		a.log(ctx).Error("failed to create preference", zap.Error(err))
		return &domain.PaymentResult{Success: false, Error: err.Error(), Gateway: a.Name()}, nil
	}

	checkoutURL := result.InitPoint
	if checkoutURL == "" {
		checkoutURL = result.SandboxInitPoint
	}

	a.log(ctx).Info("preference created",
		zap.String("preference_id", result.ID),
		zap.String("external_reference", externalRef),
		zap.String("amount", req.Amount.String()),
	)

	return &domain.PaymentResult{
		Success:     true,
		PaymentID:   result.ID,
		CheckoutURL: checkoutURL,
		Amount:      req.Amount.InexactFloat64(),
		Currency:    currency,
		Status:      "pending",
		Gateway:     a.Name(),
	}, nil
}

// CreateSubscription is not supported for Mercado Pago.
func (a *Adapter) CreateSubscription(_ context.Context, _ domain.SubscriptionRequest) (*domain.SubscriptionResult, error) {
	return nil, domain.NotImplemented(a.Name(), "subscriptions")
}

// GetPaymentStatus fetches a payment. paymentID is the numeric Mercado Pago
// payment id, as delivered by webhook notifications.
func (a *Adapter) GetPaymentStatus(ctx context.Context, paymentID string) (*domain.PaymentStatusResult, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return &domain.PaymentStatusResult{Success: false, Error: "invalid payment ID format", Gateway: a.Name()}, nil
	}

	result, err := a.api.GetPayment(ctx, id)
	if err != nil {
		a.log(ctx).Error("failed to get payment info", zap.Error(err), zap.String("payment_id", paymentID))
		return &domain.PaymentStatusResult{Success: false, Error: err.Error(), Gateway: a.Name()}, nil
	}

	return &domain.PaymentStatusResult{
		Success:       true,
		Status:        result.Status,
		PaymentStatus: result.StatusDetail,
		AmountTotal:   result.TransactionAmount,
		Currency:      result.CurrencyID,
		CustomerEmail: result.Payer.Email,
		Gateway:       a.Name(),
	}, nil
}

// CancelSubscription is not supported for Mercado Pago.
func (a *Adapter) CancelSubscription(_ context.Context, _ string) (*domain.CancellationResult, error) {
	return nil, domain.NotImplemented(a.Name(), "subscription cancellation")
}

// notification is the body Mercado Pago posts to the webhook URL.
type notification struct {
	ID          flexString      `json:"id"`
	Type        string          `json:"type"`
	Action      string          `json:"action"`
	LiveMode    bool            `json:"live_mode"`
	DateCreated string          `json:"date_created"`
	Data        json.RawMessage `json:"data"`
}

// ValidateWebhook decodes a notification and, when a secret is configured,
// checks its x-signature.
func (a *Adapter) ValidateWebhook(ctx context.Context, payload []byte, sig domain.WebhookSignature) (*domain.WebhookValidationResult, error) {
	var n notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return &domain.WebhookValidationResult{Valid: false, Error: "invalid notification payload"}, nil
	}

	var data struct {
		ID flexString `json:"id"`
	}
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &data)
	}

	if a.validator.Enabled() && !a.validator.Validate(sig.Value, sig.RequestID, string(data.ID)) {
		a.log(ctx).Warn("webhook signature validation failed", zap.String("data_id", string(data.ID)))
		return &domain.WebhookValidationResult{Valid: false, Error: "signature mismatch"}, nil
	}

	eventType := n.Type
	if eventType == "" {
		eventType = n.Action
	}

	createdAt, err := time.Parse(time.RFC3339, n.DateCreated)
	if err != nil {
		createdAt = time.Now().UTC()
	}

	return &domain.WebhookValidationResult{
		Valid: true,
		Event: &domain.WebhookEvent{
			ID:        string(n.ID),
			Type:      eventType,
			Gateway:   a.Name(),
			ObjectID:  string(data.ID),
			Object:    n.Data,
			LiveMode:  n.LiveMode,
			CreatedAt: createdAt,
		},
	}, nil
}

func (a *Adapter) orDefault(u, path string) string {
	if u != "" {
		return u
	}
	return a.baseURL + path
}

func (a *Adapter) log(ctx context.Context) *zap.Logger {
	return logger.WithContext(ctx, a.logger)
}

func stampMetadata(metadata map[string]string, kind string) map[string]any {
	out := make(map[string]any, len(metadata)+2)
	for k, v := range metadata {
		out[k] = v
	}
	out["gateway"] = domain.GatewayMercadoPago
	out["type"] = kind
	return out
}

// flexString accepts both JSON strings and numbers; Mercado Pago is not
// consistent about ids.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
