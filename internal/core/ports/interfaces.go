// Package ports defines the interfaces (ports) for the payment service.
// These are contracts that adapters must implement.
package ports

import (
	"context"

	"github.com/salescode/salescode-payments/internal/core/domain"
)

// Gateway is the capability set every payment provider adapter implements.
//
// Provider-side failures are reported through the result (Success=false,
// Error set) with a nil error. A non-nil error means the operation is not
// implemented by the adapter (domain.ErrNotImplemented) or something
// unexpected broke inside the service.
type Gateway interface {
	// Name returns the lowercase identifier the gateway is registered under.
	Name() string

	// CreatePayment opens a one-time hosted checkout.
	CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error)

	// CreateSubscription opens a recurring hosted checkout, creating the
	// product and price upstream when no price reference is given.
	CreateSubscription(ctx context.Context, req domain.SubscriptionRequest) (*domain.SubscriptionResult, error)

	// GetPaymentStatus fetches the current state of a checkout or payment.
	GetPaymentStatus(ctx context.Context, paymentID string) (*domain.PaymentStatusResult, error)

	// CancelSubscription schedules cancellation at the end of the current period.
	CancelSubscription(ctx context.Context, subscriptionID string) (*domain.CancellationResult, error)

	// ValidateWebhook authenticates a raw callback body and decodes it.
	ValidateWebhook(ctx context.Context, payload []byte, sig domain.WebhookSignature) (*domain.WebhookValidationResult, error)
}

// EventNotifier forwards handled webhook events to a downstream system.
type EventNotifier interface {
	Notify(ctx context.Context, notification domain.EventNotification) error
}
