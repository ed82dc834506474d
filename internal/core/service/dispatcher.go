package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/core/ports"
	"github.com/salescode/salescode-payments/internal/logger"
)

// Webhook event types with a dedicated hook.
const (
	EventCheckoutSessionCompleted    = "checkout.session.completed"
	EventPaymentIntentSucceeded      = "payment_intent.succeeded"
	EventInvoicePaymentSucceeded     = "invoice.payment_succeeded"
	EventCustomerSubscriptionDeleted = "customer.subscription.deleted"
	EventMercadoPagoPayment          = "payment"
)

// EventHandler reacts to one verified webhook event.
type EventHandler func(ctx context.Context, event *domain.WebhookEvent) error

// EventDispatcher routes verified webhook events to hooks by event type.
// Hooks are registered before the server starts; Dispatch is read-only.
type EventDispatcher struct {
	registry *GatewayRegistry
	notifier ports.EventNotifier
	handlers map[string]EventHandler
	now      func() time.Time
}

// NewEventDispatcher wires the default hooks. notifier may be nil, in which
// case events are only logged.
func NewEventDispatcher(registry *GatewayRegistry, notifier ports.EventNotifier) *EventDispatcher {
	d := &EventDispatcher{
		registry: registry,
		notifier: notifier,
		handlers: make(map[string]EventHandler),
		now:      time.Now,
	}

	d.On(EventCheckoutSessionCompleted, d.forward("Checkout session completed"))
	d.On(EventPaymentIntentSucceeded, d.forward("Payment intent succeeded"))
	d.On(EventInvoicePaymentSucceeded, d.forward("Invoice payment succeeded"))
	d.On(EventCustomerSubscriptionDeleted, d.forward("Subscription deleted"))
	d.On(EventMercadoPagoPayment, d.handleMercadoPagoPayment)

	return d
}

// On registers or replaces the hook for eventType.
func (d *EventDispatcher) On(eventType string, handler EventHandler) {
	d.handlers[eventType] = handler
}

// Dispatch runs the hook registered for the event type. Unknown types are
// logged and accepted.
func (d *EventDispatcher) Dispatch(ctx context.Context, event *domain.WebhookEvent) error {
	if event == nil {
		return errors.New("nil webhook event")
	}

	handler, ok := d.handlers[event.Type]
	if !ok {
		logger.FromCtx(ctx).Info("Unhandled webhook event type",
			zap.String("gateway", event.Gateway),
			zap.String("event_type", event.Type),
			zap.String("event_id", event.ID),
		)
		return nil
	}

	if err := handler(ctx, event); err != nil {
		return errors.Wrapf(err, "handle %s event %s", event.Type, event.ID)
	}
	return nil
}

func (d *EventDispatcher) forward(message string) EventHandler {
	return func(ctx context.Context, event *domain.WebhookEvent) error {
		logger.FromCtx(ctx).Info(message,
			zap.String("gateway", event.Gateway),
			zap.String("event_id", event.ID),
			zap.String("object_id", event.ObjectID),
		)
		return d.notify(ctx, event.Type, event, event.Object)
	}
}

// handleMercadoPagoPayment fetches the payment the notification points at
// and forwards it under a status-specific event name.
func (d *EventDispatcher) handleMercadoPagoPayment(ctx context.Context, event *domain.WebhookEvent) error {
	log := logger.FromCtx(ctx).With(
		zap.String("gateway", event.Gateway),
		zap.String("payment_id", event.ObjectID),
	)

	if event.ObjectID == "" {
		log.Warn("Payment notification without data.id, ignoring")
		return nil
	}

	gw, err := d.registry.Resolve(event.Gateway)
	if err != nil {
		return err
	}

	status, err := gw.GetPaymentStatus(ctx, event.ObjectID)
	if err != nil {
		return err
	}
	if !status.Success {
		return domain.NewServiceError(domain.ErrPaymentGatewayError, status.Error, "PAYMENT_LOOKUP_FAILED")
	}

	log.Info("Payment notification processed", zap.String("status", status.Status))

	object, err := json.Marshal(status)
	if err != nil {
		return errors.Wrap(err, "marshal payment status")
	}
	return d.notify(ctx, mapStatusToEvent(status.Status), event, object)
}

func (d *EventDispatcher) notify(ctx context.Context, name string, event *domain.WebhookEvent, object json.RawMessage) error {
	if d.notifier == nil {
		return nil
	}
	return d.notifier.Notify(ctx, domain.EventNotification{
		Event:     name,
		EventID:   event.ID,
		Gateway:   event.Gateway,
		ObjectID:  event.ObjectID,
		Object:    object,
		LiveMode:  event.LiveMode,
		Timestamp: d.now().UTC().Format(time.RFC3339),
	})
}

// mapStatusToEvent maps a Mercado Pago payment status to an event name.
func mapStatusToEvent(status string) string {
	switch status {
	case "approved":
		return "payment.approved"
	case "pending", "in_process":
		return "payment.pending"
	case "rejected":
		return "payment.rejected"
	case "cancelled":
		return "payment.cancelled"
	case "refunded":
		return "payment.refunded"
	default:
		return "payment.updated"
	}
}
