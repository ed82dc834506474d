package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/salescode/salescode-payments/internal/core/domain"
)

type MockGateway struct {
	mock.Mock
	name string
}

func newMockGateway(name string) *MockGateway {
	return &MockGateway{name: name}
}

func (m *MockGateway) Name() string { return m.name }

func (m *MockGateway) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentResult), args.Error(1)
}

func (m *MockGateway) CreateSubscription(ctx context.Context, req domain.SubscriptionRequest) (*domain.SubscriptionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionResult), args.Error(1)
}

func (m *MockGateway) GetPaymentStatus(ctx context.Context, paymentID string) (*domain.PaymentStatusResult, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentStatusResult), args.Error(1)
}

func (m *MockGateway) CancelSubscription(ctx context.Context, subscriptionID string) (*domain.CancellationResult, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CancellationResult), args.Error(1)
}

func (m *MockGateway) ValidateWebhook(ctx context.Context, payload []byte, sig domain.WebhookSignature) (*domain.WebhookValidationResult, error) {
	args := m.Called(ctx, payload, sig)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WebhookValidationResult), args.Error(1)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, event *domain.WebhookEvent) error {
	return m.Called(ctx, event).Error(0)
}
