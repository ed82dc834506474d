// Package domain contains the core business entities for the payment service.
package domain

import "github.com/cockroachdb/errors"

// Domain errors - represent business rule violations.
var (
	// ErrInvalidRequest is returned for malformed or out-of-range input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrGatewayNotConfigured is returned when a gateway name is not registered.
	ErrGatewayNotConfigured = errors.New("gateway not configured")

	// ErrNotImplemented is returned by adapters for operations their provider
	// integration does not support.
	ErrNotImplemented = errors.New("operation not implemented")

	// ErrPaymentGatewayError is returned when a provider call fails.
	ErrPaymentGatewayError = errors.New("payment gateway error")

	// ErrWebhookValidationFailed is returned when a webhook signature is invalid.
	ErrWebhookValidationFailed = errors.New("webhook signature validation failed")

	// ErrNotifierFailed is returned when forwarding an event downstream fails.
	ErrNotifierFailed = errors.New("failed to notify downstream system")
)

// ServiceError wraps errors with additional context.
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(err error, message, code string) *ServiceError {
	return &ServiceError{Err: err, Message: message, Code: code}
}

// NotImplemented builds the error adapters return for unsupported operations.
func NotImplemented(gateway, operation string) error {
	return NewServiceError(ErrNotImplemented,
		gateway+" does not implement "+operation, "NOT_IMPLEMENTED")
}
