package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/core/ports"
	"github.com/salescode/salescode-payments/internal/core/service"
	"github.com/salescode/salescode-payments/internal/logger"
)

// GatewayRegistry resolves gateways by name.
type GatewayRegistry interface {
	Resolve(name string) (ports.Gateway, error)
	IsAvailable(name string) bool
	Available() []string
}

// EventDispatcher handles verified webhook events.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event *domain.WebhookEvent) error
}

// BuildInfo is reported by the health check.
type BuildInfo struct {
	Version     string
	Environment string
}

// Handler contains the HTTP handlers for the payment API.
type Handler struct {
	registry   GatewayRegistry
	dispatcher EventDispatcher
	info       BuildInfo
	startedAt  time.Time
	now        func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(registry GatewayRegistry, dispatcher EventDispatcher, info BuildInfo) *Handler {
	return &Handler{
		registry:   registry,
		dispatcher: dispatcher,
		info:       info,
		startedAt:  time.Now(),
		now:        time.Now,
	}
}

// Health godoc
// @Summary Health check
// @Description Reports service status and the configured gateways
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Timestamp:   now.UTC().Format(time.RFC3339),
		Uptime:      now.Sub(h.startedAt).Seconds(),
		Version:     h.info.Version,
		Environment: h.info.Environment,
		Gateways:    h.registry.Available(),
	})
}

// ListGateways godoc
// @Summary List available gateways
// @Tags payments,subscriptions
// @Produce json
// @Success 200 {object} GatewaysResponse
// @Router /payments/gateways [get]
// @Router /subscriptions/gateways [get]
func (h *Handler) ListGateways(c *gin.Context) {
	c.JSON(http.StatusOK, GatewaysResponse{Success: true, Gateways: h.registry.Available()})
}

// resolveGateway writes a 400 naming the available gateways when name is
// not registered.
func (h *Handler) resolveGateway(c *gin.Context, name string) (ports.Gateway, bool) {
	if !h.registry.IsAvailable(name) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   service.UnavailableMessage(name, h.registry.Available()),
			Code:    "GATEWAY_NOT_AVAILABLE",
			Gateway: name,
		})
		return nil, false
	}

	gw, err := h.registry.Resolve(name)
	if err != nil {
		handleServiceError(c, name, err)
		return nil, false
	}
	return gw, true
}

// respond maps a gateway outcome to HTTP. Errors map by kind and an
// unsuccessful result becomes a 400. Result bodies are sent verbatim.
func respond(c *gin.Context, gateway string, success bool, result any, err error) {
	switch {
	case err != nil:
		handleServiceError(c, gateway, err)
	case !success:
		c.JSON(http.StatusBadRequest, result)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// handleServiceError maps domain errors to HTTP responses.
func handleServiceError(c *gin.Context, gateway string, err error) {
	_ = c.Error(err)

	var svcErr *domain.ServiceError
	message := internalErrorMessage
	code := "INTERNAL_ERROR"
	if errors.As(err, &svcErr) {
		message, code = svcErr.Message, svcErr.Code
	}

	statusCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		statusCode = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotImplemented):
		statusCode = http.StatusNotImplemented
	case errors.Is(err, domain.ErrGatewayNotConfigured):
		statusCode = http.StatusBadRequest
	default:
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("gateway", gateway),
			zap.Error(err),
		)
		message, code = internalErrorMessage, "INTERNAL_ERROR"
	}

	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
		Gateway: gateway,
	})
}
