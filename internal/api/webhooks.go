package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/logger"
)

const (
	headerStripeSignature = "Stripe-Signature"
	headerMPSignature     = "x-signature"
	headerMPRequestID     = "x-request-id"
	headerMockSignature   = "X-Mock-Signature"

	webhookFailedMessage = "Webhook processing failed"
)

// StripeWebhook godoc
// @Summary Stripe webhook
// @Description Verifies the Stripe-Signature header against the raw body and dispatches the event
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} WebhookAck
// @Failure 400 {object} WebhookErrorResponse
// @Failure 500 {object} WebhookErrorResponse
// @Router /webhooks/stripe [post]
func (h *Handler) StripeWebhook(c *gin.Context) {
	signature := c.GetHeader(headerStripeSignature)
	if signature == "" {
		c.JSON(http.StatusBadRequest, WebhookErrorResponse{Error: "Missing stripe-signature header"})
		return
	}
	h.processWebhook(c, domain.GatewayStripe, domain.WebhookSignature{Value: signature})
}

// MercadoPagoWebhook godoc
// @Summary Mercado Pago webhook
// @Description Validates x-signature when a secret is configured. Payloads are accepted and logged when Mercado Pago is not configured.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param x-signature header string false "Mercado Pago signature"
// @Param x-request-id header string false "Mercado Pago request id"
// @Success 200 {object} WebhookAck
// @Failure 400 {object} WebhookErrorResponse
// @Failure 500 {object} WebhookErrorResponse
// @Router /webhooks/mercadopago [post]
func (h *Handler) MercadoPagoWebhook(c *gin.Context) {
	if !h.registry.IsAvailable(domain.GatewayMercadoPago) {
		payload, _ := c.GetRawData()
		logger.FromCtx(c.Request.Context()).Info("Mercado Pago webhook received while gateway is not configured",
			zap.ByteString("payload", payload),
		)
		c.JSON(http.StatusOK, WebhookAck{Received: true})
		return
	}

	h.processWebhook(c, domain.GatewayMercadoPago, domain.WebhookSignature{
		Value:     c.GetHeader(headerMPSignature),
		RequestID: c.GetHeader(headerMPRequestID),
	})
}

// MockWebhook godoc
// @Summary Mock gateway webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Mock-Signature header string true "Must equal mock-signature"
// @Success 200 {object} WebhookAck
// @Failure 400 {object} WebhookErrorResponse
// @Failure 500 {object} WebhookErrorResponse
// @Router /webhooks/mock [post]
func (h *Handler) MockWebhook(c *gin.Context) {
	h.processWebhook(c, domain.GatewayMock, domain.WebhookSignature{
		Value: c.GetHeader(headerMockSignature),
	})
}

// processWebhook verifies the raw body with the named gateway and hands the
// event to the dispatcher.
func (h *Handler) processWebhook(c *gin.Context, gatewayName string, sig domain.WebhookSignature) {
	log := logger.FromCtx(c.Request.Context()).With(zap.String("gateway", gatewayName))

	gw, err := h.registry.Resolve(gatewayName)
	if err != nil {
		log.Error("webhook received for unavailable gateway", zap.Error(err))
		c.JSON(http.StatusInternalServerError, WebhookErrorResponse{Error: webhookFailedMessage})
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		log.Error("failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, WebhookErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := gw.ValidateWebhook(c.Request.Context(), payload, sig)
	if err != nil {
		log.Error("webhook validation error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, WebhookErrorResponse{Error: webhookFailedMessage})
		return
	}
	if !result.Valid {
		log.Warn("webhook signature rejected", zap.String("reason", result.Error))
		c.JSON(http.StatusBadRequest, WebhookErrorResponse{Error: "Invalid signature"})
		return
	}

	if err := h.dispatcher.Dispatch(c.Request.Context(), result.Event); err != nil {
		_ = c.Error(err)
		log.Error("webhook processing failed",
			zap.String("event_type", result.Event.Type),
			zap.String("event_id", result.Event.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, WebhookErrorResponse{Error: webhookFailedMessage})
		return
	}

	c.JSON(http.StatusOK, WebhookAck{Received: true})
}
