package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateSubscription godoc
// @Summary Create a subscription
// @Description Opens a recurring checkout. Send priceId, or amount and interval to create the price on the fly.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subscription body CreateSubscriptionRequest true "Subscription"
// @Success 200 {object} domain.SubscriptionResult
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions [post]
func (h *Handler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   bindingErrorMessage(err),
			Code:    "VALIDATION_ERROR",
			Gateway: req.Gateway,
		})
		return
	}

	gw, ok := h.resolveGateway(c, req.Gateway)
	if !ok {
		return
	}

	sub := req.ToDomain()
	if err := sub.Validate(); err != nil {
		handleServiceError(c, req.Gateway, err)
		return
	}

	result, err := gw.CreateSubscription(c.Request.Context(), sub)
	respond(c, req.Gateway, result != nil && result.Success, result, err)
}

// CancelSubscription godoc
// @Summary Cancel a subscription at period end
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param subscriptionId path string true "Subscription ID"
// @Param gateway query string true "Gateway name"
// @Success 200 {object} domain.CancellationResult
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions/{subscriptionId}/cancel [put]
func (h *Handler) CancelSubscription(c *gin.Context) {
	gatewayName := c.Query("gateway")
	if gatewayName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "gateway query parameter is required",
			Code:    "VALIDATION_ERROR",
		})
		return
	}

	gw, ok := h.resolveGateway(c, gatewayName)
	if !ok {
		return
	}

	result, err := gw.CancelSubscription(c.Request.Context(), c.Param("subscriptionId"))
	respond(c, gatewayName, result != nil && result.Success, result, err)
}
