package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatePayment godoc
// @Summary Create a one-time payment
// @Description Opens a hosted checkout on the chosen gateway
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body CreatePaymentRequest true "Payment"
// @Success 200 {object} domain.PaymentResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
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

	payment := req.ToDomain()
	if err := payment.Validate(); err != nil {
		handleServiceError(c, req.Gateway, err)
		return
	}

	result, err := gw.CreatePayment(c.Request.Context(), payment)
	respond(c, req.Gateway, result != nil && result.Success, result, err)
}

// GetPaymentStatus godoc
// @Summary Get payment status
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param paymentId path string true "Payment ID"
// @Param gateway query string true "Gateway name"
// @Success 200 {object} domain.PaymentStatusResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments/{paymentId}/status [get]
func (h *Handler) GetPaymentStatus(c *gin.Context) {
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

	result, err := gw.GetPaymentStatus(c.Request.Context(), c.Param("paymentId"))
	respond(c, gatewayName, result != nil && result.Success, result, err)
}
