package api

import (
	"net/http"

	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments queries.PaymentQueries
}

func NewPaymentHandler(payments queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// @Summary List payment methods
// @Tags payments
// @Produce json
// @Success 200 {array} resdto.PaymentMethodResponse
// @Router /api/payment-methods [get]
func (h *PaymentHandler) List(c *gin.Context) {
	methods, err := h.payments.List(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err, "Failed to load payment methods")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentMethodViews(methods))
}
