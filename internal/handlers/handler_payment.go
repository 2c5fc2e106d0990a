package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
	"github.com/SscSPs/workshop_billing_app/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments of a job.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// addPayment godoc
// @Summary Record a payment
// @Description Records an amount received against an open job. The amount must be greater than zero.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   payment body dto.AddPaymentRequest true "Payment details"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job billing is closed"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /jobs/{jobID}/payments [post]
func (h *paymentHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")
	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	payment, err := h.paymentService.AddPayment(c.Request.Context(), jobID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// listPayments godoc
// @Summary List payments
// @Description Lists the non-voided payments of a job, oldest first.
// @Tags payments
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /jobs/{jobID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	payments, err := h.paymentService.ListPayments(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: payments})
}

// voidPayment godoc
// @Summary Void a payment
// @Description Removes a payment from all totals. The record is kept for history.
// @Tags payments
// @Param   jobID path string true "Job ID"
// @Param   paymentID path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Job or payment not found"
// @Failure 409 {object} map[string]string "Job billing is closed"
// @Failure 500 {object} map[string]string "Failed to void payment"
// @Security BearerAuth
// @Router /jobs/{jobID}/payments/{paymentID} [delete]
func (h *paymentHandler) voidPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")
	paymentID := c.Param("paymentID")
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	if err := h.paymentService.VoidPayment(c.Request.Context(), jobID, paymentID, userID); err != nil {
		respondError(c, logger, err, "Failed to void payment")
		return
	}
	c.Status(http.StatusNoContent)
}
