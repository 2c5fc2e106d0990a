package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
	"github.com/SscSPs/workshop_billing_app/internal/middleware"
)

// jobHandler handles HTTP requests related to jobs (vehicle intake and billing edits).
type jobHandler struct {
	jobService portssvc.JobSvcFacade
}

func newJobHandler(js portssvc.JobSvcFacade) *jobHandler {
	return &jobHandler{jobService: js}
}

// RegisterJobRoutes registers job and payment routes on the given group.
func RegisterJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	RegisterValidators()
	h := newJobHandler(jobService)
	ph := newPaymentHandler(paymentService)

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("", h.listJobs)
		jobs.GET("/:jobID", h.getJob)
		jobs.PATCH("/:jobID/billing", h.updateJobBilling)
		jobs.PATCH("/:jobID/status", h.updateJobStatus)
		jobs.PUT("/:jobID/invoice", h.setInvoiceNumber)
		jobs.POST("/:jobID/close", h.closeJob)

		jobs.POST("/:jobID/payments", ph.addPayment)
		jobs.GET("/:jobID/payments", ph.listPayments)
		jobs.DELETE("/:jobID/payments/:paymentID", ph.voidPayment)
	}
}

// createJob godoc
// @Summary Create a job
// @Description Records a vehicle intake. Billing starts in draft.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create job"
// @Security BearerAuth
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJobResponse(*job))
}

// listJobs godoc
// @Summary List jobs
// @Description Lists jobs newest first with their billing state. Use nextToken for the following page.
// @Tags jobs
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   status query string false "Exact lifecycle status"
// @Param   search query string false "Vehicle number, customer, phone or invoice number"
// @Success 200 {object} dto.ListJobsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list jobs"
// @Security BearerAuth
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJobsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListJobs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.jobService.ListJobs(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getJob godoc
// @Summary Get a job
// @Description Retrieves a job with net payable, total paid, balance due, payment status and accounts tab.
// @Tags jobs
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to retrieve job"
// @Security BearerAuth
// @Router /jobs/{jobID} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	job, err := h.jobService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// updateJobBilling godoc
// @Summary Update job billing
// @Description Changes total, discount, tax or due date. Rejected once billing is closed.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   billing body dto.UpdateJobBillingRequest true "Billing fields to change"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job billing is closed"
// @Failure 500 {object} map[string]string "Failed to update job billing"
// @Security BearerAuth
// @Router /jobs/{jobID}/billing [patch]
func (h *jobHandler) updateJobBilling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")
	var req dto.UpdateJobBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJobBilling", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	job, err := h.jobService.UpdateJobBilling(c.Request.Context(), jobID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update job billing")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// updateJobStatus godoc
// @Summary Update job status
// @Description Records installer progress. Allowed on jobs with closed billing.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   status body dto.UpdateJobStatusRequest true "New status"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to update job status"
// @Security BearerAuth
// @Router /jobs/{jobID}/status [patch]
func (h *jobHandler) updateJobStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")
	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJobStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	job, err := h.jobService.UpdateJobStatus(c.Request.Context(), jobID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update job status")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// setInvoiceNumber godoc
// @Summary Set invoice number
// @Description Attaches an invoice number; a draft job becomes invoiced.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   invoice body dto.SetInvoiceNumberRequest true "Invoice number"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job closed or invoice number already used"
// @Failure 500 {object} map[string]string "Failed to set invoice number"
// @Security BearerAuth
// @Router /jobs/{jobID}/invoice [put]
func (h *jobHandler) setInvoiceNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")
	var req dto.SetInvoiceNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetInvoiceNumber", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	job, err := h.jobService.SetInvoiceNumber(c.Request.Context(), jobID, req.InvoiceNumber, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to set invoice number")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// closeJob godoc
// @Summary Close job billing
// @Description Freezes billing: no further payments, voids or billing edits. Cannot be undone.
// @Tags jobs
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job billing is already closed"
// @Failure 500 {object} map[string]string "Failed to close job"
// @Security BearerAuth
// @Router /jobs/{jobID}/close [post]
func (h *jobHandler) closeJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	job, err := h.jobService.CloseJob(c.Request.Context(), jobID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to close job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}
