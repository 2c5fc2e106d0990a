package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_billing_app/internal/dto"
	"github.com/SscSPs/workshop_billing_app/internal/middleware"
)

// accountsHandler serves the accounts (billing) views.
type accountsHandler struct {
	accountsService portssvc.AccountsSvcFacade
}

func newAccountsHandler(as portssvc.AccountsSvcFacade) *accountsHandler {
	return &accountsHandler{accountsService: as}
}

// RegisterAccountsRoutes registers the accounts routes on the given group.
func RegisterAccountsRoutes(rg *gin.RouterGroup, accountsService portssvc.AccountsSvcFacade) {
	RegisterValidators()
	h := newAccountsHandler(accountsService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/overview", h.overview)
		accounts.GET("/jobs/:jobID/ledger", h.ledger)
		accounts.POST("/jobs/:jobID/reconcile", h.reconcile)
	}
}

// overview godoc
// @Summary Accounts overview
// @Description Partitions jobs into billing entries, partial payment, overdue and settled tabs with per-tab totals.
// @Description Display IDs (Z01, Z02, ...) are positional within the returned scope.
// @Tags accounts
// @Produce  json
// @Param   scope query string false "all or open" default(all)
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} map[string]string "Invalid scope"
// @Failure 500 {object} map[string]string "Failed to build accounts overview"
// @Security BearerAuth
// @Router /accounts/overview [get]
func (h *accountsHandler) overview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.OverviewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for Overview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	overview, err := h.accountsService.Overview(c.Request.Context(), params.Scope)
	if err != nil {
		respondError(c, logger, err, "Failed to build accounts overview")
		return
	}
	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

// ledger godoc
// @Summary Job ledger
// @Description Chronological payments of a job with running paid total and balance.
// @Tags accounts
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} domain.Ledger
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /accounts/jobs/{jobID}/ledger [get]
func (h *accountsHandler) ledger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	ledger, err := h.accountsService.Ledger(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, logger, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// reconcile godoc
// @Summary Reconcile an invoice
// @Description Compares an externally issued invoice with the computed net payable (tolerance 0.01).
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   invoice body dto.ReconcileRequest true "Invoice to compare"
// @Success 200 {object} domain.Reconciliation
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to reconcile invoice"
// @Security BearerAuth
// @Router /accounts/jobs/{jobID}/reconcile [post]
func (h *accountsHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.accountsService.Reconcile(c.Request.Context(), jobID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile invoice")
		return
	}
	c.JSON(http.StatusOK, result)
}
