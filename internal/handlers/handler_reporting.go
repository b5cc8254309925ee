package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const pdfContentType = "application/pdf"

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/trial-balance/pdf", h.getTrialBalancePDF)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/income-statement/pdf", h.getIncomeStatementPDF)
		reportingGroup.GET("/metrics", h.getFinancialMetrics)
	}
}

// bindReportParams reads the optional date bounds or writes a 400.
func bindReportParams(c *gin.Context) (dto.ReportParams, domain.DateRange, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return params, domain.DateRange{}, false
	}
	r, err := params.ToDateRange()
	if err != nil {
		respondError(c, err, "Invalid date range")
		return params, domain.DateRange{}, false
	}
	return params, r, true
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Per-account debit, credit and balance of approved entries. Both bounds are optional and inclusive.
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	params, r, ok := bindReportParams(c)
	if !ok {
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), r, userID)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(tb.Accounts)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(*tb, params))
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Income, cost of sales, expenses and profit from approved entries within the period.
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	params, r, ok := bindReportParams(c)
	if !ok {
		return
	}

	is, err := h.reportingService.IncomeStatement(c.Request.Context(), r, userID)
	if err != nil {
		respondError(c, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(*is, params))
}

// getFinancialMetrics godoc
// @Summary Dashboard metrics
// @Description Income, expenses, profit and the monthly history of approved entries.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.FinancialMetrics
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Security BearerAuth
// @Router /reports/metrics [get]
func (h *reportingHandler) getFinancialMetrics(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	metrics, err := h.reportingService.FinancialMetrics(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute financial metrics")
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// getTrialBalancePDF godoc
// @Summary Trial balance as PDF
// @Tags reports
// @Produce application/pdf
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Security BearerAuth
// @Router /reports/trial-balance/pdf [get]
func (h *reportingHandler) getTrialBalancePDF(c *gin.Context) {
	h.renderPDF(c, "balance-de-prueba.pdf", h.reportingService.TrialBalancePDF)
}

// getIncomeStatementPDF godoc
// @Summary Income statement as PDF
// @Tags reports
// @Produce application/pdf
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Security BearerAuth
// @Router /reports/income-statement/pdf [get]
func (h *reportingHandler) getIncomeStatementPDF(c *gin.Context) {
	h.renderPDF(c, "estado-de-resultados.pdf", h.reportingService.IncomeStatementPDF)
}

type pdfRenderFunc func(ctx context.Context, r domain.DateRange, userID string) ([]byte, error)

func (h *reportingHandler) renderPDF(c *gin.Context, filename string, render pdfRenderFunc) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	_, r, ok := bindReportParams(c)
	if !ok {
		return
	}

	doc, err := render(c.Request.Context(), r, userID)
	if err != nil {
		respondError(c, err, "Failed to render report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, pdfContentType, doc)
}
