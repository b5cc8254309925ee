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

// ScanEnqueuer hands an anomaly scan to the background worker.
type ScanEnqueuer interface {
	EnqueueAnomalyScan(ctx context.Context, requestedBy string) error
}

type diagnosticsHandler struct {
	anomalyService portssvc.AnomalySvc
	userService    portssvc.AuthorizerSvc
	enqueuer       ScanEnqueuer
}

func registerDiagnosticsRoutes(rg *gin.RouterGroup, anomalyService portssvc.AnomalySvc, userService portssvc.AuthorizerSvc, enqueuer ScanEnqueuer) {
	h := &diagnosticsHandler{anomalyService: anomalyService, userService: userService, enqueuer: enqueuer}

	diagnostics := rg.Group("/diagnostics")
	{
		diagnostics.GET("/anomalies", h.detectAnomalies)
		if enqueuer != nil {
			diagnostics.POST("/anomalies/scan", h.enqueueScan)
		}
	}
}

// detectAnomalies godoc
// @Summary Detect ledger anomalies
// @Description Unbalanced drafts, too many pending drafts and unusual movements in the last 30 days.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} dto.AnomaliesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Security BearerAuth
// @Router /diagnostics/anomalies [get]
func (h *diagnosticsHandler) detectAnomalies(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	findings, err := h.anomalyService.DetectAnomalies(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to detect anomalies")
		return
	}
	c.JSON(http.StatusOK, dto.AnomaliesResponse{Findings: findings})
}

// enqueueScan godoc
// @Summary Queue a background anomaly scan
// @Description Findings are written to the worker log.
// @Tags diagnostics
// @Success 202
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Security BearerAuth
// @Router /diagnostics/anomalies/scan [post]
func (h *diagnosticsHandler) enqueueScan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.userService.AuthorizeUserAction(c.Request.Context(), userID, domain.PermReports); err != nil {
		respondError(c, err, "Failed to queue anomaly scan")
		return
	}
	if err := h.enqueuer.EnqueueAnomalyScan(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to queue anomaly scan")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Anomaly scan queued", slog.String("requested_by", userID))
	c.Status(http.StatusAccepted)
}
