package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/SscSPs/cheque_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pdcHandler handles post-dated cheque operations and reports
type pdcHandler struct {
	dueDateService   portssvc.DueDateSvc
	reportingService portssvc.ReportingService
}

// RegisterPdcRoutes registers the sweep trigger and the exposure report.
func RegisterPdcRoutes(rg *gin.RouterGroup, dueDateService portssvc.DueDateSvc, reportingService portssvc.ReportingService) {
	h := &pdcHandler{dueDateService: dueDateService, reportingService: reportingService}

	pdc := rg.Group("/pdc")
	{
		pdc.POST("/sweep", middleware.RequireRoles(sweepRoles...), h.runSweep)
		pdc.GET("/exposure", h.getExposure)
	}
}

// runSweep godoc
// @Summary Run the due date sweep now
// @Description Moves ISSUED/PRINTED cheques and PENDING receivables dated today or earlier to DUE
// @Tags pdc
// @Produce  json
// @Success 200 {object} dto.SweepResponse
// @Failure 403 {object} map[string]string "Only ADMIN or FINANCE_MANAGER"
// @Failure 500 {object} map[string]string "Sweep failed"
// @Security BearerAuth
// @Router /pdc/sweep [post]
func (h *pdcHandler) runSweep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to run due date sweep")

	n, err := h.dueDateService.RunDueDateSweep(c.Request.Context())
	if err != nil {
		// records committed before the failure stay committed
		logger.Error("Due date sweep finished with errors", slog.Int("transitioned", n), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep finished with errors", "transitioned": n})
		return
	}
	logger.Info("Due date sweep finished", slog.Int("transitioned", n))
	c.JSON(http.StatusOK, dto.SweepResponse{Transitioned: n})
}

// getExposure godoc
// @Summary PDC exposure report
// @Description Count and total per status for receivables and outgoing cheques
// @Tags pdc
// @Produce  json
// @Success 200 {object} dto.PdcExposureResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /pdc/exposure [get]
func (h *pdcHandler) getExposure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.GetPdcExposure(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, report)
}
