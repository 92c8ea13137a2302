package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/SscSPs/cheque_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditTrailSvc
}

// RegisterAuditRoutes registers the read-only audit trail routes.
func RegisterAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditTrailSvc) {
	h := &auditHandler{auditService: auditService}
	rg.GET("/audit-logs", h.listAuditLogs)
	rg.GET("/audit-logs/:entityType/:entityId", h.entityHistory)
}

// listAuditLogs godoc
// @Summary List audit log entries
// @Description Newest first, paged with an opaque nextToken
// @Tags audit
// @Produce  json
// @Param   entityType query string false "Entity type"
// @Param   entityId query string false "Entity ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAuditLogs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.auditService.ListAuditLogs(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list audit logs")
		return
	}
	c.JSON(http.StatusOK, page)
}

// entityHistory godoc
// @Summary Full history of one entity
// @Tags audit
// @Produce  json
// @Param   entityType path string true "Entity type, e.g. Cheque"
// @Param   entityId path string true "Entity ID"
// @Success 200 {array} domain.AuditLogEntry
// @Security BearerAuth
// @Router /audit-logs/{entityType}/{entityId} [get]
func (h *auditHandler) entityHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("entity_type", c.Param("entityType")),
		slog.String("entity_id", c.Param("entityId")))

	entries, err := h.auditService.ListEntityHistory(c.Request.Context(), c.Param("entityType"), c.Param("entityId"))
	if err != nil {
		respondError(c, logger, err, "Failed to load entity history")
		return
	}
	c.JSON(http.StatusOK, entries)
}
