package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/SscSPs/cheque_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImageSize bounds scanned cheque uploads.
const maxImageSize = 10 << 20

// receivableHandler handles HTTP requests related to incoming cheques.
type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
}

// RegisterReceivableRoutes registers routes related to incoming cheques.
func RegisterReceivableRoutes(rg *gin.RouterGroup, receivableService portssvc.ReceivableSvcFacade) {
	h := &receivableHandler{receivableService: receivableService}

	receivables := rg.Group("/receivables")
	{
		receivables.POST("", h.recordReceipt)
		receivables.GET("", h.listReceivables)
		receivables.GET("/:id", h.getReceivable)
		receivables.PATCH("/:id/status", h.setReceivableStatus)
		receivables.POST("/:id/image", h.attachImage)
	}
}

// recordReceipt godoc
// @Summary Record a received cheque
// @Description Creates a PENDING receivable; the cheque number and bank pair must be new
// @Tags receivables
// @Accept  json
// @Produce  json
// @Param   receivable body dto.RecordReceivableRequest true "Received cheque"
// @Success 201 {object} dto.ReceivableResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Duplicate cheque number for bank"
// @Security BearerAuth
// @Router /receivables [post]
func (h *receivableHandler) recordReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	rec, err := h.receivableService.RecordReceipt(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to record receivable")
		return
	}
	logger.Info("Receivable recorded", slog.String("receivable_id", rec.ReceivableID), slog.String("internal_ref", rec.InternalRef))
	c.JSON(http.StatusCreated, dto.ToReceivableResponse(rec))
}

// listReceivables godoc
// @Summary List receivables
// @Tags receivables
// @Produce  json
// @Param   customerId query string false "Filter by customer"
// @Param   status query string false "Filter by status"
// @Param   limit query int false "Limit" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.ReceivableResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /receivables [get]
func (h *receivableHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListReceivablesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListReceivables", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.receivableService.ListReceivables(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list receivables")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReceivableResponse(items))
}

// getReceivable godoc
// @Summary Get a receivable by ID
// @Tags receivables
// @Produce  json
// @Param   id path string true "Receivable ID"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 404 {object} map[string]string "Receivable not found"
// @Security BearerAuth
// @Router /receivables/{id} [get]
func (h *receivableHandler) getReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("receivable_id", c.Param("id")))

	rec, err := h.receivableService.GetReceivable(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve receivable")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceivableResponse(rec))
}

// setReceivableStatus godoc
// @Summary Set the status of a receivable
// @Tags receivables
// @Accept  json
// @Produce  json
// @Param   id path string true "Receivable ID"
// @Param   status body dto.UpdateReceivableStatusRequest true "New status"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Failure 409 {object} map[string]string "Modified concurrently"
// @Security BearerAuth
// @Router /receivables/{id}/status [patch]
func (h *receivableHandler) setReceivableStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("receivable_id", c.Param("id")))
	var req dto.UpdateReceivableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetReceivableStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}
	status, err := domain.ParseReceivableStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.receivableService.SetReceivableStatus(c.Request.Context(), c.Param("id"), status, req.Remarks, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to update receivable status")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceivableResponse(rec))
}

// attachImage godoc
// @Summary Attach a scanned copy of the cheque
// @Tags receivables
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path string true "Receivable ID"
// @Param   image formData file true "Scanned cheque"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 400 {object} map[string]string "Missing or oversized file"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Security BearerAuth
// @Router /receivables/{id}/image [post]
func (h *receivableHandler) attachImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("receivable_id", c.Param("id")))
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Multipart field 'image' is required"})
		return
	}
	if fh.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds 10MB"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, logger, err, "Failed to read uploaded image")
		return
	}
	defer f.Close()

	rec, err := h.receivableService.AttachImage(c.Request.Context(), c.Param("id"), fh.Filename, fh.Header.Get("Content-Type"), f, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to attach image")
		return
	}
	logger.Info("Image attached", slog.Int64("size", fh.Size))
	c.JSON(http.StatusOK, dto.ToReceivableResponse(rec))
}
