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

// chequeHandler handles HTTP requests related to outgoing cheques.
type chequeHandler struct {
	chequeService portssvc.ChequeSvcFacade
}

// RegisterChequeRoutes registers routes related to outgoing cheques.
func RegisterChequeRoutes(rg *gin.RouterGroup, chequeService portssvc.ChequeSvcFacade) {
	h := &chequeHandler{chequeService: chequeService}

	cheques := rg.Group("/cheques")
	{
		cheques.POST("/issue", h.issueCheque)
		cheques.GET("/:id", h.getCheque)
		cheques.PATCH("/:id/status", h.setChequeStatus)
		cheques.POST("/:id/printed", h.markPrinted)
	}
}

// issueCheque godoc
// @Summary Draft an outgoing cheque
// @Description Fills amount, payee and date on an UNUSED cheque (by id, or the lowest unused leaf of a book)
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   cheque body dto.IssueChequeRequest true "Cheque details"
// @Success 200 {object} dto.ChequeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Direct issue not allowed"
// @Failure 404 {object} map[string]string "Cheque or book not found"
// @Failure 409 {object} map[string]string "Cheque not available or modified concurrently"
// @Security BearerAuth
// @Router /cheques/issue [post]
func (h *chequeHandler) issueCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IssueChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueCheque", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	cheque, err := h.chequeService.IssueCheque(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to issue cheque")
		return
	}
	logger.Info("Cheque drafted", slog.String("cheque_id", cheque.ChequeID), slog.Int64("cheque_number", cheque.ChequeNumber))
	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}

// getCheque godoc
// @Summary Get a cheque by ID
// @Tags cheques
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Success 200 {object} dto.ChequeResponse
// @Failure 404 {object} map[string]string "Cheque not found"
// @Security BearerAuth
// @Router /cheques/{id} [get]
func (h *chequeHandler) getCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("cheque_id", c.Param("id")))

	cheque, err := h.chequeService.GetCheque(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve cheque")
		return
	}
	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}

// setChequeStatus godoc
// @Summary Set the status of a cheque
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   status body dto.UpdateChequeStatusRequest true "New status"
// @Success 200 {object} dto.ChequeResponse
// @Failure 400 {object} map[string]string "Unknown status or illegal combination with the workflow status"
// @Failure 404 {object} map[string]string "Cheque not found"
// @Failure 409 {object} map[string]string "Modified concurrently"
// @Security BearerAuth
// @Router /cheques/{id}/status [patch]
func (h *chequeHandler) setChequeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("cheque_id", c.Param("id")))
	var req dto.UpdateChequeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetChequeStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}
	status, err := domain.ParseChequeStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cheque, err := h.chequeService.SetChequeStatus(c.Request.Context(), c.Param("id"), status, req.Remarks, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to update cheque status")
		return
	}
	logger.Info("Cheque status updated", slog.String("status", string(cheque.Status)))
	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}

// markPrinted godoc
// @Summary Record that an approved cheque was printed
// @Tags cheques
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Success 200 {object} dto.ChequeResponse
// @Failure 404 {object} map[string]string "Cheque not found"
// @Failure 409 {object} map[string]string "Cheque is not approved"
// @Security BearerAuth
// @Router /cheques/{id}/printed [post]
func (h *chequeHandler) markPrinted(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("cheque_id", c.Param("id")))
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	cheque, err := h.chequeService.MarkPrinted(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to mark cheque printed")
		return
	}
	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}
