package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/SscSPs/cheque_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chequeBookHandler handles HTTP requests related to cheque books.
type chequeBookHandler struct {
	chequeBookService portssvc.ChequeBookSvcFacade
}

// RegisterChequeBookRoutes registers routes related to cheque books.
func RegisterChequeBookRoutes(rg *gin.RouterGroup, chequeBookService portssvc.ChequeBookSvcFacade) {
	h := &chequeBookHandler{chequeBookService: chequeBookService}

	books := rg.Group("/cheque-books")
	{
		books.POST("", h.createChequeBook)
		books.GET("", h.listChequeBooks)
		books.GET("/:id", h.getChequeBook)
		books.GET("/:id/cheques", h.listCheques)
		books.POST("/:id/deactivate", h.deactivateChequeBook)
		books.POST("/:id/next", h.nextAvailableCheque)
	}
}

// createChequeBook godoc
// @Summary Allocate a cheque book
// @Description Reserves a contiguous number range for an account and creates one UNUSED cheque per number
// @Tags cheque-books
// @Accept  json
// @Produce  json
// @Param   book body dto.CreateChequeBookRequest true "Cheque book range"
// @Success 201 {object} dto.ChequeBookResponse
// @Failure 400 {object} map[string]string "Invalid input or inverted range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Range overlaps an active cheque book"
// @Failure 500 {object} map[string]string "Failed to create cheque book"
// @Security BearerAuth
// @Router /cheque-books [post]
func (h *chequeBookHandler) createChequeBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChequeBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChequeBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create cheque book",
		slog.String("account_id", req.AccountID),
		slog.Int64("start_number", req.StartNumber),
		slog.Int64("end_number", req.EndNumber))

	book, err := h.chequeBookService.CreateChequeBook(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create cheque book")
		return
	}

	logger.Info("Cheque book created successfully", slog.String("cheque_book_id", book.ChequeBookID))
	c.JSON(http.StatusCreated, dto.ToChequeBookResponse(book))
}

// listChequeBooks godoc
// @Summary List cheque books
// @Tags cheque-books
// @Produce  json
// @Param   accountId query string false "Filter by account"
// @Param   activeOnly query bool false "Only active books"
// @Success 200 {array} dto.ChequeBookResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list cheque books"
// @Security BearerAuth
// @Router /cheque-books [get]
func (h *chequeBookHandler) listChequeBooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListChequeBooksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListChequeBooks", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	books, err := h.chequeBookService.ListChequeBooks(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list cheque books")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChequeBookResponse(books))
}

// getChequeBook godoc
// @Summary Get a cheque book by ID
// @Tags cheque-books
// @Produce  json
// @Param   id path string true "Cheque book ID"
// @Success 200 {object} dto.ChequeBookResponse
// @Failure 404 {object} map[string]string "Cheque book not found"
// @Security BearerAuth
// @Router /cheque-books/{id} [get]
func (h *chequeBookHandler) getChequeBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("cheque_book_id", c.Param("id")))

	book, err := h.chequeBookService.GetChequeBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve cheque book")
		return
	}
	c.JSON(http.StatusOK, dto.ToChequeBookResponse(book))
}

// listCheques godoc
// @Summary List the cheques of a book
// @Description Returns every leaf of the book in ascending number order
// @Tags cheque-books
// @Produce  json
// @Param   id path string true "Cheque book ID"
// @Success 200 {array} dto.ChequeResponse
// @Failure 404 {object} map[string]string "Cheque book not found"
// @Security BearerAuth
// @Router /cheque-books/{id}/cheques [get]
func (h *chequeBookHandler) listCheques(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("cheque_book_id", c.Param("id")))

	cheques, err := h.chequeBookService.ListChequesByBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list cheques")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChequeResponse(cheques))
}

// deactivateChequeBook godoc
// @Summary Deactivate a cheque book
// @Description Retires the book; its number range is kept for history
// @Tags cheque-books
// @Produce  json
// @Param   id path string true "Cheque book ID"
// @Success 200 {object} dto.ChequeBookResponse
// @Failure 404 {object} map[string]string "Cheque book not found"
// @Failure 409 {object} map[string]string "Already inactive"
// @Security BearerAuth
// @Router /cheque-books/{id}/deactivate [post]
func (h *chequeBookHandler) deactivateChequeBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("cheque_book_id", c.Param("id")))
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	book, err := h.chequeBookService.DeactivateChequeBook(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to deactivate cheque book")
		return
	}
	logger.Info("Cheque book deactivated")
	c.JSON(http.StatusOK, dto.ToChequeBookResponse(book))
}

// nextAvailableCheque godoc
// @Summary Take the next unused cheque of a book
// @Description Returns the lowest numbered UNUSED leaf and advances the book cursor
// @Tags cheque-books
// @Produce  json
// @Param   id path string true "Cheque book ID"
// @Success 200 {object} dto.ChequeResponse
// @Failure 404 {object} map[string]string "Cheque book not found"
// @Failure 409 {object} map[string]string "Book inactive or exhausted"
// @Security BearerAuth
// @Router /cheque-books/{id}/next [post]
func (h *chequeBookHandler) nextAvailableCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("cheque_book_id", c.Param("id")))
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	cheque, err := h.chequeBookService.NextAvailableCheque(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to take next cheque")
		return
	}
	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}
