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

// workflowHandler exposes the approval workflow.
type workflowHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

// RegisterWorkflowRoutes registers routes related to approval requests.
func RegisterWorkflowRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade) {
	h := &workflowHandler{approvalService: approvalService}

	wf := rg.Group("/workflow")
	{
		wf.POST("/requests", h.createRequest)
		wf.GET("/requests/:id", h.getRequest)
		wf.POST("/requests/:id/approve", h.approve)
		wf.POST("/requests/:id/reject", h.reject)
		wf.GET("/pending", h.listPending)
	}
}

// createRequest godoc
// @Summary Propose an action for approval
// @Description Starts a request at the CHECKER stage
// @Tags workflow
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateApprovalRequest true "Proposed action"
// @Success 201 {object} dto.ApprovalRequestResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Target entity not found"
// @Failure 409 {object} map[string]string "Target entity not in a state the action applies to"
// @Security BearerAuth
// @Router /workflow/requests [post]
func (h *workflowHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateApprovalRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	created, err := h.approvalService.CreateRequest(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to create approval request")
		return
	}
	logger.Info("Approval request created",
		slog.String("request_id", created.RequestID),
		slog.String("entity_type", created.EntityType),
		slog.String("action_type", created.ActionType))
	c.JSON(http.StatusCreated, dto.ToApprovalRequestResponse(created))
}

// getRequest godoc
// @Summary Get an approval request
// @Tags workflow
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} dto.ApprovalRequestResponse
// @Failure 404 {object} map[string]string "Request not found"
// @Security BearerAuth
// @Router /workflow/requests/{id} [get]
func (h *workflowHandler) getRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("request_id", c.Param("id")))

	req, err := h.approvalService.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve approval request")
		return
	}
	c.JSON(http.StatusOK, dto.ToApprovalRequestResponse(req))
}

// approve godoc
// @Summary Approve the current stage of a request
// @Description The caller's role must match the current stage; the final stage applies the action
// @Tags workflow
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} dto.ApprovalRequestResponse
// @Failure 403 {object} map[string]string "Role does not match the stage"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request is no longer pending"
// @Security BearerAuth
// @Router /workflow/requests/{id}/approve [post]
func (h *workflowHandler) approve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("request_id", c.Param("id")))
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req, err := h.approvalService.Approve(c.Request.Context(), c.Param("id"), actor.ID, actor.Role)
	if err != nil {
		respondError(c, logger, err, "Failed to approve request")
		return
	}
	logger.Info("Approval recorded", slog.String("stage", string(req.CurrentStage)))
	c.JSON(http.StatusOK, dto.ToApprovalRequestResponse(req))
}

// reject godoc
// @Summary Reject a pending request
// @Tags workflow
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} dto.ApprovalRequestResponse
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request is no longer pending"
// @Security BearerAuth
// @Router /workflow/requests/{id}/reject [post]
func (h *workflowHandler) reject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("request_id", c.Param("id")))
	actorID, ok := requireActor(c, logger)
	if !ok {
		return
	}

	req, err := h.approvalService.Reject(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to reject request")
		return
	}
	logger.Info("Request rejected")
	c.JSON(http.StatusOK, dto.ToApprovalRequestResponse(req))
}

// listPending godoc
// @Summary List pending approval requests
// @Description With mine=true only requests the caller's role can act on are returned
// @Tags workflow
// @Produce  json
// @Param   mine query bool false "Restrict to the caller's role"
// @Success 200 {array} dto.ApprovalRequestResponse
// @Security BearerAuth
// @Router /workflow/pending [get]
func (h *workflowHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var (
		items []domain.ApprovalRequest
		err   error
	)
	if c.Query("mine") == "true" {
		items, err = h.approvalService.ListPendingForRole(c.Request.Context(), actor.Role)
	} else {
		items, err = h.approvalService.ListPendingApprovals(c.Request.Context())
	}
	if err != nil {
		respondError(c, logger, err, "Failed to list pending approvals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListApprovalRequestResponse(items))
}
