package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateApprovalRequest proposes an action for staged authorization.
type CreateApprovalRequest struct {
	EntityType string          `json:"entityType" binding:"required"`
	EntityID   string          `json:"entityID" binding:"required"`
	ActionType string          `json:"actionType" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"gte=0"`
	Payload    json.RawMessage `json:"payload" swaggertype:"object"`
}

// ApprovalRequestResponse defines the data returned for an approval request.
type ApprovalRequestResponse struct {
	RequestID       string               `json:"requestID"`
	EntityType      string               `json:"entityType"`
	EntityID        string               `json:"entityID"`
	ActionType      string               `json:"actionType"`
	Amount          decimal.Decimal      `json:"amount"`
	Payload         string               `json:"payload,omitempty"`
	Status          domain.RequestStatus `json:"status"`
	CurrentStage    domain.Stage         `json:"currentStage"`
	RequiresFinance bool                 `json:"requiresFinance"`
	RequestedBy     string               `json:"requestedBy"`
	RequestedAt     time.Time            `json:"requestedAt"`
	CheckedBy       *string              `json:"checkedBy,omitempty"`
	CheckedAt       *time.Time           `json:"checkedAt,omitempty"`
	ApprovedBy      *string              `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time           `json:"approvedAt,omitempty"`
	AuthorizedBy    *string              `json:"authorizedBy,omitempty"`
	AuthorizedAt    *time.Time           `json:"authorizedAt,omitempty"`
	RejectedBy      *string              `json:"rejectedBy,omitempty"`
	ActionedAt      *time.Time           `json:"actionedAt,omitempty"`
}

// ToApprovalRequestResponse converts a domain.ApprovalRequest to its response DTO
func ToApprovalRequestResponse(r *domain.ApprovalRequest) ApprovalRequestResponse {
	return ApprovalRequestResponse{
		RequestID:       r.RequestID,
		EntityType:      r.EntityType,
		EntityID:        r.EntityID,
		ActionType:      r.ActionType,
		Amount:          r.Amount,
		Payload:         r.Payload,
		Status:          r.Status,
		CurrentStage:    r.CurrentStage,
		RequiresFinance: r.RequiresFinance(),
		RequestedBy:     r.RequestedBy,
		RequestedAt:     r.RequestedAt,
		CheckedBy:       r.CheckedBy,
		CheckedAt:       r.CheckedAt,
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      r.ApprovedAt,
		AuthorizedBy:    r.AuthorizedBy,
		AuthorizedAt:    r.AuthorizedAt,
		RejectedBy:      r.RejectedBy,
		ActionedAt:      r.ActionedAt,
	}
}

// ToListApprovalRequestResponse converts a slice of requests to response DTOs
func ToListApprovalRequestResponse(items []domain.ApprovalRequest) []ApprovalRequestResponse {
	res := make([]ApprovalRequestResponse, len(items))
	for i := range items {
		res[i] = ToApprovalRequestResponse(&items[i])
	}
	return res
}
