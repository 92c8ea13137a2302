package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// HighValueThreshold is the amount above which an approval needs the FINANCE stage.
var HighValueThreshold = decimal.NewFromInt(100000)

// Entity types and actions understood by the approval engine out of the box.
const (
	EntityTypeCheque     = "Cheque"
	EntityTypeReceivable = "IncomingCheque"

	ActionIssue  = "ISSUE"
	ActionVoid   = "VOID"
	ActionCancel = "CANCEL"
)

// Stage is the position of an ApprovalRequest in the maker-checker-approver-finance chain.
type Stage string

const (
	StageChecker  Stage = "CHECKER"
	StageApprover Stage = "APPROVER"
	StageFinance  Stage = "FINANCE"
	StageApproved Stage = "APPROVED"
	StageRejected Stage = "REJECTED"
)

// IsTerminal reports whether no further transition may leave the stage.
func (s Stage) IsTerminal() bool {
	return s == StageApproved || s == StageRejected
}

// RequestStatus is the summary status of an ApprovalRequest.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

type stageRule struct {
	roles []Role
	next  func(amount decimal.Decimal) Stage
}

// stageTransitions is the whole approval state machine. Stages missing from the table
// (APPROVED, REJECTED) accept no approvals.
var stageTransitions = map[Stage]stageRule{
	StageChecker: {
		roles: []Role{RoleChecker, RoleAdmin},
		next:  func(decimal.Decimal) Stage { return StageApprover },
	},
	StageApprover: {
		roles: []Role{RoleApprover, RoleAdmin},
		next: func(amount decimal.Decimal) Stage {
			if amount.GreaterThan(HighValueThreshold) {
				return StageFinance
			}
			return StageApproved
		},
	},
	StageFinance: {
		roles: []Role{RoleFinanceManager, RoleAdmin},
		next:  func(decimal.Decimal) Stage { return StageApproved },
	},
}

// CanAct reports whether role may approve at stage.
func (r Role) CanAct(stage Stage) bool {
	rule, ok := stageTransitions[stage]
	return ok && slices.Contains(rule.roles, r)
}

// ActionableStages lists the non-terminal stages a role may approve.
func (r Role) ActionableStages() []Stage {
	var stages []Stage
	for _, s := range []Stage{StageChecker, StageApprover, StageFinance} {
		if r.CanAct(s) {
			stages = append(stages, s)
		}
	}
	return stages
}

// ApprovalRequest is one proposed action awaiting staged authorization.
type ApprovalRequest struct {
	RequestID    string          `json:"requestID"`
	EntityType   string          `json:"entityType"`
	EntityID     string          `json:"entityID"`
	ActionType   string          `json:"actionType"`
	Amount       decimal.Decimal `json:"amount"`
	Payload      string          `json:"payload,omitempty"`
	Status       RequestStatus   `json:"status"`
	CurrentStage Stage           `json:"currentStage"`
	RequestedBy  string          `json:"requestedBy"`
	RequestedAt  time.Time       `json:"requestedAt"`
	CheckedBy    *string         `json:"checkedBy,omitempty"`
	CheckedAt    *time.Time      `json:"checkedAt,omitempty"`
	ApprovedBy   *string         `json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time      `json:"approvedAt,omitempty"`
	AuthorizedBy *string         `json:"authorizedBy,omitempty"`
	AuthorizedAt *time.Time      `json:"authorizedAt,omitempty"`
	RejectedBy   *string         `json:"rejectedBy,omitempty"`
	ActionedAt   *time.Time      `json:"actionedAt,omitempty"`
	AuditFields
}

// Key identifies the capability that applies the request's outcome.
func (r ApprovalRequest) Key() string {
	return r.EntityType + "/" + strings.ToUpper(r.ActionType)
}

// RequiresFinance reports whether the amount forces the FINANCE stage.
func (r ApprovalRequest) RequiresFinance() bool {
	return r.Amount.GreaterThan(HighValueThreshold)
}

// participants are the actors that already touched the request.
func (r ApprovalRequest) participants() []string {
	ids := []string{r.RequestedBy}
	for _, p := range []*string{r.CheckedBy, r.ApprovedBy, r.AuthorizedBy} {
		if p != nil {
			ids = append(ids, *p)
		}
	}
	return ids
}

// Advance moves the request one stage forward on behalf of actor, stamping the actor field
// that belongs to the stage being left. It returns the stage transition taken.
func (r *ApprovalRequest) Advance(actor Actor, distinctActors bool, now time.Time) (Stage, Stage, error) {
	from := r.CurrentStage
	if r.Status != RequestPending || from.IsTerminal() {
		return from, from, apperrors.NewConflictError(fmt.Sprintf("approval request %s is %s", r.RequestID, r.Status))
	}
	rule, ok := stageTransitions[from]
	if !ok {
		return from, from, apperrors.NewConflictError(fmt.Sprintf("approval request %s has no transition out of %s", r.RequestID, from))
	}
	if !slices.Contains(rule.roles, actor.Role) {
		return from, from, apperrors.NewForbiddenError(fmt.Sprintf("role %s cannot act on stage %s", actor.Role, from))
	}
	if distinctActors && slices.Contains(r.participants(), actor.ID) {
		return from, from, apperrors.NewForbiddenError(fmt.Sprintf("actor %s already took part in request %s", actor.ID, r.RequestID))
	}

	actorID := actor.ID
	stamp := now
	switch from {
	case StageChecker:
		r.CheckedBy, r.CheckedAt = &actorID, &stamp
	case StageApprover:
		r.ApprovedBy, r.ApprovedAt = &actorID, &stamp
	case StageFinance:
		r.AuthorizedBy, r.AuthorizedAt = &actorID, &stamp
	}

	to := rule.next(r.Amount)
	r.CurrentStage = to
	if to == StageApproved {
		r.Status = RequestApproved
		r.ActionedAt = &stamp
	}
	r.Touch(actor.ID, now)
	return from, to, nil
}

// Reject terminates a pending request.
func (r *ApprovalRequest) Reject(actorID string, now time.Time) (Stage, error) {
	from := r.CurrentStage
	if r.Status != RequestPending || from.IsTerminal() {
		return from, apperrors.NewConflictError(fmt.Sprintf("approval request %s is %s", r.RequestID, r.Status))
	}
	stamp := now
	r.Status = RequestRejected
	r.CurrentStage = StageRejected
	r.RejectedBy = &actorID
	r.ActionedAt = &stamp
	r.Touch(actorID, now)
	return from, nil
}
