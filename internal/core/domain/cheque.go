package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ChequeStatus is the physical lifecycle state of an outgoing cheque leaf.
type ChequeStatus string

const (
	ChequeUnused    ChequeStatus = "UNUSED"
	ChequeIssued    ChequeStatus = "ISSUED"
	ChequePrinted   ChequeStatus = "PRINTED"
	ChequeDue       ChequeStatus = "DUE"
	ChequeCleared   ChequeStatus = "CLEARED"
	ChequeBounced   ChequeStatus = "BOUNCED"
	ChequeCancelled ChequeStatus = "CANCELLED"
	ChequeVoid      ChequeStatus = "VOID"
	ChequeMissing   ChequeStatus = "MISSING"
	ChequeSettled   ChequeStatus = "SETTLED"
)

// AllChequeStatuses lists every ChequeStatus in lifecycle order.
var AllChequeStatuses = []ChequeStatus{
	ChequeUnused, ChequeIssued, ChequePrinted, ChequeDue, ChequeCleared,
	ChequeBounced, ChequeCancelled, ChequeVoid, ChequeMissing, ChequeSettled,
}

// ParseChequeStatus validates s against the enumerated set.
func ParseChequeStatus(s string) (ChequeStatus, error) {
	candidate := ChequeStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range AllChequeStatuses {
		if st == candidate {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown cheque status %q", s)
}

// WorkflowStatus is the authorization dimension of a cheque, orthogonal to ChequeStatus.
type WorkflowStatus string

const (
	WorkflowDraft    WorkflowStatus = "DRAFT"
	WorkflowApproved WorkflowStatus = "APPROVED"
	WorkflowRejected WorkflowStatus = "REJECTED"
	WorkflowPrinted  WorkflowStatus = "PRINTED"
)

// ParseWorkflowStatus validates s against the enumerated set.
func ParseWorkflowStatus(s string) (WorkflowStatus, error) {
	switch candidate := WorkflowStatus(strings.ToUpper(strings.TrimSpace(s))); candidate {
	case WorkflowDraft, WorkflowApproved, WorkflowRejected, WorkflowPrinted:
		return candidate, nil
	}
	return "", fmt.Errorf("unknown workflow status %q", s)
}

func statusSet(statuses ...ChequeStatus) map[ChequeStatus]struct{} {
	set := make(map[ChequeStatus]struct{}, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

// legalCombinations is the complete status x workflowStatus table. A leaf that was never
// authorized can only sit unused or be written off; anything that reached a payee needs
// an approved (or printed) workflow.
var legalCombinations = map[WorkflowStatus]map[ChequeStatus]struct{}{
	WorkflowDraft:    statusSet(ChequeUnused, ChequeCancelled, ChequeVoid, ChequeMissing),
	WorkflowRejected: statusSet(ChequeUnused, ChequeCancelled, ChequeVoid, ChequeMissing),
	WorkflowApproved: statusSet(ChequeIssued, ChequeDue, ChequeCleared, ChequeBounced,
		ChequeCancelled, ChequeVoid, ChequeMissing, ChequeSettled),
	WorkflowPrinted: statusSet(ChequeIssued, ChequePrinted, ChequeDue, ChequeCleared, ChequeBounced,
		ChequeCancelled, ChequeVoid, ChequeMissing, ChequeSettled),
}

// IsLegalCombination reports whether a cheque may rest in (status, workflow).
func IsLegalCombination(status ChequeStatus, workflow WorkflowStatus) bool {
	allowed, ok := legalCombinations[workflow]
	if !ok {
		return false
	}
	_, ok = allowed[status]
	return ok
}

// IsTerminal reports whether the status ends the leaf's life.
func (s ChequeStatus) IsTerminal() bool {
	switch s {
	case ChequeCancelled, ChequeVoid, ChequeMissing, ChequeSettled:
		return true
	}
	return false
}

// Cheque is one outgoing cheque leaf, exclusively owned by its ChequeBook.
type Cheque struct {
	ChequeID       string           `json:"chequeID"`
	ChequeBookID   string           `json:"chequeBookID"`
	ChequeNumber   int64            `json:"chequeNumber"`
	Status         ChequeStatus     `json:"status"`
	WorkflowStatus WorkflowStatus   `json:"workflowStatus"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	PayeeName      *string          `json:"payeeName,omitempty"`
	ChequeDate     *time.Time       `json:"chequeDate,omitempty"`
	VendorID       *string          `json:"vendorID,omitempty"` // weak reference
	Remarks        *string          `json:"remarks,omitempty"`
	AuditFields
}

// ClearIssueDetails returns the leaf to the available pool shape.
func (c *Cheque) ClearIssueDetails() {
	c.Amount = nil
	c.PayeeName = nil
	c.VendorID = nil
	c.ChequeDate = nil
}

// DisplayPayee prefers the payee name and falls back to the vendor reference.
func (c Cheque) DisplayPayee() string {
	if c.PayeeName != nil && *c.PayeeName != "" {
		return *c.PayeeName
	}
	if c.VendorID != nil {
		return "vendor:" + *c.VendorID
	}
	return "Unknown"
}
