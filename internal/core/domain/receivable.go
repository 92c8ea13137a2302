package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableStatus is the lifecycle state of a received (incoming) cheque.
type ReceivableStatus string

const (
	ReceivableCreated   ReceivableStatus = "CREATED"
	ReceivablePending   ReceivableStatus = "PENDING"
	ReceivableDue       ReceivableStatus = "DUE"
	ReceivableDeposited ReceivableStatus = "DEPOSITED"
	ReceivableCleared   ReceivableStatus = "CLEARED"
	ReceivableBounced   ReceivableStatus = "BOUNCED"
	ReceivableReturned  ReceivableStatus = "RETURNED"
	ReceivableSettled   ReceivableStatus = "SETTLED"
)

var allReceivableStatuses = []ReceivableStatus{
	ReceivableCreated, ReceivablePending, ReceivableDue, ReceivableDeposited,
	ReceivableCleared, ReceivableBounced, ReceivableReturned, ReceivableSettled,
}

// ParseReceivableStatus validates s against the enumerated set.
func ParseReceivableStatus(s string) (ReceivableStatus, error) {
	candidate := ReceivableStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range allReceivableStatuses {
		if st == candidate {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown receivable status %q", s)
}

// Receivable is a cheque received from a customer.
// (ChequeNumber, BankName) is unique system-wide.
type Receivable struct {
	ReceivableID  string           `json:"receivableID"`
	CustomerID    string           `json:"customerID"`
	InternalRef   string           `json:"internalRef"`
	ChequeNumber  string           `json:"chequeNumber"`
	BankName      string           `json:"bankName"` // drawer's bank
	BranchName    *string          `json:"branchName,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	ChequeDate    time.Time        `json:"chequeDate"`
	ReceivedDate  time.Time        `json:"receivedDate"`
	Status        ReceivableStatus `json:"status"`
	ImagePath     *string          `json:"imagePath,omitempty"`
	Remarks       *string          `json:"remarks,omitempty"`
	InvoiceNumber *string          `json:"invoiceNumber,omitempty"`
	AuditFields
}
