package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receivable represents a row of incoming_cheques.
type Receivable struct {
	ReceivableID  string          `db:"receivable_id"`
	CustomerID    string          `db:"customer_id"`
	InternalRef   string          `db:"internal_ref"`
	ChequeNumber  string          `db:"cheque_number"`
	BankName      string          `db:"bank_name"`
	BranchName    *string         `db:"branch_name"`
	Amount        decimal.Decimal `db:"amount"`
	ChequeDate    time.Time       `db:"cheque_date"`
	ReceivedDate  time.Time       `db:"received_date"`
	Status        string          `db:"status"`
	ImagePath     *string         `db:"image_path"`
	Remarks       *string         `db:"remarks"`
	InvoiceNumber *string         `db:"invoice_number"`
	AuditFields
}
