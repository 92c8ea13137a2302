package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cheque represents a row of cheques. Issue details are NULL until drafted.
type Cheque struct {
	ChequeID       string           `db:"cheque_id"`
	ChequeBookID   string           `db:"cheque_book_id"`
	ChequeNumber   int64            `db:"cheque_number"`
	Status         string           `db:"status"`
	WorkflowStatus string           `db:"workflow_status"`
	Amount         *decimal.Decimal `db:"amount"`
	PayeeName      *string          `db:"payee_name"`
	ChequeDate     *time.Time       `db:"cheque_date"`
	VendorID       *string          `db:"vendor_id"`
	Remarks        *string          `db:"remarks"`
	AuditFields
}
