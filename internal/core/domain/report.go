package domain

import "github.com/shopspring/decimal"

// PdcSummaryRow aggregates receivables sharing a status.
type PdcSummaryRow struct {
	Status      ReceivableStatus `json:"status"`
	Count       int64            `json:"count"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
}

// IssuedSummaryRow aggregates issued cheques sharing a status.
type IssuedSummaryRow struct {
	Status      ChequeStatus    `json:"status"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
