package dto

import (
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SweepResponse reports the outcome of a due-date sweep.
type SweepResponse struct {
	Transitioned int `json:"transitioned"`
}

// PdcExposureResponse summarizes post-dated cheque exposure on both sides.
type PdcExposureResponse struct {
	AsOf             time.Time                 `json:"asOf"`
	Receivables      []domain.PdcSummaryRow    `json:"receivables"`
	IssuedCheques    []domain.IssuedSummaryRow `json:"issuedCheques"`
	TotalReceivable  decimal.Decimal           `json:"totalReceivable"`
	TotalOutstanding decimal.Decimal           `json:"totalOutstanding"`
}
