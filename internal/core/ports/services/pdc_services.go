package services

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/dto"
)

// DueDateSvc advances post-dated instruments whose date has arrived.
type DueDateSvc interface {
	// RunDueDateSweep transitions every eligible cheque and receivable to DUE and returns
	// how many records were transitioned. Per-record failures are logged and skipped.
	RunDueDateSweep(ctx context.Context) (int, error)
}

// ReportingService defines PDC exposure reporting
type ReportingService interface {
	GetPdcExposure(ctx context.Context) (*dto.PdcExposureResponse, error)
}
