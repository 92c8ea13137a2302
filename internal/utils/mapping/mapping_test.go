package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApprovalRequestPayloadNullability(t *testing.T) {
	req := domain.ApprovalRequest{RequestID: "r1", Amount: decimal.NewFromInt(10), Status: domain.RequestPending, CurrentStage: domain.StageChecker}

	m := ToModelApprovalRequest(req)
	assert.Nil(t, m.Payload, "empty payload is stored as NULL")

	req.Payload = `{"remarks":"x"}`
	m = ToModelApprovalRequest(req)
	if assert.NotNil(t, m.Payload) {
		assert.Equal(t, req.Payload, *m.Payload)
	}
	assert.Equal(t, req, ToDomainApprovalRequest(m))
}

func TestAuditLogEmptyValuesBecomeNull(t *testing.T) {
	entry := domain.AuditLogEntry{AuditLogID: "a1", Action: domain.AuditCreate, NewValue: "UNUSED", Timestamp: time.Now().UTC()}

	m := ToModelAuditLog(entry)
	assert.Nil(t, m.OldValue)
	assert.Equal(t, "UNUSED", *m.NewValue)
	assert.Equal(t, entry, ToDomainAuditLog(m))
}
