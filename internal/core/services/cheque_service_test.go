package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ChequeServiceTestSuite struct {
	suite.Suite
	f    *memoryFixture
	ctx  context.Context
	book *domain.ChequeBook
}

func (suite *ChequeServiceTestSuite) SetupTest() {
	suite.f = newMemoryFixture()
	suite.ctx = context.Background()
	suite.book = suite.f.newBook(suite.T(), "acct-1", 5001, 5010)
}

func (suite *ChequeServiceTestSuite) issueRequest(amount int64) dto.IssueChequeRequest {
	payee := "Acme Supplies"
	return dto.IssueChequeRequest{
		ChequeBookID: suite.book.ChequeBookID,
		Amount:       decimal.NewFromInt(amount),
		PayeeName:    &payee,
		ChequeDate:   fixedNow.AddDate(0, 0, 10),
	}
}

func (suite *ChequeServiceTestSuite) TestIssueCheque_DraftsLowestLeaf() {
	before := suite.f.store.AuditLogCount()

	cheque, err := suite.f.cheques.IssueCheque(suite.ctx, suite.issueRequest(2500), "maker-1")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), int64(5001), cheque.ChequeNumber)
	assert.Equal(suite.T(), domain.ChequeUnused, cheque.Status)
	assert.Equal(suite.T(), domain.WorkflowDraft, cheque.WorkflowStatus)
	require.NotNil(suite.T(), cheque.Amount)
	assert.True(suite.T(), cheque.Amount.Equal(decimal.NewFromInt(2500)))
	assert.Equal(suite.T(), "Acme Supplies", cheque.DisplayPayee())
	assert.Equal(suite.T(), before+1, suite.f.store.AuditLogCount())

	second, err := suite.f.cheques.IssueCheque(suite.ctx, suite.issueRequest(100), "maker-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5002), second.ChequeNumber)
}

func (suite *ChequeServiceTestSuite) TestIssueCheque_ByChequeID() {
	leaves, err := suite.f.books.ListChequesByBook(suite.ctx, suite.book.ChequeBookID)
	require.NoError(suite.T(), err)

	req := suite.issueRequest(10)
	req.ChequeBookID = ""
	req.ChequeID = leaves[4].ChequeID
	cheque, err := suite.f.cheques.IssueCheque(suite.ctx, req, "maker-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5005), cheque.ChequeNumber)
}

func (suite *ChequeServiceTestSuite) TestIssueCheque_Validation() {
	noPayee := suite.issueRequest(10)
	noPayee.PayeeName = nil

	zero := suite.issueRequest(0)

	noTarget := suite.issueRequest(10)
	noTarget.ChequeBookID = ""

	for _, req := range []dto.IssueChequeRequest{noPayee, zero, noTarget} {
		_, err := suite.f.cheques.IssueCheque(suite.ctx, req, "maker-1")
		assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	}
}

func (suite *ChequeServiceTestSuite) TestIssueCheque_VendorOnlyPayee() {
	req := suite.issueRequest(10)
	vendor := "vendor-42"
	req.PayeeName = nil
	req.VendorID = &vendor
	cheque, err := suite.f.cheques.IssueCheque(suite.ctx, req, "maker-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "vendor:vendor-42", cheque.DisplayPayee())
}

func (suite *ChequeServiceTestSuite) TestIssueCheque_DirectIssueForbiddenByDefault() {
	req := suite.issueRequest(10)
	approved := domain.WorkflowApproved
	req.WorkflowStatus = &approved

	_, err := suite.f.cheques.IssueCheque(suite.ctx, req, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *ChequeServiceTestSuite) TestIssueCheque_DirectIssueWhenAllowed() {
	f := newMemoryFixture(services.WithDirectIssue(true))
	book := f.newBook(suite.T(), "acct-9", 1, 5)
	payee := "Acme"
	approved := domain.WorkflowApproved

	cheque, err := f.cheques.IssueCheque(suite.ctx, dto.IssueChequeRequest{
		ChequeBookID:   book.ChequeBookID,
		Amount:         decimal.NewFromInt(99),
		PayeeName:      &payee,
		ChequeDate:     fixedNow,
		WorkflowStatus: &approved,
	}, "admin-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ChequeIssued, cheque.Status)
	assert.Equal(suite.T(), domain.WorkflowApproved, cheque.WorkflowStatus)

	printed, err := f.cheques.MarkPrinted(suite.ctx, cheque.ChequeID, "admin-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ChequePrinted, printed.Status)
	assert.Equal(suite.T(), domain.WorkflowPrinted, printed.WorkflowStatus)

	// an approved leaf cannot be redrafted
	_, err = f.cheques.IssueCheque(suite.ctx, dto.IssueChequeRequest{
		ChequeID:   cheque.ChequeID,
		Amount:     decimal.NewFromInt(1),
		PayeeName:  &payee,
		ChequeDate: fixedNow,
	}, "admin-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

func (suite *ChequeServiceTestSuite) TestMarkPrinted_RequiresApproval() {
	cheque, err := suite.f.cheques.IssueCheque(suite.ctx, suite.issueRequest(10), "maker-1")
	require.NoError(suite.T(), err)

	_, err = suite.f.cheques.MarkPrinted(suite.ctx, cheque.ChequeID, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

func (suite *ChequeServiceTestSuite) TestSetChequeStatus_EnforcesWorkflowTable() {
	cheque, err := suite.f.cheques.IssueCheque(suite.ctx, suite.issueRequest(10), "maker-1")
	require.NoError(suite.T(), err)

	_, err = suite.f.cheques.SetChequeStatus(suite.ctx, cheque.ChequeID, domain.ChequeCleared, nil, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation, "a draft cannot clear")

	before := suite.f.store.AuditLogCount()
	remarks := "torn during printing"
	voided, err := suite.f.cheques.SetChequeStatus(suite.ctx, cheque.ChequeID, domain.ChequeVoid, &remarks, "maker-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ChequeVoid, voided.Status)
	require.NotNil(suite.T(), voided.Remarks)
	assert.Equal(suite.T(), remarks, *voided.Remarks)
	assert.Equal(suite.T(), before+1, suite.f.store.AuditLogCount())

	history, err := suite.f.audit.ListEntityHistory(suite.ctx, domain.EntityTypeCheque, cheque.ChequeID)
	require.NoError(suite.T(), err)
	var change *domain.AuditLogEntry
	for i := range history {
		if history[i].Action == domain.AuditStatusChange {
			change = &history[i]
		}
	}
	require.NotNil(suite.T(), change)
	assert.Equal(suite.T(), "UNUSED", change.OldValue)
	assert.Equal(suite.T(), "VOID", change.NewValue)
	assert.Equal(suite.T(), "maker-1", change.ActorID)
}

func (suite *ChequeServiceTestSuite) TestSetChequeStatus_UnknownStatus() {
	cheque, err := suite.f.cheques.IssueCheque(suite.ctx, suite.issueRequest(10), "maker-1")
	require.NoError(suite.T(), err)

	_, err = suite.f.cheques.SetChequeStatus(suite.ctx, cheque.ChequeID, domain.ChequeStatus("LOST"), nil, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ChequeServiceTestSuite) TestSetChequeStatus_NotFound() {
	_, err := suite.f.cheques.SetChequeStatus(suite.ctx, "missing", domain.ChequeVoid, nil, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestChequeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChequeServiceTestSuite))
}
