package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/core/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	f        *memoryFixture
	ctx      context.Context
	book     *domain.ChequeBook
	approval portssvc.ApprovalSvcFacade
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.f = newMemoryFixture()
	suite.ctx = context.Background()
	suite.book = suite.f.newBook(suite.T(), "acct-1", 100, 199)
	suite.approval = suite.f.approvals()
}

// submitIssue drafts a cheque for amount and asks for its issue.
func (suite *ApprovalServiceTestSuite) submitIssue(amount int64) (*domain.Cheque, *domain.ApprovalRequest) {
	cheque := suite.f.draftCheque(suite.T(), suite.book, amount, fixedNow.AddDate(0, 0, 30))
	req, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque,
		EntityID:   cheque.ChequeID,
		ActionType: "issue",
	}, "maker-1")
	require.NoError(suite.T(), err)
	return cheque, req
}

func (suite *ApprovalServiceTestSuite) approve(requestID, actorID string, role domain.Role) *domain.ApprovalRequest {
	req, err := suite.approval.Approve(suite.ctx, requestID, actorID, role)
	require.NoError(suite.T(), err)
	return req
}

func (suite *ApprovalServiceTestSuite) TestCreateRequest_StartsAtChecker() {
	_, req := suite.submitIssue(50000)

	assert.Equal(suite.T(), domain.StageChecker, req.CurrentStage)
	assert.Equal(suite.T(), domain.RequestPending, req.Status)
	assert.Equal(suite.T(), domain.ActionIssue, req.ActionType)
	assert.True(suite.T(), req.Amount.Equal(decimal.NewFromInt(50000)), "amount is inherited from the draft")
	assert.Equal(suite.T(), []string{domain.NotificationApprovalPending}, suite.f.notifier.types())
}

func (suite *ApprovalServiceTestSuite) TestApprove_StandardAmountNeedsTwoApprovals() {
	cheque, req := suite.submitIssue(50000)

	req = suite.approve(req.RequestID, "checker-1", domain.RoleChecker)
	assert.Equal(suite.T(), domain.StageApprover, req.CurrentStage)
	require.NotNil(suite.T(), req.CheckedBy)
	assert.Equal(suite.T(), "checker-1", *req.CheckedBy)

	req = suite.approve(req.RequestID, "approver-1", domain.RoleApprover)
	assert.Equal(suite.T(), domain.StageApproved, req.CurrentStage)
	assert.Equal(suite.T(), domain.RequestApproved, req.Status)
	assert.Nil(suite.T(), req.AuthorizedBy)

	issued, err := suite.f.cheques.GetCheque(suite.ctx, cheque.ChequeID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.WorkflowApproved, issued.WorkflowStatus)
	assert.Equal(suite.T(), domain.ChequeIssued, issued.Status)
	assert.Equal(suite.T(), "approver-1", issued.LastUpdatedBy)

	assert.Equal(suite.T(), []string{
		domain.NotificationApprovalPending,
		domain.NotificationApprovalPending,
		domain.NotificationApprovalCompleted,
	}, suite.f.notifier.types())
}

func (suite *ApprovalServiceTestSuite) TestApprove_ThresholdIsExclusive() {
	_, req := suite.submitIssue(100000)
	suite.approve(req.RequestID, "checker-1", domain.RoleChecker)
	req = suite.approve(req.RequestID, "approver-1", domain.RoleApprover)
	assert.Equal(suite.T(), domain.StageApproved, req.CurrentStage)
}

func (suite *ApprovalServiceTestSuite) TestApprove_HighValueNeedsFinance() {
	cheque, req := suite.submitIssue(150000)
	assert.True(suite.T(), req.RequiresFinance())

	suite.approve(req.RequestID, "checker-1", domain.RoleChecker)
	req = suite.approve(req.RequestID, "approver-1", domain.RoleApprover)
	assert.Equal(suite.T(), domain.StageFinance, req.CurrentStage)
	assert.Equal(suite.T(), domain.RequestPending, req.Status)

	pending, err := suite.f.cheques.GetCheque(suite.ctx, cheque.ChequeID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.WorkflowDraft, pending.WorkflowStatus, "not applied before the final stage")

	_, err = suite.approval.Approve(suite.ctx, req.RequestID, "approver-2", domain.RoleApprover)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)

	req = suite.approve(req.RequestID, "finance-1", domain.RoleFinanceManager)
	assert.Equal(suite.T(), domain.StageApproved, req.CurrentStage)
	require.NotNil(suite.T(), req.AuthorizedBy)
	assert.Equal(suite.T(), "finance-1", *req.AuthorizedBy)
}

func (suite *ApprovalServiceTestSuite) TestApprove_WrongRoleLeavesRequestUntouched() {
	_, req := suite.submitIssue(500)
	before := suite.f.store.AuditLogCount()

	for _, role := range []domain.Role{domain.RoleMaker, domain.RoleApprover, domain.RoleFinanceManager} {
		_, err := suite.approval.Approve(suite.ctx, req.RequestID, "someone", role)
		assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden, string(role))
	}

	reloaded, err := suite.approval.GetRequest(suite.ctx, req.RequestID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StageChecker, reloaded.CurrentStage)
	assert.Equal(suite.T(), before, suite.f.store.AuditLogCount())
}

func (suite *ApprovalServiceTestSuite) TestApprove_DistinctActors() {
	_, req := suite.submitIssue(500)

	_, err := suite.approval.Approve(suite.ctx, req.RequestID, "maker-1", domain.RoleChecker)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden, "requester cannot check")

	suite.approve(req.RequestID, "admin-1", domain.RoleAdmin)
	_, err = suite.approval.Approve(suite.ctx, req.RequestID, "admin-1", domain.RoleAdmin)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden, "checker cannot also approve")
}

func (suite *ApprovalServiceTestSuite) TestApprove_DistinctActorsBindAdmin() {
	cheque := suite.f.draftCheque(suite.T(), suite.book, 10, fixedNow)
	req, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque, EntityID: cheque.ChequeID, ActionType: domain.ActionIssue,
	}, "admin-1")
	require.NoError(suite.T(), err)

	_, err = suite.approval.Approve(suite.ctx, req.RequestID, "admin-1", domain.RoleAdmin)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden, "an admin cannot approve their own request")

	req = suite.approve(req.RequestID, "admin-2", domain.RoleAdmin)
	assert.Equal(suite.T(), domain.StageApprover, req.CurrentStage)
}

func (suite *ApprovalServiceTestSuite) TestApprove_DistinctActorsDisabled() {
	approval := suite.f.approvals(services.WithDistinctApprovers(false))
	cheque := suite.f.draftCheque(suite.T(), suite.book, 10, fixedNow)
	req, err := approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque, EntityID: cheque.ChequeID, ActionType: domain.ActionIssue,
	}, "admin-1")
	require.NoError(suite.T(), err)

	_, err = approval.Approve(suite.ctx, req.RequestID, "admin-1", domain.RoleAdmin)
	require.NoError(suite.T(), err)
	req, err = approval.Approve(suite.ctx, req.RequestID, "admin-1", domain.RoleAdmin)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.RequestApproved, req.Status)
}

func (suite *ApprovalServiceTestSuite) TestApprove_TerminalRequestConflicts() {
	_, req := suite.submitIssue(500)
	suite.approve(req.RequestID, "checker-1", domain.RoleChecker)
	suite.approve(req.RequestID, "approver-1", domain.RoleApprover)

	_, err := suite.approval.Approve(suite.ctx, req.RequestID, "admin-1", domain.RoleAdmin)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	_, err = suite.approval.Reject(suite.ctx, req.RequestID, "admin-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

func (suite *ApprovalServiceTestSuite) TestReject_ReturnsLeafToPool() {
	cases := []struct {
		name     string
		amount   int64
		advance  []domain.Actor
		rejecter string
	}{
		{name: "at checker", amount: 75000, rejecter: "checker-1"},
		{
			name:     "at approver",
			amount:   75000,
			advance:  []domain.Actor{{ID: "checker-1", Role: domain.RoleChecker}},
			rejecter: "approver-1",
		},
		{
			name:   "at finance",
			amount: 150000,
			advance: []domain.Actor{
				{ID: "checker-1", Role: domain.RoleChecker},
				{ID: "approver-1", Role: domain.RoleApprover},
			},
			rejecter: "finance-1",
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			vendor := "vendor-42"
			cheque, err := suite.f.cheques.IssueCheque(suite.ctx, dto.IssueChequeRequest{
				ChequeBookID: suite.book.ChequeBookID,
				Amount:       decimal.NewFromInt(tc.amount),
				VendorID:     &vendor,
				ChequeDate:   fixedNow.AddDate(0, 0, 30),
			}, "maker-1")
			require.NoError(suite.T(), err)
			req, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
				EntityType: domain.EntityTypeCheque, EntityID: cheque.ChequeID, ActionType: domain.ActionIssue,
			}, "maker-1")
			require.NoError(suite.T(), err)
			for _, actor := range tc.advance {
				suite.approve(req.RequestID, actor.ID, actor.Role)
			}

			rejected, err := suite.approval.Reject(suite.ctx, req.RequestID, tc.rejecter)
			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), domain.RequestRejected, rejected.Status)
			assert.Equal(suite.T(), domain.StageRejected, rejected.CurrentStage)
			require.NotNil(suite.T(), rejected.RejectedBy)
			assert.Equal(suite.T(), tc.rejecter, *rejected.RejectedBy)

			reverted, err := suite.f.cheques.GetCheque(suite.ctx, cheque.ChequeID)
			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), domain.ChequeUnused, reverted.Status)
			assert.Equal(suite.T(), domain.WorkflowRejected, reverted.WorkflowStatus)
			assert.Nil(suite.T(), reverted.Amount)
			assert.Nil(suite.T(), reverted.PayeeName)
			assert.Nil(suite.T(), reverted.VendorID)
			assert.Nil(suite.T(), reverted.ChequeDate)
			assert.Equal(suite.T(), tc.rejecter, reverted.LastUpdatedBy)

			next, err := suite.f.books.NextAvailableCheque(suite.ctx, suite.book.ChequeBookID, "maker-1")
			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), cheque.ChequeID, next.ChequeID, "the rejected leaf is the lowest unused again")

			assert.Contains(suite.T(), suite.f.notifier.types(), domain.NotificationApprovalRejected)
		})
	}
}

func (suite *ApprovalServiceTestSuite) TestReject_LeafAlreadyWrittenOffIsLeftAlone() {
	cheque, req := suite.submitIssue(500)
	_, err := suite.f.cheques.SetChequeStatus(suite.ctx, cheque.ChequeID, domain.ChequeVoid, nil, "maker-1")
	require.NoError(suite.T(), err)

	rejected, err := suite.approval.Reject(suite.ctx, req.RequestID, "checker-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.RequestRejected, rejected.Status)

	pending, err := suite.approval.ListPendingApprovals(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), pending)

	voided, err := suite.f.cheques.GetCheque(suite.ctx, cheque.ChequeID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ChequeVoid, voided.Status)
	require.NotNil(suite.T(), voided.Amount)
	assert.True(suite.T(), voided.Amount.Equal(decimal.NewFromInt(500)))
}

func (suite *ApprovalServiceTestSuite) TestIssueCheque_PendingRequestFreezesDraft() {
	cheque, req := suite.submitIssue(50000)
	payee := "Acme Supplies"

	_, err := suite.f.cheques.IssueCheque(suite.ctx, dto.IssueChequeRequest{
		ChequeID:   cheque.ChequeID,
		Amount:     decimal.NewFromInt(900000),
		PayeeName:  &payee,
		ChequeDate: fixedNow.AddDate(0, 0, 30),
	}, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)

	suite.approve(req.RequestID, "checker-1", domain.RoleChecker)
	req = suite.approve(req.RequestID, "approver-1", domain.RoleApprover)
	assert.Equal(suite.T(), domain.RequestApproved, req.Status)

	issued, err := suite.f.cheques.GetCheque(suite.ctx, cheque.ChequeID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ChequeIssued, issued.Status)
	require.NotNil(suite.T(), issued.Amount)
	assert.True(suite.T(), issued.Amount.Equal(decimal.NewFromInt(50000)), "the reviewed amount is the one issued")
}

func (suite *ApprovalServiceTestSuite) TestApprove_AmountChangedOutsideRequestConflicts() {
	cheque, req := suite.submitIssue(50000)
	suite.approve(req.RequestID, "checker-1", domain.RoleChecker)

	stored, err := suite.f.repos.ChequeRepo.FindChequeByID(suite.ctx, cheque.ChequeID)
	require.NoError(suite.T(), err)
	inflated := decimal.NewFromInt(900000)
	stored.Amount = &inflated
	require.NoError(suite.T(), suite.f.repos.ChequeRepo.UpdateCheque(suite.ctx, stored))

	_, err = suite.approval.Approve(suite.ctx, req.RequestID, "approver-1", domain.RoleApprover)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)

	reloaded, err := suite.approval.GetRequest(suite.ctx, req.RequestID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StageApprover, reloaded.CurrentStage)
	assert.Equal(suite.T(), domain.RequestPending, reloaded.Status)

	draft, err := suite.f.cheques.GetCheque(suite.ctx, cheque.ChequeID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.WorkflowDraft, draft.WorkflowStatus)
	assert.Equal(suite.T(), domain.ChequeUnused, draft.Status)
}

func (suite *ApprovalServiceTestSuite) TestCreateRequest_AmountMustMatchDraft() {
	cheque := suite.f.draftCheque(suite.T(), suite.book, 900000, fixedNow)

	_, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque,
		EntityID:   cheque.ChequeID,
		ActionType: domain.ActionIssue,
		Amount:     decimal.NewFromInt(50000),
	}, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ApprovalServiceTestSuite) TestCreateRequest_DuplicatePendingConflicts() {
	cheque, first := suite.submitIssue(500)
	count := suite.f.store.AuditLogCount()

	_, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque, EntityID: cheque.ChequeID, ActionType: "issue",
	}, "maker-2")
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	assert.Equal(suite.T(), count, suite.f.store.AuditLogCount())

	void, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque, EntityID: cheque.ChequeID, ActionType: domain.ActionVoid,
	}, "maker-1")
	require.NoError(suite.T(), err, "a different action may be pending alongside")
	assert.NotEqual(suite.T(), first.RequestID, void.RequestID)

	payment := dto.CreateApprovalRequest{
		EntityType: "Vendor", EntityID: "v-1", ActionType: "PAYMENT", Amount: decimal.NewFromInt(10),
	}
	vendorReq, err := suite.approval.CreateRequest(suite.ctx, payment, "maker-1")
	require.NoError(suite.T(), err)
	_, err = suite.approval.CreateRequest(suite.ctx, payment, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)

	suite.approve(vendorReq.RequestID, "checker-1", domain.RoleChecker)
	suite.approve(vendorReq.RequestID, "approver-1", domain.RoleApprover)
	_, err = suite.approval.CreateRequest(suite.ctx, payment, "maker-1")
	assert.NoError(suite.T(), err, "a finished request no longer blocks a new one")
}

func (suite *ApprovalServiceTestSuite) TestEachCallWritesOneAuditEntry() {
	cheque := suite.f.draftCheque(suite.T(), suite.book, 250000, fixedNow)

	count := suite.f.store.AuditLogCount()
	req, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque, EntityID: cheque.ChequeID, ActionType: domain.ActionIssue,
	}, "maker-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), count+1, suite.f.store.AuditLogCount())

	steps := []struct {
		actor string
		role  domain.Role
	}{
		{"checker-1", domain.RoleChecker},
		{"approver-1", domain.RoleApprover},
		{"finance-1", domain.RoleFinanceManager},
	}
	for _, step := range steps {
		count = suite.f.store.AuditLogCount()
		suite.approve(req.RequestID, step.actor, step.role)
		assert.Equal(suite.T(), count+1, suite.f.store.AuditLogCount(), step.actor)
	}

	history, err := suite.f.audit.ListEntityHistory(suite.ctx, domain.EntityTypeCheque, cheque.ChequeID)
	require.NoError(suite.T(), err)
	actions := map[string]int{}
	for _, e := range history {
		actions[e.Action]++
	}
	assert.Equal(suite.T(), 1, actions[domain.AuditWorkflowInitiated])
	assert.Equal(suite.T(), 2, actions[domain.AuditWorkflowAdvanced])
	assert.Equal(suite.T(), 1, actions[domain.AuditWorkflowApproved])
}

func (suite *ApprovalServiceTestSuite) TestApprove_HandlerFailureRollsBack() {
	cheque, req := suite.submitIssue(500)
	suite.approve(req.RequestID, "checker-1", domain.RoleChecker)

	// the leaf is written off while the request waits
	_, err := suite.f.cheques.SetChequeStatus(suite.ctx, cheque.ChequeID, domain.ChequeVoid, nil, "maker-1")
	require.NoError(suite.T(), err)
	count := suite.f.store.AuditLogCount()
	sent := len(suite.f.notifier.types())

	_, err = suite.approval.Approve(suite.ctx, req.RequestID, "approver-1", domain.RoleApprover)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)

	reloaded, err := suite.approval.GetRequest(suite.ctx, req.RequestID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StageApprover, reloaded.CurrentStage)
	assert.Nil(suite.T(), reloaded.ApprovedBy)
	assert.Equal(suite.T(), count, suite.f.store.AuditLogCount())
	assert.Len(suite.T(), suite.f.notifier.types(), sent, "nothing is notified for a rolled back step")
}

func (suite *ApprovalServiceTestSuite) TestVoidRequest_AppliesPayloadRemarks() {
	cheque := suite.f.draftCheque(suite.T(), suite.book, 900, fixedNow)
	req, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque,
		EntityID:   cheque.ChequeID,
		ActionType: domain.ActionVoid,
		Payload:    json.RawMessage(`{"remarks":"payee details wrong"}`),
	}, "maker-1")
	require.NoError(suite.T(), err)

	suite.approve(req.RequestID, "checker-1", domain.RoleChecker)
	suite.approve(req.RequestID, "approver-1", domain.RoleApprover)

	voided, err := suite.f.cheques.GetCheque(suite.ctx, cheque.ChequeID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ChequeVoid, voided.Status)
	require.NotNil(suite.T(), voided.Remarks)
	assert.Equal(suite.T(), "payee details wrong", *voided.Remarks)
}

func (suite *ApprovalServiceTestSuite) TestCreateRequest_Rejections() {
	unused, err := suite.f.books.NextAvailableCheque(suite.ctx, suite.book.ChequeBookID, "maker-1")
	require.NoError(suite.T(), err)

	_, err = suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque, EntityID: unused.ChequeID, ActionType: domain.ActionIssue,
	}, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict, "an undrafted leaf cannot be issued")

	_, err = suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque, EntityID: "missing", ActionType: domain.ActionIssue,
	}, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)

	_, err = suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: domain.EntityTypeCheque, EntityID: unused.ChequeID, ActionType: "REPRINT",
	}, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

	_, err = suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: "Vendor", EntityID: "v-1", ActionType: "UPDATE", Payload: json.RawMessage(`{"amount":`),
	}, "maker-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ApprovalServiceTestSuite) TestUnregisteredEntityType_AmountFromPayload() {
	req, err := suite.approval.CreateRequest(suite.ctx, dto.CreateApprovalRequest{
		EntityType: "Vendor",
		EntityID:   "v-1",
		ActionType: "payment",
		Payload:    json.RawMessage(`{"amount": 250000, "note": "annual contract"}`),
	}, "maker-1")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), req.Amount.Equal(decimal.NewFromInt(250000)))

	suite.approve(req.RequestID, "checker-1", domain.RoleChecker)
	suite.approve(req.RequestID, "approver-1", domain.RoleApprover)
	req = suite.approve(req.RequestID, "finance-1", domain.RoleFinanceManager)
	assert.Equal(suite.T(), domain.RequestApproved, req.Status)
}

func (suite *ApprovalServiceTestSuite) TestListPendingForRole() {
	_, first := suite.submitIssue(10)
	suite.submitIssue(20)
	suite.approve(first.RequestID, "checker-1", domain.RoleChecker)

	count := func(role domain.Role) int {
		items, err := suite.approval.ListPendingForRole(suite.ctx, role)
		require.NoError(suite.T(), err)
		return len(items)
	}
	assert.Equal(suite.T(), 1, count(domain.RoleChecker))
	assert.Equal(suite.T(), 1, count(domain.RoleApprover))
	assert.Equal(suite.T(), 0, count(domain.RoleFinanceManager))
	assert.Equal(suite.T(), 2, count(domain.RoleAdmin))
	assert.Equal(suite.T(), 0, count(domain.RoleMaker))

	all, err := suite.approval.ListPendingApprovals(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 2)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
