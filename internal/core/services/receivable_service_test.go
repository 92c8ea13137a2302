package services_test

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/SscSPs/cheque_management_app/internal/adapters/blobstore"
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

var internalRefPattern = regexp.MustCompile(`^INC-\d{8}-[0-9A-F]{8}$`)

type ReceivableServiceTestSuite struct {
	suite.Suite
	f      *memoryFixture
	ctx    context.Context
	images *blobstore.BucketStore
	svc    portssvc.ReceivableSvcFacade
}

func (suite *ReceivableServiceTestSuite) SetupTest() {
	suite.f = newMemoryFixture()
	suite.ctx = context.Background()
	images, err := blobstore.Open(suite.ctx, "mem://")
	require.NoError(suite.T(), err)
	suite.images = images
	suite.svc = services.NewReceivableService(suite.f.repos.TxManager, suite.f.repos.ReceivableRepo, suite.f.audit,
		services.WithReceivableClock(fixedClock),
		services.WithImageStore(images))
}

func (suite *ReceivableServiceTestSuite) TearDownTest() {
	suite.NoError(suite.images.Close())
}

func (suite *ReceivableServiceTestSuite) request(number string) dto.RecordReceivableRequest {
	invoice := "INV-7"
	return dto.RecordReceivableRequest{
		CustomerID:    "cust-1",
		ChequeNumber:  number,
		BankName:      "First Bank",
		Amount:        decimal.RequireFromString("1250.50"),
		ChequeDate:    fixedNow.AddDate(0, 1, 0),
		InvoiceNumber: &invoice,
	}
}

func (suite *ReceivableServiceTestSuite) TestRecordReceipt() {
	rec, err := suite.svc.RecordReceipt(suite.ctx, suite.request("445566"), "clerk-1")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), domain.ReceivablePending, rec.Status)
	assert.Regexp(suite.T(), internalRefPattern, rec.InternalRef)
	assert.True(suite.T(), strings.HasPrefix(rec.InternalRef, "INC-20240301-"))
	assert.Equal(suite.T(), domain.DateOnly(fixedNow), rec.ReceivedDate)
	assert.Equal(suite.T(), int64(1), rec.Version)
	assert.Equal(suite.T(), 1, suite.f.store.AuditLogCount())
}

func (suite *ReceivableServiceTestSuite) TestRecordReceipt_DuplicateChequeForBank() {
	_, err := suite.svc.RecordReceipt(suite.ctx, suite.request("445566"), "clerk-1")
	require.NoError(suite.T(), err)

	_, err = suite.svc.RecordReceipt(suite.ctx, suite.request("445566"), "clerk-2")
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)

	other := suite.request("445566")
	other.BankName = "Second Bank"
	_, err = suite.svc.RecordReceipt(suite.ctx, other, "clerk-1")
	assert.NoError(suite.T(), err, "the same number at another bank is a different cheque")
}

func (suite *ReceivableServiceTestSuite) TestRecordReceipt_Validation() {
	zero := suite.request("1")
	zero.Amount = decimal.Zero
	noBank := suite.request("2")
	noBank.BankName = " "
	noCustomer := suite.request("3")
	noCustomer.CustomerID = ""

	for _, req := range []dto.RecordReceivableRequest{zero, noBank, noCustomer} {
		_, err := suite.svc.RecordReceipt(suite.ctx, req, "clerk-1")
		assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	}
}

func (suite *ReceivableServiceTestSuite) TestSetReceivableStatus() {
	rec, err := suite.svc.RecordReceipt(suite.ctx, suite.request("445566"), "clerk-1")
	require.NoError(suite.T(), err)

	updated, err := suite.svc.SetReceivableStatus(suite.ctx, rec.ReceivableID, domain.ReceivableDeposited, nil, "clerk-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ReceivableDeposited, updated.Status)
	assert.Equal(suite.T(), int64(2), updated.Version)

	_, err = suite.svc.SetReceivableStatus(suite.ctx, rec.ReceivableID, domain.ReceivableStatus("LOST"), nil, "clerk-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

	_, err = suite.svc.SetReceivableStatus(suite.ctx, "missing", domain.ReceivableCleared, nil, "clerk-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *ReceivableServiceTestSuite) TestListReceivables_FilterByStatus() {
	first, err := suite.svc.RecordReceipt(suite.ctx, suite.request("1"), "clerk-1")
	require.NoError(suite.T(), err)
	_, err = suite.svc.RecordReceipt(suite.ctx, suite.request("2"), "clerk-1")
	require.NoError(suite.T(), err)
	_, err = suite.svc.SetReceivableStatus(suite.ctx, first.ReceivableID, domain.ReceivableBounced, nil, "clerk-1")
	require.NoError(suite.T(), err)

	bounced, err := suite.svc.ListReceivables(suite.ctx, dto.ListReceivablesParams{Status: "bounced", Limit: 10})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), bounced, 1)
	assert.Equal(suite.T(), first.ReceivableID, bounced[0].ReceivableID)

	all, err := suite.svc.ListReceivables(suite.ctx, dto.ListReceivablesParams{CustomerID: "cust-1", Limit: 10})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 2)

	_, err = suite.svc.ListReceivables(suite.ctx, dto.ListReceivablesParams{Status: "nope"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ReceivableServiceTestSuite) TestAttachImage() {
	rec, err := suite.svc.RecordReceipt(suite.ctx, suite.request("445566"), "clerk-1")
	require.NoError(suite.T(), err)

	updated, err := suite.svc.AttachImage(suite.ctx, rec.ReceivableID, `C:\scans\front.png`, "image/png", strings.NewReader("png-bytes"), "clerk-1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), updated.ImagePath)
	assert.True(suite.T(), strings.HasPrefix(*updated.ImagePath, "incoming-cheques/"))
	assert.True(suite.T(), strings.HasSuffix(*updated.ImagePath, "_front.png"))

	r, err := suite.images.Open(suite.ctx, *updated.ImagePath)
	require.NoError(suite.T(), err)
	defer r.Close()
	body, err := io.ReadAll(r)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "png-bytes", string(body))
}

func (suite *ReceivableServiceTestSuite) TestAttachImage_UnknownReceivable() {
	_, err := suite.svc.AttachImage(suite.ctx, "missing", "front.png", "image/png", strings.NewReader("x"), "clerk-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestReceivableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceivableServiceTestSuite))
}
