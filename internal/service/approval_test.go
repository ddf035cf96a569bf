package service_test

import (
	"context"
	"errors"
	"testing"

	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/service"
	"showcase-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mocks   *serviceMocks
	service *service.ApprovalService
	ctx     context.Context

	creator  *models.User
	reviewer *models.User
	sysadmin *models.User
	showcase *models.Package
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mocks = newServiceMocks(suite.ctrl)
	suite.service = service.NewApprovalService(suite.mocks.deps())
	suite.ctx = context.Background()

	users := testutils.NewUserFactory()
	suite.creator = users.WithName("alice")
	suite.reviewer = users.WithName("reviewer")
	suite.sysadmin = users.Sysadmin("root")
	suite.showcase = testutils.NewPackageFactory().Showcase("water-map", &suite.creator.ID)
}

func (suite *ApprovalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ApprovalServiceTestSuite) expectShowcase() {
	suite.mocks.packages.EXPECT().GetByNameOrID("water-map", models.PackageTypeShowcase).Return(suite.showcase, nil)
}

func (suite *ApprovalServiceTestSuite) TestUpdateStatus_ShowcaseAdminApproves() {
	suite.mocks.expectAdmin(suite.reviewer.ID, true)
	suite.expectShowcase()
	approved := approvalFor(suite.showcase, models.ApprovalStatusApproved)
	// feedback is cleared for every status but needs_revision
	suite.mocks.approvals.EXPECT().UpdateStatus(suite.showcase.ID, "", models.ApprovalStatusApproved).Return(approved, nil)
	suite.mocks.cache.EXPECT().Invalidate(gomock.Any())
	suite.mocks.notifier.EXPECT().StatusUpdated(gomock.Any(), suite.showcase, approved)

	resp, err := suite.service.UpdateStatus(suite.ctx, actorFor(suite.reviewer), &service.UpdateStatusRequest{
		ShowcaseID: "water-map",
		Status:     "approved",
		Feedback:   "looks great",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.showcase.ID.String(), resp.ShowcaseID)
	assert.Equal(suite.T(), "approved", resp.Status)
	assert.Equal(suite.T(), "Approved", resp.DisplayStatus)
	assert.Empty(suite.T(), resp.Feedback)
	assert.Equal(suite.T(), "2024-05-01T10:00:00Z", resp.StatusModified)
}

func (suite *ApprovalServiceTestSuite) TestUpdateStatus_NeedsRevisionKeepsFeedbackVerbatim() {
	suite.expectShowcase()
	revision := approvalFor(suite.showcase, models.ApprovalStatusNeedsRevision)
	revision.Feedback = "  please add a screenshot "
	suite.mocks.approvals.EXPECT().
		UpdateStatus(suite.showcase.ID, "  please add a screenshot ", models.ApprovalStatusNeedsRevision).
		Return(revision, nil)
	suite.mocks.cache.EXPECT().Invalidate(gomock.Any())
	suite.mocks.notifier.EXPECT().StatusUpdated(gomock.Any(), gomock.Any(), gomock.Any())

	resp, err := suite.service.UpdateStatus(suite.ctx, actorFor(suite.sysadmin), &service.UpdateStatusRequest{
		ShowcaseID: "water-map",
		Status:     "Needs Revision",
		Feedback:   "  please add a screenshot ",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "needs_revision", resp.Status)
	assert.Equal(suite.T(), "Needs Revision", resp.DisplayStatus)
	assert.Equal(suite.T(), "  please add a screenshot ", resp.Feedback)
}

func (suite *ApprovalServiceTestSuite) TestUpdateStatus_NeedsRevisionRequiresFeedback() {
	for _, feedback := range []string{"", "   \t"} {
		suite.expectShowcase()

		_, err := suite.service.UpdateStatus(suite.ctx, actorFor(suite.sysadmin), &service.UpdateStatusRequest{
			ShowcaseID: "water-map",
			Status:     "needs_revision",
			Feedback:   feedback,
		})

		assert.ErrorIs(suite.T(), err, apperrors.ErrFeedbackRequired)
		assert.True(suite.T(), apperrors.IsValidation(err))
	}
}

func (suite *ApprovalServiceTestSuite) TestUpdateStatus_InvalidStatusListsCodes() {
	_, err := suite.service.UpdateStatus(suite.ctx, actorFor(suite.sysadmin), &service.UpdateStatusRequest{
		ShowcaseID: "water-map",
		Status:     "archived",
	})

	var fieldErrs apperrors.ValidationErrors
	require.True(suite.T(), errors.As(err, &fieldErrs))
	assert.Equal(suite.T(), "Status must be one of: pending, needs_revision, rejected, approved", fieldErrs["status"])
}

func (suite *ApprovalServiceTestSuite) TestUpdateStatus_MissingShowcaseID() {
	_, err := suite.service.UpdateStatus(suite.ctx, actorFor(suite.sysadmin), &service.UpdateStatusRequest{Status: "approved"})

	var fieldErrs apperrors.ValidationErrors
	require.True(suite.T(), errors.As(err, &fieldErrs))
	assert.Contains(suite.T(), fieldErrs, "showcase_id")
}

func (suite *ApprovalServiceTestSuite) TestUpdateStatus_UnknownShowcase() {
	suite.mocks.packages.EXPECT().GetByNameOrID("nope", models.PackageTypeShowcase).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.UpdateStatus(suite.ctx, actorFor(suite.sysadmin), &service.UpdateStatusRequest{
		ShowcaseID: "nope",
		Status:     "approved",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrShowcaseNotFound)
}

func (suite *ApprovalServiceTestSuite) TestUpdateStatus_CreatorCannotReviewOwnShowcase() {
	suite.mocks.expectAdmin(suite.creator.ID, false)
	suite.expectShowcase()

	_, err := suite.service.UpdateStatus(suite.ctx, actorFor(suite.creator), &service.UpdateStatusRequest{
		ShowcaseID: "water-map",
		Status:     "approved",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStatusNotAllowed)
}

func (suite *ApprovalServiceTestSuite) TestUpdateStatus_Anonymous() {
	suite.expectShowcase()

	_, err := suite.service.UpdateStatus(suite.ctx, service.Anonymous(), &service.UpdateStatusRequest{
		ShowcaseID: "water-map",
		Status:     "approved",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLoginRequired)
}

func (suite *ApprovalServiceTestSuite) TestGetStatus_LazilyCreatesPending() {
	suite.mocks.expectAdmin(suite.creator.ID, false)
	suite.expectShowcase()
	suite.mocks.approvals.EXPECT().GetOrCreate(suite.showcase.ID).Return(approvalFor(suite.showcase, models.ApprovalStatusPending), nil)

	resp, err := suite.service.GetStatus(suite.ctx, actorFor(suite.creator), "water-map")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "pending", resp.Status)
	assert.Equal(suite.T(), "Pending", resp.DisplayStatus)
}

func (suite *ApprovalServiceTestSuite) TestGetStatus_UnapprovedHiddenFromAnonymous() {
	suite.expectShowcase()
	suite.mocks.approvals.EXPECT().GetOrCreate(suite.showcase.ID).Return(approvalFor(suite.showcase, models.ApprovalStatusRejected), nil)

	_, err := suite.service.GetStatus(suite.ctx, service.Anonymous(), "water-map")

	assert.ErrorIs(suite.T(), err, apperrors.ErrLoginRequired)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
