package service_test

import (
	"context"
	"testing"

	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/service"
	"showcase-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AssociationServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mocks   *serviceMocks
	service *service.AssociationService
	ctx     context.Context

	creator  *models.User
	other    *models.User
	showcase *models.Package
	dataset  *models.Package
}

func (suite *AssociationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mocks = newServiceMocks(suite.ctrl)
	suite.service = service.NewAssociationService(suite.mocks.deps())
	suite.ctx = context.Background()

	users := testutils.NewUserFactory()
	pkgs := testutils.NewPackageFactory()
	suite.creator = users.WithName("alice")
	suite.other = users.WithName("bob")
	suite.showcase = pkgs.Showcase("water-map", &suite.creator.ID)
	suite.dataset = pkgs.Dataset("rainfall")
}

func (suite *AssociationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssociationServiceTestSuite) request() *service.AssociationRequest {
	return &service.AssociationRequest{PackageID: "rainfall", ShowcaseID: "water-map"}
}

func (suite *AssociationServiceTestSuite) expectPair() {
	suite.mocks.packages.EXPECT().GetByNameOrID("water-map", models.PackageTypeShowcase).Return(suite.showcase, nil)
	suite.mocks.packages.EXPECT().GetByNameOrID("rainfall", models.PackageTypeDataset).Return(suite.dataset, nil)
}

func (suite *AssociationServiceTestSuite) TestCreate_Success() {
	suite.mocks.expectAdmin(suite.creator.ID, false)
	suite.expectPair()
	suite.mocks.associations.EXPECT().Exists(suite.dataset.ID, suite.showcase.ID).Return(false, nil)
	suite.mocks.associations.EXPECT().Create(suite.dataset.ID, suite.showcase.ID).Return(&models.ShowcasePackageAssociation{
		PackageID:  suite.dataset.ID,
		ShowcaseID: suite.showcase.ID,
	}, nil)

	resp, err := suite.service.Create(suite.ctx, actorFor(suite.creator), suite.request())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.dataset.ID.String(), resp.PackageID)
	assert.Equal(suite.T(), suite.showcase.ID.String(), resp.ShowcaseID)
}

func (suite *AssociationServiceTestSuite) TestCreate_Duplicate_AlreadyExists() {
	suite.mocks.expectAdmin(suite.creator.ID, false)
	suite.expectPair()
	suite.mocks.associations.EXPECT().Exists(suite.dataset.ID, suite.showcase.ID).Return(true, nil)

	_, err := suite.service.Create(suite.ctx, actorFor(suite.creator), suite.request())

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Contains(suite.T(), err.Error(), suite.dataset.ID.String())
	assert.Contains(suite.T(), err.Error(), suite.showcase.ID.String())
}

func (suite *AssociationServiceTestSuite) TestCreate_ConcurrentInsert_AlreadyExists() {
	suite.mocks.expectAdmin(suite.creator.ID, false)
	suite.expectPair()
	suite.mocks.associations.EXPECT().Exists(suite.dataset.ID, suite.showcase.ID).Return(false, nil)
	suite.mocks.associations.EXPECT().Create(suite.dataset.ID, suite.showcase.ID).Return(nil, gorm.ErrDuplicatedKey)

	_, err := suite.service.Create(suite.ctx, actorFor(suite.creator), suite.request())

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Contains(suite.T(), err.Error(), suite.dataset.ID.String())
}

func (suite *AssociationServiceTestSuite) TestCreate_NotCreator() {
	// showcase admins review but do not curate other people's showcases
	suite.mocks.expectAdmin(suite.other.ID, true)
	suite.mocks.packages.EXPECT().GetByNameOrID("water-map", models.PackageTypeShowcase).Return(suite.showcase, nil)

	_, err := suite.service.Create(suite.ctx, actorFor(suite.other), suite.request())

	assert.ErrorIs(suite.T(), err, apperrors.ErrUpdateNotAllowed)
}

func (suite *AssociationServiceTestSuite) TestCreate_UnknownDataset() {
	suite.mocks.expectAdmin(suite.creator.ID, false)
	suite.mocks.packages.EXPECT().GetByNameOrID("water-map", models.PackageTypeShowcase).Return(suite.showcase, nil)
	suite.mocks.packages.EXPECT().GetByNameOrID("rainfall", models.PackageTypeDataset).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(suite.ctx, actorFor(suite.creator), suite.request())

	assert.ErrorIs(suite.T(), err, apperrors.ErrDatasetNotFound)
}

func (suite *AssociationServiceTestSuite) TestCreate_MissingFields() {
	_, err := suite.service.Create(suite.ctx, actorFor(suite.creator), &service.AssociationRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AssociationServiceTestSuite) TestDelete_Success() {
	suite.mocks.expectAdmin(suite.creator.ID, false)
	suite.expectPair()
	suite.mocks.associations.EXPECT().Delete(suite.dataset.ID, suite.showcase.ID).Return(nil)

	err := suite.service.Delete(suite.ctx, actorFor(suite.creator), suite.request())

	assert.NoError(suite.T(), err)
}

func (suite *AssociationServiceTestSuite) TestDelete_Missing_NotFound() {
	suite.mocks.expectAdmin(suite.creator.ID, false)
	suite.expectPair()
	suite.mocks.associations.EXPECT().Delete(suite.dataset.ID, suite.showcase.ID).Return(gorm.ErrRecordNotFound)

	err := suite.service.Delete(suite.ctx, actorFor(suite.creator), suite.request())

	assert.ErrorIs(suite.T(), err, apperrors.ErrAssociationNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *AssociationServiceTestSuite) TestShowcasePackageList_ApprovedIsPublic() {
	ids := []uuid.UUID{suite.dataset.ID}
	suite.mocks.packages.EXPECT().GetByNameOrID("water-map", models.PackageTypeShowcase).Return(suite.showcase, nil)
	suite.mocks.approvals.EXPECT().GetOrCreate(suite.showcase.ID).Return(approvalFor(suite.showcase, models.ApprovalStatusApproved), nil)
	suite.mocks.associations.EXPECT().GetPackageIDsForShowcase(suite.showcase.ID).Return(ids, nil)
	suite.mocks.packages.EXPECT().GetByIDs(ids, models.PackageTypeDataset).Return([]models.Package{*suite.dataset}, nil)

	datasets, err := suite.service.ShowcasePackageList(suite.ctx, service.Anonymous(), "water-map")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), datasets, 1)
	assert.Equal(suite.T(), "rainfall", datasets[0].Name)
}

func (suite *AssociationServiceTestSuite) TestShowcasePackageList_PendingNeedsAccess() {
	suite.mocks.expectAdmin(suite.other.ID, false)
	suite.mocks.packages.EXPECT().GetByNameOrID("water-map", models.PackageTypeShowcase).Return(suite.showcase, nil)
	suite.mocks.approvals.EXPECT().GetOrCreate(suite.showcase.ID).Return(approvalFor(suite.showcase, models.ApprovalStatusPending), nil)

	_, err := suite.service.ShowcasePackageList(suite.ctx, actorFor(suite.other), "water-map")

	assert.ErrorIs(suite.T(), err, apperrors.ErrViewNotAllowed)
}

func (suite *AssociationServiceTestSuite) TestPackageShowcaseList_HidesUnapprovedFromAnonymous() {
	hidden := testutils.NewPackageFactory().Showcase("draft-idea", &suite.creator.ID)
	ids := []uuid.UUID{suite.showcase.ID, hidden.ID}

	suite.mocks.packages.EXPECT().GetByNameOrID("rainfall", models.PackageTypeDataset).Return(suite.dataset, nil)
	suite.mocks.associations.EXPECT().GetShowcaseIDsForPackage(suite.dataset.ID).Return(ids, nil)
	suite.mocks.packages.EXPECT().GetByIDs(ids, models.PackageTypeShowcase).Return([]models.Package{*hidden, *suite.showcase}, nil)
	suite.mocks.approvals.EXPECT().GetOrCreate(hidden.ID).Return(approvalFor(hidden, models.ApprovalStatusPending), nil)
	suite.mocks.approvals.EXPECT().GetOrCreate(suite.showcase.ID).Return(approvalFor(suite.showcase, models.ApprovalStatusApproved), nil)
	suite.mocks.expectHydrate(suite.showcase, suite.creator)

	showcases, err := suite.service.PackageShowcaseList(suite.ctx, service.Anonymous(), "rainfall")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), showcases, 1)
	assert.Equal(suite.T(), "water-map", showcases[0].Name)
	assert.Equal(suite.T(), "approved", showcases[0].ApprovalStatus.Status)
}

func (suite *AssociationServiceTestSuite) TestPackageShowcaseList_UnknownDataset() {
	suite.mocks.packages.EXPECT().GetByNameOrID("nope", models.PackageTypeDataset).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.PackageShowcaseList(suite.ctx, service.Anonymous(), "nope")

	assert.ErrorIs(suite.T(), err, apperrors.ErrDatasetNotFound)
}

func TestAssociationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssociationServiceTestSuite))
}
