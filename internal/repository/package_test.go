package repository

import (
	"testing"

	"showcase-portal-backend/internal/database/models"
	"showcase-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PackageRepositoryTestSuite tests the PackageRepository
type PackageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PackageRepository
	factory       *testutils.PackageFactory
}

// SetupSuite runs before all tests in the suite
func (suite *PackageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = newBaseTestSuite(suite.T())
	suite.repo = NewPackageRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewPackageFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *PackageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PackageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PackageRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByNameOrID tests resolving by id and by name with a type check
func (suite *PackageRepositoryTestSuite) TestCreateAndGetByNameOrID() {
	showcase := suite.factory.Showcase("city-app", nil)
	suite.Require().NoError(suite.repo.Create(showcase))

	byID, err := suite.repo.GetByNameOrID(showcase.ID.String(), models.PackageTypeShowcase)
	suite.NoError(err)
	suite.Equal("city-app", byID.Name)

	byName, err := suite.repo.GetByNameOrID("city-app", models.PackageTypeShowcase)
	suite.NoError(err)
	suite.Equal(showcase.ID, byName.ID)

	_, err = suite.repo.GetByNameOrID("city-app", models.PackageTypeDataset)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByNameOrID(uuid.NewString(), models.PackageTypeShowcase)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// an id miss falls through to the name lookup, even for a uuid-shaped name
	uuidNamed := suite.factory.Showcase(uuid.NewString(), nil)
	suite.Require().NoError(suite.repo.Create(uuidNamed))
	byUUIDName, err := suite.repo.GetByNameOrID(uuidNamed.Name, models.PackageTypeShowcase)
	suite.NoError(err)
	suite.Equal(uuidNamed.ID, byUUIDName.ID)
}

// TestCreateShowcaseAddsPendingApproval tests the transactional showcase insert
func (suite *PackageRepositoryTestSuite) TestCreateShowcaseAddsPendingApproval() {
	showcase := suite.factory.Showcase("with-approval", nil)
	suite.Require().NoError(suite.repo.CreateShowcase(showcase))

	approval, err := NewShowcaseApprovalRepository(suite.baseTestSuite.DB).GetByShowcaseID(showcase.ID)
	suite.NoError(err)
	suite.Equal(models.ApprovalStatusPending, approval.Status)

	// a duplicate name rolls back without leaving an approval row behind
	dup := suite.factory.Showcase("with-approval", nil)
	suite.ErrorIs(suite.repo.CreateShowcase(dup), gorm.ErrDuplicatedKey)
	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.ShowcaseApproval{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestCreateShowcaseWithDatasets tests that the showcase and its dataset links commit together
func (suite *PackageRepositoryTestSuite) TestCreateShowcaseWithDatasets() {
	dataset := suite.factory.Dataset("rainfall")
	suite.Require().NoError(suite.repo.Create(dataset))

	showcase := suite.factory.Showcase("flood-alerts", nil)
	suite.Require().NoError(suite.repo.CreateShowcaseWithDatasets(showcase, []uuid.UUID{dataset.ID}))

	ids, err := NewShowcasePackageAssociationRepository(suite.baseTestSuite.DB).GetPackageIDsForShowcase(showcase.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{dataset.ID}, ids)

	// an unknown dataset rolls back the showcase and its approval record
	orphan := suite.factory.Showcase("orphan", nil)
	suite.Error(suite.repo.CreateShowcaseWithDatasets(orphan, []uuid.UUID{uuid.New()}))

	exists, err := suite.repo.ExistsByName("orphan")
	suite.NoError(err)
	suite.False(exists)
	var approvals int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.ShowcaseApproval{}).Count(&approvals).Error)
	suite.Equal(int64(1), approvals)
}

// TestDefaults tests that type and state default on create
func (suite *PackageRepositoryTestSuite) TestDefaults() {
	pkg := &models.Package{Name: "plain", Title: "Plain"}
	suite.Require().NoError(suite.repo.Create(pkg))

	stored, err := suite.repo.GetByID(pkg.ID)
	suite.NoError(err)
	suite.Equal(models.PackageTypeDataset, stored.Type)
	suite.Equal(models.PackageStateActive, stored.State)
	suite.False(stored.MetadataCreated.IsZero())
}

// TestExistsByNameAndGetByTitle tests name uniqueness checks and title lookup
func (suite *PackageRepositoryTestSuite) TestExistsByNameAndGetByTitle() {
	showcase := suite.factory.Showcase("titled", nil)
	showcase.Title = "Air Quality Explorer"
	suite.Require().NoError(suite.repo.Create(showcase))

	exists, err := suite.repo.ExistsByName("titled")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsByName("untitled")
	suite.NoError(err)
	suite.False(exists)

	found, err := suite.repo.GetByTitle("Air Quality Explorer", models.PackageTypeShowcase)
	suite.NoError(err)
	suite.Equal(showcase.ID, found.ID)

	suite.Error(suite.repo.Create(suite.factory.Showcase("titled", nil)))
}

// TestGetByIDsSkipsInactiveAndOtherTypes tests the batch lookup filters
func (suite *PackageRepositoryTestSuite) TestGetByIDsSkipsInactiveAndOtherTypes() {
	a := suite.factory.Dataset("a-data")
	b := suite.factory.Dataset("b-data")
	c := suite.factory.Showcase("c-app", nil)
	for _, p := range []*models.Package{a, b, c} {
		suite.Require().NoError(suite.repo.Create(p))
	}
	suite.Require().NoError(suite.repo.Delete(b.ID))

	pkgs, err := suite.repo.GetByIDs([]uuid.UUID{a.ID, b.ID, c.ID}, models.PackageTypeDataset)
	suite.NoError(err)
	suite.Len(pkgs, 1)
	suite.Equal(a.ID, pkgs[0].ID)

	pkgs, err = suite.repo.GetByIDs(nil, models.PackageTypeDataset)
	suite.NoError(err)
	suite.Empty(pkgs)
}

// TestPatchAndListByType tests partial updates and paginated listing
func (suite *PackageRepositoryTestSuite) TestPatchAndListByType() {
	for _, name := range []string{"one", "two", "three"} {
		suite.Require().NoError(suite.repo.Create(suite.factory.Showcase(name, nil)))
	}
	first, err := suite.repo.GetByNameOrID("one", models.PackageTypeShowcase)
	suite.Require().NoError(err)

	suite.NoError(suite.repo.Patch(first.ID, map[string]interface{}{"notes": "<p>rendered</p>"}))
	patched, err := suite.repo.GetByID(first.ID)
	suite.NoError(err)
	suite.Equal("<p>rendered</p>", patched.Notes)
	suite.Equal(first.Title, patched.Title)

	suite.ErrorIs(suite.repo.Patch(uuid.New(), map[string]interface{}{"notes": "x"}), gorm.ErrRecordNotFound)

	pkgs, total, err := suite.repo.ListByType(models.PackageTypeShowcase, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(pkgs, 2)

	pkgs, _, err = suite.repo.ListByType(models.PackageTypeShowcase, 0, 0)
	suite.NoError(err)
	suite.Len(pkgs, 3)
}

// TestPurgeMissing tests hard delete of an unknown id
func (suite *PackageRepositoryTestSuite) TestPurgeMissing() {
	suite.ErrorIs(suite.repo.Purge(uuid.New()), gorm.ErrRecordNotFound)
}

// TestPackageRepositoryTestSuite runs the test suite
func TestPackageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PackageRepositoryTestSuite))
}
