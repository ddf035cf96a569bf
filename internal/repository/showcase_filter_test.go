package repository

import (
	"testing"
	"time"

	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ShowcaseFilterTestSuite tests FilterShowcaseIDs and ShowcaseQuery
type ShowcaseFilterTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShowcaseApprovalRepository
	packages      *testutils.PackageFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ShowcaseFilterTestSuite) SetupSuite() {
	suite.baseTestSuite = newBaseTestSuite(suite.T())
	suite.repo = NewShowcaseApprovalRepository(suite.baseTestSuite.DB)
	suite.packages = testutils.NewPackageFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShowcaseFilterTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShowcaseFilterTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShowcaseFilterTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShowcaseFilterTestSuite) insert(pkg *models.Package) *models.Package {
	suite.Require().NoError(suite.baseTestSuite.DB.Create(pkg).Error)
	return pkg
}

func (suite *ShowcaseFilterTestSuite) showcase(name, title, notes string) *models.Package {
	p := suite.packages.Showcase(name, nil)
	p.Title = title
	p.Notes = notes
	return suite.insert(p)
}

func (suite *ShowcaseFilterTestSuite) approve(id uuid.UUID, status models.ApprovalStatus) {
	_, err := suite.repo.UpdateStatus(id, "", status)
	suite.Require().NoError(err)
}

func (suite *ShowcaseFilterTestSuite) filter(f ShowcaseFilter) []uuid.UUID {
	ids, total, err := suite.repo.FilterShowcaseIDs(f, -1, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(len(ids)), total)
	return ids
}

// TestBaseFilterOnlyActiveShowcases tests that datasets and inactive showcases are excluded
func (suite *ShowcaseFilterTestSuite) TestBaseFilterOnlyActiveShowcases() {
	active := suite.showcase("active-one", "Active", "")
	draft := suite.packages.Showcase("draft-one", nil)
	draft.State = models.PackageStateDraft
	suite.insert(draft)
	deleted := suite.packages.Showcase("deleted-one", nil)
	deleted.State = models.PackageStateDeleted
	suite.insert(deleted)
	suite.insert(suite.packages.Dataset("dataset-one"))

	ids := suite.filter(ShowcaseFilter{})
	suite.Equal([]uuid.UUID{active.ID}, ids)
}

// TestStatusFilterIsSubset tests that the approved filter is the intersection with approved records
func (suite *ShowcaseFilterTestSuite) TestStatusFilterIsSubset() {
	approvedA := suite.showcase("approved-a", "A", "")
	approvedB := suite.showcase("approved-b", "B", "")
	rejected := suite.showcase("rejected", "C", "")
	noRecord := suite.showcase("no-record", "D", "")
	suite.approve(approvedA.ID, models.ApprovalStatusApproved)
	suite.approve(approvedB.ID, models.ApprovalStatusApproved)
	suite.approve(rejected.ID, models.ApprovalStatusRejected)

	all := suite.filter(ShowcaseFilter{})
	suite.Len(all, 4)

	approved := models.ApprovalStatusApproved
	ids := suite.filter(ShowcaseFilter{Status: &approved})
	suite.ElementsMatch([]uuid.UUID{approvedA.ID, approvedB.ID}, ids)
	for _, id := range ids {
		suite.Contains(all, id)
	}

	// showcases with no record behave as pending
	pending := models.ApprovalStatusPending
	suite.Equal([]uuid.UUID{noRecord.ID}, suite.filter(ShowcaseFilter{Status: &pending}))
}

// TestFreeTextRequiresEveryTerm tests that each term must match title, notes, or name
func (suite *ShowcaseFilterTestSuite) TestFreeTextRequiresEveryTerm() {
	both := suite.showcase("transit-map", "City Transit", "Bus routes on an interactive map")
	titleOnly := suite.showcase("transit-stats", "Transit statistics", "Ridership figures")
	nameOnly := suite.showcase("map-gallery", "Gallery", "Photos")

	suite.ElementsMatch([]uuid.UUID{both.ID}, suite.filter(ShowcaseFilter{Query: "transit MAP"}))
	suite.ElementsMatch([]uuid.UUID{both.ID, titleOnly.ID}, suite.filter(ShowcaseFilter{Query: "transit"}))
	suite.ElementsMatch([]uuid.UUID{both.ID, nameOnly.ID}, suite.filter(ShowcaseFilter{Query: "  map  "}))
	suite.Empty(suite.filter(ShowcaseFilter{Query: "transit photos"}))
}

// TestFreeTextEscapesWildcards tests that LIKE wildcards in terms match literally
func (suite *ShowcaseFilterTestSuite) TestFreeTextEscapesWildcards() {
	percent := suite.showcase("growth", "Growth 100% renewable", "")
	suite.showcase("other", "Growth report", "")

	suite.Equal([]uuid.UUID{percent.ID}, suite.filter(ShowcaseFilter{Query: "100%"}))
	suite.Empty(suite.filter(ShowcaseFilter{Query: "_"}))
}

// TestCreatedDateRangeIsInclusive tests whole-day inclusive date bounds
func (suite *ShowcaseFilterTestSuite) TestCreatedDateRangeIsInclusive() {
	day := func(d, h int) time.Time { return time.Date(2024, 3, d, h, 0, 0, 0, time.UTC) }

	before := suite.insert(suite.packages.ShowcaseCreatedAt("before", nil, day(9, 23)))
	startDay := suite.insert(suite.packages.ShowcaseCreatedAt("start-day", nil, day(10, 0)))
	endDay := suite.insert(suite.packages.ShowcaseCreatedAt("end-day", nil, day(12, 23)))
	after := suite.insert(suite.packages.ShowcaseCreatedAt("after", nil, day(13, 0)))

	start := day(10, 15)
	end := day(12, 1)
	ids := suite.filter(ShowcaseFilter{CreatedStart: &start, CreatedEnd: &end})
	suite.ElementsMatch([]uuid.UUID{startDay.ID, endDay.ID}, ids)
	suite.NotContains(ids, before.ID)
	suite.NotContains(ids, after.ID)
}

// TestCreatorFilter tests the exact creator match
func (suite *ShowcaseFilterTestSuite) TestCreatorFilter() {
	users := testutils.NewUserFactory()
	alice := users.WithName("alice")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(alice).Error)

	mine := suite.insert(suite.packages.Showcase("mine", &alice.ID))
	suite.showcase("theirs", "Theirs", "")

	suite.Equal([]uuid.UUID{mine.ID}, suite.filter(ShowcaseFilter{CreatorUserID: &alice.ID}))
}

// TestSortAndPagination tests ordering, paging, and totals
func (suite *ShowcaseFilterTestSuite) TestSortAndPagination() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := suite.insert(suite.packages.ShowcaseCreatedAt("charlie", nil, base))
	a := suite.insert(suite.packages.ShowcaseCreatedAt("alpha", nil, base.Add(time.Hour)))
	b := suite.insert(suite.packages.ShowcaseCreatedAt("bravo", nil, base.Add(2*time.Hour)))

	// default is newest first
	suite.Equal([]uuid.UUID{b.ID, a.ID, c.ID}, suite.filter(ShowcaseFilter{}))
	suite.Equal([]uuid.UUID{a.ID, b.ID, c.ID}, suite.filter(ShowcaseFilter{Sort: "name asc"}))
	suite.Equal([]uuid.UUID{c.ID, b.ID, a.ID}, suite.filter(ShowcaseFilter{Sort: "name desc"}))

	page, total, err := suite.repo.FilterShowcaseIDs(ShowcaseFilter{Sort: "name"}, 2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal([]uuid.UUID{c.ID}, page)

	empty, total, err := suite.repo.FilterShowcaseIDs(ShowcaseFilter{Sort: "name"}, 2, 10)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Empty(empty)
}

// TestSortByStatusField tests sorting on an approval record column
func (suite *ShowcaseFilterTestSuite) TestSortByStatusField() {
	approved := suite.showcase("x-approved", "X", "")
	rejected := suite.showcase("y-rejected", "Y", "")
	suite.approve(approved.ID, models.ApprovalStatusApproved)
	suite.approve(rejected.ID, models.ApprovalStatusRejected)

	suite.Equal([]uuid.UUID{approved.ID, rejected.ID}, suite.filter(ShowcaseFilter{Sort: "status asc"}))
}

// TestUnsupportedSortIsValidationError tests the sort whitelist
func (suite *ShowcaseFilterTestSuite) TestUnsupportedSortIsValidationError() {
	_, _, err := suite.repo.FilterShowcaseIDs(ShowcaseFilter{Sort: "password asc"}, -1, 0)
	suite.True(apperrors.IsValidation(err))

	_, err = suite.repo.ShowcaseQuery(ShowcaseFilter{Sort: "name sideways"})
	suite.True(apperrors.IsValidation(err))
}

// TestShowcaseQueryIsComposable tests that callers can keep refining the lazy query
func (suite *ShowcaseFilterTestSuite) TestShowcaseQueryIsComposable() {
	a := suite.showcase("alpha", "Alpha", "")
	suite.showcase("bravo", "Bravo", "")

	query, err := suite.repo.ShowcaseQuery(ShowcaseFilter{Sort: "name asc"})
	suite.Require().NoError(err)

	var ids []uuid.UUID
	suite.NoError(query.Limit(1).Pluck("packages.id", &ids).Error)
	suite.Equal([]uuid.UUID{a.ID}, ids)
}

// TestShowcaseFilterTestSuite runs the test suite
func TestShowcaseFilterTestSuite(t *testing.T) {
	suite.Run(t, new(ShowcaseFilterTestSuite))
}

func TestParseShowcaseSort(t *testing.T) {
	cases := map[string]string{
		"":                      "packages.metadata_created DESC",
		"name":                  "packages.name ASC",
		"Title DESC":            "packages.title DESC",
		"status_modified desc":  "showcase_approval.status_modified DESC",
		"  metadata_modified  ": "packages.metadata_modified ASC",
	}
	for in, want := range cases {
		got, err := ParseShowcaseSort(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"name asc extra", "id", "name up"} {
		_, err := ParseShowcaseSort(bad)
		assert.True(t, apperrors.IsValidation(err), bad)
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}
