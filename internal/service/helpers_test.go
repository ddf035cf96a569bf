package service_test

import (
	"time"

	"showcase-portal-backend/internal/authz"
	"showcase-portal-backend/internal/database/models"
	"showcase-portal-backend/internal/mocks"
	"showcase-portal-backend/internal/service"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// serviceMocks bundles the repository and infrastructure mocks shared by the service suites
type serviceMocks struct {
	packages     *mocks.MockPackageRepositoryInterface
	users        *mocks.MockUserRepositoryInterface
	approvals    *mocks.MockShowcaseApprovalRepositoryInterface
	associations *mocks.MockShowcasePackageAssociationRepositoryInterface
	admins       *mocks.MockShowcaseAdminRepositoryInterface
	notifier     *mocks.MockNotifierInterface
	cache        *mocks.MockStatsCache
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		packages:     mocks.NewMockPackageRepositoryInterface(ctrl),
		users:        mocks.NewMockUserRepositoryInterface(ctrl),
		approvals:    mocks.NewMockShowcaseApprovalRepositoryInterface(ctrl),
		associations: mocks.NewMockShowcasePackageAssociationRepositoryInterface(ctrl),
		admins:       mocks.NewMockShowcaseAdminRepositoryInterface(ctrl),
		notifier:     mocks.NewMockNotifierInterface(ctrl),
		cache:        mocks.NewMockStatsCache(ctrl),
	}
}

func (m *serviceMocks) deps() service.ShowcaseServiceDeps {
	return service.ShowcaseServiceDeps{
		PackageRepo:     m.packages,
		UserRepo:        m.users,
		ApprovalRepo:    m.approvals,
		AssociationRepo: m.associations,
		AdminRepo:       m.admins,
		Authorizer:      authz.MustNewAuthorizer(),
		Notifier:        m.notifier,
		Cache:           m.cache,
		Validator:       service.NewValidator(),
		PublicUploadURL: "http://localhost:8080/uploads",
	}
}

// expectAdmin stubs the showcase admin lookup for userID
func (m *serviceMocks) expectAdmin(userID uuid.UUID, isAdmin bool) {
	m.admins.EXPECT().IsAdmin(userID).Return(isAdmin, nil).AnyTimes()
}

// expectHydrate stubs everything hydrating pkg reads besides the approval record
func (m *serviceMocks) expectHydrate(pkg *models.Package, creator *models.User) {
	m.associations.EXPECT().CountForShowcase(pkg.ID).Return(int64(0), nil).AnyTimes()
	if pkg.CreatorUserID != nil && creator != nil {
		m.users.EXPECT().GetByID(*pkg.CreatorUserID).Return(creator, nil).AnyTimes()
	}
}

func approvalFor(pkg *models.Package, status models.ApprovalStatus) *models.ShowcaseApproval {
	return &models.ShowcaseApproval{
		ShowcaseID:     pkg.ID,
		Status:         status,
		StatusModified: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func actorFor(user *models.User) service.Actor {
	id := user.ID
	return service.Actor{UserID: &id, Username: user.Name, Sysadmin: user.Sysadmin}
}

func strPtr(s string) *string {
	return &s
}
