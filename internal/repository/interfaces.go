package repository

import (
	"showcase-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PackageRepositoryInterface defines the catalog primitives for datasets and showcases
type PackageRepositoryInterface interface {
	Create(pkg *models.Package) error
	CreateShowcase(pkg *models.Package) error
	CreateShowcaseWithDatasets(pkg *models.Package, datasetIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Package, error)
	GetByNameOrID(nameOrID string, pkgType models.PackageType) (*models.Package, error)
	GetByTitle(title string, pkgType models.PackageType) (*models.Package, error)
	GetByIDs(ids []uuid.UUID, pkgType models.PackageType) ([]models.Package, error)
	ExistsByName(name string) (bool, error)
	ListByType(pkgType models.PackageType, limit, offset int) ([]models.Package, int64, error)
	Update(pkg *models.Package) error
	Patch(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	Purge(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByName(name string) (*models.User, error)
	GetByNameOrID(nameOrID string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetSysadmins() ([]models.User, error)
}

// ShowcaseApprovalRepositoryInterface defines the approval-status bookkeeping and showcase queries
type ShowcaseApprovalRepositoryInterface interface {
	GetByShowcaseID(showcaseID uuid.UUID) (*models.ShowcaseApproval, error)
	GetOrCreate(showcaseID uuid.UUID) (*models.ShowcaseApproval, error)
	UpdateStatus(showcaseID uuid.UUID, feedback string, status models.ApprovalStatus) (*models.ShowcaseApproval, error)
	FilterShowcaseIDs(filter ShowcaseFilter, limit, offset int) ([]uuid.UUID, int64, error)
	Statistics(creatorUserID *uuid.UUID) (*ShowcaseStatistics, error)
}

// ShowcasePackageAssociationRepositoryInterface defines the dataset <-> showcase join table operations
type ShowcasePackageAssociationRepositoryInterface interface {
	Create(packageID, showcaseID uuid.UUID) (*models.ShowcasePackageAssociation, error)
	Exists(packageID, showcaseID uuid.UUID) (bool, error)
	Get(packageID, showcaseID uuid.UUID) (*models.ShowcasePackageAssociation, error)
	Filter(packageID, showcaseID *uuid.UUID) ([]models.ShowcasePackageAssociation, error)
	Delete(packageID, showcaseID uuid.UUID) error
	GetPackageIDsForShowcase(showcaseID uuid.UUID) ([]uuid.UUID, error)
	GetShowcaseIDsForPackage(packageID uuid.UUID) ([]uuid.UUID, error)
	CountForShowcase(showcaseID uuid.UUID) (int64, error)
}

// ShowcaseAdminRepositoryInterface defines the showcase admin list operations
type ShowcaseAdminRepositoryInterface interface {
	Create(userID uuid.UUID) error
	Exists(userID uuid.UUID) (bool, error)
	Delete(userID uuid.UUID) error
	GetAdminIDs() ([]uuid.UUID, error)
	IsAdmin(userID uuid.UUID) (bool, error)
}
