package testutils

import (
	"fmt"
	"time"

	"showcase-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		},
		Name:     "user-" + id.String()[:8],
		Fullname: "Test User",
		Email:    "user-" + id.String()[:8] + "@example.com",
		State:    models.PackageStateActive,
	}
}

// WithName creates a user with the given user name
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	user.Email = name + "@example.com"
	return user
}

// Sysadmin creates a sysadmin user with the given user name
func (f *UserFactory) Sysadmin(name string) *models.User {
	user := f.WithName(name)
	user.Sysadmin = true
	return user
}

// PackageFactory provides methods to create test catalog packages
type PackageFactory struct{}

// NewPackageFactory creates a new PackageFactory
func NewPackageFactory() *PackageFactory {
	return &PackageFactory{}
}

// Dataset creates an active dataset
func (f *PackageFactory) Dataset(name string) *models.Package {
	return &models.Package{
		ID:    uuid.New(),
		Name:  name,
		Title: "Dataset " + name,
		Notes: "Notes for " + name,
		Type:  models.PackageTypeDataset,
		State: models.PackageStateActive,
	}
}

// Showcase creates an active showcase owned by creatorID
func (f *PackageFactory) Showcase(name string, creatorID *uuid.UUID) *models.Package {
	return &models.Package{
		ID:            uuid.New(),
		Name:          name,
		Title:         "Showcase " + name,
		Notes:         "Notes for " + name,
		Type:          models.PackageTypeShowcase,
		State:         models.PackageStateActive,
		CreatorUserID: creatorID,
		ReuseType:     models.ReuseTypeApplication,
		URL:           fmt.Sprintf("https://example.com/%s", name),
	}
}

// ShowcaseCreatedAt creates an active showcase with a fixed creation time
func (f *PackageFactory) ShowcaseCreatedAt(name string, creatorID *uuid.UUID, created time.Time) *models.Package {
	pkg := f.Showcase(name, creatorID)
	pkg.MetadataCreated = created.UTC()
	pkg.MetadataModified = created.UTC()
	return pkg
}
