package repository

import (
	"errors"
	"time"

	"showcase-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PackageRepository handles database operations for catalog packages
type PackageRepository struct {
	db *gorm.DB
}

// Ensure PackageRepository implements PackageRepositoryInterface
var _ PackageRepositoryInterface = (*PackageRepository)(nil)

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// Create creates a new package
func (r *PackageRepository) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

// CreateShowcase inserts a showcase together with its pending approval record
func (r *PackageRepository) CreateShowcase(pkg *models.Package) error {
	return r.CreateShowcaseWithDatasets(pkg, nil)
}

// CreateShowcaseWithDatasets inserts a showcase, its pending approval record and its
// dataset associations in one transaction
func (r *PackageRepository) CreateShowcaseWithDatasets(pkg *models.Package, datasetIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pkg).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.ShowcaseApproval{
			ShowcaseID:     pkg.ID,
			Status:         models.ApprovalStatusPending,
			StatusModified: time.Now().UTC(),
		}).Error; err != nil {
			return err
		}
		for _, datasetID := range datasetIDs {
			if err := tx.Create(&models.ShowcasePackageAssociation{PackageID: datasetID, ShowcaseID: pkg.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a package by ID regardless of type or state
func (r *PackageRepository) GetByID(id uuid.UUID) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetByNameOrID resolves an id or a name to a package of the given type.
// The id is tried first, then the name.
func (r *PackageRepository) GetByNameOrID(nameOrID string, pkgType models.PackageType) (*models.Package, error) {
	var pkg models.Package
	if id, err := uuid.Parse(nameOrID); err == nil {
		err = r.db.Where("id = ? AND type = ?", id, pkgType).First(&pkg).Error
		if err == nil {
			return &pkg, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if err := r.db.Where("name = ? AND type = ?", nameOrID, pkgType).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetByTitle retrieves the first active package of the given type with an exact title
func (r *PackageRepository) GetByTitle(title string, pkgType models.PackageType) (*models.Package, error) {
	var pkg models.Package
	err := r.db.Where("title = ? AND type = ? AND state = ?", title, pkgType, models.PackageStateActive).
		Order("metadata_created ASC").
		First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetByIDs retrieves the active packages of the given type among ids, ordered by title
func (r *PackageRepository) GetByIDs(ids []uuid.UUID, pkgType models.PackageType) ([]models.Package, error) {
	if len(ids) == 0 {
		return []models.Package{}, nil
	}
	var pkgs []models.Package
	err := r.db.Where("id IN ? AND type = ? AND state = ?", ids, pkgType, models.PackageStateActive).
		Order("title ASC").
		Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

// ExistsByName checks whether any package already uses name
func (r *PackageRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Package{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// ListByType retrieves active packages of a type with pagination
func (r *PackageRepository) ListByType(pkgType models.PackageType, limit, offset int) ([]models.Package, int64, error) {
	var pkgs []models.Package
	var total int64

	query := r.db.Model(&models.Package{}).Where("type = ? AND state = ?", pkgType, models.PackageStateActive)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("metadata_created ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&pkgs).Error; err != nil {
		return nil, 0, err
	}

	return pkgs, total, nil
}

// Update saves every field of the package
func (r *PackageRepository) Update(pkg *models.Package) error {
	return r.db.Save(pkg).Error
}

// Patch updates only the given columns
func (r *PackageRepository) Patch(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.Package{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete marks a package as deleted
func (r *PackageRepository) Delete(id uuid.UUID) error {
	return r.Patch(id, map[string]interface{}{"state": models.PackageStateDeleted})
}

// Purge removes the package row; associations and approval records cascade
func (r *PackageRepository) Purge(id uuid.UUID) error {
	result := r.db.Delete(&models.Package{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
