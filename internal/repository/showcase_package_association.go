package repository

import (
	"showcase-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShowcasePackageAssociationRepository handles the dataset <-> showcase join table
type ShowcasePackageAssociationRepository struct {
	db *gorm.DB
}

// Ensure ShowcasePackageAssociationRepository implements ShowcasePackageAssociationRepositoryInterface
var _ ShowcasePackageAssociationRepositoryInterface = (*ShowcasePackageAssociationRepository)(nil)

// NewShowcasePackageAssociationRepository creates a new association repository
func NewShowcasePackageAssociationRepository(db *gorm.DB) *ShowcasePackageAssociationRepository {
	return &ShowcasePackageAssociationRepository{db: db}
}

// Create inserts a new association; a duplicate pair violates the composite primary key
func (r *ShowcasePackageAssociationRepository) Create(packageID, showcaseID uuid.UUID) (*models.ShowcasePackageAssociation, error) {
	assoc := &models.ShowcasePackageAssociation{PackageID: packageID, ShowcaseID: showcaseID}
	if err := r.db.Create(assoc).Error; err != nil {
		return nil, err
	}
	return assoc, nil
}

// Exists checks if the association exists
func (r *ShowcasePackageAssociationRepository) Exists(packageID, showcaseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShowcasePackageAssociation{}).
		Where("package_id = ? AND showcase_id = ?", packageID, showcaseID).
		Count(&count).Error
	return count > 0, err
}

// Get retrieves a single association
func (r *ShowcasePackageAssociationRepository) Get(packageID, showcaseID uuid.UUID) (*models.ShowcasePackageAssociation, error) {
	var assoc models.ShowcasePackageAssociation
	err := r.db.Where("package_id = ? AND showcase_id = ?", packageID, showcaseID).First(&assoc).Error
	if err != nil {
		return nil, err
	}
	return &assoc, nil
}

// Filter retrieves associations matching whichever side is given
func (r *ShowcasePackageAssociationRepository) Filter(packageID, showcaseID *uuid.UUID) ([]models.ShowcasePackageAssociation, error) {
	query := r.db.Model(&models.ShowcasePackageAssociation{})
	if packageID != nil {
		query = query.Where("package_id = ?", *packageID)
	}
	if showcaseID != nil {
		query = query.Where("showcase_id = ?", *showcaseID)
	}
	var assocs []models.ShowcasePackageAssociation
	if err := query.Find(&assocs).Error; err != nil {
		return nil, err
	}
	return assocs, nil
}

// Delete removes the association, returning gorm.ErrRecordNotFound when there is none
func (r *ShowcasePackageAssociationRepository) Delete(packageID, showcaseID uuid.UUID) error {
	result := r.db.Where("package_id = ? AND showcase_id = ?", packageID, showcaseID).
		Delete(&models.ShowcasePackageAssociation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetPackageIDsForShowcase returns the ids of every package associated with the showcase
func (r *ShowcasePackageAssociationRepository) GetPackageIDsForShowcase(showcaseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ShowcasePackageAssociation{}).
		Where("showcase_id = ?", showcaseID).
		Pluck("package_id", &ids).Error
	return ids, err
}

// GetShowcaseIDsForPackage returns the ids of every showcase associated with the package
func (r *ShowcasePackageAssociationRepository) GetShowcaseIDsForPackage(packageID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ShowcasePackageAssociation{}).
		Where("package_id = ?", packageID).
		Pluck("showcase_id", &ids).Error
	return ids, err
}

// CountForShowcase counts the active datasets associated with the showcase
func (r *ShowcasePackageAssociationRepository) CountForShowcase(showcaseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ShowcasePackageAssociation{}).
		Joins("JOIN packages ON packages.id = showcase_package_association.package_id").
		Where("showcase_package_association.showcase_id = ? AND packages.state = ?", showcaseID, models.PackageStateActive).
		Count(&count).Error
	return count, err
}
