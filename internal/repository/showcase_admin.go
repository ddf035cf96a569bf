package repository

import (
	"showcase-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShowcaseAdminRepository handles the showcase admin list
type ShowcaseAdminRepository struct {
	db *gorm.DB
}

// Ensure ShowcaseAdminRepository implements ShowcaseAdminRepositoryInterface
var _ ShowcaseAdminRepositoryInterface = (*ShowcaseAdminRepository)(nil)

// NewShowcaseAdminRepository creates a new showcase admin repository
func NewShowcaseAdminRepository(db *gorm.DB) *ShowcaseAdminRepository {
	return &ShowcaseAdminRepository{db: db}
}

// Create adds the user to the admin list
func (r *ShowcaseAdminRepository) Create(userID uuid.UUID) error {
	return r.db.Create(&models.ShowcaseAdmin{UserID: userID}).Error
}

// Exists checks if the user is on the admin list
func (r *ShowcaseAdminRepository) Exists(userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShowcaseAdmin{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// Delete removes the user from the admin list, returning gorm.ErrRecordNotFound when absent
func (r *ShowcaseAdminRepository) Delete(userID uuid.UUID) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.ShowcaseAdmin{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetAdminIDs returns every admin user id
func (r *ShowcaseAdminRepository) GetAdminIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ShowcaseAdmin{}).Pluck("user_id", &ids).Error
	return ids, err
}

// IsAdmin reports whether the user is a showcase admin
func (r *ShowcaseAdminRepository) IsAdmin(userID uuid.UUID) (bool, error) {
	return r.Exists(userID)
}
