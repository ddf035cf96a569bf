package repository

import (
	"showcase-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByName retrieves a user by user name
func (r *UserRepository) GetByName(name string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByNameOrID resolves an id or a user name
func (r *UserRepository) GetByNameOrID(nameOrID string) (*models.User, error) {
	if id, err := uuid.Parse(nameOrID); err == nil {
		user, err := r.GetByID(id)
		if err == nil {
			return user, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	return r.GetByName(nameOrID)
}

// GetByIDs retrieves users by a set of IDs ordered by name
func (r *UserRepository) GetByIDs(ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	var users []models.User
	if err := r.db.Where("id IN ?", ids).Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetSysadmins retrieves every active sysadmin
func (r *UserRepository) GetSysadmins() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("sysadmin = ? AND state = ?", true, models.PackageStateActive).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
