package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"showcase-portal-backend/internal/authz"
	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// AdminService manages the showcase admin list
type AdminService struct {
	userRepo  repository.UserRepositoryInterface
	adminRepo repository.ShowcaseAdminRepositoryInterface
	access    *accessChecker
}

// Ensure AdminService implements AdminServiceInterface
var _ AdminServiceInterface = (*AdminService)(nil)

// NewAdminService creates a new AdminService
func NewAdminService(userRepo repository.UserRepositoryInterface, adminRepo repository.ShowcaseAdminRepositoryInterface, authorizer *authz.Authorizer) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		access:    newAccessChecker(authorizer, adminRepo),
	}
}

// AdminResponse represents a showcase admin
type AdminResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

func toAdminResponse(user *models.User) AdminResponse {
	return AdminResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Fullname: user.Fullname,
		Email:    user.Email,
	}
}

// Add puts a user on the showcase admin list
func (s *AdminService) Add(ctx context.Context, actor Actor, username string) (*AdminResponse, error) {
	if err := s.access.check(actor, nil, authz.ObjectAny, authz.ActionAdminAdd, apperrors.ErrSysadminRequired); err != nil {
		return nil, err
	}
	user, err := s.lookupUser(username)
	if err != nil {
		return nil, err
	}

	exists, err := s.adminRepo.Exists(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check showcase admin: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAdminExists
	}
	if err := s.adminRepo.Create(user.ID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAdminExists
		}
		return nil, fmt.Errorf("failed to add showcase admin: %w", err)
	}

	logger.WithContext(ctx).WithField("admin", user.Name).Info("showcase admin added")
	resp := toAdminResponse(user)
	return &resp, nil
}

// Remove takes a user off the showcase admin list
func (s *AdminService) Remove(ctx context.Context, actor Actor, username string) error {
	if err := s.access.check(actor, nil, authz.ObjectAny, authz.ActionAdminRemove, apperrors.ErrSysadminRequired); err != nil {
		return err
	}
	user, err := s.lookupUser(username)
	if err != nil {
		return err
	}

	if err := s.adminRepo.Delete(user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAdminNotFound
		}
		return fmt.Errorf("failed to remove showcase admin: %w", err)
	}

	logger.WithContext(ctx).WithField("admin", user.Name).Info("showcase admin removed")
	return nil
}

// List returns every showcase admin ordered by name
func (s *AdminService) List(ctx context.Context, actor Actor) ([]AdminResponse, error) {
	if err := s.access.check(actor, nil, authz.ObjectAny, authz.ActionAdminList, apperrors.ErrSysadminRequired); err != nil {
		return nil, err
	}

	ids, err := s.adminRepo.GetAdminIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to get showcase admins: %w", err)
	}
	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load showcase admins: %w", err)
	}

	out := make([]AdminResponse, 0, len(users))
	for i := range users {
		out = append(out, toAdminResponse(&users[i]))
	}
	return out, nil
}

// IsPortalAdmin reports whether the actor is a sysadmin or a showcase admin
func (s *AdminService) IsPortalAdmin(actor Actor) (bool, error) {
	return s.access.isPortalAdmin(actor)
}

func (s *AdminService) lookupUser(username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidationError("username", "Missing value")
	}
	user, err := s.userRepo.GetByNameOrID(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
