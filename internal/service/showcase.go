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
	"showcase-portal-backend/internal/metrics"
	"showcase-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShowcaseService provides showcase business logic
type ShowcaseService struct {
	*showcaseLoader
	access    *accessChecker
	notifier  NotifierInterface
	cache     StatsCache
	validator *validator.Validate
}

// Ensure ShowcaseService implements ShowcaseServiceInterface
var _ ShowcaseServiceInterface = (*ShowcaseService)(nil)

// ShowcaseServiceDeps groups the collaborators of ShowcaseService
type ShowcaseServiceDeps struct {
	PackageRepo     repository.PackageRepositoryInterface
	UserRepo        repository.UserRepositoryInterface
	ApprovalRepo    repository.ShowcaseApprovalRepositoryInterface
	AssociationRepo repository.ShowcasePackageAssociationRepositoryInterface
	AdminRepo       repository.ShowcaseAdminRepositoryInterface
	Authorizer      *authz.Authorizer
	Notifier        NotifierInterface
	Cache           StatsCache
	Validator       *validator.Validate
	PublicUploadURL string
}

func (d ShowcaseServiceDeps) loader() *showcaseLoader {
	return &showcaseLoader{
		packageRepo:     d.PackageRepo,
		userRepo:        d.UserRepo,
		approvalRepo:    d.ApprovalRepo,
		associationRepo: d.AssociationRepo,
		publicUploadURL: d.PublicUploadURL,
	}
}

// NewShowcaseService creates a new ShowcaseService
func NewShowcaseService(deps ShowcaseServiceDeps) *ShowcaseService {
	if deps.Validator == nil {
		deps.Validator = NewValidator()
	}
	return &ShowcaseService{
		showcaseLoader: deps.loader(),
		access:         newAccessChecker(deps.Authorizer, deps.AdminRepo),
		notifier:       deps.Notifier,
		cache:          deps.Cache,
		validator:      deps.Validator,
	}
}

// CreateShowcaseRequest represents the payload for creating a showcase
type CreateShowcaseRequest struct {
	Name      string `json:"name" validate:"required,package_name"`
	Title     string `json:"title" validate:"required,max=255"`
	Notes     string `json:"notes" validate:"required"`
	ReuseType string `json:"reuse_type" validate:"required,reuse_type"`
	URL       string `json:"url" validate:"omitempty,url,max=500"`
	ImageURL  string `json:"image_url" validate:"omitempty,max=500"`
	TitleAr   string `json:"title_ar" validate:"omitempty,max=255"`
	NotesAr   string `json:"notes_ar"`
}

// UpdateShowcaseRequest represents a partial showcase update; nil fields are left untouched
type UpdateShowcaseRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=255"`
	Notes     *string `json:"notes"`
	ReuseType *string `json:"reuse_type" validate:"omitempty,reuse_type"`
	URL       *string `json:"url" validate:"omitempty,url,max=500"`
	ImageURL  *string `json:"image_url" validate:"omitempty,max=500"`
	TitleAr   *string `json:"title_ar" validate:"omitempty,max=255"`
	NotesAr   *string `json:"notes_ar"`
}

// ShowcaseIDListResponse is the public listing: ids of approved showcases
type ShowcaseIDListResponse struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

// ShowcaseListResponse is the dashboard listing with hydrated showcases
type ShowcaseListResponse struct {
	Items []ShowcaseResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// Create validates and stores a new showcase with a pending approval record
func (s *ShowcaseService) Create(ctx context.Context, actor Actor, req *CreateShowcaseRequest) (*ShowcaseResponse, error) {
	if err := s.access.check(actor, nil, authz.ObjectAny, authz.ActionShowcaseCreate, apperrors.ErrNotAuthorized); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	exists, err := s.packageRepo.ExistsByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check showcase name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrShowcaseExists
	}

	pkg := &models.Package{
		Name:          req.Name,
		Title:         strings.TrimSpace(req.Title),
		Notes:         req.Notes,
		Type:          models.PackageTypeShowcase,
		State:         models.PackageStateActive,
		CreatorUserID: actor.UserID,
		URL:           req.URL,
		ImageURL:      req.ImageURL,
		ReuseType:     models.ReuseType(req.ReuseType),
		TitleAr:       req.TitleAr,
		NotesAr:       req.NotesAr,
	}
	if err := s.packageRepo.CreateShowcase(pkg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrShowcaseExists
		}
		return nil, fmt.Errorf("failed to create showcase: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"showcase_id": pkg.ID.String(),
		"name":        pkg.Name,
	}).Info("showcase created")
	metrics.ShowcasesCreated.Inc()

	s.invalidateStats(ctx)
	if s.notifier != nil {
		s.notifier.ShowcaseCreated(ctx, pkg)
	}

	return s.hydrate(pkg, nil)
}

// Update applies the provided fields and sends the showcase back to review
func (s *ShowcaseService) Update(ctx context.Context, actor Actor, nameOrID string, req *UpdateShowcaseRequest) (*ShowcaseResponse, error) {
	pkg, err := s.resolveShowcase(nameOrID)
	if err != nil {
		return nil, err
	}
	if err := s.access.check(actor, pkg, authz.ObjectAny, authz.ActionShowcaseUpdate, apperrors.ErrUpdateNotAllowed); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.NewValidationError("title", "Missing value")
		}
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Notes != nil {
		if strings.TrimSpace(*req.Notes) == "" {
			return nil, apperrors.NewValidationError("notes", "Missing value")
		}
		updates["notes"] = *req.Notes
	}
	if req.ReuseType != nil {
		updates["reuse_type"] = *req.ReuseType
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.TitleAr != nil {
		updates["title_ar"] = *req.TitleAr
	}
	if req.NotesAr != nil {
		updates["notes_ar"] = *req.NotesAr
	}

	if len(updates) > 0 {
		if err := s.packageRepo.Patch(pkg.ID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrShowcaseNotFound
			}
			return nil, fmt.Errorf("failed to update showcase: %w", err)
		}
		if pkg, err = s.packageRepo.GetByID(pkg.ID); err != nil {
			return nil, fmt.Errorf("failed to reload showcase: %w", err)
		}
	}

	approval, err := s.approvalRepo.UpdateStatus(pkg.ID, "", models.ApprovalStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to reset approval status: %w", err)
	}

	logger.WithContext(ctx).WithField("showcase_id", pkg.ID.String()).Info("showcase updated, status reset to pending")

	s.invalidateStats(ctx)
	if s.notifier != nil {
		s.notifier.StatusUpdated(ctx, pkg, approval)
	}

	return s.hydrate(pkg, approval)
}

// Show returns a hydrated showcase the actor is allowed to see
func (s *ShowcaseService) Show(ctx context.Context, actor Actor, nameOrID string) (*ShowcaseResponse, error) {
	pkg, err := s.resolveShowcase(nameOrID)
	if err != nil {
		return nil, err
	}
	approval, err := s.approval(pkg.ID)
	if err != nil {
		return nil, err
	}

	object := authz.ObjectFor(approval.Status == models.ApprovalStatusApproved)
	if err := s.access.check(actor, pkg, object, authz.ActionShowcaseShow, apperrors.ErrViewNotAllowed); err != nil {
		return nil, err
	}

	return s.hydrate(pkg, approval)
}

// Delete is refused for every submitted showcase
func (s *ShowcaseService) Delete(ctx context.Context, actor Actor, nameOrID string) error {
	subject, err := s.access.subject(actor, nil)
	if err != nil {
		return err
	}
	if !s.access.authorizer.Allowed(subject, authz.ObjectAny, authz.ActionShowcaseDelete) {
		logger.WithContext(ctx).WithField("showcase", nameOrID).Warn("showcase delete refused")
		return apperrors.ErrDeleteNotAllowed
	}

	pkg, err := s.resolveShowcase(nameOrID)
	if err != nil {
		return err
	}
	if err := s.packageRepo.Delete(pkg.ID); err != nil {
		return fmt.Errorf("failed to delete showcase: %w", err)
	}
	s.invalidateStats(ctx)
	return nil
}

// List returns the ids of approved showcases matching the request
func (s *ShowcaseService) List(ctx context.Context, actor Actor, req *ListShowcasesRequest) (*ShowcaseIDListResponse, error) {
	if err := s.access.check(actor, nil, authz.ObjectAny, authz.ActionShowcaseList, apperrors.ErrNotAuthorized); err != nil {
		return nil, err
	}

	filter, err := req.Filter()
	if err != nil {
		return nil, err
	}
	approved := models.ApprovalStatusApproved
	filter.Status = &approved
	filter.CreatorUserID = nil

	limit, offset, err := req.Pagination()
	if err != nil {
		return nil, err
	}

	ids, total, err := s.approvalRepo.FilterShowcaseIDs(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list showcases: %w", err)
	}

	items := make([]string, 0, len(ids))
	for _, id := range ids {
		items = append(items, id.String())
	}
	return &ShowcaseIDListResponse{Items: items, Total: total}, nil
}

// Filtered is the dashboard listing. Users who are not portal admins only see their own showcases.
func (s *ShowcaseService) Filtered(ctx context.Context, actor Actor, req *ListShowcasesRequest) (*ShowcaseListResponse, error) {
	if err := s.access.check(actor, nil, authz.ObjectAny, authz.ActionShowcaseFiltered, apperrors.ErrNotAuthorized); err != nil {
		return nil, err
	}

	filter, err := req.Filter()
	if err != nil {
		return nil, err
	}
	portalAdmin, err := s.access.isPortalAdmin(actor)
	if err != nil {
		return nil, err
	}
	if !portalAdmin {
		filter.CreatorUserID = actor.UserID
	}

	limit, offset, err := req.Pagination()
	if err != nil {
		return nil, err
	}

	ids, total, err := s.approvalRepo.FilterShowcaseIDs(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to filter showcases: %w", err)
	}

	items, err := s.hydrateIDs(ids)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page == 0 {
		page = 1
	}
	return &ShowcaseListResponse{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// Statistics counts showcases per status, globally for portal admins and per creator otherwise
func (s *ShowcaseService) Statistics(ctx context.Context, actor Actor) (*repository.ShowcaseStatistics, error) {
	if err := s.access.check(actor, nil, authz.ObjectAny, authz.ActionShowcaseStatistics, apperrors.ErrNotAuthorized); err != nil {
		return nil, err
	}
	portalAdmin, err := s.access.isPortalAdmin(actor)
	if err != nil {
		return nil, err
	}

	var creator *uuid.UUID
	key := "all"
	if !portalAdmin {
		creator = actor.UserID
		key = "user:" + actor.UserID.String()
	}

	if s.cache != nil {
		if stats, ok := s.cache.Get(ctx, key); ok {
			return stats, nil
		}
	}

	stats, err := s.approvalRepo.Statistics(creator)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, stats)
	}
	return stats, nil
}

// hydrateIDs loads and hydrates showcases keeping the order of ids
func (s *ShowcaseService) hydrateIDs(ids []uuid.UUID) ([]ShowcaseResponse, error) {
	pkgs, err := s.packageRepo.GetByIDs(ids, models.PackageTypeShowcase)
	if err != nil {
		return nil, fmt.Errorf("failed to load showcases: %w", err)
	}
	byID := make(map[uuid.UUID]*models.Package, len(pkgs))
	for i := range pkgs {
		byID[pkgs[i].ID] = &pkgs[i]
	}

	items := make([]ShowcaseResponse, 0, len(ids))
	for _, id := range ids {
		pkg, ok := byID[id]
		if !ok {
			continue
		}
		resp, err := s.hydrate(pkg, nil)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

func (s *ShowcaseService) invalidateStats(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
