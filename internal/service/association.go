package service

import (
	"context"
	"errors"
	"fmt"

	"showcase-portal-backend/internal/authz"
	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AssociationService manages which datasets a showcase reuses
type AssociationService struct {
	*showcaseLoader
	access    *accessChecker
	validator *validator.Validate
}

// Ensure AssociationService implements AssociationServiceInterface
var _ AssociationServiceInterface = (*AssociationService)(nil)

// NewAssociationService creates a new AssociationService
func NewAssociationService(deps ShowcaseServiceDeps) *AssociationService {
	if deps.Validator == nil {
		deps.Validator = NewValidator()
	}
	return &AssociationService{
		showcaseLoader: deps.loader(),
		access:         newAccessChecker(deps.Authorizer, deps.AdminRepo),
		validator:      deps.Validator,
	}
}

// AssociationRequest names a dataset and a showcase by name or id
type AssociationRequest struct {
	PackageID  string `json:"package_id" validate:"required"`
	ShowcaseID string `json:"showcase_id" validate:"required"`
}

// AssociationResponse represents a dataset <-> showcase link
type AssociationResponse struct {
	PackageID  string `json:"package_id"`
	ShowcaseID string `json:"showcase_id"`
}

// Create links a dataset to a showcase
func (s *AssociationService) Create(ctx context.Context, actor Actor, req *AssociationRequest) (*AssociationResponse, error) {
	showcase, dataset, err := s.resolvePair(actor, req, authz.ActionPackageAssociationCreate)
	if err != nil {
		return nil, err
	}

	exists, err := s.associationRepo.Exists(dataset.ID, showcase.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check association: %w", err)
	}
	if exists {
		return nil, apperrors.NewAssociationExistsError(dataset.ID.String(), showcase.ID.String())
	}

	assoc, err := s.associationRepo.Create(dataset.ID, showcase.ID)
	if err != nil {
		// a concurrent request inserted the same pair after the check above
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAssociationExistsError(dataset.ID.String(), showcase.ID.String())
		}
		return nil, fmt.Errorf("failed to create association: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"showcase_id": showcase.ID.String(),
		"package_id":  dataset.ID.String(),
	}).Info("dataset associated with showcase")

	return &AssociationResponse{PackageID: assoc.PackageID.String(), ShowcaseID: assoc.ShowcaseID.String()}, nil
}

// Delete removes the link between a dataset and a showcase
func (s *AssociationService) Delete(ctx context.Context, actor Actor, req *AssociationRequest) error {
	showcase, dataset, err := s.resolvePair(actor, req, authz.ActionPackageAssociationDelete)
	if err != nil {
		return err
	}

	if err := s.associationRepo.Delete(dataset.ID, showcase.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssociationNotFound
		}
		return fmt.Errorf("failed to delete association: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"showcase_id": showcase.ID.String(),
		"package_id":  dataset.ID.String(),
	}).Info("dataset removed from showcase")
	return nil
}

// ShowcasePackageList returns the active datasets used by a showcase
func (s *AssociationService) ShowcasePackageList(ctx context.Context, actor Actor, showcaseNameOrID string) ([]DatasetResponse, error) {
	showcase, err := s.resolveShowcase(showcaseNameOrID)
	if err != nil {
		return nil, err
	}
	approval, err := s.approval(showcase.ID)
	if err != nil {
		return nil, err
	}
	object := authz.ObjectFor(approval.Status == models.ApprovalStatusApproved)
	if err := s.access.check(actor, showcase, object, authz.ActionShowcasePackageList, apperrors.ErrViewNotAllowed); err != nil {
		return nil, err
	}

	ids, err := s.associationRepo.GetPackageIDsForShowcase(showcase.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get datasets for showcase: %w", err)
	}
	pkgs, err := s.packageRepo.GetByIDs(ids, models.PackageTypeDataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}

	out := make([]DatasetResponse, 0, len(pkgs))
	for i := range pkgs {
		out = append(out, toDatasetResponse(&pkgs[i]))
	}
	return out, nil
}

// PackageShowcaseList returns the active showcases using a dataset that the actor may view
func (s *AssociationService) PackageShowcaseList(ctx context.Context, actor Actor, packageNameOrID string) ([]ShowcaseResponse, error) {
	if err := s.access.check(actor, nil, authz.ObjectAny, authz.ActionPackageShowcaseList, apperrors.ErrNotAuthorized); err != nil {
		return nil, err
	}
	dataset, err := s.resolveDataset(packageNameOrID)
	if err != nil {
		return nil, err
	}

	ids, err := s.associationRepo.GetShowcaseIDsForPackage(dataset.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get showcases for dataset: %w", err)
	}
	pkgs, err := s.packageRepo.GetByIDs(ids, models.PackageTypeShowcase)
	if err != nil {
		return nil, fmt.Errorf("failed to load showcases: %w", err)
	}

	out := make([]ShowcaseResponse, 0, len(pkgs))
	for i := range pkgs {
		showcase := &pkgs[i]
		approval, err := s.approval(showcase.ID)
		if err != nil {
			return nil, err
		}
		object := authz.ObjectFor(approval.Status == models.ApprovalStatusApproved)
		subject, err := s.access.subject(actor, showcase)
		if err != nil {
			return nil, err
		}
		if !s.access.authorizer.Allowed(subject, object, authz.ActionShowcaseShow) {
			continue
		}
		resp, err := s.hydrate(showcase, approval)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// resolvePair validates req, resolves both sides and checks the actor may change the showcase
func (s *AssociationService) resolvePair(actor Actor, req *AssociationRequest, action string) (*models.Package, *models.Package, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, validationError(err)
	}
	showcase, err := s.resolveShowcase(req.ShowcaseID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.access.check(actor, showcase, authz.ObjectAny, action, apperrors.ErrUpdateNotAllowed); err != nil {
		return nil, nil, err
	}
	dataset, err := s.resolveDataset(req.PackageID)
	if err != nil {
		return nil, nil, err
	}
	return showcase, dataset, nil
}
