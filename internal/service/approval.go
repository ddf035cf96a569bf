package service

import (
	"context"
	"fmt"
	"strings"

	"showcase-portal-backend/internal/authz"
	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/metrics"

	"github.com/go-playground/validator/v10"
)

// ApprovalService drives the review workflow of showcases
type ApprovalService struct {
	*showcaseLoader
	access    *accessChecker
	notifier  NotifierInterface
	cache     StatsCache
	validator *validator.Validate
}

// Ensure ApprovalService implements ApprovalServiceInterface
var _ ApprovalServiceInterface = (*ApprovalService)(nil)

// NewApprovalService creates a new ApprovalService
func NewApprovalService(deps ShowcaseServiceDeps) *ApprovalService {
	if deps.Validator == nil {
		deps.Validator = NewValidator()
	}
	return &ApprovalService{
		showcaseLoader: deps.loader(),
		access:         newAccessChecker(deps.Authorizer, deps.AdminRepo),
		notifier:       deps.Notifier,
		cache:          deps.Cache,
		validator:      deps.Validator,
	}
}

// UpdateStatusRequest represents a review decision
type UpdateStatusRequest struct {
	ShowcaseID string `json:"showcase_id" validate:"required"`
	Status     string `json:"status" validate:"required,approval_status"`
	Feedback   string `json:"feedback"`
}

// UpdateStatus records a review decision for a showcase.
// Feedback is mandatory for needs_revision and cleared for every other status.
func (s *ApprovalService) UpdateStatus(ctx context.Context, actor Actor, req *UpdateStatusRequest) (*StatusResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	showcase, err := s.resolveShowcase(req.ShowcaseID)
	if err != nil {
		return nil, err
	}
	if err := s.access.check(actor, showcase, authz.ObjectAny, authz.ActionStatusUpdate, apperrors.ErrStatusNotAllowed); err != nil {
		return nil, err
	}

	status, ok := models.ParseApprovalStatus(req.Status)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	feedback := req.Feedback
	if status == models.ApprovalStatusNeedsRevision {
		if strings.TrimSpace(feedback) == "" {
			return nil, apperrors.ErrFeedbackRequired
		}
	} else {
		feedback = ""
	}

	approval, err := s.approvalRepo.UpdateStatus(showcase.ID, feedback, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"showcase_id": showcase.ID.String(),
		"status":      string(status),
	}).Info("showcase status updated")
	metrics.StatusTransitions.WithLabelValues(string(status)).Inc()

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.notifier != nil {
		s.notifier.StatusUpdated(ctx, showcase, approval)
	}

	return toStatusResponse(approval), nil
}

// GetStatus returns the approval status, creating a pending record on first read
func (s *ApprovalService) GetStatus(ctx context.Context, actor Actor, nameOrID string) (*StatusResponse, error) {
	showcase, err := s.resolveShowcase(nameOrID)
	if err != nil {
		return nil, err
	}
	approval, err := s.approval(showcase.ID)
	if err != nil {
		return nil, err
	}

	object := authz.ObjectFor(approval.Status == models.ApprovalStatusApproved)
	if err := s.access.check(actor, showcase, object, authz.ActionStatusShow, apperrors.ErrViewNotAllowed); err != nil {
		return nil, err
	}

	return toStatusResponse(approval), nil
}
