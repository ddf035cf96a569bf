package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatorResponse is the public view of a showcase creator
type CreatorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Fullname string `json:"fullname"`
}

// StatusResponse represents the approval status of a showcase
type StatusResponse struct {
	ShowcaseID     string `json:"showcase_id"`
	Status         string `json:"status"`
	DisplayStatus  string `json:"display_status"`
	Feedback       string `json:"feedback"`
	StatusModified string `json:"status_modified"`
}

// ShowcaseResponse is a hydrated showcase
type ShowcaseResponse struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Title                 string           `json:"title"`
	Notes                 string           `json:"notes"`
	URL                   string           `json:"url"`
	ImageURL              string           `json:"image_url"`
	ImageDisplayURL       string           `json:"image_display_url"`
	ReuseType             string           `json:"reuse_type"`
	TitleAr               string           `json:"title_ar,omitempty"`
	NotesAr               string           `json:"notes_ar,omitempty"`
	OriginalRelatedItemID string           `json:"original_related_item_id,omitempty"`
	State                 string           `json:"state"`
	CreatorUserID         string           `json:"creator_user_id,omitempty"`
	Creator               *CreatorResponse `json:"creator,omitempty"`
	ApprovalStatus        *StatusResponse  `json:"approval_status"`
	NumDatasets           int64            `json:"num_datasets"`
	MetadataCreated       time.Time        `json:"metadata_created"`
	MetadataModified      time.Time        `json:"metadata_modified"`
}

// DatasetResponse is the summary of a dataset used by a showcase
type DatasetResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Notes string `json:"notes"`
	URL   string `json:"url"`
}

func toStatusResponse(approval *models.ShowcaseApproval) *StatusResponse {
	return &StatusResponse{
		ShowcaseID:     approval.ShowcaseID.String(),
		Status:         string(approval.Status),
		DisplayStatus:  approval.Status.Label(),
		Feedback:       approval.Feedback,
		StatusModified: approval.StatusModified.UTC().Format(time.RFC3339),
	}
}

func toDatasetResponse(pkg *models.Package) DatasetResponse {
	return DatasetResponse{
		ID:    pkg.ID.String(),
		Name:  pkg.Name,
		Title: pkg.Title,
		Notes: pkg.Notes,
		URL:   pkg.URL,
	}
}

// imageDisplayURL resolves a relative upload path against the public upload base
func imageDisplayURL(publicUploadURL, imageURL string) string {
	if imageURL == "" {
		return ""
	}
	if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	return strings.TrimRight(publicUploadURL, "/") + "/" + strings.TrimLeft(imageURL, "/")
}

// showcaseLoader resolves and hydrates showcases for the services that return them
type showcaseLoader struct {
	packageRepo     repository.PackageRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	approvalRepo    repository.ShowcaseApprovalRepositoryInterface
	associationRepo repository.ShowcasePackageAssociationRepositoryInterface
	publicUploadURL string
}

// resolveShowcase looks up an active showcase by name or id
func (l *showcaseLoader) resolveShowcase(nameOrID string) (*models.Package, error) {
	pkg, err := l.packageRepo.GetByNameOrID(strings.TrimSpace(nameOrID), models.PackageTypeShowcase)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShowcaseNotFound
		}
		return nil, fmt.Errorf("failed to get showcase: %w", err)
	}
	if !pkg.IsActive() {
		return nil, apperrors.ErrShowcaseNotFound
	}
	return pkg, nil
}

// resolveDataset looks up an active dataset by name or id
func (l *showcaseLoader) resolveDataset(nameOrID string) (*models.Package, error) {
	pkg, err := l.packageRepo.GetByNameOrID(strings.TrimSpace(nameOrID), models.PackageTypeDataset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDatasetNotFound
		}
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	if !pkg.IsActive() {
		return nil, apperrors.ErrDatasetNotFound
	}
	return pkg, nil
}

// approval returns the status record, creating a pending one on first read
func (l *showcaseLoader) approval(showcaseID uuid.UUID) (*models.ShowcaseApproval, error) {
	approval, err := l.approvalRepo.GetOrCreate(showcaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approval status: %w", err)
	}
	return approval, nil
}

// hydrate builds the full response for pkg. approval may be nil.
func (l *showcaseLoader) hydrate(pkg *models.Package, approval *models.ShowcaseApproval) (*ShowcaseResponse, error) {
	if approval == nil {
		var err error
		if approval, err = l.approval(pkg.ID); err != nil {
			return nil, err
		}
	}

	numDatasets, err := l.associationRepo.CountForShowcase(pkg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count datasets: %w", err)
	}

	resp := &ShowcaseResponse{
		ID:                    pkg.ID.String(),
		Name:                  pkg.Name,
		Title:                 pkg.Title,
		Notes:                 pkg.Notes,
		URL:                   pkg.URL,
		ImageURL:              pkg.ImageURL,
		ImageDisplayURL:       imageDisplayURL(l.publicUploadURL, pkg.ImageURL),
		ReuseType:             string(pkg.ReuseType),
		TitleAr:               pkg.TitleAr,
		NotesAr:               pkg.NotesAr,
		OriginalRelatedItemID: pkg.OriginalRelatedItemID,
		State:                 string(pkg.State),
		ApprovalStatus:        toStatusResponse(approval),
		NumDatasets:           numDatasets,
		MetadataCreated:       pkg.MetadataCreated,
		MetadataModified:      pkg.MetadataModified,
	}

	if pkg.CreatorUserID != nil {
		resp.CreatorUserID = pkg.CreatorUserID.String()
		user, err := l.userRepo.GetByID(*pkg.CreatorUserID)
		switch {
		case err == nil:
			resp.Creator = &CreatorResponse{ID: user.ID.String(), Name: user.Name, Fullname: user.Fullname}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("failed to get creator: %w", err)
		}
	}

	return resp, nil
}
