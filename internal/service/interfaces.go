package service

import (
	"context"
	"io"

	"showcase-portal-backend/internal/database/models"
	"showcase-portal-backend/internal/queue"
	"showcase-portal-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ShowcaseServiceInterface defines the interface for showcase service
type ShowcaseServiceInterface interface {
	Create(ctx context.Context, actor Actor, req *CreateShowcaseRequest) (*ShowcaseResponse, error)
	Update(ctx context.Context, actor Actor, nameOrID string, req *UpdateShowcaseRequest) (*ShowcaseResponse, error)
	Show(ctx context.Context, actor Actor, nameOrID string) (*ShowcaseResponse, error)
	Delete(ctx context.Context, actor Actor, nameOrID string) error
	List(ctx context.Context, actor Actor, req *ListShowcasesRequest) (*ShowcaseIDListResponse, error)
	Filtered(ctx context.Context, actor Actor, req *ListShowcasesRequest) (*ShowcaseListResponse, error)
	Statistics(ctx context.Context, actor Actor) (*repository.ShowcaseStatistics, error)
}

// ApprovalServiceInterface defines the interface for the approval workflow
type ApprovalServiceInterface interface {
	UpdateStatus(ctx context.Context, actor Actor, req *UpdateStatusRequest) (*StatusResponse, error)
	GetStatus(ctx context.Context, actor Actor, nameOrID string) (*StatusResponse, error)
}

// AssociationServiceInterface defines the interface for dataset <-> showcase links
type AssociationServiceInterface interface {
	Create(ctx context.Context, actor Actor, req *AssociationRequest) (*AssociationResponse, error)
	Delete(ctx context.Context, actor Actor, req *AssociationRequest) error
	ShowcasePackageList(ctx context.Context, actor Actor, showcaseNameOrID string) ([]DatasetResponse, error)
	PackageShowcaseList(ctx context.Context, actor Actor, packageNameOrID string) ([]ShowcaseResponse, error)
}

// AdminServiceInterface defines the interface for showcase admin management
type AdminServiceInterface interface {
	Add(ctx context.Context, actor Actor, username string) (*AdminResponse, error)
	Remove(ctx context.Context, actor Actor, username string) error
	List(ctx context.Context, actor Actor) ([]AdminResponse, error)
	IsPortalAdmin(actor Actor) (bool, error)
}

// UploadServiceInterface defines the interface for showcase image uploads
type UploadServiceInterface interface {
	UploadImage(ctx context.Context, actor Actor, filename string, r io.Reader) (*UploadResponse, error)
}

// EventPublisher delivers notification events to the broker
type EventPublisher interface {
	Publish(ctx context.Context, event *queue.Event) error
}

// StatsCache stores statistics keyed by scope
type StatsCache interface {
	Get(ctx context.Context, key string) (*repository.ShowcaseStatistics, bool)
	Set(ctx context.Context, key string, stats *repository.ShowcaseStatistics)
	Invalidate(ctx context.Context)
}

// ImageStore persists uploaded images
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// NotifierInterface announces showcase lifecycle changes
type NotifierInterface interface {
	ShowcaseCreated(ctx context.Context, showcase *models.Package)
	StatusUpdated(ctx context.Context, showcase *models.Package, approval *models.ShowcaseApproval)
}
