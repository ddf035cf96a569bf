package repository

import (
	"time"

	"showcase-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShowcaseApprovalRepository handles approval records and the showcase review queries
type ShowcaseApprovalRepository struct {
	db *gorm.DB
}

// Ensure ShowcaseApprovalRepository implements ShowcaseApprovalRepositoryInterface
var _ ShowcaseApprovalRepositoryInterface = (*ShowcaseApprovalRepository)(nil)

// NewShowcaseApprovalRepository creates a new showcase approval repository
func NewShowcaseApprovalRepository(db *gorm.DB) *ShowcaseApprovalRepository {
	return &ShowcaseApprovalRepository{db: db}
}

// GetByShowcaseID retrieves the approval record of a showcase
func (r *ShowcaseApprovalRepository) GetByShowcaseID(showcaseID uuid.UUID) (*models.ShowcaseApproval, error) {
	var approval models.ShowcaseApproval
	err := r.db.First(&approval, "showcase_id = ?", showcaseID).Error
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

// GetOrCreate returns the approval record, inserting a pending one when none exists
func (r *ShowcaseApprovalRepository) GetOrCreate(showcaseID uuid.UUID) (*models.ShowcaseApproval, error) {
	approval := &models.ShowcaseApproval{
		ShowcaseID:     showcaseID,
		Status:         models.ApprovalStatusPending,
		StatusModified: time.Now().UTC(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "showcase_id"}},
		DoNothing: true,
	}).Create(approval).Error
	if err != nil {
		return nil, err
	}
	return r.GetByShowcaseID(showcaseID)
}

// UpdateStatus writes status and feedback in a single upsert and stamps status_modified
func (r *ShowcaseApprovalRepository) UpdateStatus(showcaseID uuid.UUID, feedback string, status models.ApprovalStatus) (*models.ShowcaseApproval, error) {
	if status == "" {
		status = models.ApprovalStatusPending
	}
	approval := &models.ShowcaseApproval{
		ShowcaseID:     showcaseID,
		Feedback:       feedback,
		Status:         status,
		StatusModified: time.Now().UTC(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "showcase_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"feedback", "status", "status_modified"}),
	}).Create(approval).Error
	if err != nil {
		return nil, err
	}
	return approval, nil
}

type statusCount struct {
	Status *string
	Count  int64
}

// Statistics counts active showcases per status, optionally for a single creator.
// Showcases without an approval record count as pending.
func (r *ShowcaseApprovalRepository) Statistics(creatorUserID *uuid.UUID) (*ShowcaseStatistics, error) {
	query := r.baseShowcaseQuery()
	if creatorUserID != nil {
		query = query.Where("packages.creator_user_id = ?", *creatorUserID)
	}

	var rows []statusCount
	err := query.
		Select("showcase_approval.status AS status, COUNT(*) AS count").
		Group("showcase_approval.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &ShowcaseStatistics{StatusBreakdown: make(map[string]int64, len(rows))}
	for _, row := range rows {
		status := string(models.ApprovalStatusPending)
		if row.Status != nil && *row.Status != "" {
			status = *row.Status
		}
		stats.StatusBreakdown[status] += row.Count
		stats.Total += row.Count
	}
	return stats, nil
}
