package repository

import (
	"fmt"
	"strings"
	"time"

	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultShowcaseSort is applied when no sort is requested
const DefaultShowcaseSort = "metadata_created desc"

// ShowcaseFilter narrows the set of active showcases. Nil and empty fields are ignored.
type ShowcaseFilter struct {
	Query         string
	CreatedStart  *time.Time
	CreatedEnd    *time.Time
	Status        *models.ApprovalStatus
	CreatorUserID *uuid.UUID
	Sort          string
}

// ShowcaseStatistics is the per-status count of active showcases
type ShowcaseStatistics struct {
	Total           int64            `json:"total"`
	StatusBreakdown map[string]int64 `json:"status_breakdown"`
}

var showcaseSortColumns = map[string]string{
	"name":              "packages.name",
	"title":             "packages.title",
	"metadata_created":  "packages.metadata_created",
	"metadata_modified": "packages.metadata_modified",
	"status":            "showcase_approval.status",
	"status_modified":   "showcase_approval.status_modified",
}

// ParseShowcaseSort turns "<field> [asc|desc]" into an ORDER BY clause
func ParseShowcaseSort(sort string) (string, error) {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		sort = DefaultShowcaseSort
	}

	parts := strings.Fields(sort)
	if len(parts) > 2 {
		return "", apperrors.NewValidationError("sort", fmt.Sprintf("invalid sort %q", sort))
	}

	column, ok := showcaseSortColumns[strings.ToLower(parts[0])]
	if !ok {
		return "", apperrors.NewValidationError("sort", fmt.Sprintf("unsupported sort field %q", parts[0]))
	}

	direction := "ASC"
	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			direction = "DESC"
		default:
			return "", apperrors.NewValidationError("sort", fmt.Sprintf("invalid sort direction %q", parts[1]))
		}
	}

	return column + " " + direction, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// baseShowcaseQuery selects active showcases joined with their optional approval record
func (r *ShowcaseApprovalRepository) baseShowcaseQuery() *gorm.DB {
	return r.db.Model(&models.Package{}).
		Joins("LEFT JOIN showcase_approval ON showcase_approval.showcase_id = packages.id").
		Where("packages.type = ? AND packages.state = ?", models.PackageTypeShowcase, models.PackageStateActive)
}

// ShowcaseQuery builds the filtered, ordered query without executing it
func (r *ShowcaseApprovalRepository) ShowcaseQuery(filter ShowcaseFilter) (*gorm.DB, error) {
	order, err := ParseShowcaseSort(filter.Sort)
	if err != nil {
		return nil, err
	}
	return r.applyFilter(r.baseShowcaseQuery(), filter).Order(order), nil
}

func (r *ShowcaseApprovalRepository) applyFilter(query *gorm.DB, filter ShowcaseFilter) *gorm.DB {
	for _, term := range strings.Fields(filter.Query) {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		query = query.Where(
			`(LOWER(packages.title) LIKE ? ESCAPE '\' OR LOWER(packages.notes) LIKE ? ESCAPE '\' OR LOWER(packages.name) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}

	if filter.CreatedStart != nil {
		query = query.Where("packages.metadata_created >= ?", startOfDay(*filter.CreatedStart))
	}
	if filter.CreatedEnd != nil {
		query = query.Where("packages.metadata_created < ?", startOfDay(*filter.CreatedEnd).Add(24*time.Hour))
	}

	if filter.Status != nil {
		query = query.Where("COALESCE(showcase_approval.status, ?) = ?", models.ApprovalStatusPending, *filter.Status)
	}

	if filter.CreatorUserID != nil {
		query = query.Where("packages.creator_user_id = ?", *filter.CreatorUserID)
	}

	return query
}

// FilterShowcaseIDs returns one page of matching showcase ids and the total match count.
// A negative limit returns every match.
func (r *ShowcaseApprovalRepository) FilterShowcaseIDs(filter ShowcaseFilter, limit, offset int) ([]uuid.UUID, int64, error) {
	order, err := ParseShowcaseSort(filter.Sort)
	if err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(r.baseShowcaseQuery(), filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(order).Order("packages.id ASC")
	if limit >= 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var ids []uuid.UUID
	if err := query.Pluck("packages.id", &ids).Error; err != nil {
		return nil, 0, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, total, nil
}
