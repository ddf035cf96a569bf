package service

import (
	"fmt"
	"strings"
	"time"

	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 1000
)

// ListShowcasesRequest carries the query parameters of the listing endpoints
type ListShowcasesRequest struct {
	Query        string  `form:"q"`
	Status       *string `form:"status"`
	CreatedStart string  `form:"created_start"`
	CreatedEnd   string  `form:"created_end"`
	Sort         string  `form:"sort"`
	Page         int     `form:"page"`
	Limit        int     `form:"limit"`
}

// Filter converts the request into a repository filter.
// A status parameter that is present but empty selects pending showcases.
func (r *ListShowcasesRequest) Filter() (repository.ShowcaseFilter, error) {
	filter := repository.ShowcaseFilter{
		Query: strings.TrimSpace(r.Query),
		Sort:  strings.TrimSpace(r.Sort),
	}

	if _, err := repository.ParseShowcaseSort(filter.Sort); err != nil {
		return filter, err
	}

	if r.Status != nil {
		status := models.ApprovalStatusPending
		if strings.TrimSpace(*r.Status) != "" {
			parsed, ok := models.ParseApprovalStatus(*r.Status)
			if !ok {
				return filter, apperrors.NewValidationError("status",
					fmt.Sprintf("Status must be one of: %s", strings.Join(models.ApprovalStatusCodes(), ", ")))
			}
			status = parsed
		}
		filter.Status = &status
	}

	start, err := parseDate(r.CreatedStart)
	if err != nil {
		return filter, err
	}
	end, err := parseDate(r.CreatedEnd)
	if err != nil {
		return filter, err
	}
	filter.CreatedStart = start
	filter.CreatedEnd = end

	return filter, nil
}

// Pagination returns limit and offset. A limit of -1 selects every row.
func (r *ListShowcasesRequest) Pagination() (limit, offset int, err error) {
	page := r.Page
	if page == 0 {
		page = 1
	}
	if page < 0 {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}

	limit = r.Limit
	switch {
	case limit == 0:
		limit = defaultPageLimit
	case limit == -1:
		return -1, 0, nil
	case limit < -1 || limit > maxPageLimit:
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}

	return limit, (page - 1) * limit, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339 and returns nil for an empty value
func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, apperrors.ErrInvalidDate
}
