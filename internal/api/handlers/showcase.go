package handlers

import (
	"net/http"

	"showcase-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShowcaseHandler handles HTTP requests for showcases
type ShowcaseHandler struct {
	service service.ShowcaseServiceInterface
}

// NewShowcaseHandler creates a new showcase handler
func NewShowcaseHandler(service service.ShowcaseServiceInterface) *ShowcaseHandler {
	return &ShowcaseHandler{service: service}
}

// CreateShowcase handles POST /api/v1/showcases
// @Summary Create a showcase
// @Description Submit a new reuse case. It starts in the pending state and portal admins are notified.
// @Tags showcases
// @Accept json
// @Produce json
// @Param showcase body service.CreateShowcaseRequest true "Showcase data"
// @Success 201 {object} service.ShowcaseResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Login required"
// @Failure 409 {object} ErrorResponse "Showcase name already in use"
// @Security BearerAuth
// @Router /showcases [post]
func (h *ShowcaseHandler) CreateShowcase(c *gin.Context) {
	var req service.CreateShowcaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	showcase, err := h.service.Create(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create showcase")
		return
	}
	c.JSON(http.StatusCreated, showcase)
}

// GetShowcase handles GET /api/v1/showcases/:id
// @Summary Get a showcase
// @Description Get a showcase by id or name. Unapproved showcases are visible to their creator and portal admins only.
// @Tags showcases
// @Produce json
// @Param id path string true "Showcase id or name"
// @Success 200 {object} service.ShowcaseResponse
// @Failure 401 {object} ErrorResponse "Login required"
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Showcase not found"
// @Router /showcases/{id} [get]
func (h *ShowcaseHandler) GetShowcase(c *gin.Context) {
	showcase, err := h.service.Show(c, actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get showcase")
		return
	}
	c.JSON(http.StatusOK, showcase)
}

// UpdateShowcase handles PUT /api/v1/showcases/:id
// @Summary Update a showcase
// @Description Partially update a showcase. Only its creator may edit it and the review status returns to pending.
// @Tags showcases
// @Accept json
// @Produce json
// @Param id path string true "Showcase id or name"
// @Param showcase body service.UpdateShowcaseRequest true "Fields to change"
// @Success 200 {object} service.ShowcaseResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Showcase not found"
// @Security BearerAuth
// @Router /showcases/{id} [put]
func (h *ShowcaseHandler) UpdateShowcase(c *gin.Context) {
	var req service.UpdateShowcaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	showcase, err := h.service.Update(c, actorFrom(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to update showcase")
		return
	}
	c.JSON(http.StatusOK, showcase)
}

// DeleteShowcase handles DELETE /api/v1/showcases/:id
// @Summary Delete a showcase
// @Description Submitted reuse cases cannot be deleted; the request is always refused.
// @Tags showcases
// @Produce json
// @Param id path string true "Showcase id or name"
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Showcase not found"
// @Security BearerAuth
// @Router /showcases/{id} [delete]
func (h *ShowcaseHandler) DeleteShowcase(c *gin.Context) {
	if err := h.service.Delete(c, actorFrom(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete showcase")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListShowcases handles GET /api/v1/showcases
// @Summary List approved showcases
// @Description Public listing of approved showcase ids
// @Tags showcases
// @Produce json
// @Param q query string false "Search terms"
// @Param created_start query string false "Created on or after (YYYY-MM-DD)"
// @Param created_end query string false "Created on or before (YYYY-MM-DD)"
// @Param sort query string false "Sort, e.g. 'metadata_created desc'"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, -1 for all)"
// @Success 200 {object} service.ShowcaseIDListResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Router /showcases [get]
func (h *ShowcaseHandler) ListShowcases(c *gin.Context) {
	var req service.ListShowcasesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: err.Error()})
		return
	}

	list, err := h.service.List(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to list showcases")
		return
	}
	c.JSON(http.StatusOK, list)
}

// FilteredShowcases handles GET /api/v1/showcases/dashboard
// @Summary Dashboard listing
// @Description Hydrated showcases for the review dashboard. Portal admins see every showcase, other users their own.
// @Tags showcases
// @Produce json
// @Param q query string false "Search terms"
// @Param status query string false "Approval status code; empty means pending"
// @Param created_start query string false "Created on or after (YYYY-MM-DD)"
// @Param created_end query string false "Created on or before (YYYY-MM-DD)"
// @Param sort query string false "Sort, e.g. 'status_modified asc'"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, -1 for all)"
// @Success 200 {object} service.ShowcaseListResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Login required"
// @Security BearerAuth
// @Router /showcases/dashboard [get]
func (h *ShowcaseHandler) FilteredShowcases(c *gin.Context) {
	var req service.ListShowcasesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: err.Error()})
		return
	}
	if _, present := c.GetQuery("status"); present && req.Status == nil {
		empty := ""
		req.Status = &empty
	}

	list, err := h.service.Filtered(c, actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to filter showcases")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Statistics handles GET /api/v1/showcases/statistics
// @Summary Showcase statistics
// @Description Number of showcases per approval status
// @Tags showcases
// @Produce json
// @Success 200 {object} repository.ShowcaseStatistics
// @Failure 401 {object} ErrorResponse "Login required"
// @Security BearerAuth
// @Router /showcases/statistics [get]
func (h *ShowcaseHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
