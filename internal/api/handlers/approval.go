package handlers

import (
	"net/http"

	"showcase-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles the review workflow endpoints
type ApprovalHandler struct {
	service service.ApprovalServiceInterface
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(service service.ApprovalServiceInterface) *ApprovalHandler {
	return &ApprovalHandler{service: service}
}

// StatusUpdateBody is the payload of a review decision
type StatusUpdateBody struct {
	Status   string `json:"status" example:"needs_revision"`
	Feedback string `json:"feedback" example:"Please add a screenshot"`
}

// GetStatus handles GET /api/v1/showcases/:id/status
// @Summary Get approval status
// @Description Current review status of a showcase; a showcase that was never reviewed is pending
// @Tags approval
// @Produce json
// @Param id path string true "Showcase id or name"
// @Success 200 {object} service.StatusResponse
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Showcase not found"
// @Router /showcases/{id}/status [get]
func (h *ApprovalHandler) GetStatus(c *gin.Context) {
	status, err := h.service.GetStatus(c, actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get showcase status")
		return
	}
	c.JSON(http.StatusOK, status)
}

// UpdateStatus handles PUT /api/v1/showcases/:id/status
// @Summary Update approval status
// @Description Record a review decision. Feedback is required for needs_revision.
// @Tags approval
// @Accept json
// @Produce json
// @Param id path string true "Showcase id or name"
// @Param status body StatusUpdateBody true "Decision"
// @Success 200 {object} service.StatusResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Showcase not found"
// @Security BearerAuth
// @Router /showcases/{id}/status [put]
func (h *ApprovalHandler) UpdateStatus(c *gin.Context) {
	var body StatusUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	status, err := h.service.UpdateStatus(c, actorFrom(c), &service.UpdateStatusRequest{
		ShowcaseID: c.Param("id"),
		Status:     body.Status,
		Feedback:   body.Feedback,
	})
	if err != nil {
		respondError(c, err, "Failed to update showcase status")
		return
	}
	c.JSON(http.StatusOK, status)
}
