package handlers

import (
	"net/http"

	"showcase-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler manages the showcase admin list
type AdminHandler struct {
	service service.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// AdminBody names the user to promote
type AdminBody struct {
	Username string `json:"username" example:"janedoe"`
}

// ListAdmins handles GET /api/v1/showcase-admins
// @Summary List showcase admins
// @Tags admins
// @Produce json
// @Success 200 {array} service.AdminResponse
// @Failure 401 {object} ErrorResponse "Login required"
// @Failure 403 {object} ErrorResponse "Sysadmin required"
// @Security BearerAuth
// @Router /showcase-admins [get]
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.service.List(c, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to list showcase admins")
		return
	}
	c.JSON(http.StatusOK, admins)
}

// AddAdmin handles POST /api/v1/showcase-admins
// @Summary Add a showcase admin
// @Tags admins
// @Accept json
// @Produce json
// @Param admin body AdminBody true "User name"
// @Success 201 {object} service.AdminResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Sysadmin required"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Already an admin"
// @Security BearerAuth
// @Router /showcase-admins [post]
func (h *AdminHandler) AddAdmin(c *gin.Context) {
	var body AdminBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	admin, err := h.service.Add(c, actorFrom(c), body.Username)
	if err != nil {
		respondError(c, err, "Failed to add showcase admin")
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// RemoveAdmin handles DELETE /api/v1/showcase-admins/:username
// @Summary Remove a showcase admin
// @Tags admins
// @Produce json
// @Param username path string true "User name"
// @Success 204 "Admin removed"
// @Failure 403 {object} ErrorResponse "Sysadmin required"
// @Failure 404 {object} ErrorResponse "User or admin not found"
// @Security BearerAuth
// @Router /showcase-admins/{username} [delete]
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	if err := h.service.Remove(c, actorFrom(c), c.Param("username")); err != nil {
		respondError(c, err, "Failed to remove showcase admin")
		return
	}
	c.Status(http.StatusNoContent)
}
