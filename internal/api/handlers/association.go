package handlers

import (
	"net/http"

	"showcase-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssociationHandler handles dataset <-> showcase links
type AssociationHandler struct {
	service service.AssociationServiceInterface
}

// NewAssociationHandler creates a new association handler
func NewAssociationHandler(service service.AssociationServiceInterface) *AssociationHandler {
	return &AssociationHandler{service: service}
}

// AssociationBody names the dataset to link
type AssociationBody struct {
	PackageID string `json:"package_id" example:"air-quality-2023"`
}

// CreateAssociation handles POST /api/v1/showcases/:id/packages
// @Summary Link a dataset
// @Description Associate a dataset with a showcase. Only the showcase creator may do this.
// @Tags associations
// @Accept json
// @Produce json
// @Param id path string true "Showcase id or name"
// @Param association body AssociationBody true "Dataset id or name"
// @Success 201 {object} service.AssociationResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Showcase or dataset not found"
// @Failure 409 {object} ErrorResponse "Already associated"
// @Security BearerAuth
// @Router /showcases/{id}/packages [post]
func (h *AssociationHandler) CreateAssociation(c *gin.Context) {
	var body AssociationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	assoc, err := h.service.Create(c, actorFrom(c), &service.AssociationRequest{
		PackageID:  body.PackageID,
		ShowcaseID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err, "Failed to create association")
		return
	}
	c.JSON(http.StatusCreated, assoc)
}

// DeleteAssociation handles DELETE /api/v1/showcases/:id/packages/:package_id
// @Summary Unlink a dataset
// @Tags associations
// @Produce json
// @Param id path string true "Showcase id or name"
// @Param package_id path string true "Dataset id or name"
// @Success 204 "Association removed"
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Association not found"
// @Security BearerAuth
// @Router /showcases/{id}/packages/{package_id} [delete]
func (h *AssociationHandler) DeleteAssociation(c *gin.Context) {
	err := h.service.Delete(c, actorFrom(c), &service.AssociationRequest{
		PackageID:  c.Param("package_id"),
		ShowcaseID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err, "Failed to delete association")
		return
	}
	c.Status(http.StatusNoContent)
}

// ShowcasePackages handles GET /api/v1/showcases/:id/packages
// @Summary Datasets of a showcase
// @Tags associations
// @Produce json
// @Param id path string true "Showcase id or name"
// @Success 200 {array} service.DatasetResponse
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Showcase not found"
// @Router /showcases/{id}/packages [get]
func (h *AssociationHandler) ShowcasePackages(c *gin.Context) {
	datasets, err := h.service.ShowcasePackageList(c, actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list datasets")
		return
	}
	c.JSON(http.StatusOK, datasets)
}

// PackageShowcases handles GET /api/v1/packages/:id/showcases
// @Summary Showcases using a dataset
// @Description Showcases the caller may see that reference the dataset
// @Tags associations
// @Produce json
// @Param id path string true "Dataset id or name"
// @Success 200 {array} service.ShowcaseResponse
// @Failure 404 {object} ErrorResponse "Dataset not found"
// @Router /packages/{id}/showcases [get]
func (h *AssociationHandler) PackageShowcases(c *gin.Context) {
	showcases, err := h.service.PackageShowcaseList(c, actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list showcases")
		return
	}
	c.JSON(http.StatusOK, showcases)
}
