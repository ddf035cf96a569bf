package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"showcase-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadField is the multipart field carrying the image
const UploadField = "image_upload"

// UploadContentSecurityPolicy keeps served uploads from running script in the API origin
const UploadContentSecurityPolicy = "default-src 'none'; style-src 'unsafe-inline'; sandbox"

// ImageReader serves stored uploads
type ImageReader interface {
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// UploadHandler handles showcase image uploads
type UploadHandler struct {
	service service.UploadServiceInterface
	reader  ImageReader
}

// NewUploadHandler creates a new upload handler; reader may be nil
func NewUploadHandler(service service.UploadServiceInterface, reader ImageReader) *UploadHandler {
	return &UploadHandler{service: service, reader: reader}
}

// UploadImage handles POST /api/v1/showcases/upload
// @Summary Upload a showcase image
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image_upload formData file true "Image file (png, jpeg, gif, webp, svg)"
// @Success 201 {object} service.UploadResponse
// @Failure 400 {object} ErrorResponse "Not an image or too large"
// @Failure 401 {object} ErrorResponse "Login required"
// @Security BearerAuth
// @Router /showcases/upload [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile(UploadField)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image_upload file is required", Details: err.Error()})
		return
	}
	defer file.Close()

	resp, err := h.service.UploadImage(c, actorFrom(c), header.Filename, file)
	if err != nil {
		respondError(c, err, "Failed to upload image")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ServeUpload handles GET /uploads/*key
func (h *UploadHandler) ServeUpload(c *gin.Context) {
	if h.reader == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "uploads are not served by this instance"})
		return
	}
	key := strings.TrimPrefix(c.Param("key"), "/")
	r, contentType, err := h.reader.Open(c, key)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "upload not found"})
		return
	}
	defer r.Close()

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Security-Policy", UploadContentSecurityPolicy)
	c.DataFromReader(http.StatusOK, -1, contentType, r, nil)
}
