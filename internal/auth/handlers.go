package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes token introspection endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ValidateToken handles POST /api/auth/validate
//
//	@Summary		Validate access token
//	@Description	Validates the bearer token and returns its claims
//	@Tags			auth
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{object}	AuthValidateResponse
//	@Failure		401				{object}	map[string]interface{}	"Invalid token"
//	@Router			/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, AuthValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

// Me handles GET /api/auth/me
//
//	@Summary		Current user
//	@Description	Returns the claims of the authenticated user
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	AuthClaims
//	@Failure		401	{object}	map[string]interface{}	"Authentication required"
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, claims)
}
