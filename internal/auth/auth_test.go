package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"showcase-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:     "test-signing-key",
		Issuer:        "showcase-portal-test",
		TokenLifetime: time.Hour,
	}
}

func testUser(sysadmin bool) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "testuser",
		Email:     "test@example.com",
		Sysadmin:  sysadmin,
	}
}

func TestConfigValidation(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive lifetime", func(t *testing.T) {
		config := testConfig()
		config.TokenLifetime = 0
		_, err := NewAuthService(config)
		assert.Error(t, err)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	user := testUser(true)
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.True(t, claims.Sysadmin)
	assert.Equal(t, "showcase-portal-test", claims.Issuer)
}

func TestValidateJWTRejects(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := testConfig()
		other.JWTSecret = "another-key"
		otherService, err := NewAuthService(other)
		require.NoError(t, err)

		token, err := otherService.GenerateJWT(testUser(false))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := testConfig()
		other.Issuer = "someone-else"
		otherService, err := NewAuthService(other)
		require.NoError(t, err)

		token, err := otherService.GenerateJWT(testUser(false))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{
			UserID:   uuid.NewString(),
			Username: "old",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				Issuer:    "showcase-portal-test",
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	user := testUser(false)
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/required", middleware.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		name, _ := GetUsername(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "ok": ok, "name": name})
	})
	router.GET("/optional", middleware.OptionalAuth(), func(c *gin.Context) {
		_, ok := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})
	router.GET("/sysadmin", middleware.RequireAuth(), middleware.RequireSysadmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	do := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("/required", "").Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("/required", "Basic abc").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := do("/required", "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, user.ID.String(), body["id"])
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "testuser", body["name"])
	})

	t.Run("optional without token", func(t *testing.T) {
		w := do("/optional", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})

	t.Run("optional with bad token", func(t *testing.T) {
		w := do("/optional", "Bearer nope")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})

	t.Run("optional with token", func(t *testing.T) {
		w := do("/optional", "Bearer "+token)
		assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
	})

	t.Run("sysadmin required", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do("/sysadmin", "Bearer "+token).Code)

		adminToken, err := service.GenerateJWT(testUser(true))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, do("/sysadmin", "Bearer "+adminToken).Code)
	})
}

func TestValidateTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	handler := NewAuthHandler(service)

	token, err := service.GenerateJWT(testUser(false))
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		handler.ValidateToken(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response AuthValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, "testuser", response.Claims.Username)
	})

	t.Run("invalid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		c.Request.Header.Set("Authorization", "Bearer broken")

		handler.ValidateToken(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
