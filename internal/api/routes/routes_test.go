package routes

import (
	"context"
	"net/http"
	"testing"

	"showcase-portal-backend/internal/auth"
	"showcase-portal-backend/internal/database/models"
	"showcase-portal-backend/internal/repository"
	"showcase-portal-backend/internal/service"
	"showcase-portal-backend/internal/storage"
	"showcase-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the whole HTTP stack against an in-memory database
type RoutesTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	router    *gin.Engine
	httpSuite *testutils.HTTPTestSuite

	owner    *models.User
	other    *models.User
	sysadmin *models.User
	dataset  *models.Package

	ownerToken    string
	otherToken    string
	sysadminToken string
}

func (s *RoutesTestSuite) SetupTest() {
	s.base = testutils.SetupSQLiteTestSuite(s.T())

	store, err := storage.Open(context.Background(), "mem://")
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = store.Close() })

	s.router, err = SetupRoutes(s.base.DB, s.base.Config, Infrastructure{Store: store})
	s.Require().NoError(err)
	s.httpSuite = &testutils.HTTPTestSuite{Router: s.router}

	users := repository.NewUserRepository(s.base.DB)
	factory := testutils.NewUserFactory()
	s.owner = factory.WithName("owner")
	s.other = factory.WithName("other")
	s.sysadmin = factory.Sysadmin("root")
	for _, u := range []*models.User{s.owner, s.other, s.sysadmin} {
		s.Require().NoError(users.Create(u))
	}

	s.dataset = testutils.NewPackageFactory().Dataset("air-quality-2023")
	s.Require().NoError(repository.NewPackageRepository(s.base.DB).Create(s.dataset))

	authService, err := auth.NewAuthService(auth.NewAuthConfig(s.base.Config))
	s.Require().NoError(err)
	s.ownerToken, err = authService.GenerateJWT(s.owner)
	s.Require().NoError(err)
	s.otherToken, err = authService.GenerateJWT(s.other)
	s.Require().NoError(err)
	s.sysadminToken, err = authService.GenerateJWT(s.sysadmin)
	s.Require().NoError(err)
}

func (s *RoutesTestSuite) createShowcase() service.ShowcaseResponse {
	recorder := s.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/showcases", map[string]interface{}{
		"name":       "air-quality-map",
		"title":      "Air quality map",
		"notes":      "Hourly readings on a map",
		"reuse_type": "visualization",
		"url":        "https://example.org/map",
	}, testutils.BearerHeader(s.ownerToken))

	var created service.ShowcaseResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &created)
	return created
}

func (s *RoutesTestSuite) TestReviewWorkflow() {
	created := s.createShowcase()
	s.Equal("pending", created.ApprovalStatus.Status)
	s.Require().NotNil(created.Creator)
	s.Equal("owner", created.Creator.Name)

	// pending showcases are hidden from the public and from other users
	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/showcases/air-quality-map", nil)
	s.Equal(http.StatusUnauthorized, recorder.Code)
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/showcases/air-quality-map", nil, testutils.BearerHeader(s.otherToken))
	s.Equal(http.StatusForbidden, recorder.Code)
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/showcases/air-quality-map", nil, testutils.BearerHeader(s.ownerToken))
	s.Equal(http.StatusOK, recorder.Code)

	// the creator links a dataset
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/showcases/air-quality-map/packages",
		map[string]string{"package_id": "air-quality-2023"}, testutils.BearerHeader(s.ownerToken))
	s.Equal(http.StatusCreated, recorder.Code)
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/showcases/air-quality-map/packages",
		map[string]string{"package_id": "air-quality-2023"}, testutils.BearerHeader(s.ownerToken))
	s.Equal(http.StatusConflict, recorder.Code)

	// only portal admins review
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/showcases/air-quality-map/status",
		map[string]string{"status": "approved"}, testutils.BearerHeader(s.ownerToken))
	s.Equal(http.StatusForbidden, recorder.Code)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/showcases/air-quality-map/status",
		map[string]string{"status": "needs_revision"}, testutils.BearerHeader(s.sysadminToken))
	s.Equal(http.StatusBadRequest, recorder.Code)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/showcases/air-quality-map/status",
		map[string]string{"status": "approved", "feedback": "ignored"}, testutils.BearerHeader(s.sysadminToken))
	var status service.StatusResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &status)
	s.Equal("Approved", status.DisplayStatus)
	s.Empty(status.Feedback)

	// approved showcases are public
	recorder = s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/showcases/air-quality-map", nil)
	var shown service.ShowcaseResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &shown)
	s.Equal(int64(1), shown.NumDatasets)

	recorder = s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/showcases", nil)
	var list service.ShowcaseIDListResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &list)
	s.Equal([]string{created.ID}, list.Items)

	recorder = s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/packages/air-quality-2023/showcases", nil)
	var usedBy []service.ShowcaseResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &usedBy)
	s.Len(usedBy, 1)

	// editing sends the showcase back to review
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/showcases/air-quality-map",
		map[string]string{"title": "Air quality map v2"}, testutils.BearerHeader(s.ownerToken))
	var updated service.ShowcaseResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &updated)
	s.Equal("pending", updated.ApprovalStatus.Status)

	recorder = s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/showcases", nil)
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &list)
	s.Empty(list.Items)

	// deletion is never allowed
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/showcases/air-quality-map", nil, testutils.BearerHeader(s.sysadminToken))
	s.Equal(http.StatusForbidden, recorder.Code)
}

func (s *RoutesTestSuite) TestDashboardAndStatistics() {
	s.createShowcase()

	recorder := s.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/showcases/dashboard?status=", nil, testutils.BearerHeader(s.sysadminToken))
	var dashboard service.ShowcaseListResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &dashboard)
	s.Equal(int64(1), dashboard.Total)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/showcases/dashboard", nil, testutils.BearerHeader(s.otherToken))
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &dashboard)
	s.Equal(int64(0), dashboard.Total)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/showcases/statistics", nil, testutils.BearerHeader(s.sysadminToken))
	var stats repository.ShowcaseStatistics
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &stats)
	s.Equal(int64(1), stats.Total)
	s.Equal(int64(1), stats.StatusBreakdown["pending"])

	recorder = s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/showcases/statistics", nil)
	s.Equal(http.StatusUnauthorized, recorder.Code)

	recorder = s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/showcases?sort=bogus", nil)
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *RoutesTestSuite) TestShowcaseAdmins() {
	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/showcase-admins", nil)
	s.Equal(http.StatusUnauthorized, recorder.Code)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/showcase-admins",
		map[string]string{"username": "other"}, testutils.BearerHeader(s.ownerToken))
	s.Equal(http.StatusForbidden, recorder.Code)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/showcase-admins",
		map[string]string{"username": "other"}, testutils.BearerHeader(s.sysadminToken))
	s.Equal(http.StatusCreated, recorder.Code)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/showcase-admins",
		map[string]string{"username": "nobody"}, testutils.BearerHeader(s.sysadminToken))
	s.Equal(http.StatusNotFound, recorder.Code)

	// the new admin may now review
	s.createShowcase()
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/showcases/air-quality-map/status",
		map[string]string{"status": "rejected"}, testutils.BearerHeader(s.otherToken))
	s.Equal(http.StatusOK, recorder.Code)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/showcase-admins", nil, testutils.BearerHeader(s.sysadminToken))
	var admins []service.AdminResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &admins)
	s.Require().Len(admins, 1)
	s.Equal("other", admins[0].Name)

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/showcase-admins/other", nil, testutils.BearerHeader(s.sysadminToken))
	s.Equal(http.StatusNoContent, recorder.Code)
	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/showcase-admins/other", nil, testutils.BearerHeader(s.sysadminToken))
	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *RoutesTestSuite) TestUploadAndServe() {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

	recorder := s.httpSuite.MakeMultipartRequest("/api/v1/showcases/upload", "image_upload", "Map.png", png, nil)
	s.Equal(http.StatusUnauthorized, recorder.Code)

	recorder = s.httpSuite.MakeMultipartRequest("/api/v1/showcases/upload", "image_upload", "Map.png", png, testutils.BearerHeader(s.ownerToken))
	var uploaded service.UploadResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &uploaded)
	s.Contains(uploaded.URL, "http://localhost:8080/uploads/showcase/")
	s.Contains(uploaded.URL, "-map.png")

	path := uploaded.URL[len("http://localhost:8080"):]
	recorder = s.httpSuite.MakeRequest(http.MethodGet, path, nil)
	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("image/png", recorder.Header().Get("Content-Type"))
	s.Equal(png, recorder.Body.Bytes())
	s.Equal("nosniff", recorder.Header().Get("X-Content-Type-Options"))
	s.Contains(recorder.Header().Get("Content-Security-Policy"), "sandbox")
}

func (s *RoutesTestSuite) TestUploadRejectsScriptedSVG() {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(document.cookie)</script></svg>`)

	recorder := s.httpSuite.MakeMultipartRequest("/api/v1/showcases/upload", "image_upload", "x.svg", svg, testutils.BearerHeader(s.ownerToken))
	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(recorder.Body.String(), "must not contain scripts")
}

func (s *RoutesTestSuite) TestOperationalEndpoints() {
	s.Equal(http.StatusOK, s.httpSuite.MakeRequest(http.MethodGet, "/health", nil).Code)
	s.Equal(http.StatusOK, s.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil).Code)

	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "showcase_http_requests_total")

	recorder = s.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/auth/me", nil, testutils.BearerHeader(s.ownerToken))
	var claims auth.AuthClaims
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &claims)
	s.Equal("owner", claims.Username)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
