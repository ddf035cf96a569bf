package handlers

import (
	"net/http"
	"testing"

	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/mocks"
	"showcase-portal-backend/internal/service"
	"showcase-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApprovalHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockApprovalServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	adminID     uuid.UUID
}

func (s *ApprovalHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockApprovalServiceInterface(s.ctrl)
	s.adminID = uuid.New()

	handler := NewApprovalHandler(s.mockService)
	s.httpSuite = testutils.SetupHTTPTest()
	s.httpSuite.Router.Use(asUser(s.adminID, "reviewer", true))
	s.httpSuite.Router.GET("/api/v1/showcases/:id/status", handler.GetStatus)
	s.httpSuite.Router.PUT("/api/v1/showcases/:id/status", handler.UpdateStatus)
}

func (s *ApprovalHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ApprovalHandlerTestSuite) TestGetStatus() {
	s.mockService.EXPECT().
		GetStatus(gomock.Any(), actorWithID(s.adminID), "air-quality-map").
		Return(&service.StatusResponse{Status: "pending", DisplayStatus: "Pending"}, nil)

	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/showcases/air-quality-map/status", nil)

	var response service.StatusResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal("Pending", response.DisplayStatus)
}

func (s *ApprovalHandlerTestSuite) TestUpdateStatus() {
	s.mockService.EXPECT().
		UpdateStatus(gomock.Any(), actorWithID(s.adminID), &service.UpdateStatusRequest{
			ShowcaseID: "air-quality-map",
			Status:     "needs_revision",
			Feedback:   "Add a screenshot",
		}).
		Return(&service.StatusResponse{
			ShowcaseID:     uuid.NewString(),
			Status:         "needs_revision",
			DisplayStatus:  "Needs Revision",
			Feedback:       "Add a screenshot",
			StatusModified: "2024-05-01T10:00:00Z",
		}, nil)

	recorder := s.httpSuite.MakeRequest(http.MethodPut, "/api/v1/showcases/air-quality-map/status", map[string]string{
		"status":   "needs_revision",
		"feedback": "Add a screenshot",
	})

	var response service.StatusResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal("Needs Revision", response.DisplayStatus)
	s.Equal("Add a screenshot", response.Feedback)
}

func (s *ApprovalHandlerTestSuite) TestUpdateStatusFeedbackRequired() {
	s.mockService.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrFeedbackRequired)

	recorder := s.httpSuite.MakeRequest(http.MethodPut, "/api/v1/showcases/x/status", map[string]string{"status": "needs_revision"})

	var response struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusBadRequest, &response)
	s.Contains(response.Details["feedback"], "feedback is required")
}

func (s *ApprovalHandlerTestSuite) TestUpdateStatusNotAllowed() {
	s.mockService.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrStatusNotAllowed)

	recorder := s.httpSuite.MakeRequest(http.MethodPut, "/api/v1/showcases/x/status", map[string]string{"status": "approved"})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusForbidden, "Reuse status")
}

func (s *ApprovalHandlerTestSuite) TestUpdateStatusUnknownShowcase() {
	s.mockService.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrShowcaseNotFound)

	recorder := s.httpSuite.MakeRequest(http.MethodPut, "/api/v1/showcases/x/status", map[string]string{"status": "approved"})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "showcase not found")
}

func TestApprovalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalHandlerTestSuite))
}
