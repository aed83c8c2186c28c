package api_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/condo-amenity-hub/api"
	mock_api "github.com/hanksha/condo-amenity-hub/api/mocks"
	"github.com/hanksha/condo-amenity-hub/request"
	"github.com/hanksha/condo-amenity-hub/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRequestRouter(t *testing.T, user session.User) (*gin.Engine, *gomock.Controller, *mock_api.MockRequestService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockService := mock_api.NewMockRequestService(ctrl)
	rg := router.Group("/api/v1/requests")
	rg.Use(setUserInContext(user))
	api.NewRequestHandler(mockService).Register(rg)

	return router, ctrl, mockService
}

func sampleRequest() request.Request {
	return request.Request{ID: 1, Unit: "101", Type: "Service Request", Description: "Leaking tap", Status: request.StatusSubmitted, CreatedBy: "alice"}
}

func TestListRequests(t *testing.T) {
	router, ctrl, mockService := setupRequestRouter(t, resident)
	defer ctrl.Finish()

	requests := []request.Request{sampleRequest()}
	requestsJson, _ := json.Marshal(requests)
	mockService.EXPECT().ListRequests(gomock.Any(), resident).Return(requests, nil).Times(1)

	w := serve(router, "GET", "/api/v1/requests", nil)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(requestsJson), w.Body.String())
}

func TestGetRequestTypes(t *testing.T) {
	router, ctrl, _ := setupRequestRouter(t, resident)
	defer ctrl.Finish()

	w := serve(router, "GET", "/api/v1/requests/types", nil)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `["Service Request","Architectural Change Request","Suggestion","Question"]`, w.Body.String())
}

func TestSubmitRequest(t *testing.T) {
	fields := request.Fields{Type: "Service Request", Description: "Leaking tap"}
	body, _ := json.Marshal(fields)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRequestRouter(t, resident)
		defer ctrl.Finish()

		submitted := sampleRequest()
		submittedJson, _ := json.Marshal(submitted)
		mockService.EXPECT().SubmitRequest(gomock.Any(), fields, resident).Return(submitted, nil).Times(1)

		w := serve(router, "POST", "/api/v1/requests", body)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(submittedJson), w.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		router, ctrl, mockService := setupRequestRouter(t, resident)
		defer ctrl.Finish()

		err := fmt.Errorf("%w: %q", request.ErrUnknownType, "Complaint")
		mockService.EXPECT().SubmitRequest(gomock.Any(), fields, resident).Return(request.Request{}, err).Times(1)

		w := serve(router, "POST", "/api/v1/requests", body)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"unknown request type: \"Complaint\""}`, w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupRequestRouter(t, resident)
		defer ctrl.Finish()

		w := serve(router, "POST", "/api/v1/requests", []byte("["))

		assert.Equal(t, 400, w.Code)
	})
}

func TestEditAndDeleteRequest(t *testing.T) {
	fields := request.Fields{Type: "Service Request", Description: "Leaking tap in kitchen"}
	body, _ := json.Marshal(fields)

	t.Run("not the creator", func(t *testing.T) {
		router, ctrl, mockService := setupRequestRouter(t, resident)
		defer ctrl.Finish()

		mockService.EXPECT().EditRequest(gomock.Any(), 2, fields, resident).Return(request.Request{}, request.ErrNotAllowed).Times(1)

		w := serve(router, "PUT", "/api/v1/requests/2", body)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed to modify this request"}`, w.Body.String())
	})

	t.Run("delete unknown", func(t *testing.T) {
		router, ctrl, mockService := setupRequestRouter(t, resident)
		defer ctrl.Finish()

		mockService.EXPECT().DeleteRequest(gomock.Any(), 9, resident).Return(request.ErrRequestNotFound).Times(1)

		w := serve(router, "DELETE", "/api/v1/requests/9", nil)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"request not found"}`, w.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		router, ctrl, mockService := setupRequestRouter(t, resident)
		defer ctrl.Finish()

		mockService.EXPECT().DeleteRequest(gomock.Any(), 1, resident).Return(nil).Times(1)

		w := serve(router, "DELETE", "/api/v1/requests/1", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"request deleted"}`, w.Body.String())
	})
}

func TestChangeRequestStatus(t *testing.T) {
	body := []byte(`{"status":"Resolved"}`)

	t.Run("admin", func(t *testing.T) {
		router, ctrl, mockService := setupRequestRouter(t, admin)
		defer ctrl.Finish()

		resolved := sampleRequest()
		resolved.Status = request.StatusResolved
		resolvedJson, _ := json.Marshal(resolved)
		mockService.EXPECT().ChangeStatus(gomock.Any(), 1, "Resolved", admin).Return(resolved, nil).Times(1)

		w := serve(router, "PUT", "/api/v1/requests/1/status", body)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(resolvedJson), w.Body.String())
	})

	t.Run("resident", func(t *testing.T) {
		router, ctrl, mockService := setupRequestRouter(t, resident)
		defer ctrl.Finish()

		mockService.EXPECT().ChangeStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := serve(router, "PUT", "/api/v1/requests/1/status", body)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		router, ctrl, mockService := setupRequestRouter(t, admin)
		defer ctrl.Finish()

		err := fmt.Errorf("%w: %q", request.ErrInvalidStatus, "Closed")
		mockService.EXPECT().ChangeStatus(gomock.Any(), 1, "Closed", admin).Return(request.Request{}, err).Times(1)

		w := serve(router, "PUT", "/api/v1/requests/1/status", []byte(`{"status":"Closed"}`))

		assert.Equal(t, 400, w.Code)
	})
}
