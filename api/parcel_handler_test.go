package api_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/condo-amenity-hub/api"
	mock_api "github.com/hanksha/condo-amenity-hub/api/mocks"
	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/hanksha/condo-amenity-hub/parcel"
	"github.com/hanksha/condo-amenity-hub/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupParcelRouter(t *testing.T, user session.User) (*gin.Engine, *gomock.Controller, *mock_api.MockParcelService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockService := mock_api.NewMockParcelService(ctrl)
	rg := router.Group("/api/v1/packages")
	rg.Use(setUserInContext(user))
	api.NewParcelHandler(mockService).Register(rg)

	return router, ctrl, mockService
}

func sampleParcel() parcel.Parcel {
	return parcel.Parcel{ID: 1, Unit: "101", Carrier: "UPS", ArrivalDate: "2025-09-10"}
}

func TestListParcels(t *testing.T) {
	t.Run("unit prefix is passed through", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, resident)
		defer ctrl.Finish()

		parcels := []parcel.Parcel{sampleParcel()}
		parcelsJson, _ := json.Marshal(parcels)
		mockService.EXPECT().ListParcels(gomock.Any(), resident, "10").Return(parcels, nil).Times(1)

		w := serve(router, "GET", "/api/v1/packages?unit=10", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(parcelsJson), w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, resident)
		defer ctrl.Finish()

		mockService.EXPECT().ListParcels(gomock.Any(), resident, "").Return(nil, assert.AnError).Times(1)

		w := serve(router, "GET", "/api/v1/packages", nil)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve packages"}`, w.Body.String())
	})
}

func TestAddParcel(t *testing.T) {
	fields := parcel.Fields{Unit: "101", Carrier: "UPS", ArrivalDate: "2025-09-10"}
	body, _ := json.Marshal(fields)

	t.Run("admin", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, admin)
		defer ctrl.Finish()

		added := sampleParcel()
		addedJson, _ := json.Marshal(added)
		mockService.EXPECT().AddParcel(gomock.Any(), fields, admin).Return(added, nil).Times(1)

		w := serve(router, "POST", "/api/v1/packages", body)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(addedJson), w.Body.String())
	})

	t.Run("resident is rejected before the service", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, resident)
		defer ctrl.Finish()

		mockService.EXPECT().AddParcel(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := serve(router, "POST", "/api/v1/packages", body)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, admin)
		defer ctrl.Finish()

		err := fmt.Errorf("%w: arrival_date must be YYYY-MM-DD", bk.ErrFormat)
		mockService.EXPECT().AddParcel(gomock.Any(), fields, admin).Return(parcel.Parcel{}, err).Times(1)

		w := serve(router, "POST", "/api/v1/packages", body)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid format: arrival_date must be YYYY-MM-DD"}`, w.Body.String())
	})
}

func TestEditAndDeleteParcel(t *testing.T) {
	fields := parcel.Fields{Unit: "102", Carrier: "UPS", ArrivalDate: "2025-09-10"}
	body, _ := json.Marshal(fields)

	t.Run("edit", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, admin)
		defer ctrl.Finish()

		updated := sampleParcel()
		updated.Unit = "102"
		mockService.EXPECT().EditParcel(gomock.Any(), 1, fields, admin).Return(updated, nil).Times(1)

		w := serve(router, "PUT", "/api/v1/packages/1", body)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("edit unknown id", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().EditParcel(gomock.Any(), 9, fields, admin).Return(parcel.Parcel{}, parcel.ErrParcelNotFound).Times(1)

		w := serve(router, "PUT", "/api/v1/packages/9", body)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"package not found"}`, w.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().DeleteParcel(gomock.Any(), 1, admin).Return(nil).Times(1)

		w := serve(router, "DELETE", "/api/v1/packages/1", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"package deleted"}`, w.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		router, ctrl, _ := setupParcelRouter(t, admin)
		defer ctrl.Finish()

		w := serve(router, "DELETE", "/api/v1/packages/abc", nil)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid package id"}`, w.Body.String())
	})
}

func TestMarkPickedUp(t *testing.T) {
	t.Run("resident", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, resident)
		defer ctrl.Finish()

		picked := sampleParcel()
		picked.PickedUp = true
		pickedJson, _ := json.Marshal(picked)
		mockService.EXPECT().MarkPickedUp(gomock.Any(), 1, resident).Return(picked, nil).Times(1)

		w := serve(router, "PUT", "/api/v1/packages/1/pickup", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(pickedJson), w.Body.String())
	})

	t.Run("another unit", func(t *testing.T) {
		router, ctrl, mockService := setupParcelRouter(t, resident)
		defer ctrl.Finish()

		mockService.EXPECT().MarkPickedUp(gomock.Any(), 2, resident).Return(parcel.Parcel{}, parcel.ErrNotAllowed).Times(1)

		w := serve(router, "PUT", "/api/v1/packages/2/pickup", nil)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed to modify this package"}`, w.Body.String())
	})
}
