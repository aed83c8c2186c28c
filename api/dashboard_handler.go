package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/condo-amenity-hub/booking"
)

//go:generate mockgen -source=dashboard_handler.go -destination=mocks/dashboard_handler_mock.go -package=mock_api

type BookingCounter interface {
	Summary(ctx context.Context) bk.SummaryCounts
}

type ParcelCounter interface {
	WaitingCount(ctx context.Context) int
}

type RequestCounter interface {
	OpenCount(ctx context.Context) int
}

// DashboardSummary is what the admin dashboard tiles show.
type DashboardSummary struct {
	Bookings        bk.SummaryCounts `json:"bookings"`
	PackagesWaiting int              `json:"packagesWaiting"`
	RequestsOpen    int              `json:"requestsOpen"`
}

type DashboardHandler struct {
	bookings BookingCounter
	parcels  ParcelCounter
	requests RequestCounter
}

func NewDashboardHandler(bookings BookingCounter, parcels ParcelCounter, requests RequestCounter) *DashboardHandler {
	return &DashboardHandler{bookings: bookings, parcels: parcels, requests: requests}
}

func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", AdminOnly(), h.Summary)
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	c.IndentedJSON(http.StatusOK, DashboardSummary{
		Bookings:        h.bookings.Summary(ctx),
		PackagesWaiting: h.parcels.WaitingCount(ctx),
		RequestsOpen:    h.requests.OpenCount(ctx),
	})
}
