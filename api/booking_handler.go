package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/hanksha/condo-amenity-hub/session"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_handler_mock.go -package=mock_api

type BookingService interface {
	ListBookings(ctx context.Context) ([]bk.Booking, error)
	FindBookingByID(ctx context.Context, id int) (bk.Booking, error)
	FindBookingsPerUnit(ctx context.Context, unit string) ([]bk.Booking, error)
	CreateBooking(ctx context.Context, fields bk.Fields, user session.User) (bk.Booking, error)
	EditBooking(ctx context.Context, id int, fields bk.Fields, user session.User) (bk.Booking, error)
	CancelBooking(ctx context.Context, id int, user session.User) error
	DeleteBooking(ctx context.Context, id int, user session.User) error
	Summary(ctx context.Context) bk.SummaryCounts
	Facilities() []string
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/booking/:id", h.GetByID)
	rg.GET("/unit/:unit", h.GetByUnit)
	rg.GET("/facilities", h.GetFacilities)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Edit)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.DELETE("/:id", h.Delete)

	rg.GET("/stats/facility", AdminOnly(), h.GetFacilityStats)
}

func (h *BookingHandler) List(c *gin.Context) {
	if bookings, err := h.service.ListBookings(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
	} else {
		c.IndentedJSON(http.StatusOK, bookings)
	}
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := bookingID(c)

	if !ok {
		return
	}

	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch booking",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetByUnit(c *gin.Context) {
	unit := c.Param("unit")
	bookings, err := h.service.FindBookingsPerUnit(c.Request.Context(), unit)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetFacilities(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Facilities())
}

func (h *BookingHandler) Create(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	var fields bk.Fields

	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), fields, user)

	if err != nil {
		writeBookingError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Edit(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := bookingID(c)

	if !ok {
		return
	}

	var fields bk.Fields

	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.EditBooking(c.Request.Context(), id, fields, user)

	if err != nil {
		writeBookingError(c, err, "failed to modify booking")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := bookingID(c)

	if !ok {
		return
	}

	err := h.service.CancelBooking(c.Request.Context(), id, user)

	if errors.Is(err, bk.ErrAlreadyCancelled) {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "booking is already cancelled"})
		return
	}

	if err != nil {
		writeBookingError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := bookingID(c)

	if !ok {
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id, user); err != nil {
		writeBookingError(c, err, "failed to delete booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

func (h *BookingHandler) GetFacilityStats(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Summary(c.Request.Context()))
}

func bookingID(c *gin.Context) (int, bool) {
	return pathID(c, "booking")
}

// pathID parses the :id parameter and answers 400 when it is not a number.
func pathID(c *gin.Context, noun string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + noun + " id"})
		return 0, false
	}

	return id, true
}

func writeBookingError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	switch {
	case bk.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this booking"})
	case errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bk.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": bk.ErrConflict.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(session.User)

		if !user.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}
