package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/condo-amenity-hub/parcel"
	"github.com/hanksha/condo-amenity-hub/session"
)

//go:generate mockgen -source=parcel_handler.go -destination=mocks/parcel_handler_mock.go -package=mock_api

type ParcelService interface {
	ListParcels(ctx context.Context, user session.User, unitPrefix string) ([]parcel.Parcel, error)
	AddParcel(ctx context.Context, fields parcel.Fields, user session.User) (parcel.Parcel, error)
	EditParcel(ctx context.Context, id int, fields parcel.Fields, user session.User) (parcel.Parcel, error)
	DeleteParcel(ctx context.Context, id int, user session.User) error
	MarkPickedUp(ctx context.Context, id int, user session.User) (parcel.Parcel, error)
}

type ParcelHandler struct {
	service ParcelService
}

func NewParcelHandler(service ParcelService) *ParcelHandler {
	return &ParcelHandler{service: service}
}

func (h *ParcelHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", AdminOnly(), h.Add)
	rg.PUT("/:id", AdminOnly(), h.Edit)
	rg.DELETE("/:id", AdminOnly(), h.Delete)
	rg.PUT("/:id/pickup", h.MarkPickedUp)
}

// List accepts an optional ?unit= prefix filter.
func (h *ParcelHandler) List(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	parcels, err := h.service.ListParcels(c.Request.Context(), user, c.Query("unit"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve packages"})
		return
	}

	c.IndentedJSON(http.StatusOK, parcels)
}

func (h *ParcelHandler) Add(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	var fields parcel.Fields

	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	added, err := h.service.AddParcel(c.Request.Context(), fields, user)

	if err != nil {
		writeParcelError(c, err, "failed to record package")
		return
	}

	c.JSON(http.StatusCreated, added)
}

func (h *ParcelHandler) Edit(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := pathID(c, "package")

	if !ok {
		return
	}

	var fields parcel.Fields

	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.EditParcel(c.Request.Context(), id, fields, user)

	if err != nil {
		writeParcelError(c, err, "failed to modify package")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *ParcelHandler) Delete(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := pathID(c, "package")

	if !ok {
		return
	}

	if err := h.service.DeleteParcel(c.Request.Context(), id, user); err != nil {
		writeParcelError(c, err, "failed to delete package")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "package deleted"})
}

func (h *ParcelHandler) MarkPickedUp(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := pathID(c, "package")

	if !ok {
		return
	}

	picked, err := h.service.MarkPickedUp(c.Request.Context(), id, user)

	if err != nil {
		writeParcelError(c, err, "failed to mark package picked up")
		return
	}

	c.IndentedJSON(http.StatusOK, picked)
}

func writeParcelError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	switch {
	case parcel.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, parcel.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this package"})
	case errors.Is(err, parcel.ErrParcelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
