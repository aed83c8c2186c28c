package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/condo-amenity-hub/request"
	"github.com/hanksha/condo-amenity-hub/session"
)

//go:generate mockgen -source=request_handler.go -destination=mocks/request_handler_mock.go -package=mock_api

type RequestService interface {
	ListRequests(ctx context.Context, user session.User) ([]request.Request, error)
	SubmitRequest(ctx context.Context, fields request.Fields, user session.User) (request.Request, error)
	EditRequest(ctx context.Context, id int, fields request.Fields, user session.User) (request.Request, error)
	DeleteRequest(ctx context.Context, id int, user session.User) error
	ChangeStatus(ctx context.Context, id int, status string, user session.User) (request.Request, error)
}

type statusChange struct {
	Status string `json:"status"`
}

type RequestHandler struct {
	service RequestService
}

func NewRequestHandler(service RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/types", h.GetTypes)
	rg.POST("", h.Submit)
	rg.PUT("/:id", h.Edit)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/status", AdminOnly(), h.ChangeStatus)
}

func (h *RequestHandler) List(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	requests, err := h.service.ListRequests(c.Request.Context(), user)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve requests"})
		return
	}

	c.IndentedJSON(http.StatusOK, requests)
}

func (h *RequestHandler) GetTypes(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, request.Types)
}

func (h *RequestHandler) Submit(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	var fields request.Fields

	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	submitted, err := h.service.SubmitRequest(c.Request.Context(), fields, user)

	if err != nil {
		writeRequestError(c, err, "failed to submit request")
		return
	}

	c.JSON(http.StatusCreated, submitted)
}

func (h *RequestHandler) Edit(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := pathID(c, "request")

	if !ok {
		return
	}

	var fields request.Fields

	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.EditRequest(c.Request.Context(), id, fields, user)

	if err != nil {
		writeRequestError(c, err, "failed to modify request")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *RequestHandler) Delete(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := pathID(c, "request")

	if !ok {
		return
	}

	if err := h.service.DeleteRequest(c.Request.Context(), id, user); err != nil {
		writeRequestError(c, err, "failed to delete request")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "request deleted"})
}

func (h *RequestHandler) ChangeStatus(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := pathID(c, "request")

	if !ok {
		return
	}

	var body statusChange

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.ChangeStatus(c.Request.Context(), id, body.Status, user)

	if err != nil {
		writeRequestError(c, err, "failed to change request status")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func writeRequestError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	switch {
	case request.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, request.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this request"})
	case errors.Is(err, request.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
