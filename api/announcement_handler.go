package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/condo-amenity-hub/announcement"
	"github.com/hanksha/condo-amenity-hub/session"
)

//go:generate mockgen -source=announcement_handler.go -destination=mocks/announcement_handler_mock.go -package=mock_api

type AnnouncementService interface {
	ListAnnouncements(ctx context.Context) ([]announcement.Announcement, error)
	EnsureDefault(ctx context.Context, user session.User) (announcement.Announcement, error)
	AddAnnouncement(ctx context.Context, fields announcement.Fields, user session.User) (announcement.Announcement, error)
	EditAnnouncement(ctx context.Context, id int, fields announcement.Fields, user session.User) (announcement.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int, user session.User) error
}

type AnnouncementHandler struct {
	service AnnouncementService
}

func NewAnnouncementHandler(service AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

func (h *AnnouncementHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/latest", h.Latest)
	rg.POST("", AdminOnly(), h.Add)
	rg.PUT("/:id", AdminOnly(), h.Edit)
	rg.DELETE("/:id", AdminOnly(), h.Delete)
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.service.ListAnnouncements(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve announcements"})
		return
	}

	c.IndentedJSON(http.StatusOK, announcements)
}

// Latest backs the dashboard banner and posts the default update on an
// empty board.
func (h *AnnouncementHandler) Latest(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	latest, err := h.service.EnsureDefault(c.Request.Context(), user)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve announcement"})
		return
	}

	c.IndentedJSON(http.StatusOK, latest)
}

func (h *AnnouncementHandler) Add(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	var fields announcement.Fields

	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	added, err := h.service.AddAnnouncement(c.Request.Context(), fields, user)

	if err != nil {
		writeAnnouncementError(c, err, "failed to post announcement")
		return
	}

	c.JSON(http.StatusCreated, added)
}

func (h *AnnouncementHandler) Edit(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := pathID(c, "announcement")

	if !ok {
		return
	}

	var fields announcement.Fields

	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.EditAnnouncement(c.Request.Context(), id, fields, user)

	if err != nil {
		writeAnnouncementError(c, err, "failed to modify announcement")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	user := c.MustGet("user").(session.User)
	id, ok := pathID(c, "announcement")

	if !ok {
		return
	}

	if err := h.service.DeleteAnnouncement(c.Request.Context(), id, user); err != nil {
		writeAnnouncementError(c, err, "failed to delete announcement")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "announcement deleted"})
}

func writeAnnouncementError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	switch {
	case errors.Is(err, announcement.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, announcement.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": announcement.ErrNotAllowed.Error()})
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
