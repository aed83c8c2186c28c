package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/condo-amenity-hub/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Unit     string `json:"unit"`
}

type SessionHandler struct {
	store SessionStore
}

func NewSessionHandler(store SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) Register(rg *gin.RouterGroup) {
	auth := SessionAuth(h.store)
	rg.POST("/login", h.Login)
	rg.GET("/me", auth, h.Me)
	rg.POST("/logout", auth, h.Logout)
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	token, user, err := h.store.Login(req.Username, req.Role, req.Unit)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *SessionHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(session.User)

	c.IndentedJSON(http.StatusOK, user)
}

func (h *SessionHandler) Logout(c *gin.Context) {
	h.store.Logout(c.GetString("sessionToken"))

	c.IndentedJSON(http.StatusOK, gin.H{"message": "logged out"})
}
