package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/condo-amenity-hub/session"
)

type SessionStore interface {
	Login(username, role, unit string) (string, session.User, error)
	Lookup(token string) (session.User, bool)
	Logout(token string)
}

func SessionAuth(store SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("sessiontoken")

		if len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		user, found := store.Lookup(token)

		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("sessionToken", token)
	}
}
