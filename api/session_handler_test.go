package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/condo-amenity-hub/api"
	"github.com/hanksha/condo-amenity-hub/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

func setupSessionRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := session.NewStore(time.Hour)
	api.NewSessionHandler(store).Register(router.Group("/api/session"))

	return router, store
}

func withToken(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set("sessiontoken", token)
	router.ServeHTTP(w, req)

	return w
}

func TestSessionLogin(t *testing.T) {
	t.Run("resident", func(t *testing.T) {
		router, store := setupSessionRouter(t)

		w := serve(router, "POST", "/api/session/login", []byte(`{"username":"alice","unit":"101"}`))

		require.Equal(t, 200, w.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, session.User{Username: "alice", Unit: "101"}, resp.User)

		user, found := store.Lookup(resp.Token)
		assert.True(t, found)
		assert.Equal(t, resp.User, user)
	})

	t.Run("admin", func(t *testing.T) {
		router, _ := setupSessionRouter(t)

		w := serve(router, "POST", "/api/session/login", []byte(`{"username":"manager","role":"admin"}`))

		require.Equal(t, 200, w.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.User.Admin)
	})

	t.Run("missing unit", func(t *testing.T) {
		router, _ := setupSessionRouter(t)

		w := serve(router, "POST", "/api/session/login", []byte(`{"username":"alice"}`))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"unit is required for residents"}`, w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, _ := setupSessionRouter(t)

		w := serve(router, "POST", "/api/session/login", []byte("{"))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})
}

func TestSessionAuth(t *testing.T) {
	router, store := setupSessionRouter(t)

	token, user, err := store.Login("alice", "resident", "101")
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := serve(router, "GET", "/api/session/me", nil)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("unknown token", func(t *testing.T) {
		w := withToken(router, "GET", "/api/session/me", "nope")

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})

	t.Run("me", func(t *testing.T) {
		userJson, _ := json.Marshal(user)

		w := withToken(router, "GET", "/api/session/me", token)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(userJson), w.Body.String())
	})

	t.Run("logout", func(t *testing.T) {
		w := withToken(router, "POST", "/api/session/logout", token)

		assert.Equal(t, 200, w.Code)

		_, found := store.Lookup(token)
		assert.False(t, found)

		w = withToken(router, "GET", "/api/session/me", token)
		assert.Equal(t, 401, w.Code)
	})
}
