package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthIsOpen(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := env.doRaw(req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "OK", body["status"])
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	// no token
	w := env.doRaw(req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var errBody map[string]string
	decode(t, w, &errBody)
	assert.Equal(t, "Please authenticate.", errBody["error"])

	// garbage token
	req = httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = env.doRaw(req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong password
	w = env.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "wrong"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, w, &errBody)
	assert.Equal(t, "Invalid login credentials", errBody["error"])

	// wrong username
	w = env.do(http.MethodPost, "/api/auth/login", gin.H{"username": "root", "password": "admin123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the real pair gets a token that the middleware accepts
	w = env.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		User struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decode(t, w, &body)
	assert.Equal(t, "admin", body.User.Username)
	assert.Equal(t, "admin", body.User.Role)
	require.NotEmpty(t, body.Token)

	req = httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	w = env.doRaw(req)
	assert.Equal(t, http.StatusOK, w.Code)
}
