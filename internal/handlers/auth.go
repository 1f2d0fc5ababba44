package handlers

import (
	"crypto/subtle"
	"net/http"

	"garage-desk/internal/auth"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the single admin credential pair and issues a bearer token.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.cfg.AdminUsername)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(req.Password)) == nil
	if !userOK || !passOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login credentials"})
		return
	}

	token, _, err := auth.GenerateToken(a.cfg.JWTSecret, a.cfg.AdminUsername, a.cfg.TokenTTL)
	if err != nil {
		a.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"username": a.cfg.AdminUsername, "role": "admin"},
		"token": token,
	})
}
