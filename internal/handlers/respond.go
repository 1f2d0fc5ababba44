package handlers

import (
	"net/http"

	"garage-desk/internal/store"

	"github.com/gin-gonic/gin"
)

// respondError maps the store error taxonomy onto HTTP statuses. Anything
// unrecognized is a 500 with the message redacted outside development.
func (a *API) respondError(c *gin.Context, err error) {
	switch {
	case store.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case store.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case store.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		a.internalError(c, err)
	}
}

func (a *API) internalError(c *gin.Context, err error) {
	a.log.WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())

	msg := "Something went wrong"
	if a.cfg.Env == "development" {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
