package handlers

import (
	"net/http"

	"garage-desk/internal/store"

	"github.com/gin-gonic/gin"
)

func (a *API) ListClients(c *gin.Context) {
	clients, err := a.clients.List(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (a *API) GetClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	client, err := a.clients.Get(c.Request.Context(), id)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (a *API) CreateClient(c *gin.Context) {
	var in store.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	client, created, err := a.clients.Create(c.Request.Context(), in)
	if err != nil {
		a.respondError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, client)
		return
	}
	// identical (name, phone) already on file: hand back the existing row
	c.JSON(http.StatusOK, client)
}

func (a *API) UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in store.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	client, err := a.clients.Update(c.Request.Context(), id, in)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (a *API) DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.clients.Delete(c.Request.Context(), id); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
