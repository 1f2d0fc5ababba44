package handlers

import (
	"net/http"
	"strconv"

	"garage-desk/internal/storage"
	"garage-desk/internal/store"

	"github.com/gin-gonic/gin"
)

func (a *API) ListVehicles(c *gin.Context) {
	filter := store.VehicleFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "client_id must be a number"})
			return
		}
		filter.ClientID = uint(id)
	}

	vehicles, err := a.vehicles.List(c.Request.Context(), filter)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (a *API) GetVehicle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	vehicle, err := a.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (a *API) CreateVehicle(c *gin.Context) {
	var in store.VehicleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	vehicle, err := a.vehicles.Create(c.Request.Context(), in)
	if err != nil {
		a.respondError(c, err)
		return
	}

	a.events.VehicleCreated(c.Request.Context(), vehicle)
	c.JSON(http.StatusCreated, vehicle)
}

func (a *API) UpdateVehicle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in store.VehicleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	vehicle, err := a.vehicles.Update(c.Request.Context(), id, in)
	if err != nil {
		a.respondError(c, err)
		return
	}

	a.events.VehicleUpdated(c.Request.Context(), vehicle)
	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle removes the vehicle's documents (bytes first, best-effort
// per file) and then the rows. A file already missing from storage must not
// stop the rest of the cleanup.
func (a *API) DeleteVehicle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := a.vehicles.Get(ctx, id); err != nil {
		a.respondError(c, err)
		return
	}

	docs, err := a.documents.ListForVehicle(ctx, id)
	if err != nil {
		a.respondError(c, err)
		return
	}
	for _, doc := range docs {
		if err := a.files.Delete(ctx, doc.StorageKey); err != nil && err != storage.ErrNotExist {
			a.log.WithError(err).WithField("storage_key", doc.StorageKey).
				Warn("failed to delete document bytes, object may be orphaned")
		}
	}

	if err := a.vehicles.Delete(ctx, id); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}

func (a *API) PaymentSummary(c *gin.Context) {
	summary, err := a.vehicles.PaymentSummary(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
