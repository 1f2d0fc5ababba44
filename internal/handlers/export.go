package handlers

import (
	"fmt"
	"net/http"
	"time"

	"garage-desk/internal/export"
	"garage-desk/internal/store"

	"github.com/gin-gonic/gin"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportExcel streams the full dataset as a two-sheet workbook. The backup
// endpoint is an alias for this.
func (a *API) ExportExcel(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := a.clients.List(ctx)
	if err != nil {
		a.respondError(c, err)
		return
	}
	vehicles, err := a.vehicles.List(ctx, store.VehicleFilter{SortBy: "id", SortOrder: "ASC"})
	if err != nil {
		a.respondError(c, err)
		return
	}

	f, err := export.Workbook(clients, vehicles)
	if err != nil {
		a.internalError(c, err)
		return
	}

	c.Header("Content-Type", excelContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=vehicle_data_%d.xlsx", time.Now().Unix()))
	if err := f.Write(c.Writer); err != nil {
		a.log.WithError(err).Error("failed to write workbook to response")
	}
}

func (a *API) ExportCSV(c *gin.Context) {
	vehicles, err := a.vehicles.List(c.Request.Context(), store.VehicleFilter{SortBy: "id", SortOrder: "ASC"})
	if err != nil {
		a.respondError(c, err)
		return
	}
	if len(vehicles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No data to export"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=vehicle_data_%d.csv", time.Now().Unix()))
	if err := export.WriteCSV(c.Writer, vehicles); err != nil {
		a.log.WithError(err).Error("failed to write csv to response")
	}
}

func (a *API) VehicleInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	vehicle, err := a.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		a.respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", id))
	if err := export.WriteInvoice(c.Writer, vehicle); err != nil {
		a.log.WithError(err).Error("failed to write invoice to response")
	}
}
