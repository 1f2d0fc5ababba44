package server

import (
	"garage-desk/internal/config"
	"garage-desk/internal/handlers"
	"garage-desk/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, api *handlers.API) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())

	if cfg.StorageProvider == config.StorageProviderLocal {
		r.Static("/uploads", cfg.UploadDir)
	}

	root := r.Group("/api")
	root.GET("/health", api.Health)
	root.POST("/auth/login", api.Login)

	authed := root.Group("")
	authed.Use(middleware.RequireAuth(cfg.JWTSecret))

	// CLIENTS
	authed.GET("/clients", api.ListClients)
	authed.GET("/clients/:id", api.GetClient)
	authed.POST("/clients", api.CreateClient)
	authed.PUT("/clients/:id", api.UpdateClient)
	authed.DELETE("/clients/:id", api.DeleteClient)

	// VEHICLES
	authed.GET("/vehicles", api.ListVehicles)
	authed.GET("/vehicles/summary/payment", api.PaymentSummary)
	authed.GET("/vehicles/:id", api.GetVehicle)
	authed.POST("/vehicles", api.CreateVehicle)
	authed.PUT("/vehicles/:id", api.UpdateVehicle)
	authed.DELETE("/vehicles/:id", api.DeleteVehicle)

	// DOCUMENTS
	authed.POST("/documents", api.UploadDocuments)
	authed.GET("/documents/vehicle/:id", api.ListDocuments)
	authed.GET("/documents/:id/download", api.DownloadDocument)
	authed.DELETE("/documents/:id", api.DeleteDocument)

	// NOTIFICATIONS
	authed.GET("/notifications", api.ListNotifications)
	authed.PUT("/notifications/read-all", api.MarkAllNotificationsRead)
	authed.PUT("/notifications/:id/read", api.MarkNotificationRead)

	// EXPORT / INVOICES
	authed.GET("/export/excel", api.ExportExcel)
	authed.GET("/export/csv", api.ExportCSV)
	authed.GET("/export/backup", api.ExportExcel)
	authed.GET("/invoices/:id", api.VehicleInvoice)

	return r
}
