package handlers

import (
	"net/http"
	"strconv"

	"garage-desk/internal/config"
	"garage-desk/internal/notify"
	"garage-desk/internal/storage"
	"garage-desk/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// API carries every dependency the handlers need; it is built once in main
// and wired into the router.
type API struct {
	clients       *store.ClientStore
	vehicles      *store.VehicleStore
	documents     *store.DocumentStore
	notifications *store.NotificationStore
	events        *notify.Recorder
	files         storage.Store
	cfg           *config.Config
	log           *logrus.Logger

	adminPasswordHash []byte
}

func New(
	clients *store.ClientStore,
	vehicles *store.VehicleStore,
	documents *store.DocumentStore,
	notifications *store.NotificationStore,
	events *notify.Recorder,
	files storage.Store,
	cfg *config.Config,
	log *logrus.Logger,
) (*API, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &API{
		clients:           clients,
		vehicles:          vehicles,
		documents:         documents,
		notifications:     notifications,
		events:            events,
		files:             files,
		cfg:               cfg,
		log:               log,
		adminPasswordHash: hash,
	}, nil
}

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Vehicle Management System API is running",
	})
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
