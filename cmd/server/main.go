package main

import (
	"context"
	"fmt"

	"garage-desk/internal/config"
	"garage-desk/internal/database"
	"garage-desk/internal/handlers"
	"garage-desk/internal/notify"
	"garage-desk/internal/server"
	"garage-desk/internal/storage"
	"garage-desk/internal/store"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.Env)

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	files, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	clients := store.NewClientStore(db)
	vehicles := store.NewVehicleStore(db)
	documents := store.NewDocumentStore(db)
	notifications := store.NewNotificationStore(db)
	events := notify.NewRecorder(notifications, log)

	api, err := handlers.New(clients, vehicles, documents, notifications, events, files, cfg, log)
	if err != nil {
		log.Fatalf("handlers: %v", err)
	}

	r := server.NewRouter(cfg, api)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
