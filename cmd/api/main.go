package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solvti/ougrt/internal/config"
	"github.com/solvti/ougrt/internal/database"
	"github.com/solvti/ougrt/internal/handlers"
	"github.com/solvti/ougrt/internal/models"
	"github.com/solvti/ougrt/internal/services/grt"
	"github.com/solvti/ougrt/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.ResCountry{},
		&models.ResCompany{},
		&models.ResPartner{},
		&models.OperatingUnit{},
		&models.UserAuth{},

		// Operating unit extensions
		&models.AccountJournal{},
		&models.CrmTeam{},
		&models.AnalyticAccount{},

		// Sync tables
		&models.ConfigParameter{},
		&models.SyncLog{},
		&models.SyncHistory{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// Seed the bootstrap GRT endpoint parameter from the environment if the
	// persisted value is still empty
	if cfg.GRT.APIURL != "" && models.GetParam(db.DB, models.ParamGRTAPIURL, "") == "" {
		if err := models.SetParam(db.DB, models.ParamGRTAPIURL, cfg.GRT.APIURL); err != nil {
			log.Printf("⚠️ Failed to seed GRT API url parameter: %v", err)
		}
	}

	// 4. Start websocket hub for the sync event feed
	hub := websocket.NewHub()
	go hub.Run()

	// 5. Start GRT sync service (background)
	syncService := grt.NewSyncService(db, cfg.GRT)
	syncService.SetHub(hub)
	syncService.Start()

	// 6. Set up HTTP router
	router := handlers.NewRouter(db, cfg)
	router.SetSyncService(syncService)
	router.SetHub(hub)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	syncService.Stop()

	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
