package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/solvti/ougrt/internal/config"
	"github.com/solvti/ougrt/internal/database"
	"github.com/solvti/ougrt/internal/models"
	"github.com/solvti/ougrt/internal/services/grt"
)

// One-shot GRT reconciliation run, useful for manual syncs and cron-style
// deployments where the API server is not running.
func main() {
	fmt.Println("🔄 GRT Operating Unit Sync - single run")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	err = db.AutoMigrate(
		&models.ResCountry{},
		&models.ResCompany{},
		&models.ResPartner{},
		&models.OperatingUnit{},
		&models.ConfigParameter{},
		&models.SyncLog{},
		&models.SyncHistory{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	service := grt.NewSyncService(db, cfg.GRT)
	history, err := service.RunSync(ctx)
	if err != nil {
		log.Fatalf("❌ Sync run failed: %v", err)
	}

	fmt.Printf("✅ Sync run %s finished: created=%d updated=%d skipped=%d\n",
		history.RunID, history.Created, history.Updated, history.Skipped)
}
