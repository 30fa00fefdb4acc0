package grt

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/solvti/ougrt/internal/config"
	"github.com/solvti/ougrt/internal/database"
	"github.com/solvti/ougrt/internal/models"
	"github.com/solvti/ougrt/internal/websocket"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SyncService orchestrates the scheduled reconciliation of operating units
// against the GRT API: fetch, normalize, diff, apply.
type SyncService struct {
	db   *database.DB
	cfg  config.GRTConfig
	hub  *websocket.Hub
	stop chan struct{}
}

// NewSyncService creates a new GRT synchronization service
func NewSyncService(db *database.DB, cfg config.GRTConfig) *SyncService {
	return &SyncService{
		db:   db,
		cfg:  cfg,
		stop: make(chan struct{}),
	}
}

// SetHub attaches a websocket hub that receives run summaries
func (s *SyncService) SetHub(hub *websocket.Hub) {
	s.hub = hub
}

// Start begins the background synchronization loop. One run per tick; runs are
// synchronous and run-to-completion, there is no overlap coordination.
func (s *SyncService) Start() {
	go func() {
		log.Println("📡 GRT Sync Service started")

		if s.cfg.SyncOnStart {
			time.Sleep(5 * time.Second)
			s.runScheduled()
		}

		interval := time.Duration(s.cfg.SyncInterval) * time.Minute
		if s.cfg.SyncInterval <= 0 {
			interval = 24 * time.Hour
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runScheduled()
			case <-s.stop:
				log.Println("🛑 GRT Sync Service stopped")
				return
			}
		}
	}()
}

// Stop halts the service
func (s *SyncService) Stop() {
	close(s.stop)
}

// runScheduled is the ticker entrypoint. Errors are contained to the run; the
// next tick is the only retry.
func (s *SyncService) runScheduled() {
	if _, err := s.RunSync(context.Background()); err != nil {
		log.Printf("⚠️ GRT API Sync: run finished with error: %v", err)
	}
}

// apiParams resolves the GRT endpoint and credential for one run. The URL comes
// from the persisted parameter, the key from the environment with the persisted
// parameter as fallback (environment wins).
func (s *SyncService) apiParams() (apiURL, apiKey string) {
	apiURL = models.GetParam(s.db.DB, models.ParamGRTAPIURL, s.cfg.APIURL)
	apiKey = os.Getenv("GRT_API_KEY")
	if apiKey == "" {
		apiKey = models.GetParam(s.db.DB, models.ParamGRTAPIKey, "")
	}
	return apiURL, apiKey
}

// RunSync performs one full reconciliation run and records it in sync_history.
// All local writes happen inside a single transaction; a failure anywhere in
// the applier rolls the whole run back.
func (s *SyncService) RunSync(ctx context.Context) (*models.SyncHistory, error) {
	history := &models.SyncHistory{
		RunID:     uuid.NewString(),
		Status:    models.SyncStatusNoop,
		StartedAt: time.Now().UTC(),
	}

	runErr := s.runOnce(ctx, history)
	if runErr != nil {
		history.Status = models.SyncStatusError
		history.ErrorDetail = runErr.Error()
	}

	now := time.Now().UTC()
	history.CompletedAt = &now
	history.Duration = int(now.Sub(history.StartedAt).Milliseconds())

	if err := s.db.Create(history).Error; err != nil {
		log.Printf("⚠️ GRT API Sync: failed to record sync history: %v", err)
	}

	s.broadcast(history)
	return history, runErr
}

// runOnce executes the fetch -> normalize -> reconcile pipeline for one run
func (s *SyncService) runOnce(ctx context.Context, history *models.SyncHistory) error {
	apiURL, apiKey := s.apiParams()

	client := NewClient(apiURL, apiKey)
	data, err := client.FetchBranches(ctx)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var companies []models.ResCompany
	if err := s.db.Where("grt_code_prefixes <> ''").Find(&companies).Error; err != nil {
		return fmt.Errorf("grt: load companies: %w", err)
	}
	var countries []models.ResCountry
	if err := s.db.Find(&countries).Error; err != nil {
		return fmt.Errorf("grt: load countries: %w", err)
	}

	branches, err := NormalizeBranches(data, BuildCodeCompanyMapping(companies), BuildCountryMapping(countries))
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		log.Println("📭 GRT API Sync: No mapped branches in GRT data, nothing to do")
		return nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		created, updated, skipped, err := s.applyBranches(tx, history.RunID, branches)
		history.Created = created
		history.Updated = updated
		history.Skipped = skipped
		return err
	})
	if err != nil {
		return err
	}

	history.Status = models.SyncStatusSuccess
	if debug, err := json.Marshal(map[string]interface{}{
		"branches": len(branches),
		"payload":  len(data),
	}); err == nil {
		history.DebugInfo = datatypes.JSON(debug)
	}

	log.Printf("✅ GRT API Sync: Run complete (created=%d updated=%d skipped=%d)",
		history.Created, history.Updated, history.Skipped)
	return nil
}

// broadcast pushes the run summary to connected websocket clients
func (s *SyncService) broadcast(history *models.SyncHistory) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(map[string]interface{}{
		"type":    "SYNC_RUN",
		"runId":   history.RunID,
		"status":  history.Status,
		"created": history.Created,
		"updated": history.Updated,
		"skipped": history.Skipped,
	})
}
