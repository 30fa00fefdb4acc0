package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/solvti/ougrt/internal/buildinfo"
	"github.com/solvti/ougrt/internal/config"
	"github.com/solvti/ougrt/internal/database"
	"github.com/solvti/ougrt/internal/middleware"
	"github.com/solvti/ougrt/internal/services/grt"
	"github.com/solvti/ougrt/internal/websocket"
)

// Router wraps the mux router and the service collaborators
type Router struct {
	*mux.Router
	db       *database.DB
	cfg      *config.Config
	sync     *grt.SyncService
	hub      *websocket.Hub
	validate *validator.Validate
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config) *Router {
	r := &Router{
		Router:   mux.NewRouter(),
		db:       db,
		cfg:      cfg,
		validate: validator.New(),
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")

	// API routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	api.HandleFunc("/status", r.getStatus).Methods("GET")

	api.HandleFunc("/operating-units", r.listOperatingUnits).Methods("GET")
	api.HandleFunc("/operating-units/{id}", r.getOperatingUnit).Methods("GET")

	api.HandleFunc("/companies", r.listCompanies).Methods("GET")
	api.HandleFunc("/companies/{id}/prefixes", r.getCompanyPrefixes).Methods("GET")
	api.HandleFunc("/companies/{id}/prefixes", r.updateCompanyPrefixes).Methods("PUT")

	api.HandleFunc("/sync/run", r.runSync).Methods("POST")
	api.HandleFunc("/sync/history", r.listSyncHistory).Methods("GET")
	api.HandleFunc("/sync/logs", r.listSyncLogs).Methods("GET")

	api.HandleFunc("/config/{key}", r.getConfigParam).Methods("GET")
	api.HandleFunc("/config/{key}", r.setConfigParam).Methods("PUT")

	// Sync event feed (websocket)
	r.HandleFunc("/ws/sync", r.serveSyncFeed).Methods("GET")

	return r
}

// SetSyncService registers the GRT sync service for the sync endpoints
func (r *Router) SetSyncService(s *grt.SyncService) {
	r.sync = s
}

// SetHub registers the websocket hub for the sync event feed
func (r *Router) SetHub(hub *websocket.Hub) {
	r.hub = hub
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getStatus returns the current status
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "running",
		"commit":    buildinfo.CommitHash,
		"buildTime": buildinfo.BuildTime,
		"startTime": buildinfo.StartTime,
	})
}

// serveSyncFeed upgrades the connection to the websocket sync feed
func (r *Router) serveSyncFeed(w http.ResponseWriter, req *http.Request) {
	if r.hub == nil {
		respondError(w, http.StatusServiceUnavailable, "Sync feed not available")
		return
	}
	websocket.ServeWs(r.hub, w, req)
}

// decodeJSON decodes a request body into v
func decodeJSON(req *http.Request, v interface{}) error {
	return json.NewDecoder(req.Body).Decode(v)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
