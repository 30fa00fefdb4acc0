package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/solvti/ougrt/internal/models"
)

// runSync triggers one reconciliation run immediately
func (r *Router) runSync(w http.ResponseWriter, req *http.Request) {
	if r.sync == nil {
		respondError(w, http.StatusServiceUnavailable, "Sync service not available")
		return
	}

	history, err := r.sync.RunSync(req.Context())
	if err != nil {
		// The run itself is recorded; report the failure with the record
		respondJSON(w, http.StatusBadGateway, history)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// listSyncHistory returns recent sync runs, newest first
func (r *Router) listSyncHistory(w http.ResponseWriter, req *http.Request) {
	var history []models.SyncHistory
	if err := r.db.Order("started_at DESC").Limit(queryLimit(req, 50)).Find(&history).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch sync history")
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// listSyncLogs returns recent audit log entries, optionally filtered by run
func (r *Router) listSyncLogs(w http.ResponseWriter, req *http.Request) {
	query := r.db.Order("created_at DESC").Limit(queryLimit(req, 100))
	if runID := req.URL.Query().Get("runId"); runID != "" {
		query = query.Where("run_id = ?", runID)
	}

	var logs []models.SyncLog
	if err := query.Find(&logs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch sync logs")
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

// getConfigParam returns one persisted configuration parameter. The API key is
// never returned in clear.
func (r *Router) getConfigParam(w http.ResponseWriter, req *http.Request) {
	key := mux.Vars(req)["key"]

	value := models.GetParam(r.db.DB, key, "")
	if key == models.ParamGRTAPIKey && value != "" {
		value = "********"
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"key":   key,
		"value": value,
	})
}

// setConfigParam upserts one persisted configuration parameter
func (r *Router) setConfigParam(w http.ResponseWriter, req *http.Request) {
	key := mux.Vars(req)["key"]

	var body struct {
		Value string `json:"value"`
	}
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := models.SetParam(r.db.DB, key, body.Value); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to store parameter")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"key": key, "status": "updated"})
}

// queryLimit reads a limit query parameter with a default
func queryLimit(req *http.Request, fallback int) int {
	if raw := req.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return fallback
}
