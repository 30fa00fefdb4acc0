package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/solvti/ougrt/internal/models"
)

// listOperatingUnits returns all operating units
func (r *Router) listOperatingUnits(w http.ResponseWriter, req *http.Request) {
	query := r.db.Order("code")
	if synced := req.URL.Query().Get("synced"); synced != "" {
		query = query.Where("synced_with_grt = ?", synced == "true")
	}

	var units []models.OperatingUnit
	if err := query.Find(&units).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch operating units")
		return
	}
	respondJSON(w, http.StatusOK, units)
}

// getOperatingUnit returns a single operating unit with its partner and company
func (r *Router) getOperatingUnit(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, _ := strconv.ParseInt(vars["id"], 10, 64)

	var unit models.OperatingUnit
	if err := r.db.Preload("Partner.Country").Preload("Company").First(&unit, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Operating unit not found")
		return
	}
	respondJSON(w, http.StatusOK, unit)
}
