package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/solvti/ougrt/internal/models"
)

// PrefixesRequest carries a new comma-separated GRT code prefix configuration
type PrefixesRequest struct {
	GRTCodePrefixes string `json:"grtCodePrefixes" validate:"required"`
}

// listCompanies returns all companies
func (r *Router) listCompanies(w http.ResponseWriter, req *http.Request) {
	var companies []models.ResCompany
	if err := r.db.Order("id").Find(&companies).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch companies")
		return
	}
	respondJSON(w, http.StatusOK, companies)
}

// getCompanyPrefixes returns the GRT code prefix configuration of one company
func (r *Router) getCompanyPrefixes(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, _ := strconv.ParseInt(vars["id"], 10, 64)

	var company models.ResCompany
	if err := r.db.First(&company, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Company not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"companyId":       company.ID,
		"grtCodePrefixes": company.GRTCodePrefixes,
		"prefixes":        company.PrefixList(),
	})
}

// updateCompanyPrefixes replaces the GRT code prefix configuration of one
// company. A prefix already owned by another company is rejected by the model
// constraint and reported as a validation failure.
func (r *Router) updateCompanyPrefixes(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, _ := strconv.ParseInt(vars["id"], 10, 64)

	var prefixReq PrefixesRequest
	if err := json.NewDecoder(req.Body).Decode(&prefixReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := r.validate.Struct(&prefixReq); err != nil {
		respondError(w, http.StatusBadRequest, "grtCodePrefixes is required")
		return
	}

	var company models.ResCompany
	if err := r.db.First(&company, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Company not found")
		return
	}

	company.GRTCodePrefixes = prefixReq.GRTCodePrefixes
	if err := r.db.Save(&company).Error; err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, company)
}
