package grt

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/solvti/ougrt/internal/models"
	"gorm.io/gorm"
)

// ExistingUnit is the comparable snapshot of one locally persisted operating
// unit, keyed by code in the lookup the differencer works against.
type ExistingUnit struct {
	ID         int64
	Name       string
	ValidFrom  string // YYYY-MM-DD, "" when unset
	ValidUntil string
	Country    string // partner's country name
	Synced     bool
}

// LoadExistingUnits builds the code-keyed lookup of all persisted operating
// units with their comparable fields.
func LoadExistingUnits(tx *gorm.DB) (map[string]ExistingUnit, error) {
	var units []models.OperatingUnit
	if err := tx.Preload("Partner.Country").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("grt: load operating units: %w", err)
	}

	existing := make(map[string]ExistingUnit, len(units))
	for _, unit := range units {
		snapshot := ExistingUnit{
			ID:         unit.ID,
			Name:       unit.Name,
			ValidFrom:  unit.ValidFromString(),
			ValidUntil: unit.ValidUntilString(),
			Synced:     unit.SyncedWithGRT,
		}
		if unit.Partner != nil && unit.Partner.Country != nil {
			snapshot.Country = unit.Partner.Country.Name
		}
		existing[unit.Code] = snapshot
	}
	return existing, nil
}

// UpdateVals compares a normalized remote record against the local snapshot and
// returns the column assignments for the fields that actually differ. An empty
// map means the unit is already up to date.
func UpdateVals(record BranchRecord, existing ExistingUnit) map[string]interface{} {
	vals := map[string]interface{}{}
	if record.Name != existing.Name {
		vals["name"] = record.Name
	}
	if record.ValidFrom != existing.ValidFrom {
		vals["valid_from"] = models.ParseDate(record.ValidFrom)
	}
	if record.ValidUntil != existing.ValidUntil {
		vals["valid_until"] = models.ParseDate(record.ValidUntil)
	}
	return vals
}

// Partition splits the normalized records into create candidates (codes with no
// local unit) and update candidates, both sorted by code for deterministic
// processing and logs.
func Partition(branches map[string]BranchRecord, existing map[string]ExistingUnit) (creates, updates []string) {
	for code := range branches {
		if _, ok := existing[code]; ok {
			updates = append(updates, code)
		} else {
			creates = append(creates, code)
		}
	}
	sort.Strings(creates)
	sort.Strings(updates)
	return creates, updates
}

// applyBranches reconciles the normalized remote records against the local
// operating units inside the given transaction. Creates partners first, then
// the units referencing them; updates write only changed fields. Nothing is
// ever deleted here.
func (s *SyncService) applyBranches(tx *gorm.DB, runID string, branches map[string]BranchRecord) (created, updated, skipped int, err error) {
	existing, err := LoadExistingUnits(tx)
	if err != nil {
		return 0, 0, 0, err
	}

	createCodes, updateCodes := Partition(branches, existing)

	for _, code := range updateCodes {
		record := branches[code]
		unit := existing[code]
		vals := UpdateVals(record, unit)
		if len(vals) == 0 && unit.Synced {
			skipped++
			continue
		}
		vals["synced_with_grt"] = true
		if err := tx.Model(&models.OperatingUnit{}).Where("id = ?", unit.ID).Updates(vals).Error; err != nil {
			return created, updated, skipped, fmt.Errorf("grt: update operating unit %s: %w", code, err)
		}
		if err := s.logChange(tx, runID, models.SyncActionUpdate,
			fmt.Sprintf("Updated operating unit for code = %s with values: %v", code, vals)); err != nil {
			return created, updated, skipped, err
		}
		updated++
	}

	if len(createCodes) == 0 {
		return created, updated, skipped, nil
	}

	// Partners first so the units can reference them
	partners := make([]models.ResPartner, len(createCodes))
	for i, code := range createCodes {
		record := branches[code]
		partners[i] = models.ResPartner{
			Name:      record.PartnerName,
			City:      record.Branch,
			CountryID: record.CountryID,
		}
	}
	if err := tx.Create(&partners).Error; err != nil {
		return created, updated, skipped, fmt.Errorf("grt: create partners: %w", err)
	}

	units := make([]models.OperatingUnit, len(createCodes))
	for i, code := range createCodes {
		record := branches[code]
		units[i] = models.OperatingUnit{
			Code:          record.Code,
			Name:          record.Name,
			CompanyID:     record.CompanyID,
			PartnerID:     &partners[i].ID,
			ValidFrom:     models.ParseDate(record.ValidFrom),
			ValidUntil:    models.ParseDate(record.ValidUntil),
			SyncedWithGRT: true,
			Active:        true,
		}
	}
	if err := tx.Create(&units).Error; err != nil {
		return created, updated, skipped, fmt.Errorf("grt: create operating units: %w", err)
	}
	created = len(units)

	summary := make([]string, len(units))
	for i, unit := range units {
		summary[i] = fmt.Sprintf("{code: %s, name: %s, company_id: %d}", unit.Code, unit.Name, unit.CompanyID)
	}
	if err := s.logChange(tx, runID, models.SyncActionCreate,
		fmt.Sprintf("Created new operating units with values: [%s]", strings.Join(summary, ", "))); err != nil {
		return created, updated, skipped, err
	}
	log.Printf("✅ GRT API Sync: Successfully created [%d] Operating Units", created)

	return created, updated, skipped, nil
}

// logChange persists one audit log entry for a create/update made by the sync
func (s *SyncService) logChange(tx *gorm.DB, runID, actionType, message string) error {
	entry := models.SyncLog{
		RunID:      runID,
		ActionType: actionType,
		Level:      "info",
		Message:    message,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("grt: write audit log: %w", err)
	}
	return nil
}
