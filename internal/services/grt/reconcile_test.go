package grt

import (
	"reflect"
	"testing"
)

func existingDowntown() ExistingUnit {
	return ExistingUnit{
		ID:         1,
		Name:       "ABC00001 - OU Retail, Branch Downtown",
		ValidFrom:  "2024-01-01",
		ValidUntil: "2024-12-31",
		Country:    "Canada",
		Synced:     true,
	}
}

func remoteDowntown() BranchRecord {
	return BranchRecord{
		Code:        "ABC00001",
		Name:        "ABC00001 - OU Retail, Branch Downtown",
		PartnerName: "OU Retail, Branch Downtown",
		Branch:      "Downtown",
		Country:     "Canada",
		ValidFrom:   "2024-01-01",
		ValidUntil:  "2024-12-31",
		CompanyID:   7,
	}
}

func TestUpdateVals_IdenticalDataIsIdempotent(t *testing.T) {
	vals := UpdateVals(remoteDowntown(), existingDowntown())
	if len(vals) != 0 {
		t.Errorf("Identical data must produce zero writes, got %v", vals)
	}
}

func TestUpdateVals_OnlyChangedFieldsAreWritten(t *testing.T) {
	record := remoteDowntown()
	record.ValidUntil = "2025-06-30"

	vals := UpdateVals(record, existingDowntown())
	if len(vals) != 1 {
		t.Fatalf("Expected exactly one changed field, got %v", vals)
	}
	if _, ok := vals["valid_until"]; !ok {
		t.Errorf("Expected valid_until delta, got %v", vals)
	}
}

func TestUpdateVals_NameChange(t *testing.T) {
	record := remoteDowntown()
	record.Name = "ABC00001 - OU Retail, Branch Uptown"

	vals := UpdateVals(record, existingDowntown())
	if vals["name"] != record.Name {
		t.Errorf("Expected name delta, got %v", vals)
	}
}

func TestPartition(t *testing.T) {
	branches := map[string]BranchRecord{
		"ABC00001": remoteDowntown(),
		"ABC00002": {Code: "ABC00002"},
		"ABD00009": {Code: "ABD00009"},
	}
	existing := map[string]ExistingUnit{
		"ABC00001": existingDowntown(),
	}

	creates, updates := Partition(branches, existing)
	if !reflect.DeepEqual(creates, []string{"ABC00002", "ABD00009"}) {
		t.Errorf("Unexpected create candidates: %v", creates)
	}
	if !reflect.DeepEqual(updates, []string{"ABC00001"}) {
		t.Errorf("Unexpected update candidates: %v", updates)
	}
}

// An unsynced unit with no field deltas must still be written once to flip
// synced_with_grt; a synced unchanged unit must be skipped. The applier skips
// only when both conditions hold, mirrored here against UpdateVals.
func TestUnsyncedUnitIsNotSkipped(t *testing.T) {
	unit := existingDowntown()
	unit.Synced = false

	vals := UpdateVals(remoteDowntown(), unit)
	if len(vals) != 0 {
		t.Fatalf("No field deltas expected, got %v", vals)
	}
	if skip := len(vals) == 0 && unit.Synced; skip {
		t.Error("Unsynced unit must not be skipped even without field deltas")
	}

	unit.Synced = true
	if skip := len(vals) == 0 && unit.Synced; !skip {
		t.Error("Synced unchanged unit must be skipped")
	}
}
