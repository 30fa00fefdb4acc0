package grt

import (
	"strings"
	"testing"

	"github.com/solvti/ougrt/internal/models"
)

func branchPayload() RawBranch {
	return RawBranch{
		"management_id":              "ABC00001",
		"management_id_level_number": float64(5),
		"operational_from":           "2024-01-01",
		"operational_until":          "2024-12-31",
		"l5_branch":                  "Downtown",
		"l8_operating_unit":          "Retail",
		"l10_operating_country":      "Canada",
	}
}

func TestNormalizeBranches_CreateScenario(t *testing.T) {
	codeCompany := map[string]int64{"ABC": 7}
	countries := map[string]int64{"Canada": 3}

	branches, err := NormalizeBranches([]RawBranch{branchPayload()}, codeCompany, countries)
	if err != nil {
		t.Fatalf("Normalization failed: %v", err)
	}

	record, ok := branches["ABC00001"]
	if !ok {
		t.Fatalf("Expected record for ABC00001, got %v", branches)
	}

	if record.Name != "ABC00001 - OU Retail, Branch Downtown" {
		t.Errorf("Unexpected unit name: %q", record.Name)
	}
	if record.PartnerName != "OU Retail, Branch Downtown" {
		t.Errorf("Unexpected partner name: %q", record.PartnerName)
	}
	if record.Branch != "Downtown" {
		t.Errorf("Unexpected branch: %q", record.Branch)
	}
	if record.CompanyID != 7 {
		t.Errorf("Expected company ID 7, got %d", record.CompanyID)
	}
	if record.CountryID == nil || *record.CountryID != 3 {
		t.Errorf("Expected country ID 3, got %v", record.CountryID)
	}
	if record.ValidFrom != "2024-01-01" || record.ValidUntil != "2024-12-31" {
		t.Errorf("Unexpected validity window: %q - %q", record.ValidFrom, record.ValidUntil)
	}
}

func TestNormalizeBranches_ExcludesOtherLevels(t *testing.T) {
	raw := branchPayload()
	raw["management_id_level_number"] = float64(8)

	branches, err := NormalizeBranches([]RawBranch{raw}, map[string]int64{"ABC": 7}, nil)
	if err != nil {
		t.Fatalf("Normalization failed: %v", err)
	}
	if len(branches) != 0 {
		t.Errorf("Level 8 record should be excluded, got %v", branches)
	}
}

func TestNormalizeBranches_ExcludesUnmappedPrefix(t *testing.T) {
	branches, err := NormalizeBranches([]RawBranch{branchPayload()}, map[string]int64{"XYZ": 9}, nil)
	if err != nil {
		t.Fatalf("Normalization failed: %v", err)
	}
	if len(branches) != 0 {
		t.Errorf("Unmapped prefix should be excluded even at level 5, got %v", branches)
	}
}

func TestNormalizeBranches_MissingKeyAbortsRun(t *testing.T) {
	good := branchPayload()
	bad := branchPayload()
	bad["management_id"] = "ABC00002"
	delete(bad, "operational_until")

	branches, err := NormalizeBranches([]RawBranch{good, bad}, map[string]int64{"ABC": 7}, nil)
	if err == nil {
		t.Fatal("Expected normalization to abort on missing key")
	}
	if !strings.Contains(err.Error(), "operational_until") {
		t.Errorf("Error should name the missing key, got: %v", err)
	}
	if branches != nil {
		t.Errorf("Partial results must not be produced, got %v", branches)
	}
}

func TestOperatingUnitName_OfficeVariants(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(RawBranch)
		want    string
		partner string
	}{
		{
			name:    "regular branch gets Branch prefix",
			mutate:  func(RawBranch) {},
			want:    "ABC00001 - OU Retail, Branch Downtown",
			partner: "OU Retail, Branch Downtown",
		},
		{
			name:    "is_office flag drops the prefix",
			mutate:  func(raw RawBranch) { raw["is_office"] = true },
			want:    "ABC00001 - OU Retail, Downtown",
			partner: "OU Retail, Downtown",
		},
		{
			name:    "OU Office sentinel drops the prefix",
			mutate:  func(raw RawBranch) { raw["l5_branch"] = "OU Office" },
			want:    "ABC00001 - OU Retail, OU Office",
			partner: "OU Retail, OU Office",
		},
	}

	for _, tt := range tests {
		raw := branchPayload()
		tt.mutate(raw)
		name, partner := operatingUnitName("ABC00001", raw)
		if name != tt.want {
			t.Errorf("%s: got name %q, want %q", tt.name, name, tt.want)
		}
		if partner != tt.partner {
			t.Errorf("%s: got partner name %q, want %q", tt.name, partner, tt.partner)
		}
	}
}

func TestBuildCodeCompanyMapping(t *testing.T) {
	companies := []models.ResCompany{
		{ID: 7, GRTCodePrefixes: "ABC, ABD"},
		{ID: 9, GRTCodePrefixes: "EUA"},
	}

	mapping := BuildCodeCompanyMapping(companies)
	if len(mapping) != 3 {
		t.Fatalf("Expected 3 prefixes, got %v", mapping)
	}
	if mapping["ABC"] != 7 || mapping["ABD"] != 7 || mapping["EUA"] != 9 {
		t.Errorf("Unexpected mapping: %v", mapping)
	}
}

func TestBuildCodeCompanyMapping_LaterCompanyOverwrites(t *testing.T) {
	companies := []models.ResCompany{
		{ID: 7, GRTCodePrefixes: "ABC"},
		{ID: 9, GRTCodePrefixes: "ABC"},
	}

	mapping := BuildCodeCompanyMapping(companies)
	if mapping["ABC"] != 9 {
		t.Errorf("Later company should overwrite on collision, got %v", mapping)
	}
}

func TestNormalizeBranches_EmptyResultIsNotAnError(t *testing.T) {
	branches, err := NormalizeBranches(nil, map[string]int64{"ABC": 7}, nil)
	if err != nil {
		t.Fatalf("Empty payload should not error: %v", err)
	}
	if len(branches) != 0 {
		t.Errorf("Expected empty result, got %v", branches)
	}
}
