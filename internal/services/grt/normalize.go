package grt

import (
	"fmt"
	"log"
	"strings"

	"github.com/solvti/ougrt/internal/models"
)

// BranchLevel is the hierarchy level number of branch records in the GRT
// dataset. Everything above or below is ignored by the sync.
const BranchLevel = 5

// officeSentinel marks head-office rows whose branch name must not get the
// "Branch " prefix.
const officeSentinel = "OU Office"

// prefixLen is the length of the management ID prefix mapped to a company.
const prefixLen = 3

// requiredKeys must be present on every branch record that passed the filter.
// A single missing key aborts the whole normalization; partial results are
// never produced.
var requiredKeys = []string{
	"management_id",
	"operational_from",
	"operational_until",
	"l5_branch",
	"l8_operating_unit",
	"l10_operating_country",
}

// BranchRecord is the canonical shape of one GRT branch after normalization.
// It lives for a single sync run and is never persisted directly.
type BranchRecord struct {
	Code        string
	Name        string // display name including the management ID
	PartnerName string // display name without the management ID
	Branch      string
	Country     string
	ValidFrom   string // YYYY-MM-DD, "" when the API sent nothing
	ValidUntil  string
	CountryID   *int64
	CompanyID   int64
}

// BuildCodeCompanyMapping maps every configured GRT code prefix to its owning
// company ID. Recomputed fresh each run; collisions are prevented by the
// company save constraint, not here.
func BuildCodeCompanyMapping(companies []models.ResCompany) map[string]int64 {
	mapping := make(map[string]int64)
	for _, company := range companies {
		for _, prefix := range company.PrefixList() {
			mapping[prefix] = company.ID
		}
	}
	return mapping
}

// BuildCountryMapping maps country names to their IDs for partner creation.
func BuildCountryMapping(countries []models.ResCountry) map[string]int64 {
	mapping := make(map[string]int64, len(countries))
	for _, country := range countries {
		mapping[country.Name] = country.ID
	}
	return mapping
}

// NormalizeBranches filters the raw GRT payload down to mapped level-5 branches
// and reshapes each one into a BranchRecord keyed by management ID. An empty
// result with a nil error means there was nothing to do.
func NormalizeBranches(data []RawBranch, codeCompany map[string]int64, countries map[string]int64) (map[string]BranchRecord, error) {
	branches := make(map[string]BranchRecord)
	for _, raw := range data {
		if !isBranchLevel(raw) {
			continue
		}
		if !hasMappedPrefix(raw, codeCompany) {
			continue
		}

		if key, ok := missingKey(raw); ok {
			log.Printf("❌ GRT API Sync: Received data from GRT API is missing key: %s", key)
			return nil, fmt.Errorf("grt: branch record is missing key %q", key)
		}

		code := stringValue(raw, "management_id")
		name, partnerName := operatingUnitName(code, raw)
		countryName := stringValue(raw, "l10_operating_country")

		record := BranchRecord{
			Code:        code,
			Name:        name,
			PartnerName: partnerName,
			Branch:      stringValue(raw, "l5_branch"),
			Country:     countryName,
			ValidFrom:   stringValue(raw, "operational_from"),
			ValidUntil:  stringValue(raw, "operational_until"),
			CompanyID:   codeCompany[code[:prefixLen]],
		}
		if id, ok := countries[countryName]; ok {
			record.CountryID = &id
		}
		branches[code] = record
	}
	return branches, nil
}

// isBranchLevel keeps only records on the branch level (5)
func isBranchLevel(raw RawBranch) bool {
	return intValue(raw, "management_id_level_number") == BranchLevel
}

// hasMappedPrefix keeps only records whose management ID prefix belongs to a
// configured company
func hasMappedPrefix(raw RawBranch, codeCompany map[string]int64) bool {
	code := stringValue(raw, "management_id")
	if len(code) < prefixLen {
		return false
	}
	_, ok := codeCompany[code[:prefixLen]]
	return ok
}

// operatingUnitName derives the display name of an operating unit and of its
// partner. Branch names get a "Branch " prefix unless the record is an office.
func operatingUnitName(code string, raw RawBranch) (name, partnerName string) {
	branch := stringValue(raw, "l5_branch")
	base := fmt.Sprintf("OU %s, ", stringValue(raw, "l8_operating_unit"))
	if isOffice(raw) {
		base += branch
	} else {
		base += "Branch " + branch
	}
	return code + " - " + base, base
}

// isOffice reports whether the record describes a head office rather than a
// branch. Older GRT exports signalled this with the "OU Office" branch name,
// newer ones carry an explicit is_office flag; both are honored.
func isOffice(raw RawBranch) bool {
	if flag, ok := raw["is_office"].(bool); ok && flag {
		return true
	}
	return strings.TrimSpace(stringValue(raw, "l5_branch")) == officeSentinel
}

// missingKey returns the first required key absent from the record
func missingKey(raw RawBranch) (string, bool) {
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return key, true
		}
	}
	return "", false
}

func stringValue(raw RawBranch, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func intValue(raw RawBranch, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}
