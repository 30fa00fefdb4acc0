package models

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestParseDate(t *testing.T) {
	d := ParseDate("2024-12-31")
	if d == nil {
		t.Fatal("Expected date, got nil")
	}
	if got := time.Time(*d).Format("2006-01-02"); got != "2024-12-31" {
		t.Errorf("Round trip mismatch: %q", got)
	}

	if ParseDate("") != nil {
		t.Error("Empty string should parse to nil")
	}
	if ParseDate("31.12.2024") != nil {
		t.Error("Malformed date should parse to nil")
	}
}

func TestValidityStrings(t *testing.T) {
	from := datatypes.Date(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	unit := OperatingUnit{ValidFrom: &from}

	if got := unit.ValidFromString(); got != "2024-01-01" {
		t.Errorf("ValidFromString = %q", got)
	}
	if got := unit.ValidUntilString(); got != "" {
		t.Errorf("Unset validity end should format as empty string, got %q", got)
	}
}
