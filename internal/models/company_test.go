package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestPrefixList(t *testing.T) {
	tests := []struct {
		configured string
		want       []string
	}{
		{"", nil},
		{"ABC", []string{"ABC"}},
		{"ABC,ABD", []string{"ABC", "ABD"}},
		{" ABC , ABD , ", []string{"ABC", "ABD"}},
		{",,,", nil},
	}

	for _, tt := range tests {
		company := ResCompany{GRTCodePrefixes: tt.configured}
		if got := company.PrefixList(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PrefixList(%q) = %v, want %v", tt.configured, got, tt.want)
		}
	}
}

func TestCheckPrefixesUnique(t *testing.T) {
	mapping := map[string]int64{"ABC": 7, "ABD": 7}

	// Overlap with another company is rejected
	company := ResCompany{ID: 9, GRTCodePrefixes: "EUA, ABC"}
	err := company.CheckPrefixesUnique(mapping)
	if err == nil {
		t.Fatal("Expected validation error on overlapping prefix")
	}
	if !strings.Contains(err.Error(), "ABC") || !strings.Contains(err.Error(), "7") {
		t.Errorf("Error should name the prefix and the owning company, got: %v", err)
	}

	// A company keeping its own prefixes is fine
	company = ResCompany{ID: 7, GRTCodePrefixes: "ABC, ABD"}
	if err := company.CheckPrefixesUnique(mapping); err != nil {
		t.Errorf("Own prefixes must not conflict: %v", err)
	}

	// Fresh prefixes are fine
	company = ResCompany{ID: 9, GRTCodePrefixes: "EUA"}
	if err := company.CheckPrefixesUnique(mapping); err != nil {
		t.Errorf("New prefix must not conflict: %v", err)
	}
}
