package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ResCompany represents a company owning operating units. GRTCodePrefixes holds
// one or more comma-separated 3-character GRT code prefixes; every management ID
// starting with one of them belongs to this company.
type ResCompany struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"unique;not null" json:"name"`
	GRTCodePrefixes string `gorm:"column:grt_code_prefixes" json:"grtCodePrefixes"`
	OUSelfBalanced  bool   `gorm:"column:ou_is_self_balanced;default:false" json:"ouIsSelfBalanced"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ResCompany) TableName() string { return "res_company" }

// PrefixList splits the configured prefixes on commas, dropping whitespace and
// empty entries.
func (c *ResCompany) PrefixList() []string {
	if c.GRTCodePrefixes == "" {
		return nil
	}
	var prefixes []string
	for _, p := range strings.Split(strings.ReplaceAll(c.GRTCodePrefixes, " ", ""), ",") {
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}

// CheckPrefixesUnique validates the company's prefixes against a prefix->company
// mapping built from the other companies. A prefix already owned by a different
// company is a configuration error.
func (c *ResCompany) CheckPrefixesUnique(mapping map[string]int64) error {
	for _, prefix := range c.PrefixList() {
		if owner, ok := mapping[prefix]; ok && owner != c.ID {
			return fmt.Errorf("GRT code prefix [%s] already exists in company ID = [%d]", prefix, owner)
		}
	}
	return nil
}

// BeforeSave rejects writes that would assign a GRT code prefix already owned by
// another company.
func (c *ResCompany) BeforeSave(tx *gorm.DB) error {
	if c.GRTCodePrefixes == "" {
		return nil
	}

	var others []ResCompany
	if err := tx.Where("grt_code_prefixes <> '' AND id <> ?", c.ID).Find(&others).Error; err != nil {
		return err
	}

	mapping := make(map[string]int64)
	for _, other := range others {
		for _, prefix := range other.PrefixList() {
			mapping[prefix] = other.ID
		}
	}

	return c.CheckPrefixesUnique(mapping)
}
