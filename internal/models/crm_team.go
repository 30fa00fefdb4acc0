package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// CrmTeam is a sales team optionally scoped to an operating unit.
type CrmTeam struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	CompanyID       *int64         `gorm:"index" json:"companyId"`
	Company         *ResCompany    `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	OperatingUnitID *int64         `gorm:"index" json:"operatingUnitId"`
	OperatingUnit   *OperatingUnit `gorm:"foreignKey:OperatingUnitID" json:"operatingUnit,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CrmTeam) TableName() string { return "crm_team" }

// BeforeSave rejects teams whose company differs from the operating unit's
// company.
func (t *CrmTeam) BeforeSave(tx *gorm.DB) error {
	if t.CompanyID == nil || t.OperatingUnitID == nil {
		return nil
	}

	var ou OperatingUnit
	if err := tx.First(&ou, *t.OperatingUnitID).Error; err != nil {
		return err
	}
	if ou.CompanyID != *t.CompanyID {
		return fmt.Errorf("configuration error: the company in the sales team and in the operating unit must be the same")
	}
	return nil
}
